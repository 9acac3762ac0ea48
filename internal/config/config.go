// Package config loads the notty HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/notty/internal/agent"
	"github.com/lox/notty/internal/game"
)

// DefaultFile is the config file looked for when none is given
const DefaultFile = "notty.hcl"

// ErrInvalid is returned by Validate
var ErrInvalid = errors.New("config: invalid")

// Config is the complete configuration
type Config struct {
	Game  GameSettings
	Agent AgentSettings
	Log   LogSettings
}

// GameSettings holds the table size and rule limits
type GameSettings struct {
	Players         int   `hcl:"players,optional"`
	MaxHandSize     int   `hcl:"max_hand_size,optional"`
	MaxDrawPerTurn  int   `hcl:"max_draw_per_turn,optional"`
	InitialHandSize int   `hcl:"initial_hand_size,optional"`
	Seed            int64 `hcl:"seed,optional"`
	TurnLimit       int   `hcl:"turn_limit,optional"`
}

// AgentSettings configures computer players. Explicit weights override the
// named strategy one field at a time.
type AgentSettings struct {
	Strategy      string   `hcl:"strategy,optional"`
	Draw          *float64 `hcl:"draw,optional"`
	Snatch        *float64 `hcl:"snatch,optional"`
	Skip          *float64 `hcl:"skip,optional"`
	AcceptDiscard *float64 `hcl:"accept_discard,optional"`
	ThinkDelay    string   `hcl:"think_delay,optional"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// fileConfig mirrors the file layout; every block is optional
type fileConfig struct {
	Game  *GameSettings  `hcl:"game,block"`
	Agent *AgentSettings `hcl:"agent,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from src; filename is only used in messages
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var fc fileConfig
	if diags := gohcl.DecodeBody(body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := &Config{}
	if fc.Game != nil {
		cfg.Game = *fc.Game
	}
	if fc.Agent != nil {
		cfg.Agent = *fc.Agent
	}
	if fc.Log != nil {
		cfg.Log = *fc.Log
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	rules := game.DefaultRules()
	if c.Game.Players == 0 {
		c.Game.Players = 2
	}
	if c.Game.MaxHandSize == 0 {
		c.Game.MaxHandSize = rules.MaxHandSize
	}
	if c.Game.MaxDrawPerTurn == 0 {
		c.Game.MaxDrawPerTurn = rules.MaxDrawPerTurn
	}
	if c.Game.InitialHandSize == 0 {
		c.Game.InitialHandSize = rules.InitialHandSize
	}
	if c.Game.TurnLimit == 0 {
		c.Game.TurnLimit = 1000
	}

	if c.Agent.Strategy == "" {
		c.Agent.Strategy = "uniform"
	}
	if c.Agent.AcceptDiscard == nil {
		p := agent.DefaultAcceptProbability
		c.Agent.AcceptDiscard = &p
	}
	if c.Agent.ThinkDelay == "" {
		c.Agent.ThinkDelay = "2s"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "notty.log"
	}
}

// Validate checks every setting
func (c *Config) Validate() error {
	if c.Game.Players < game.MinPlayers || c.Game.Players > game.MaxPlayers {
		return fmt.Errorf("%w: players must be %d or %d, got %d", ErrInvalid, game.MinPlayers, game.MaxPlayers, c.Game.Players)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Game.TurnLimit < 0 {
		return fmt.Errorf("%w: turn limit must not be negative", ErrInvalid)
	}
	if _, err := c.Weights(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if p := c.AcceptProbability(); p < 0 || p > 1 {
		return fmt.Errorf("%w: accept_discard %g outside [0, 1]", ErrInvalid, p)
	}
	if _, err := c.ThinkDelay(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Rules returns the game rule limits
func (c *Config) Rules() game.Rules {
	return game.Rules{
		MaxHandSize:     c.Game.MaxHandSize,
		MaxDrawPerTurn:  c.Game.MaxDrawPerTurn,
		InitialHandSize: c.Game.InitialHandSize,
	}
}

// Weights resolves the named strategy and applies any explicit weights
func (c *Config) Weights() (agent.Weights, error) {
	w, err := agent.ParseStrategy(c.Agent.Strategy)
	if err != nil {
		return agent.Weights{}, err
	}
	if c.Agent.Draw != nil {
		w.Draw = *c.Agent.Draw
	}
	if c.Agent.Snatch != nil {
		w.Snatch = *c.Agent.Snatch
	}
	if c.Agent.Skip != nil {
		w.Skip = *c.Agent.Skip
	}
	return w, w.Validate()
}

// AcceptProbability returns the chance a computer discards a found group
func (c *Config) AcceptProbability() float64 {
	if c.Agent.AcceptDiscard == nil {
		return agent.DefaultAcceptProbability
	}
	return *c.Agent.AcceptDiscard
}

// ThinkDelay parses the pause before each computer turn
func (c *Config) ThinkDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Agent.ThinkDelay)
	if err != nil {
		return 0, fmt.Errorf("%w: think_delay: %w", ErrInvalid, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: think_delay must not be negative", ErrInvalid)
	}
	return d, nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	return level, nil
}
