package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/notty/internal/config"
	"github.com/lox/notty/internal/game"
	"github.com/lox/notty/internal/session"
	"github.com/lox/notty/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Players    int    `short:"p" help:"Number of players at the table (2 or 3)"`
	Config     string `short:"c" help:"Path to the HCL config file" default:"${config_file}"`
	Seed       int64  `help:"RNG seed (0 for random)"`
	LogFile    string `help:"Write logs to this file"`
	LogLevel   string `help:"Log level: debug, info, warn, error"`
	ThinkDelay string `help:"Pause before each computer turn, e.g. 2s or 500ms"`
	Strategy   string `help:"Computer strategy: uniform or snatcher"`
	NoColor    bool   `help:"Disable colour output"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("notty"),
		kong.Description("Play Notty against the computer."),
		kong.Vars{"config_file": config.DefaultFile},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	if err := play(cfg); err != nil {
		log.Fatal("Game failed", "error", err)
	}
	ctx.Exit(0)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cli CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	if cli.Players != 0 {
		cfg.Game.Players = cli.Players
	}
	if cli.Seed != 0 {
		cfg.Game.Seed = cli.Seed
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.ThinkDelay != "" {
		cfg.Agent.ThinkDelay = cli.ThinkDelay
	}
	if cli.Strategy != "" {
		cfg.Agent.Strategy = cli.Strategy
	}

	return cfg, cfg.Validate()
}

func play(cfg *config.Config) error {
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	// Validate has already checked these
	level, _ := cfg.LogLevel()
	delay, _ := cfg.ThinkDelay()
	weights, _ := cfg.Weights()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "notty",
		Level:           level,
	})

	gameCfg := game.NewConfig(cfg.Game.Players)
	gameCfg.Rules = cfg.Rules()

	model := tui.NewModel(gameCfg, logger)
	sess, err := session.New(session.Options{
		Game:        gameCfg,
		Seed:        cfg.Game.Seed,
		ThinkDelay:  delay,
		Agents:      session.PolicyFactory(weights, cfg.AcceptProbability()),
		Logger:      logger,
		Subscribers: []game.EventSubscriber{model},
	})
	if err != nil {
		return err
	}
	model.Attach(sess)
	logger.Info("Starting game", "session", sess.ID(), "seed", sess.Seed(), "strategy", cfg.Agent.Strategy)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	fmt.Println(titleStyle.Render(" NOTTY "))
	result := sess.Result()
	switch {
	case result.Winner == 1:
		fmt.Printf("You won in %d turns.\n", result.Turns)
	case result.Winner != game.NoPlayer:
		fmt.Printf("%s won in %d turns.\n", sess.State().Player(result.Winner).Name, result.Turns)
	default:
		fmt.Printf("Game abandoned after %d turns.\n", result.Turns)
	}
	fmt.Printf("Replay this deal with --seed %d\n", sess.Seed())
	return nil
}
