package game

import "fmt"

// Player count bounds
const (
	MinPlayers = 2
	MaxPlayers = 3
)

// Rules holds the tunable limits of a game
type Rules struct {
	MaxHandSize     int // a hand never holds more than this many cards
	MaxDrawPerTurn  int // cards that may be staged in one turn
	InitialHandSize int // cards dealt to each player before the first turn
}

// DefaultRules returns the standard limits: 20 cards per hand, 3 draws per
// turn, 5 cards dealt
func DefaultRules() Rules {
	return Rules{
		MaxHandSize:     20,
		MaxDrawPerTurn:  3,
		InitialHandSize: 5,
	}
}

// Validate checks the rules are internally consistent
func (r Rules) Validate() error {
	if r.InitialHandSize < 1 {
		return fmt.Errorf("%w: initial hand size must be positive", ErrInvalidConfig)
	}
	if r.MaxHandSize < r.InitialHandSize {
		return fmt.Errorf("%w: max hand size %d below initial hand size %d", ErrInvalidConfig, r.MaxHandSize, r.InitialHandSize)
	}
	if r.MaxDrawPerTurn < 1 {
		return fmt.Errorf("%w: max draw per turn must be positive", ErrInvalidConfig)
	}
	return nil
}

// PlayerConfig describes one seat
type PlayerConfig struct {
	Name       string
	Controller Controller
}

// Config describes a game to create. Seats are numbered in slice order
// starting from 1.
type Config struct {
	Players []PlayerConfig
	Rules   Rules
	Events  EventBus // optional; receives events from the deal onwards
}

// NewConfig returns the standard table for playerCount seats: seat 1 is the
// human ("You"), the rest are computers
func NewConfig(playerCount int) Config {
	players := make([]PlayerConfig, playerCount)
	for i := range players {
		if i == 0 {
			players[i] = PlayerConfig{Name: "You", Controller: Human}
			continue
		}
		players[i] = PlayerConfig{Name: fmt.Sprintf("Computer %d", i), Controller: Computer}
	}
	return Config{Players: players, Rules: DefaultRules()}
}

// NewComputerConfig returns a table where every seat is computer controlled,
// used for headless simulation
func NewComputerConfig(playerCount int) Config {
	cfg := NewConfig(playerCount)
	for i := range cfg.Players {
		cfg.Players[i] = PlayerConfig{Name: fmt.Sprintf("Computer %d", i+1), Controller: Computer}
	}
	return cfg
}

// Validate checks the seat list and the rules
func (c Config) Validate() error {
	if n := len(c.Players); n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("%w: %d players, want %d or %d", ErrInvalidConfig, n, MinPlayers, MaxPlayers)
	}
	return c.Rules.Validate()
}
