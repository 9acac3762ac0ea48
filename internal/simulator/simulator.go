package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/notty/internal/agent"
	"github.com/lox/notty/internal/game"
	"github.com/lox/notty/internal/randutil"
	"github.com/lox/notty/internal/session"
	"github.com/lox/notty/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// DefaultTurnLimit ends a game as a stalemate when no one has won by then
const DefaultTurnLimit = 1000

// Config holds configuration for running simulations
type Config struct {
	Games             int
	Players           int
	Workers           int // 0 uses one per CPU
	Seed              int64
	TurnLimit         int
	Rules             game.Rules
	Weights           agent.Weights
	AcceptProbability float64       // 0 never discards
	Timeout           time.Duration // per game, 0 for none
	Logger            *log.Logger
}

// Simulator plays batches of all-computer games
type Simulator struct {
	config Config
}

// New creates a simulator, filling in defaults for zero values
func New(config Config) *Simulator {
	if config.Players == 0 {
		config.Players = 2
	}
	if config.TurnLimit <= 0 {
		config.TurnLimit = DefaultTurnLimit
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Rules == (game.Rules{}) {
		config.Rules = game.DefaultRules()
	}
	if config.Weights == (agent.Weights{}) {
		config.Weights = agent.Uniform()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	config.Seed = randutil.Resolve(config.Seed)
	return &Simulator{config: config}
}

// Seed returns the base seed; game i is dealt with Seed+i
func (s *Simulator) Seed() int64 {
	return s.config.Seed
}

// Run plays every game and aggregates the results in game order, so a run
// is reproducible regardless of worker count
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	logger := s.config.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation",
		"games", s.config.Games,
		"players", s.config.Players,
		"workers", s.config.Workers,
		"seed", s.config.Seed,
		"weights", s.config.Weights)

	results := make([]session.Result, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Games {
		gameSeed := s.config.Seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(ctx, gameSeed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, gameSeed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(statistics.GameResult{
			Seed:      r.Seed,
			Winner:    int(r.Winner),
			Turns:     r.Turns,
			Stalemate: r.Stalemate,
			Draws:     r.Draws,
			Snatches:  r.Snatches,
			Discards:  r.Discards,
		})
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete", "games", stats.Games, "stalemates", stats.Stalemates, "meanTurns", stats.Mean())
	return stats, nil
}

// playGame runs one game, checking card conservation after every event
func (s *Simulator) playGame(ctx context.Context, seed int64) (session.Result, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	var sess *session.Session
	var violation error
	check := game.SubscriberFunc(func(game.Event) {
		if sess == nil || violation != nil {
			return
		}
		violation = sess.State().CheckConservation()
	})

	cfg := game.NewComputerConfig(s.config.Players)
	cfg.Rules = s.config.Rules

	sess, err := session.New(session.Options{
		Game:        cfg,
		Seed:        seed,
		TurnLimit:   s.config.TurnLimit,
		Agents:      session.PolicyFactory(s.config.Weights, s.config.AcceptProbability),
		Logger:      s.config.Logger,
		Subscribers: []game.EventSubscriber{check},
	})
	if err != nil {
		return session.Result{}, err
	}

	result, err := sess.Run(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return result, fmt.Errorf("game timed out after %v: %w", s.config.Timeout, err)
	}
	if err != nil {
		return result, err
	}
	if violation != nil {
		return result, violation
	}

	s.config.Logger.Debug("Game finished", "seed", seed, "winner", result.Winner, "turns", result.Turns, "stalemate", result.Stalemate)
	return result, nil
}
