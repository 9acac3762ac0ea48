// Package session hosts one game of Notty: it owns the state, asks agents
// for computer moves once their think delay has passed, accepts human
// actions, and logs every event.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/notty/internal/agent"
	"github.com/lox/notty/internal/game"
	"github.com/lox/notty/internal/randutil"
)

var (
	// ErrNotYourTurn is returned by Submit when a computer seat is to act
	ErrNotYourTurn = errors.New("session: not a human turn")
	// ErrHumanSeat is returned by Run for games that need human input
	ErrHumanSeat = errors.New("session: headless run needs computer seats only")
	// ErrFinished is returned once the game has a winner or stalled
	ErrFinished = errors.New("session: game finished")
)

// Agent decides moves for a computer seat
type Agent interface {
	PlanTurn(v game.View) []game.Action
	DecideDiscard(v game.View) game.Action
}

// AgentFactory builds the agent for seat id from the seat's own generator
type AgentFactory func(id game.PlayerID, rng *rand.Rand) (Agent, error)

// PolicyFactory returns a factory creating weighted random policies
func PolicyFactory(weights agent.Weights, accept float64) AgentFactory {
	return func(_ game.PlayerID, rng *rand.Rand) (Agent, error) {
		return agent.New(weights, accept, rng)
	}
}

// Options configures a session
type Options struct {
	Game        game.Config
	Seed        int64         // 0 picks a time-based seed
	ThinkDelay  time.Duration // pause before each computer turn
	TurnLimit   int           // turns before declaring a stalemate, 0 for none
	Agents      AgentFactory  // defaults to uniform policies
	Clock       quartz.Clock  // defaults to the real clock
	Logger      *log.Logger
	Subscribers []game.EventSubscriber
}

// Result summarises a finished game
type Result struct {
	ID        string
	Seed      int64
	Winner    game.PlayerID // NoPlayer after a stalemate
	Turns     int
	Stalemate bool
	Draws     int
	Snatches  int
	Discards  int
	Declines  int
}

// Session drives one game. Like game.State it has a single caller.
type Session struct {
	id         string
	seed       int64
	state      *game.State
	agents     map[game.PlayerID]Agent
	clock      quartz.Clock
	logger     *log.Logger
	thinkDelay time.Duration
	turnLimit  int

	deadline  time.Time // when the waiting computer may act; zero if none
	stalemate bool
	result    Result
}

// New deals a game
func New(opts Options) (*Session, error) {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Agents == nil {
		opts.Agents = PolicyFactory(agent.Uniform(), agent.DefaultAcceptProbability)
	}
	if opts.ThinkDelay < 0 || opts.TurnLimit < 0 {
		return nil, fmt.Errorf("%w: negative think delay or turn limit", game.ErrInvalidConfig)
	}

	s := &Session{
		id:         uuid.NewString(),
		seed:       randutil.Resolve(opts.Seed),
		agents:     make(map[game.PlayerID]Agent),
		clock:      opts.Clock,
		thinkDelay: opts.ThinkDelay,
		turnLimit:  opts.TurnLimit,
	}
	s.logger = opts.Logger.WithPrefix("session").With("session", s.id[:8])
	s.result = Result{ID: s.id, Seed: s.seed}

	bus := game.NewEventBus()
	bus.Subscribe(game.SubscriberFunc(s.onEvent))
	for _, sub := range opts.Subscribers {
		bus.Subscribe(sub)
	}

	cfg := opts.Game
	cfg.Events = bus
	for i, pc := range cfg.Players {
		if pc.Controller != game.Computer {
			continue
		}
		id := game.PlayerID(i + 1)
		a, err := opts.Agents(id, randutil.Derive(s.seed, uint64(id)))
		if err != nil {
			return nil, fmt.Errorf("agent for seat %d: %w", id, err)
		}
		s.agents[id] = a
	}

	s.logger.Info("Dealing game", "seed", s.seed, "players", len(cfg.Players))
	state, err := game.New(cfg, randutil.New(s.seed))
	if err != nil {
		return nil, err
	}
	s.state = state
	return s, nil
}

// ID returns the session's unique id
func (s *Session) ID() string {
	return s.id
}

// Seed returns the seed the game was dealt with
func (s *Session) Seed() int64 {
	return s.seed
}

// State returns the game. Callers must only read from it.
func (s *Session) State() *game.State {
	return s.state
}

// View returns the game as seen by seat id
func (s *Session) View(id game.PlayerID) game.View {
	return s.state.View(id)
}

// Done reports whether the game has a winner or hit the turn limit
func (s *Session) Done() bool {
	_, won := s.state.Winner()
	return won || s.stalemate
}

// Stalemate reports whether the game ended on the turn limit
func (s *Session) Stalemate() bool {
	return s.stalemate
}

// Result returns the summary so far; it is final once Done is true
func (s *Session) Result() Result {
	r := s.result
	r.Turns = s.state.TurnNumber()
	r.Stalemate = s.stalemate
	if winner, ok := s.state.Winner(); ok {
		r.Winner = winner
	}
	return r
}

// Waiting reports whether a computer is waiting out its think delay, and how
// long is left
func (s *Session) Waiting() (time.Duration, bool) {
	if s.deadline.IsZero() {
		return 0, false
	}
	return max(0, s.deadline.Sub(s.clock.Now())), true
}

// Tick advances the game by at most one computer turn. A computer seat first
// gets a deadline ThinkDelay in the future; the tick at or after the deadline
// plays its whole turn. Human turns are left alone. Tick reports whether the
// state changed.
func (s *Session) Tick() (bool, error) {
	if s.Done() {
		return false, nil
	}
	current := s.state.Current()
	if current.IsHuman() {
		return false, nil
	}

	now := s.clock.Now()
	if s.deadline.IsZero() {
		s.deadline = now.Add(s.thinkDelay)
	}
	if now.Before(s.deadline) {
		return false, nil
	}

	s.deadline = time.Time{}
	if err := s.playComputerTurn(current.ID); err != nil {
		return true, err
	}
	return true, nil
}

// Submit applies a human action
func (s *Session) Submit(a game.Action) error {
	if s.Done() {
		return ErrFinished
	}
	current := s.state.Current()
	if !current.IsHuman() {
		return ErrNotYourTurn
	}

	if err := s.state.Apply(a); err != nil {
		s.logger.Debug("Rejected action", "player", current.ID, "action", a, "error", err)
		return err
	}
	s.checkTurnLimit()
	return nil
}

// Run plays an all-computer game to the end, sleeping ThinkDelay on the
// session clock before every turn
func (s *Session) Run(ctx context.Context) (Result, error) {
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		current := s.state.Current()
		if current.IsHuman() {
			return s.Result(), ErrHumanSeat
		}

		if s.thinkDelay > 0 {
			timer := s.clock.NewTimer(s.thinkDelay, "session", "think")
			select {
			case <-ctx.Done():
				timer.Stop()
				return s.Result(), ctx.Err()
			case <-timer.C:
			}
		}

		if err := s.playComputerTurn(current.ID); err != nil {
			return s.Result(), err
		}
	}
	return s.Result(), nil
}

func (s *Session) playComputerTurn(id game.PlayerID) error {
	a := s.agents[id]
	if a == nil {
		return fmt.Errorf("no agent for seat %d", id)
	}

	for _, action := range a.PlanTurn(s.state.View(id)) {
		err := s.state.Apply(action)
		if errors.Is(err, game.ErrEmptyDeck) {
			s.logger.Debug("Deck ran out mid-batch", "player", id)
			break
		}
		if err != nil {
			return fmt.Errorf("seat %d %s: %w", id, action, err)
		}
	}

	if s.state.Phase() == game.AwaitingAction && s.state.Current().ID == id {
		// The batch was cut short; keep what was drawn or pass
		finish := game.Action{Kind: game.Skip}
		if len(s.state.Turn().Drawn) > 0 {
			finish = game.Action{Kind: game.CommitDraw}
		}
		if err := s.state.Apply(finish); err != nil {
			return fmt.Errorf("seat %d %s: %w", id, finish, err)
		}
	}

	if s.state.Phase() == game.AwaitingDiscardDecision && s.state.Current().ID == id {
		decision := a.DecideDiscard(s.state.View(id))
		if err := s.state.Apply(decision); err != nil {
			return fmt.Errorf("seat %d %s: %w", id, decision, err)
		}
	}

	s.checkTurnLimit()
	return nil
}

func (s *Session) checkTurnLimit() {
	if s.turnLimit == 0 || s.Done() || s.state.TurnNumber() <= s.turnLimit {
		return
	}
	s.stalemate = true
	s.deadline = time.Time{}
	s.logger.Warn("Turn limit reached", "turns", s.turnLimit)
}
