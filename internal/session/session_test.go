package session

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/notty/internal/agent"
	"github.com/lox/notty/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// skipper always passes
type skipper struct{}

func (skipper) PlanTurn(game.View) []game.Action {
	return []game.Action{{Kind: game.Skip}}
}

func (skipper) DecideDiscard(game.View) game.Action {
	return game.Action{Kind: game.DeclineDiscard}
}

func skippers(game.PlayerID, *rand.Rand) (Agent, error) {
	return skipper{}, nil
}

func TestTickWaitsForThinkDelay(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock := quartz.NewMock(t)
	s, err := New(Options{
		Game:       game.NewConfig(2),
		Seed:       7,
		ThinkDelay: 2 * time.Second,
		Agents:     skippers,
		Clock:      clock,
		Logger:     quietLogger(),
	})
	require.NoError(t, err)

	changed, err := s.Tick()
	require.NoError(t, err)
	assert.False(t, changed, "human turn")
	_, waiting := s.Waiting()
	assert.False(t, waiting)

	require.NoError(t, s.Submit(game.Action{Kind: game.Skip}))
	require.Equal(t, game.PlayerID(2), s.State().Current().ID)

	changed, err = s.Tick()
	require.NoError(t, err)
	assert.False(t, changed)
	left, waiting := s.Waiting()
	require.True(t, waiting)
	assert.Equal(t, 2*time.Second, left)

	clock.Advance(time.Second).MustWait(ctx)
	changed, err = s.Tick()
	require.NoError(t, err)
	assert.False(t, changed)
	left, _ = s.Waiting()
	assert.Equal(t, time.Second, left)

	clock.Advance(time.Second).MustWait(ctx)
	changed, err = s.Tick()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, game.PlayerID(1), s.State().Current().ID)
	_, waiting = s.Waiting()
	assert.False(t, waiting)
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	s, err := New(Options{
		Game:   game.NewConfig(2),
		Seed:   3,
		Agents: skippers,
		Clock:  quartz.NewMock(t),
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	err = s.Submit(game.Action{Kind: game.CommitDraw})
	assert.ErrorIs(t, err, game.ErrIllegalAction)

	require.NoError(t, s.Submit(game.Action{Kind: game.Skip}))
	assert.ErrorIs(t, s.Submit(game.Action{Kind: game.Skip}), ErrNotYourTurn)
}

func TestRunPlaysToTheEnd(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 10; seed++ {
		s, err := New(Options{
			Game:      game.NewComputerConfig(2 + int(seed%2)),
			Seed:      seed,
			TurnLimit: 2000,
			Agents:    PolicyFactory(agent.Snatcher(), 0.8),
			Clock:     quartz.NewMock(t),
			Logger:    quietLogger(),
		})
		require.NoError(t, err)

		result, err := s.Run(context.Background())
		require.NoError(t, err)
		assert.True(t, s.Done())
		assert.Equal(t, seed, result.Seed)
		assert.Equal(t, s.ID(), result.ID)
		if !result.Stalemate {
			assert.NotEqual(t, game.NoPlayer, result.Winner)
			assert.Zero(t, s.State().Player(result.Winner).HandSize())
		}
		assert.NoError(t, s.State().CheckConservation())
		assert.ErrorIs(t, s.Submit(game.Action{Kind: game.Skip}), ErrFinished)
	}
}

func TestRunIsReproducible(t *testing.T) {
	t.Parallel()
	play := func() Result {
		s, err := New(Options{
			Game:      game.NewComputerConfig(3),
			Seed:      99,
			TurnLimit: 500,
			Clock:     quartz.NewMock(t),
			Logger:    quietLogger(),
		})
		require.NoError(t, err)
		r, err := s.Run(context.Background())
		require.NoError(t, err)
		r.ID = ""
		return r
	}
	assert.Equal(t, play(), play())
}

func TestTurnLimit(t *testing.T) {
	t.Parallel()
	s, err := New(Options{
		Game:      game.NewComputerConfig(2),
		Seed:      5,
		TurnLimit: 3,
		Agents:    skippers,
		Clock:     quartz.NewMock(t),
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Stalemate)
	assert.True(t, s.Stalemate())
	assert.Equal(t, game.NoPlayer, result.Winner)
	assert.Equal(t, 4, result.Turns)
	assert.Zero(t, result.Draws)
	assert.Zero(t, result.Snatches)

	changed, err := s.Tick()
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestRunNeedsComputers(t *testing.T) {
	t.Parallel()
	s, err := New(Options{
		Game:   game.NewConfig(2),
		Seed:   5,
		Clock:  quartz.NewMock(t),
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	_, err = s.Run(context.Background())
	assert.ErrorIs(t, err, ErrHumanSeat)
}

func TestRunHonoursContext(t *testing.T) {
	t.Parallel()
	s, err := New(Options{
		Game:   game.NewComputerConfig(2),
		Seed:   5,
		Agents: skippers,
		Clock:  quartz.NewMock(t),
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAgentFactoryError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	_, err := New(Options{
		Game: game.NewComputerConfig(2),
		Agents: func(game.PlayerID, *rand.Rand) (Agent, error) {
			return nil, boom
		},
		Logger: quietLogger(),
	})
	assert.ErrorIs(t, err, boom)
}

func TestSubscribersSeeEvents(t *testing.T) {
	t.Parallel()
	var seen []game.EventType
	s, err := New(Options{
		Game:   game.NewConfig(2),
		Seed:   2,
		Agents: skippers,
		Clock:  quartz.NewMock(t),
		Logger: quietLogger(),
		Subscribers: []game.EventSubscriber{
			game.SubscriberFunc(func(e game.Event) { seen = append(seen, e.EventType()) }),
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.Submit(game.Action{Kind: game.Skip}))

	assert.Equal(t, []game.EventType{
		game.EventTypeDealt, game.EventTypeTurnStarted,
		game.EventTypeSkipped, game.EventTypeTurnStarted,
	}, seen)
}

func TestPlanCutShortIsFinished(t *testing.T) {
	t.Parallel()
	empty := func(game.PlayerID, *rand.Rand) (Agent, error) { return planless{}, nil }
	s, err := New(Options{
		Game:      game.NewComputerConfig(2),
		Seed:      1,
		TurnLimit: 4,
		Agents:    empty,
		Clock:     quartz.NewMock(t),
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Stalemate, "empty plans pass the turn")
}

type planless struct{}

func (planless) PlanTurn(game.View) []game.Action    { return nil }
func (planless) DecideDiscard(game.View) game.Action { return game.Action{Kind: game.DeclineDiscard} }
