package simulator

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/notty/internal/agent"
	"github.com/lox/notty/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNewDefaults(t *testing.T) {
	sim := New(Config{Games: 5, Seed: 12345, Logger: quietLogger()})

	assert.Equal(t, 2, sim.config.Players)
	assert.Positive(t, sim.config.Workers)
	assert.Equal(t, DefaultTurnLimit, sim.config.TurnLimit)
	assert.Equal(t, game.DefaultRules(), sim.config.Rules)
	assert.Equal(t, agent.Uniform(), sim.config.Weights)
	assert.Equal(t, int64(12345), sim.Seed())

	random := New(Config{Games: 1, Logger: quietLogger()})
	assert.NotZero(t, random.Seed(), "zero seed is replaced")
}

func TestRun(t *testing.T) {
	sim := New(Config{
		Games:             40,
		Players:           3,
		Workers:           4,
		Seed:              777,
		TurnLimit:         400,
		Weights:           agent.Snatcher(),
		AcceptProbability: 0.8,
		Timeout:           10 * time.Second,
		Logger:            quietLogger(),
	})

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	assert.Equal(t, 40, stats.Games)
	assert.Equal(t, 40, stats.Wins[1]+stats.Wins[2]+stats.Wins[3]+stats.Stalemates)
	assert.Positive(t, stats.Mean())
	assert.LessOrEqual(t, stats.Percentile(1), 401.0)
	assert.Positive(t, stats.Snatches)
}

func TestRunIsReproducibleAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) []float64 {
		sim := New(Config{
			Games:             12,
			Seed:              31,
			Workers:           workers,
			TurnLimit:         300,
			AcceptProbability: 0.5,
			Logger:            quietLogger(),
		})
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats.Values
	}
	assert.Equal(t, run(1), run(6))
}

func TestRunRejectsNoGames(t *testing.T) {
	_, err := New(Config{Logger: quietLogger()}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Games: 5, Seed: 1, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Games: 2, Players: 5, Seed: 1, Logger: quietLogger()}).Run(context.Background())
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestNewReport(t *testing.T) {
	sim := New(Config{Games: 6, Seed: 8, TurnLimit: 200, AcceptProbability: 0.5, Logger: quietLogger()})
	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report := sim.NewReport(stats, "uniform", now)

	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, 6, report.Games)
	assert.Equal(t, int64(8), report.Seed)
	require.Len(t, report.Seats, 2)
	assert.Equal(t, 1, report.Seats[0].Seat)
	assert.Equal(t, 6, report.Seats[0].Wins+report.Seats[1].Wins+report.Stalemates)
	assert.Equal(t, stats.Median(), report.Turns.Median)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"strategy":"uniform"`)
	assert.Contains(t, string(data), `"win_rate"`)
}
