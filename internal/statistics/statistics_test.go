package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.9))
	assert.Zero(t, stats.WinRate(1))
	assert.Zero(t, stats.StalemateRate())
	assert.Error(t, stats.Validate())
}

func TestStatistics_SingleGame(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Seed: 12345, Winner: 2, Turns: 17, Draws: 9, Snatches: 4, Discards: 2})

	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 17.0, stats.Mean())
	assert.Zero(t, stats.Variance(), "variance needs two games")
	assert.Equal(t, 17.0, stats.Median())
	assert.Equal(t, 1, stats.Wins[2])
	assert.Equal(t, 1.0, stats.WinRate(2))
	assert.Equal(t, 9, stats.Draws)
	assert.Equal(t, 4, stats.Snatches)
	assert.Equal(t, 2, stats.Discards)
	require.NoError(t, stats.Validate())
}

func TestStatistics_MultipleGames(t *testing.T) {
	stats := &Statistics{}
	turns := []int{10, 20, 30, 40}
	for i, n := range turns {
		stats.Add(GameResult{Seed: int64(i), Winner: i%2 + 1, Turns: n})
	}
	stats.Add(GameResult{Seed: 9, Turns: 100, Stalemate: true})

	assert.Equal(t, 5, stats.Games)
	assert.Equal(t, 40.0, stats.Mean())
	// sample variance of 10,20,30,40,100
	assert.InDelta(t, 1250.0, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(1250), stats.StdDev(), 1e-9)
	assert.InDelta(t, math.Sqrt(1250)/math.Sqrt(5), stats.StdError(), 1e-9)
	assert.Equal(t, 30.0, stats.Median())
	assert.Equal(t, 10.0, stats.Percentile(0))
	assert.Equal(t, 100.0, stats.Percentile(1))
	assert.Equal(t, 20.0, stats.Percentile(0.25))

	lo, hi := stats.ConfidenceInterval95()
	assert.Less(t, lo, stats.Mean())
	assert.Greater(t, hi, stats.Mean())

	assert.Equal(t, 2, stats.Wins[1])
	assert.Equal(t, 2, stats.Wins[2])
	assert.Equal(t, 0.4, stats.WinRate(1))
	assert.Equal(t, 0.2, stats.StalemateRate())
	assert.Zero(t, stats.WinRate(0))
	assert.Zero(t, stats.WinRate(4))
	require.NoError(t, stats.Validate())
}

func TestStatistics_ValidateCatchesMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Winner: 1, Turns: 5})
	stats.Wins[1]++
	assert.Error(t, stats.Validate())

	stats = &Statistics{}
	stats.Add(GameResult{Winner: 1, Turns: 5})
	stats.Values = nil
	assert.Error(t, stats.Validate())
}
