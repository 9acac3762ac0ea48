package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MaxSeats is the largest table tracked per seat
const MaxSeats = 3

// GameResult is the outcome of one simulated game
type GameResult struct {
	Seed      int64 // RNG seed for this game (for replay)
	Winner    int   // winning seat 1-3, 0 after a stalemate
	Turns     int
	Stalemate bool
	Draws     int
	Snatches  int
	Discards  int
}

// Statistics aggregates simulated games
type Statistics struct {
	Games     int
	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Values    []float64 // Turns per game, for median/percentile calculation

	Stalemates int
	Wins       [MaxSeats + 1]int // Index 0 unused, 1-3 for seats

	Draws    int
	Snatches int
	Discards int
}

// Add incorporates a new game result
func (s *Statistics) Add(result GameResult) {
	turns := float64(result.Turns)
	s.Games++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Values = append(s.Values, turns)

	if result.Stalemate {
		s.Stalemates++
	} else if result.Winner >= 1 && result.Winner <= MaxSeats {
		s.Wins[result.Winner]++
	}

	s.Draws += result.Draws
	s.Snatches += result.Snatches
	s.Discards += result.Discards
}

// Mean returns the mean number of turns per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of game length
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of game length
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median game length
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the game length at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of all games won by seat (1-3)
func (s *Statistics) WinRate(seat int) float64 {
	if seat < 1 || seat > MaxSeats || s.Games == 0 {
		return 0
	}
	return float64(s.Wins[seat]) / float64(s.Games)
}

// StalemateRate returns the share of games that hit the turn limit
func (s *Statistics) StalemateRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Stalemates) / float64(s.Games)
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	decided := s.Stalemates
	for seat := 1; seat <= MaxSeats; seat++ {
		decided += s.Wins[seat]
	}
	if decided != s.Games {
		return fmt.Errorf("wins plus stalemates (%d) does not match games count (%d)", decided, s.Games)
	}

	return nil
}
