package agent

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWeights is returned for weight tables no policy can sample from
var ErrInvalidWeights = errors.New("agent: invalid weights")

// Weights is the relative likelihood of each turn-opening action. Options
// that are illegal in the current position are dropped before sampling, so
// the weights only need to make sense relative to each other.
type Weights struct {
	Draw   float64
	Snatch float64
	Skip   float64
}

// Uniform picks draw, snatch and skip with equal probability
func Uniform() Weights {
	return Weights{Draw: 1, Snatch: 1, Skip: 1}
}

// Snatcher snatches 70% of the time when an opponent holds cards and draws
// otherwise. It never skips voluntarily.
func Snatcher() Weights {
	return Weights{Draw: 0.3, Snatch: 0.7}
}

// Strategies lists the named presets accepted by ParseStrategy
var Strategies = []string{"uniform", "snatcher"}

// ParseStrategy returns the preset with the given name
func ParseStrategy(name string) (Weights, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform", "random":
		return Uniform(), nil
	case "snatcher", "strategic":
		return Snatcher(), nil
	}
	return Weights{}, fmt.Errorf("%w: unknown strategy %q (want one of %s)", ErrInvalidWeights, name, strings.Join(Strategies, ", "))
}

// Validate rejects negative weights and tables that are all zero
func (w Weights) Validate() error {
	if w.Draw < 0 || w.Snatch < 0 || w.Skip < 0 {
		return fmt.Errorf("%w: negative weight in %s", ErrInvalidWeights, w)
	}
	if w.Draw+w.Snatch+w.Skip == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}
	return nil
}

func (w Weights) String() string {
	return fmt.Sprintf("draw=%g snatch=%g skip=%g", w.Draw, w.Snatch, w.Skip)
}
