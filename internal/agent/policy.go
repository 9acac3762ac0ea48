// Package agent chooses moves for computer-controlled seats.
//
// A Policy only ever reads a game.View and its own random source, so two
// policies seeded alike make the same choices for the same positions.
package agent

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/notty/internal/game"
)

// DefaultAcceptProbability is how often a computer discards a found group
const DefaultAcceptProbability = 0.5

// Policy is a weighted random player
type Policy struct {
	weights Weights
	accept  float64
	rng     *rand.Rand
}

// New creates a policy. accept is the probability of taking a discard when
// one is offered and must be within [0, 1].
func New(weights Weights, accept float64, rng *rand.Rand) (*Policy, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if accept < 0 || accept > 1 {
		return nil, fmt.Errorf("%w: accept probability %g outside [0, 1]", ErrInvalidWeights, accept)
	}
	return &Policy{weights: weights, accept: accept, rng: rng}, nil
}

// Weights returns the policy's weight table
func (p *Policy) Weights() Weights {
	return p.weights
}

// PlanTurn returns the actions to apply, in order, to play v's turn. A draw
// plan is a batch of Draw actions followed by CommitDraw. When a discard is
// pending the plan is the single accept or decline decision. A View for a
// seat that cannot act yields no actions.
func (p *Policy) PlanTurn(v game.View) []game.Action {
	if len(v.Legal) == 0 {
		return nil
	}
	if v.Phase == game.AwaitingDiscardDecision {
		return []game.Action{p.DecideDiscard(v)}
	}
	if len(v.Staged) > 0 {
		return []game.Action{{Kind: game.CommitDraw}}
	}

	kind, ok := p.choose(v)
	if !ok {
		return nil
	}
	switch kind {
	case game.Draw:
		n := 1 + p.rng.IntN(drawCapacity(v))
		plan := make([]game.Action, 0, n+1)
		for range n {
			plan = append(plan, game.Action{Kind: game.Draw})
		}
		return append(plan, game.Action{Kind: game.CommitDraw})
	case game.Snatch:
		target := v.SnatchTargets[p.rng.IntN(len(v.SnatchTargets))]
		return []game.Action{game.SnatchFrom(target)}
	case game.Skip:
		return []game.Action{{Kind: game.Skip}}
	}
	return nil
}

// DecideDiscard accepts with the configured probability
func (p *Policy) DecideDiscard(v game.View) game.Action {
	if p.rng.Float64() < p.accept {
		return game.Action{Kind: game.AcceptDiscard}
	}
	return game.Action{Kind: game.DeclineDiscard}
}

// choose samples one of draw, snatch or skip among those legal in v. If every
// legal option carries zero weight it falls back to skip, then draw.
func (p *Policy) choose(v game.View) (game.ActionKind, bool) {
	type option struct {
		kind   game.ActionKind
		weight float64
	}

	var options []option
	var total float64
	for _, o := range []option{
		{game.Draw, p.weights.Draw},
		{game.Snatch, p.weights.Snatch},
		{game.Skip, p.weights.Skip},
	} {
		if !v.CanAct(o.kind) {
			continue
		}
		if o.kind == game.Draw && drawCapacity(v) == 0 {
			continue
		}
		if o.kind == game.Snatch && len(v.SnatchTargets) == 0 {
			continue
		}
		options = append(options, o)
		total += o.weight
	}

	if len(options) == 0 {
		return 0, false
	}
	if total == 0 {
		for _, kind := range []game.ActionKind{game.Skip, game.Draw} {
			for _, o := range options {
				if o.kind == kind {
					return kind, true
				}
			}
		}
		return options[0].kind, true
	}

	r := p.rng.Float64() * total
	for _, o := range options {
		if r < o.weight {
			return o.kind, true
		}
		r -= o.weight
	}
	return options[len(options)-1].kind, true
}

// drawCapacity is the most cards v's seat can still draw this turn
func drawCapacity(v game.View) int {
	return max(0, min(v.Rules.MaxDrawPerTurn-len(v.Staged), v.FreeSpace(), v.DeckSize))
}
