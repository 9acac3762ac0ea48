package game

import (
	"slices"

	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/group"
)

// OpponentView is what one seat can see of another
type OpponentView struct {
	ID       PlayerID
	Name     string
	HandSize int
}

// View is a read-only snapshot of the game from one seat. Agents decide from
// a View so they cannot touch the state.
type View struct {
	Self      PlayerID
	Current   PlayerID
	Phase     Phase
	Hand      []deck.Card
	Staged    []deck.Card // cards this seat has staged; empty unless it is their turn
	DeckSize  int
	Opponents []OpponentView
	Rules     Rules
	Groups    GroupView

	// The fields below are only filled when Self is the current player
	Legal         []ActionKind
	SnatchTargets []PlayerID
	Pending       *group.Group
}

// View returns a snapshot of the game as seen by seat id
func (s *State) View(id PlayerID) View {
	p := s.player(id)
	if p == nil {
		return View{}
	}

	v := View{
		Self:     id,
		Current:  s.turn.Current,
		Phase:    s.phase,
		Hand:     p.Hand(),
		DeckSize: s.deck.Len(),
		Rules:    s.rules,
		Groups:   s.Groups(id),
	}
	for _, o := range s.players {
		if o.ID != id {
			v.Opponents = append(v.Opponents, OpponentView{ID: o.ID, Name: o.Name, HandSize: o.HandSize()})
		}
	}

	if id == s.turn.Current && s.phase != GameOver {
		v.Staged = slices.Clone(s.turn.Drawn)
		v.Legal = s.LegalActions()
		v.SnatchTargets = s.SnatchTargets()
		if s.turn.Pending != nil {
			g := s.turn.Pending.Clone()
			v.Pending = &g
		}
	}
	return v
}

// CanAct reports whether kind is in v.Legal
func (v View) CanAct(kind ActionKind) bool {
	return slices.Contains(v.Legal, kind)
}

// FreeSpace returns how many more cards this seat could stage and commit
func (v View) FreeSpace() int {
	return max(0, v.Rules.MaxHandSize-len(v.Hand)-len(v.Staged))
}
