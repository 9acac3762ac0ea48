package game

import (
	"fmt"
)

// Apply performs a for the current player. On error the state is unchanged.
func (s *State) Apply(a Action) error {
	if err := s.validate(a); err != nil {
		return err
	}

	switch a.Kind {
	case Draw:
		return s.draw()
	case ReturnCard:
		s.returnCard()
	case CommitDraw:
		s.commitDraw()
	case Snatch:
		s.snatch(a.Target)
	case Skip:
		s.events.Publish(SkippedEvent{Player: s.turn.Current})
		s.completeTurn()
	case AcceptDiscard:
		return s.acceptDiscard()
	case DeclineDiscard:
		s.declineDiscard()
	}
	return nil
}

// LegalActions returns every action kind the current player could apply
// successfully right now, in ActionKind order. Snatch is included when at
// least one target is valid; see SnatchTargets.
func (s *State) LegalActions() []ActionKind {
	var legal []ActionKind
	for _, kind := range []ActionKind{Draw, CommitDraw, ReturnCard, Snatch, Skip, AcceptDiscard, DeclineDiscard} {
		if kind == Snatch {
			if len(s.SnatchTargets()) > 0 {
				legal = append(legal, kind)
			}
			continue
		}
		if s.validate(Action{Kind: kind}) == nil {
			legal = append(legal, kind)
		}
	}
	return legal
}

// IsLegal reports whether a would be accepted by Apply
func (s *State) IsLegal(a Action) bool {
	return s.validate(a) == nil
}

// SnatchTargets returns the opponents the current player may snatch from
func (s *State) SnatchTargets() []PlayerID {
	var targets []PlayerID
	for _, p := range s.players {
		if s.validate(SnatchFrom(p.ID)) == nil {
			targets = append(targets, p.ID)
		}
	}
	return targets
}

func (s *State) validate(a Action) error {
	if s.phase == GameOver {
		return ErrGameOver
	}

	p := s.Current()
	staged := len(s.turn.Drawn)

	switch a.Kind {
	case Draw, CommitDraw, ReturnCard, Snatch, Skip:
		if s.phase != AwaitingAction {
			return illegal("%s while %s", a.Kind, s.phase)
		}
	case AcceptDiscard, DeclineDiscard:
		if s.phase != AwaitingDiscardDecision {
			return illegal("%s while %s", a.Kind, s.phase)
		}
		return nil
	default:
		return illegal("unknown action %d", int(a.Kind))
	}

	switch a.Kind {
	case Draw:
		if staged >= s.rules.MaxDrawPerTurn {
			return illegal("already drew %d cards this turn", staged)
		}
		if p.hand.Len()+staged >= s.rules.MaxHandSize {
			return fmt.Errorf("%w: player %d holds %d cards with %d staged", ErrHandFull, p.ID, p.hand.Len(), staged)
		}
		if s.deck.IsEmpty() {
			return ErrEmptyDeck
		}
	case CommitDraw, ReturnCard:
		if staged == 0 {
			return illegal("%s with nothing drawn", a.Kind)
		}
	case Snatch:
		if staged > 0 {
			return illegal("snatch after drawing")
		}
		target := s.player(a.Target)
		if target == nil || target.ID == p.ID {
			return illegal("invalid snatch target %d", a.Target)
		}
		if p.hand.IsFull(s.rules.MaxHandSize) {
			return fmt.Errorf("%w: player %d holds %d cards", ErrHandFull, p.ID, p.hand.Len())
		}
		if target.hand.IsEmpty() {
			return fmt.Errorf("%w: player %d has an empty hand", ErrNoCardsToSnatch, target.ID)
		}
	case Skip:
		if staged > 0 {
			return illegal("skip after drawing")
		}
	}
	return nil
}

func (s *State) draw() error {
	card, err := s.deck.Draw()
	if err != nil {
		return err
	}
	s.turn.Drawn = append(s.turn.Drawn, card)
	s.events.Publish(CardDrawnEvent{Player: s.turn.Current, Card: card, Staged: len(s.turn.Drawn)})
	return nil
}

func (s *State) returnCard() {
	last := len(s.turn.Drawn) - 1
	card := s.turn.Drawn[last]
	s.turn.Drawn = s.turn.Drawn[:last]
	s.deck.ReturnAndShuffle(card)
	s.events.Publish(CardReturnedEvent{Player: s.turn.Current, Card: card})
}

func (s *State) commitDraw() {
	p := s.Current()
	cards := s.turn.Drawn
	s.turn.Drawn = nil
	p.hand.AddAll(cards)
	s.events.Publish(DrawCommittedEvent{Player: p.ID, Cards: cards, HandSize: p.hand.Len()})
	s.settle(p)
}

func (s *State) snatch(targetID PlayerID) {
	p := s.Current()
	target := s.player(targetID)

	card := target.hand.TakeAt(s.rng.IntN(target.hand.Len()))
	p.hand.Add(card)
	s.events.Publish(CardSnatchedEvent{Player: p.ID, From: target.ID, Card: card})

	target.refreshGroups()
	s.settle(p)
}

func (s *State) acceptDiscard() error {
	p := s.Current()
	pending := *s.turn.Pending
	if err := p.hand.RemoveAll(pending.Cards); err != nil {
		return fmt.Errorf("discard %s: %w", pending, err)
	}
	s.deck.ReturnAndShuffle(pending.Cards...)
	s.turn.Pending = nil
	p.refreshGroups()
	s.events.Publish(GroupDiscardedEvent{Player: p.ID, Group: pending, HandSize: p.hand.Len()})

	if s.checkWinner() {
		return nil
	}
	s.completeTurn()
	return nil
}

func (s *State) declineDiscard() {
	pending := *s.turn.Pending
	s.turn.Pending = nil
	s.events.Publish(DiscardDeclinedEvent{Player: s.turn.Current, Group: pending})
	s.completeTurn()
}

// settle runs after p's hand grew: detect groups, then either offer the
// discard or finish the turn
func (s *State) settle(p *Player) {
	p.refreshGroups()
	if s.checkWinner() {
		return
	}

	if p.valid == nil {
		s.completeTurn()
		return
	}

	pending := p.valid.Clone()
	s.turn.Pending = &pending
	s.phase = AwaitingDiscardDecision
	s.events.Publish(GroupFoundEvent{Player: p.ID, Group: pending})
	if p.largest != nil && p.largest.Len() > pending.Len() {
		s.events.Publish(LargerGroupEvent{Player: p.ID, Valid: pending, Largest: p.largest.Clone()})
	}
}

// checkWinner ends the game when any hand is empty. Seats are checked in id
// order so the lowest id wins if two hands were ever empty at once.
func (s *State) checkWinner() bool {
	for _, p := range s.players {
		if p.hand.IsEmpty() {
			s.winner = p.ID
			s.phase = GameOver
			s.turn.Pending = nil
			s.events.Publish(GameOverEvent{Winner: p.ID, Turns: s.turns})
			return true
		}
	}
	return false
}

func (s *State) completeTurn() {
	s.turn = TurnState{Current: s.next(s.turn.Current)}
	s.phase = AwaitingAction
	s.turns++
	s.events.Publish(TurnStartedEvent{Player: s.turn.Current, Turn: s.turns})
}
