// Package game implements the Notty turn state machine.
//
// The main type is State, which owns the deck, every player's hand and the
// per-turn bookkeeping (whose turn it is, which cards are staged from the
// deck, and whether a discard decision is pending). State performs no I/O
// and never blocks: a host asks LegalActions what the current player may do,
// obtains an Action from a human or an agent, and hands it to Apply.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	s, err := game.New(game.NewConfig(3), rng)
//	// ...
//	err = s.Apply(game.Action{Kind: game.Draw})
//	err = s.Apply(game.Action{Kind: game.CommitDraw})
//	if s.Phase() == game.AwaitingDiscardDecision {
//	    err = s.Apply(game.Action{Kind: game.AcceptDiscard})
//	}
//	if id, ok := s.Winner(); ok {
//	    // game over
//	}
//
// # Turn Flow
//
// In AwaitingAction the current player may Draw up to three cards into
// staging (ReturnCard puts the latest one back), then CommitDraw them into
// the hand; or Snatch a random card from an opponent; or Skip. Whenever the
// acting player's hand then contains a valid group the state moves to
// AwaitingDiscardDecision and the player must AcceptDiscard or
// DeclineDiscard. Every other outcome completes the turn and play passes to
// the next player in seat order.
//
// # Errors
//
// Apply is all-or-nothing. A rejected action returns one of the sentinel
// errors (ErrIllegalAction, ErrEmptyDeck, ErrHandFull, ErrNoCardsToSnatch,
// ErrCardNotInHand, ErrGameOver) and leaves the state untouched.
package game
