package session

import (
	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/game"
)

// onEvent logs every game event and keeps the result counters
func (s *Session) onEvent(event game.Event) {
	switch e := event.(type) {
	case game.DealtEvent:
		s.logger.Debug("Hands dealt", "deck", e.DeckSize, "hands", e.HandSizes)
	case game.TurnStartedEvent:
		s.logger.Debug("Turn started", "turn", e.Turn, "player", e.Player)
	case game.CardDrawnEvent:
		s.result.Draws++
		s.logger.Debug("Card drawn", "player", e.Player, "card", e.Card, "staged", e.Staged)
	case game.CardReturnedEvent:
		s.logger.Debug("Card returned", "player", e.Player, "card", e.Card)
	case game.DrawCommittedEvent:
		s.logger.Info("Draw committed", "player", e.Player, "cards", deck.FormatCards(e.Cards), "hand", e.HandSize)
	case game.CardSnatchedEvent:
		s.result.Snatches++
		s.logger.Info("Card snatched", "player", e.Player, "from", e.From, "card", e.Card)
	case game.SkippedEvent:
		s.logger.Info("Skipped", "player", e.Player)
	case game.GroupFoundEvent:
		s.logger.Info("Group found", "player", e.Player, "group", e.Group)
	case game.LargerGroupEvent:
		s.logger.Debug("Larger group held", "player", e.Player, "valid", e.Valid, "largest", e.Largest)
	case game.GroupDiscardedEvent:
		s.result.Discards++
		s.logger.Info("Group discarded", "player", e.Player, "group", e.Group, "hand", e.HandSize)
	case game.DiscardDeclinedEvent:
		s.result.Declines++
		s.logger.Info("Discard declined", "player", e.Player, "group", e.Group)
	case game.GameOverEvent:
		s.logger.Info("Game over", "winner", e.Winner, "turns", e.Turns)
	}
}
