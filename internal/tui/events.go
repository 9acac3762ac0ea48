package tui

import (
	"fmt"

	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/game"
)

// OnEvent writes a line to the game log for each event
func (m *Model) OnEvent(event game.Event) {
	if line := m.describe(event); line != "" {
		m.AddLogEntry(line)
	}
}

func (m *Model) describe(event game.Event) string {
	switch e := event.(type) {
	case game.DealtEvent:
		return fmt.Sprintf("Dealt %d cards each, %d left in the deck", e.HandSizes[game.PlayerID(1)], e.DeckSize)
	case game.TurnStartedEvent:
		return InfoStyle.Render(fmt.Sprintf("--- Turn %d: %s ---", e.Turn, m.name(e.Player)))
	case game.CardDrawnEvent:
		if e.Player == m.human {
			return fmt.Sprintf("You draw %s", formatCards([]deck.Card{e.Card}))
		}
		return m.act(e.Player, "draws", "draw") + " a card"
	case game.CardReturnedEvent:
		return m.act(e.Player, "returns", "return") + " a card to the deck"
	case game.DrawCommittedEvent:
		return fmt.Sprintf("%s %d card(s), now holding %d", m.act(e.Player, "takes", "take"), len(e.Cards), e.HandSize)
	case game.CardSnatchedEvent:
		if e.Player == m.human || e.From == m.human {
			return fmt.Sprintf("%s %s from %s", m.act(e.Player, "snatches", "snatch"), formatCards([]deck.Card{e.Card}), m.name(e.From))
		}
		return fmt.Sprintf("%s a card from %s", m.act(e.Player, "snatches", "snatch"), m.name(e.From))
	case game.SkippedEvent:
		return m.act(e.Player, "skips", "skip")
	case game.GroupFoundEvent:
		if e.Player == m.human {
			return SuccessStyle.Render(fmt.Sprintf("Valid group found: %s %s - accept or decline?", e.Group.Kind, formatCards(e.Group.Cards)))
		}
		return fmt.Sprintf("%s has a %s", m.name(e.Player), e.Group.Kind)
	case game.LargerGroupEvent:
		if e.Player == m.human {
			return InfoStyle.Render(fmt.Sprintf("Larger group in hand: %s", formatCards(e.Largest.Cards)))
		}
	case game.GroupDiscardedEvent:
		return fmt.Sprintf("%s %s, %d cards left", m.act(e.Player, "discards", "discard"), formatCards(e.Group.Cards), e.HandSize)
	case game.DiscardDeclinedEvent:
		return fmt.Sprintf("%s the %s", m.act(e.Player, "keeps", "keep"), e.Group.Kind)
	case game.GameOverEvent:
		if e.Winner == m.human {
			return WarningStyle.Render(fmt.Sprintf("You emptied your hand in %d turns - you win!", e.Turns))
		}
		return WarningStyle.Render(fmt.Sprintf("%s emptied their hand in %d turns", m.name(e.Winner), e.Turns))
	}
	return ""
}

// act is "<name> <verb>", using the plain verb for the human seat
func (m *Model) act(id game.PlayerID, verb, plain string) string {
	if id == m.human {
		return "You " + plain
	}
	return m.name(id) + " " + verb
}
