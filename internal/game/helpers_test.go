package game

import (
	"slices"
	"strings"
	"testing"

	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/randutil"
	"github.com/stretchr/testify/require"
)

// stackedGame deals hands[i] to seat i+1 (all hands the same size) and leaves
// rest in the deck in draw order
func stackedGame(t *testing.T, hands []string, rest string, tweak ...func(*Config)) *State {
	t.Helper()

	parsed := make([][]deck.Card, len(hands))
	for i, h := range hands {
		parsed[i] = deck.MustParseCards(h)
		require.Len(t, parsed[i], len(parsed[0]), "hand %d size", i+1)
	}

	var order []deck.Card
	for r := range parsed[0] {
		for i := range parsed {
			order = append(order, parsed[i][r])
		}
	}
	order = append(order, deck.MustParseCards(rest)...)
	slices.Reverse(order)

	cfg := NewConfig(len(hands))
	cfg.Rules.InitialHandSize = len(parsed[0])
	for _, fn := range tweak {
		fn(&cfg)
	}

	rng := randutil.New(1)
	s, err := NewWithDeck(cfg, deck.NewDeckFromCards(rng, order), rng)
	require.NoError(t, err)
	return s
}

func handString(s *State, id PlayerID) string {
	return deck.FormatCards(s.Player(id).Hand())
}

// recorder collects event types in order
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() string {
	names := make([]string, len(r.events))
	for i, e := range r.events {
		names[i] = e.EventType().String()
	}
	return strings.Join(names, " ")
}

func (r *recorder) reset() {
	r.events = nil
}
