package game

import (
	"testing"

	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDealsOpeningHands(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 3} {
		s, err := New(NewConfig(n), randutil.New(int64(n)))
		require.NoError(t, err)

		assert.Equal(t, n, s.NumPlayers())
		for _, p := range s.Players() {
			assert.Equal(t, 5, p.HandSize(), "player %d", p.ID)
		}
		assert.Equal(t, deck.FullDeckSize-5*n, s.DeckSize())
		assert.Equal(t, deck.FullDeckSize, s.CardCount())
		assert.Equal(t, AwaitingAction, s.Phase())
		assert.Equal(t, PlayerID(1), s.Current().ID)
		assert.Equal(t, 1, s.TurnNumber())
		assert.NoError(t, s.CheckConservation())

		_, over := s.Winner()
		assert.False(t, over)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 4} {
		_, err := New(NewConfig(n), randutil.New(1))
		assert.ErrorIs(t, err, ErrInvalidConfig, "players=%d", n)
	}

	cfg := NewConfig(2)
	cfg.Rules.MaxHandSize = 3
	_, err := New(cfg, randutil.New(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = NewConfig(2)
	cfg.Rules.MaxDrawPerTurn = 0
	_, err = New(cfg, randutil.New(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	rng := randutil.New(1)
	_, err = NewWithDeck(NewConfig(2), deck.NewDeckFromCards(rng, deck.MustParseCards("red_1 red_2")), rng)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDealIsRoundRobin(t *testing.T) {
	t.Parallel()
	s := stackedGame(t, []string{
		"red_0 red_1 red_2 red_3 red_4",
		"blue_0 blue_1 blue_2 blue_3 blue_4",
		"green_0 green_1 green_2 green_3 green_4",
	}, "yellow_9")

	assert.Equal(t, "red_0 red_1 red_2 red_3 red_4", handString(s, 1))
	assert.Equal(t, "blue_0 blue_1 blue_2 blue_3 blue_4", handString(s, 2))
	assert.Equal(t, "green_0 green_1 green_2 green_3 green_4", handString(s, 3))
	assert.Equal(t, 1, s.DeckSize())
}

func TestSeatControllers(t *testing.T) {
	t.Parallel()
	cfg := NewConfig(3)
	assert.Equal(t, Human, cfg.Players[0].Controller)
	assert.Equal(t, "You", cfg.Players[0].Name)
	assert.Equal(t, Computer, cfg.Players[1].Controller)
	assert.Equal(t, "Computer 2", cfg.Players[2].Name)

	for _, p := range NewComputerConfig(3).Players {
		assert.Equal(t, Computer, p.Controller)
	}
}

func TestGroupsAfterDeal(t *testing.T) {
	t.Parallel()
	s := stackedGame(t, []string{
		"red_5 blue_5 green_5 red_0 red_1",
		"yellow_1 yellow_3 blue_7 green_2 red_9",
	}, "yellow_9")

	g := s.Groups(1)
	require.NotNil(t, g.Valid)
	assert.Equal(t, "set[red_5 blue_5 green_5]", g.Valid.String())
	require.NotNil(t, g.Largest)
	assert.Equal(t, "set[red_5 blue_5 green_5]", g.Largest.String())

	none := s.Groups(2)
	assert.Nil(t, none.Valid)
	assert.Nil(t, none.Largest)

	assert.Equal(t, GroupView{}, s.Groups(9))

	// The copy is detached from the state
	g.Valid.Cards[0] = deck.NewCard(deck.Yellow, 0)
	assert.Equal(t, "set[red_5 blue_5 green_5]", s.Groups(1).Valid.String())
}

func TestView(t *testing.T) {
	t.Parallel()
	s := stackedGame(t, []string{
		"red_0 red_4 blue_2 green_7 yellow_9",
		"blue_0 blue_4 red_2 yellow_7 green_9",
		"green_0 green_4 yellow_2 red_7 blue_9",
	}, "red_8 red_6")

	require.NoError(t, s.Apply(Action{Kind: Draw}))

	v := s.View(1)
	assert.Equal(t, PlayerID(1), v.Self)
	assert.Equal(t, PlayerID(1), v.Current)
	assert.Len(t, v.Hand, 5)
	assert.Equal(t, "red_8", deck.FormatCards(v.Staged))
	assert.Equal(t, 1, v.DeckSize)
	assert.Len(t, v.Opponents, 2)
	assert.Equal(t, []ActionKind{Draw, CommitDraw, ReturnCard}, v.Legal)
	assert.True(t, v.CanAct(CommitDraw))
	assert.False(t, v.CanAct(Skip))
	assert.Equal(t, 14, v.FreeSpace())

	other := s.View(2)
	assert.Empty(t, other.Staged)
	assert.Empty(t, other.Legal)
	assert.Equal(t, View{}, s.View(7))
}
