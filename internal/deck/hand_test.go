package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandAddRemove(t *testing.T) {
	t.Parallel()
	h := NewHand(MustParseCards("red_1 blue_2 red_1")...)
	require.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Count(NewCard(Red, 1)))

	require.NoError(t, h.Remove(NewCard(Red, 1)))
	assert.Equal(t, "blue_2 red_1", h.String(), "earliest duplicate is removed first")

	err := h.Remove(NewCard(Green, 5))
	assert.ErrorIs(t, err, ErrCardNotInHand)
	assert.Equal(t, 2, h.Len())

	h.Add(NewCard(Yellow, 0))
	assert.Equal(t, "blue_2 red_1 yellow_0", h.String())
}

func TestHandRemoveAllIsAllOrNothing(t *testing.T) {
	t.Parallel()
	h := NewHand(MustParseCards("red_1 red_2 red_3 blue_9")...)

	err := h.RemoveAll(MustParseCards("red_1 red_2 red_4"))
	require.ErrorIs(t, err, ErrCardNotInHand)
	assert.Equal(t, 4, h.Len())

	// Asking for two copies when only one is held also fails.
	err = h.RemoveAll(MustParseCards("red_1 red_1"))
	require.ErrorIs(t, err, ErrCardNotInHand)
	assert.Equal(t, 4, h.Len())

	require.NoError(t, h.RemoveAll(MustParseCards("red_3 red_1 red_2")))
	assert.Equal(t, "blue_9", h.String())
}

func TestHandRemoveAllKeepsOneDuplicate(t *testing.T) {
	t.Parallel()
	h := NewHand(MustParseCards("red_1 red_1 red_2 red_3")...)
	require.NoError(t, h.RemoveAll(MustParseCards("red_1 red_2 red_3")))
	assert.Equal(t, "red_1", h.String())
}

func TestHandIsFull(t *testing.T) {
	t.Parallel()
	h := NewHand()
	assert.True(t, h.IsEmpty())
	for i := range 20 {
		assert.False(t, h.IsFull(20), "card %d", i)
		h.Add(NewCard(Red, Rank(i%10)))
	}
	assert.True(t, h.IsFull(20))
}

func TestHandCardsIsCopy(t *testing.T) {
	t.Parallel()
	h := NewHand(MustParseCards("red_1 red_2")...)
	cards := h.Cards()
	cards[0] = NewCard(Blue, 9)
	assert.Equal(t, NewCard(Red, 1), h.At(0))
}

func TestHandTakeAt(t *testing.T) {
	t.Parallel()
	h := NewHand(MustParseCards("red_1 red_2 red_3")...)
	assert.Equal(t, NewCard(Red, 2), h.TakeAt(1))
	assert.Equal(t, "red_1 red_3", h.String())
}
