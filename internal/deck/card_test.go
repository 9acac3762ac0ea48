package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "red zero", input: "red_0", want: NewCard(Red, 0)},
		{name: "yellow nine", input: "yellow_9", want: NewCard(Yellow, 9)},
		{name: "upper case colour", input: "BLUE_4", want: NewCard(Blue, 4)},
		{name: "short colour", input: "g_3", want: NewCard(Green, 3)},
		{name: "rank out of range", input: "red_10", wantErr: true},
		{name: "negative rank", input: "red_-1", wantErr: true},
		{name: "unknown colour", input: "purple_1", wantErr: true},
		{name: "missing separator", input: "red5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, card)
		})
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, colour := range Colours {
		for rank := MinRank; rank <= MaxRank; rank++ {
			c := NewCard(colour, rank)
			parsed, err := ParseCard(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("red_0 red_1,\tblue_7")
	require.NoError(t, err)
	assert.Equal(t, []Card{{Red, 0}, {Red, 1}, {Blue, 7}}, cards)

	empty, err := ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseCards("red_0 nope")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardEquality(t *testing.T) {
	t.Parallel()
	assert.Equal(t, NewCard(Green, 3), NewCard(Green, 3))
	assert.NotEqual(t, NewCard(Green, 3), NewCard(Red, 3))
	assert.NotEqual(t, NewCard(Green, 3), NewCard(Green, 4))
	assert.True(t, NewCard(Yellow, 9).Valid())
	assert.False(t, Card{Colour: 7, Rank: 1}.Valid())
}
