package group

import (
	"slices"

	"github.com/lox/notty/internal/deck"
)

// index buckets a hand by rank and by colour, remembering the order in which
// each rank and colour first appears
type index struct {
	byRank      map[deck.Rank][]deck.Card
	rankOrder   []deck.Rank
	byColour    map[deck.Colour][]deck.Card
	colourOrder []deck.Colour
}

func newIndex(cards []deck.Card) index {
	ix := index{
		byRank:   make(map[deck.Rank][]deck.Card),
		byColour: make(map[deck.Colour][]deck.Card),
	}
	for _, c := range cards {
		if _, ok := ix.byRank[c.Rank]; !ok {
			ix.rankOrder = append(ix.rankOrder, c.Rank)
		}
		ix.byRank[c.Rank] = append(ix.byRank[c.Rank], c)

		if _, ok := ix.byColour[c.Colour]; !ok {
			ix.colourOrder = append(ix.colourOrder, c.Colour)
		}
		ix.byColour[c.Colour] = append(ix.byColour[c.Colour], c)
	}
	return ix
}

// distinctColours returns the first card of each colour holding rank, in
// hand order
func (ix index) distinctColours(rank deck.Rank) []deck.Card {
	var seen [deck.NumColours]bool
	var out []deck.Card
	for _, c := range ix.byRank[rank] {
		if int(c.Colour) < len(seen) && !seen[c.Colour] {
			seen[c.Colour] = true
			out = append(out, c)
		}
	}
	return out
}

// runs sorts the cards of colour by rank and cuts them into maximal runs. A
// new run starts whenever the next rank is not exactly one more than the
// previous, so a repeated rank also breaks a run.
func (ix index) runs(colour deck.Colour) [][]deck.Card {
	sorted := slices.Clone(ix.byColour[colour])
	if len(sorted) == 0 {
		return nil
	}
	slices.SortStableFunc(sorted, func(a, b deck.Card) int {
		return int(a.Rank) - int(b.Rank)
	})

	var out [][]deck.Card
	current := []deck.Card{sorted[0]}
	for _, c := range sorted[1:] {
		if c.Rank == current[len(current)-1].Rank+1 {
			current = append(current, c)
			continue
		}
		out = append(out, current)
		current = []deck.Card{c}
	}
	return append(out, current)
}
