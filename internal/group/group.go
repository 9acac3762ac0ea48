// Package group detects sets and runs in a hand of cards.
//
// A valid group holds three or more cards and is either a Set (one rank,
// pairwise distinct colours, so at most four cards) or a Run (one colour,
// ranks contiguous and ascending, so at most ten cards).
//
// Two searches are offered. FindValid reproduces a fixed search order so that
// the group offered for discard is deterministic for a given hand order.
// FindLargest scans every candidate and returns the biggest one; it is used
// for display and agent weighting only.
package group

import (
	"slices"

	"github.com/lox/notty/internal/deck"
)

// MinSize is the smallest number of cards forming a valid group
const MinSize = 3

// Kind classifies a group of cards
type Kind int

const (
	None Kind = iota
	Set
	Run
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Set:
		return "set"
	case Run:
		return "run"
	default:
		return "none"
	}
}

// Group is an ordered read-only view of cards that form a set or a run. It
// does not own its cards: removing a group from a hand removes one instance
// of each listed card.
type Group struct {
	Kind  Kind
	Cards []deck.Card
}

// Len returns the number of cards in the group
func (g Group) Len() int {
	return len(g.Cards)
}

// String returns the kind followed by the cards, e.g. "run[red_0 red_1 red_2]"
func (g Group) String() string {
	return g.Kind.String() + "[" + deck.FormatCards(g.Cards) + "]"
}

// Equal compares two groups by value: same kind and the same cards in the
// same order
func (g Group) Equal(other Group) bool {
	return g.Kind == other.Kind && slices.Equal(g.Cards, other.Cards)
}

// Clone returns a group with its own copy of the card slice
func (g Group) Clone() Group {
	return Group{Kind: g.Kind, Cards: slices.Clone(g.Cards)}
}

// IsValid reports whether cards form a valid group
func IsValid(cards []deck.Card) bool {
	return Classify(cards) != None
}

// Classify returns Set or Run when cards form a valid group and None
// otherwise. Fewer than MinSize cards is never valid.
func Classify(cards []deck.Card) Kind {
	if len(cards) < MinSize {
		return None
	}
	if isRun(cards) {
		return Run
	}
	if isSet(cards) {
		return Set
	}
	return None
}

func isRun(cards []deck.Card) bool {
	colour := cards[0].Colour
	ranks := make([]deck.Rank, len(cards))
	for i, c := range cards {
		if c.Colour != colour {
			return false
		}
		ranks[i] = c.Rank
	}
	slices.Sort(ranks)
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

func isSet(cards []deck.Card) bool {
	rank := cards[0].Rank
	var seen [deck.NumColours]bool
	for _, c := range cards {
		if c.Rank != rank || !c.Valid() || seen[c.Colour] {
			return false
		}
		seen[c.Colour] = true
	}
	return true
}

// FindValid returns the canonical valid group in cards.
//
// Ranks are scanned first, in order of first appearance: the first rank with
// at least three distinct colours yields a Set of its first three
// distinct-colour cards. Failing that, colours are scanned in order of first
// appearance; each colour's cards are sorted by rank and cut into maximal
// runs, and the first run of at least three cards is returned.
func FindValid(cards []deck.Card) (Group, bool) {
	ix := newIndex(cards)

	for _, rank := range ix.rankOrder {
		distinct := ix.distinctColours(rank)
		if len(distinct) >= MinSize {
			return Group{Kind: Set, Cards: distinct[:MinSize]}, true
		}
	}

	for _, colour := range ix.colourOrder {
		for _, run := range ix.runs(colour) {
			if len(run) >= MinSize {
				return Group{Kind: Run, Cards: run}, true
			}
		}
	}

	return Group{}, false
}

// FindLargest returns the largest valid group in cards. Every maximal run of
// every colour is considered first, then every rank with three or more
// distinct colours (using all of them). Only a strictly larger candidate
// replaces the current best, so ties keep the first one found.
func FindLargest(cards []deck.Card) (Group, bool) {
	ix := newIndex(cards)

	var best Group
	consider := func(kind Kind, candidate []deck.Card) {
		if len(candidate) >= MinSize && len(candidate) > len(best.Cards) {
			best = Group{Kind: kind, Cards: candidate}
		}
	}

	for _, colour := range ix.colourOrder {
		for _, run := range ix.runs(colour) {
			consider(Run, run)
		}
	}
	for _, rank := range ix.rankOrder {
		consider(Set, ix.distinctColours(rank))
	}

	if best.Kind == None {
		return Group{}, false
	}
	return best, true
}
