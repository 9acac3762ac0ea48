package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is one of the four card colours
type Colour uint8

const (
	Red Colour = iota
	Blue
	Green
	Yellow
)

// NumColours is the number of distinct colours in the deck
const NumColours = 4

// Colours lists every colour in canonical order
var Colours = [NumColours]Colour{Red, Blue, Green, Yellow}

// String returns the lower-case colour name
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "?"
	}
}

// ParseColour parses a colour name such as "red" (case insensitive)
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(s) {
	case "red", "r":
		return Red, nil
	case "blue", "b":
		return Blue, nil
	case "green", "g":
		return Green, nil
	case "yellow", "y":
		return Yellow, nil
	default:
		return 0, fmt.Errorf("invalid colour: %q", s)
	}
}

// Rank is a card number from 0 to 9
type Rank uint8

// Rank bounds
const (
	MinRank  Rank = 0
	MaxRank  Rank = 9
	NumRanks      = int(MaxRank) + 1
)

// Copies is how many cards of each (colour, rank) face the deck holds
const Copies = 2

// FullDeckSize is the total number of cards in play
const FullDeckSize = NumColours * NumRanks * Copies

// Card is an immutable colour and rank pair. Two cards with the same colour
// and rank are interchangeable.
type Card struct {
	Colour Colour
	Rank   Rank
}

// NewCard creates a new card
func NewCard(colour Colour, rank Rank) Card {
	return Card{Colour: colour, Rank: rank}
}

// String returns the card in colour_rank form, e.g. "red_5"
func (c Card) String() string {
	return c.Colour.String() + "_" + strconv.Itoa(int(c.Rank))
}

// Valid reports whether the card has a known colour and an in-range rank
func (c Card) Valid() bool {
	return c.Colour <= Yellow && c.Rank <= MaxRank
}

// ParseCard parses a string like "red_5" into a Card
func ParseCard(s string) (Card, error) {
	colourStr, rankStr, ok := strings.Cut(strings.TrimSpace(s), "_")
	if !ok {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	colour, err := ParseColour(colourStr)
	if err != nil {
		return Card{}, err
	}

	n, err := strconv.Atoi(rankStr)
	if err != nil || n < int(MinRank) || n > int(MaxRank) {
		return Card{}, fmt.Errorf("invalid rank: %q", rankStr)
	}

	return NewCard(colour, Rank(n)), nil
}

// ParseCards parses a whitespace or comma separated list of cards,
// e.g. "red_0 red_1, blue_7"
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests
// and fixed fixtures only.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with a space
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
