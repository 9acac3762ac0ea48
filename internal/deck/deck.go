package deck

import (
	"errors"
	"math/rand/v2"
)

// ErrEmptyDeck is returned by Draw when no cards are left
var ErrEmptyDeck = errors.New("deck: empty deck")

// Deck is a last-in-first-out stack of cards. Cards leave through Draw and
// come back through ReturnAndShuffle; no card is created after NewDeck.
type Deck struct {
	cards []Card // top of the stack is the last element
	rng   *rand.Rand
}

// NewDeck creates the full 80-card deck (two copies of every colour and
// rank) and shuffles it with rng
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, FullDeckSize),
		rng:   rng,
	}

	for range Copies {
		for _, colour := range Colours {
			for rank := MinRank; rank <= MaxRank; rank++ {
				d.cards = append(d.cards, NewCard(colour, rank))
			}
		}
	}

	d.Shuffle()
	return d
}

// NewDeckFromCards creates a deck holding exactly cards, unshuffled. The
// last card is the top of the stack.
func NewDeckFromCards(rng *rand.Rand, cards []Card) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards), max(len(cards), FullDeckSize)),
		rng:   rng,
	}
	copy(d.cards, cards)
	return d
}

// Shuffle applies a uniform random permutation using Fisher-Yates
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw pops the top card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Peek returns the top card without removing it
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// ReturnAndShuffle appends cards to the deck and reshuffles the whole stack
func (d *Deck) ReturnAndShuffle(cards ...Card) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the deck from bottom to top
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
