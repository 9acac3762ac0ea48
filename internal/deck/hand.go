package deck

import "errors"

// ErrCardNotInHand is returned when removing a card the hand does not hold
var ErrCardNotInHand = errors.New("deck: card not in hand")

// Hand is an insertion-ordered multiset of cards owned by one player
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards in order
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, len(cards))}
	h.cards = append(h.cards, cards...)
	return h
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsEmpty reports whether the hand holds no cards
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// IsFull reports whether the hand has reached max cards
func (h *Hand) IsFull(max int) bool {
	return len(h.cards) >= max
}

// Cards returns a copy of the cards in insertion order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// At returns the card at position i
func (h *Hand) At(i int) Card {
	return h.cards[i]
}

// Add appends a card to the hand
func (h *Hand) Add(card Card) {
	h.cards = append(h.cards, card)
}

// AddAll appends cards to the hand in order
func (h *Hand) AddAll(cards []Card) {
	h.cards = append(h.cards, cards...)
}

// Contains reports whether at least one card equal to card is held
func (h *Hand) Contains(card Card) bool {
	return h.indexOf(card) >= 0
}

// Count returns how many cards equal to card are held
func (h *Hand) Count(card Card) int {
	n := 0
	for _, c := range h.cards {
		if c == card {
			n++
		}
	}
	return n
}

// Remove removes one card equal to card. When duplicates are held the
// earliest inserted copy goes.
func (h *Hand) Remove(card Card) error {
	i := h.indexOf(card)
	if i < 0 {
		return ErrCardNotInHand
	}
	h.TakeAt(i)
	return nil
}

// RemoveAll removes one instance per listed card. Either every card is
// removed or, if any is missing, the hand is left untouched.
func (h *Hand) RemoveAll(cards []Card) error {
	need := make(map[Card]int, len(cards))
	for _, c := range cards {
		need[c]++
	}
	for c, n := range need {
		if h.Count(c) < n {
			return ErrCardNotInHand
		}
	}

	kept := make([]Card, 0, len(h.cards))
	for _, c := range h.cards {
		if need[c] > 0 {
			need[c]--
			continue
		}
		kept = append(kept, c)
	}
	h.cards = kept
	return nil
}

// TakeAt removes and returns the card at position i
func (h *Hand) TakeAt(i int) Card {
	card := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return card
}

// String returns the cards in colour_rank form separated by spaces
func (h *Hand) String() string {
	return FormatCards(h.cards)
}

func (h *Hand) indexOf(card Card) int {
	for i, c := range h.cards {
		if c == card {
			return i
		}
	}
	return -1
}
