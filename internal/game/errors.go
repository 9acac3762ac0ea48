package game

import (
	"errors"
	"fmt"

	"github.com/lox/notty/internal/deck"
)

var (
	// ErrEmptyDeck is returned by Draw when the deck has no cards. The state
	// is unchanged and the caller may try again later.
	ErrEmptyDeck = deck.ErrEmptyDeck

	// ErrCardNotInHand is returned when a card to remove is not held
	ErrCardNotInHand = deck.ErrCardNotInHand

	// ErrHandFull is returned when a draw or snatch would exceed the maximum
	// hand size
	ErrHandFull = errors.New("game: hand full")

	// ErrNoCardsToSnatch is returned when the snatch target holds no cards
	ErrNoCardsToSnatch = errors.New("game: no cards to snatch")

	// ErrIllegalAction is returned for an action the current phase or turn
	// does not allow. Hosts honouring LegalActions never see it.
	ErrIllegalAction = errors.New("game: illegal action")

	// ErrGameOver is returned for any action once a winner exists
	ErrGameOver = fmt.Errorf("%w: game over", ErrIllegalAction)

	// ErrInvalidConfig is returned by New for unusable player or rule settings
	ErrInvalidConfig = errors.New("game: invalid config")
)

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalAction, fmt.Sprintf(format, args...))
}
