package poker

import "github.com/pkg/errors"

var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidArity  = errors.New("a poker hand requires exactly 5 cards")
	ErrDeckExhausted = errors.New("no cards left to draw")
	ErrCardNotInDeck = errors.New("card is not available in the deck")
)
