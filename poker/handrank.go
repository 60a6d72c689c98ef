package poker

import (
	"fmt"

	"github.com/pkg/errors"
)

// HandCategory is the poker category of a five card hand, weakest first.
type HandCategory uint8

const (
	SingleCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var HandCategory_name = map[HandCategory]string{
	SingleCard:    "SINGLE_CARD",
	Pair:          "PAIR",
	TwoPair:       "TWO_PAIR",
	ThreeOfAKind:  "THREE_OF_A_KIND",
	Straight:      "STRAIGHT",
	Flush:         "FLUSH",
	FullHouse:     "FULL_HOUSE",
	FourOfAKind:   "FOUR_OF_A_KIND",
	StraightFlush: "STRAIGHT_FLUSH",
	RoyalFlush:    "ROYAL_FLUSH",
}

var HandCategory_value = map[string]HandCategory{}

var categoryToString = map[HandCategory]string{
	SingleCard:    "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func init() {
	for category, name := range HandCategory_name {
		HandCategory_value[name] = category
	}
}

func (h HandCategory) String() string {
	if s, ok := categoryToString[h]; ok {
		return s
	}
	return fmt.Sprintf("HandCategory(%d)", uint8(h))
}

// ParseHandCategory accepts the upper snake case names, e.g. TWO_PAIR.
func ParseHandCategory(name string) (HandCategory, error) {
	if category, ok := HandCategory_value[name]; ok {
		return category, nil
	}
	return 0, errors.Wrapf(ErrOutOfRange, "unknown hand category %q", name)
}
