package poker

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Rank is the face value of a card. Aces are always high.
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Ranks lists every rank from lowest to highest.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankToString = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if s, ok := rankToString[r]; ok {
		return s
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Suit uses one bit per suit, the same layout as the card byte format.
type Suit uint8

const (
	Spade   Suit = 1
	Heart   Suit = 2
	Diamond Suit = 4
	Club    Suit = 8
)

// Suits lists every suit. The order carries no meaning for comparison.
var Suits = []Suit{Spade, Heart, Diamond, Club}

var (
	prettySuits = map[Suit]string{
		Spade:   "♠",
		Heart:   "♥",
		Diamond: "♦",
		Club:    "♣",
	}
	charSuitToSuit = map[byte]Suit{
		's': Spade,
		'h': Heart,
		'd': Diamond,
		'c': Club,
	}
	charRankToRank = map[string]Rank{
		"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven, "8": Eight, "9": Nine,
		"T": Ten, "10": Ten, "J": Jack, "Q": Queen, "K": King, "A": Ace,
	}
)

func (s Suit) Valid() bool {
	_, ok := prettySuits[s]
	return ok
}

func (s Suit) String() string {
	if p, ok := prettySuits[s]; ok {
		return p
	}
	return "?"
}

// Card is an immutable playing card.
// high 4 bits: rank (2..14), low 4 bits: suit bit
type Card uint8

// NewCard returns the card for the given rank and suit, or ErrOutOfRange when
// either value is not part of its enumeration.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return 0, errors.Wrapf(ErrOutOfRange, "%d is not a defined rank", uint8(rank))
	}
	if !suit.Valid() {
		return 0, errors.Wrapf(ErrOutOfRange, "%d is not a defined suit", uint8(suit))
	}
	return Card(uint8(rank)<<4 | uint8(suit)), nil
}

// MustCard is NewCard for values known to be valid. It panics otherwise.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard converts strings such as "Qc", "10h" or "Td" into a Card.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, errors.Wrapf(ErrOutOfRange, "invalid card string: %q", s)
	}
	suit, ok := charSuitToSuit[strings.ToLower(s[len(s)-1:])[0]]
	if !ok {
		return 0, errors.Wrapf(ErrOutOfRange, "invalid suit in card string: %q", s)
	}
	rank, ok := charRankToRank[strings.ToUpper(s[:len(s)-1])]
	if !ok {
		return 0, errors.Wrapf(ErrOutOfRange, "invalid rank in card string: %q", s)
	}
	return NewCard(rank, suit)
}

// ParseCards parses every string with ParseCard.
func ParseCards(cards []string) ([]Card, error) {
	result := make([]Card, len(cards))
	for i, s := range cards {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		result[i] = c
	}
	return result, nil
}

func (c Card) Rank() Rank {
	return Rank(c >> 4)
}

func (c Card) Suit() Suit {
	return Suit(c & 0xF)
}

func (c Card) IsFaceCard() bool {
	return c.Rank() >= Jack
}

// Compare orders cards by rank only. The suit is never consulted.
func (c Card) Compare(other Card) int {
	return int(c.Rank()) - int(other.Rank())
}

func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	for i, c := range cards {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}
