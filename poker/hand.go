package poker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const HandSize = 5

// Score is the category of a hand plus the card that justifies it. When two
// hands share a category the representative card breaks the tie.
type Score struct {
	Category       HandCategory
	Representative Card
}

// Compare orders scores by category, then by the representative's rank.
func (s Score) Compare(other Score) int {
	if s.Category != other.Category {
		return int(s.Category) - int(other.Category)
	}
	return s.Representative.Compare(other.Representative)
}

func (s Score) String() string {
	return fmt.Sprintf("%s (%s)", s.Category, s.Representative.Rank())
}

// Hand is an immutable set of exactly five cards kept in ascending rank order.
// The score is computed on first use and cached.
type Hand struct {
	cards [HandSize]Card
	score *Score
}

// NewHand sorts the given cards and returns the hand. It fails with
// ErrInvalidArity unless exactly five cards are supplied.
func NewHand(cards ...Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, errors.Wrapf(ErrInvalidArity, "received %d cards", len(cards))
	}
	for _, c := range cards {
		if !c.Rank().Valid() || !c.Suit().Valid() {
			return nil, errors.Wrapf(ErrOutOfRange, "invalid card value 0x%02x", uint8(c))
		}
	}

	h := &Hand{}
	copy(h.cards[:], cards)
	// the byte layout sorts by rank, then suit, so equal inputs in any order
	// produce identical hands
	sort.Slice(h.cards[:], func(i, j int) bool {
		return h.cards[i] < h.cards[j]
	})
	return h, nil
}

// ParseHand builds a hand from card strings such as "Qc".
func ParseHand(cards ...string) (*Hand, error) {
	parsed, err := ParseCards(cards)
	if err != nil {
		return nil, err
	}
	return NewHand(parsed...)
}

// Card returns the card at idx in ascending rank order.
func (h *Hand) Card(idx int) Card {
	return h.cards[idx]
}

func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards[:]...)
}

func (h *Hand) HighestCard() Card {
	return h.cards[HandSize-1]
}

func (h *Hand) Category() HandCategory {
	return h.Score().Category
}

func (h *Hand) Representative() Card {
	return h.Score().Representative
}

func (h *Hand) Score() Score {
	if h.score == nil {
		score := h.computeScore()
		h.score = &score
	}
	return *h.score
}

// Compare returns a positive number when h beats other, a negative number when
// other wins and zero when the hands tie. Ties on score fall back to comparing
// every card from the highest position down. Suits never break a tie.
func (h *Hand) Compare(other *Hand) int {
	result := h.Score().Compare(other.Score())
	for idx := HandSize - 1; result == 0 && idx >= 0; idx-- {
		result = h.cards[idx].Compare(other.cards[idx])
	}
	return result
}

func (h *Hand) String() string {
	return h.Format(false)
}

// Format renders the hand as "<2♣ 3♦ 6♠ 10♣ A♥>", or "<Hand Hidden>".
func (h *Hand) Format(hidden bool) string {
	if hidden {
		return "<Hand Hidden>"
	}
	return "<" + CardsToString(h.cards[:]) + ">"
}

func (h *Hand) computeScore() Score {
	// Straight flush and royal flush are built from the straight and flush
	// checks, so compute those first and reuse them.
	isStraight := h.isStraight()
	isFlush := h.isFlush()
	highest := h.HighestCard()

	if isStraight && isFlush {
		if highest.Rank() == Ace {
			return Score{RoyalFlush, highest}
		}
		return Score{StraightFlush, highest}
	}

	repeated, maxOfAKind := h.maxOfAKind()
	switch {
	case maxOfAKind == 4:
		return Score{FourOfAKind, repeated}
	case maxOfAKind == 3 && h.isFullHouse(repeated):
		// ranked by the highest card, not by the three of a kind
		return Score{FullHouse, highest}
	case isFlush:
		return Score{Flush, highest}
	case isStraight:
		return Score{Straight, highest}
	case maxOfAKind == 3:
		return Score{ThreeOfAKind, repeated}
	case maxOfAKind == 2 && h.isTwoPair(repeated):
		// repeated is already the higher of the two pairs
		return Score{TwoPair, repeated}
	case maxOfAKind == 2:
		return Score{Pair, repeated}
	}
	return Score{SingleCard, highest}
}

// no wraparound: A-2-3-4-5 is not a straight
func (h *Hand) isStraight() bool {
	for i := 1; i < HandSize; i++ {
		if h.cards[i].Rank()-h.cards[i-1].Rank() != 1 {
			return false
		}
	}
	return true
}

func (h *Hand) isFlush() bool {
	suit := h.cards[0].Suit()
	for _, c := range h.cards[1:] {
		if c.Suit() != suit {
			return false
		}
	}
	return true
}

// maxOfAKind returns the longest run of equal ranks and a card from it. Cards
// are sorted by increasing rank, so a later run of the same length is always
// higher. Hence >= and not >.
func (h *Hand) maxOfAKind() (Card, int) {
	var best Card
	bestRun, currentRun := 0, 0
	for i, c := range h.cards {
		if i > 0 && c.Compare(h.cards[i-1]) == 0 {
			currentRun++
		} else {
			currentRun = 1
		}
		if currentRun >= bestRun {
			bestRun = currentRun
			best = c
		}
	}
	return best, bestRun
}

// The three of a kind sits either in the first three or the last three
// positions; the other two cards must pair up.
func (h *Hand) isFullHouse(triple Card) bool {
	var a, b Card
	if h.cards[0].Compare(triple) == 0 {
		a, b = h.cards[3], h.cards[4]
	} else {
		a, b = h.cards[0], h.cards[1]
	}
	return a.Compare(b) == 0 && a.Compare(triple) != 0
}

// With the best pair known, a second (lower) pair can only be at positions
// 0-1 or 1-2, and it must not be the best pair itself.
func (h *Hand) isTwoPair(pair Card) bool {
	c := h.cards
	if c[0].Compare(c[1]) != 0 && c[1].Compare(c[2]) != 0 {
		return false
	}
	return c[1].Compare(pair) != 0
}

// HandsToString is a debugging helper.
func HandsToString(hands []*Hand) string {
	parts := make([]string, len(hands))
	for i, h := range hands {
		parts[i] = fmt.Sprintf("%s %s", h, h.Score())
	}
	return strings.Join(parts, ", ")
}
