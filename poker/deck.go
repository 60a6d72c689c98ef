package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
)

var fullDeck []Card

func init() {
	fullDeck = initializeFullCards()
}

// Deck holds the fixed 52 card universe split into available and discarded
// cards. Cards only move between the two piles; none are created or lost.
type Deck struct {
	available []Card
	discard   []Card
	// cards queued by SetupCards, drawn in order before random draws
	setup   []Card
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	source := rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
	return source
}

// NewDeck returns a full deck drawing from source. A nil source is replaced by
// one seeded from crypto/rand.
func NewDeck(source rand.Source) *Deck {
	if source == nil {
		source = newSeed()
	}
	deck := &Deck{
		available: make([]Card, len(fullDeck)),
		discard:   make([]Card, 0, len(fullDeck)),
		randGen:   rand.New(source),
	}
	copy(deck.available, fullDeck)
	return deck
}

// Draw removes one card uniformly at random from the available pile and moves
// it to the discard pile.
func (deck *Deck) Draw() (Card, error) {
	if len(deck.available) == 0 {
		return 0, errors.Wrapf(ErrDeckExhausted, "%d cards discarded", len(deck.discard))
	}

	idx := -1
	for idx < 0 && len(deck.setup) > 0 {
		idx = deck.getCardLoc(deck.setup[0])
		deck.setup = deck.setup[1:]
	}
	if idx < 0 {
		idx = deck.randGen.Intn(len(deck.available))
	}

	card := deck.available[idx]
	deck.available = append(deck.available[:idx], deck.available[idx+1:]...)
	deck.discard = append(deck.discard, card)
	return card, nil
}

// DrawCards draws n cards. On failure no card handed out so far is returned,
// but the drawn cards stay in the discard pile.
func (deck *Deck) DrawCards(n int) ([]Card, error) {
	cards := make([]Card, n)
	for i := range cards {
		card, err := deck.Draw()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

// Reshuffle returns every discarded card to the available pile. The order is
// irrelevant since Draw picks at random. Pending setup cards are dropped.
func (deck *Deck) Reshuffle() {
	deck.available = append(deck.available, deck.discard...)
	deck.discard = deck.discard[:0]
	deck.setup = nil
}

// SetupCards queues cards to be drawn next, in the given order. Every card must
// be currently available and appear only once.
func (deck *Deck) SetupCards(cards ...Card) error {
	seen := mapset.NewSet()
	for _, card := range cards {
		if seen.Contains(card) {
			return errors.Wrapf(ErrCardNotInDeck, "card %s is set up more than once", card)
		}
		seen.Add(card)
		if deck.getCardLoc(card) < 0 {
			return errors.Wrapf(ErrCardNotInDeck, "card %s", card)
		}
	}
	deck.setup = append([]Card(nil), cards...)
	return nil
}

func (deck *Deck) Remaining() int {
	return len(deck.available)
}

func (deck *Deck) Discarded() int {
	return len(deck.discard)
}

// AvailableCards returns a copy of the available pile.
func (deck *Deck) AvailableCards() []Card {
	return append([]Card(nil), deck.available...)
}

// DiscardedCards returns a copy of the discard pile, oldest first.
func (deck *Deck) DiscardedCards() []Card {
	return append([]Card(nil), deck.discard...)
}

func (deck *Deck) PrettyPrint() string {
	return CardsToString(deck.available)
}

func (deck *Deck) getCardLoc(cardToLocate Card) int {
	for i, card := range deck.available {
		if card == cardToLocate {
			return i
		}
	}
	return -1
}

func initializeFullCards() []Card {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, MustCard(rank, suit))
		}
	}
	return cards
}

// FullDeck returns the 52 card universe in rank order.
func FullDeck() []Card {
	return append([]Card(nil), fullDeck...)
}
