package poker

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	c, err := NewCard(Queen, Heart)
	require.NoError(t, err)
	assert.Equal(t, Queen, c.Rank())
	assert.Equal(t, Heart, c.Suit())
	assert.True(t, c.IsFaceCard())
	assert.Equal(t, "Q♥", c.String())
}

func TestNewCardOutOfRange(t *testing.T) {
	_, err := NewCard(Rank(1), Spade)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = NewCard(Rank(15), Spade)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = NewCard(Ace, Suit(3))
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = NewCard(Ace, Suit(0))
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestCardCompareIgnoresSuit(t *testing.T) {
	tenClubs := MustCard(Ten, Club)
	tenHearts := MustCard(Ten, Heart)
	jackSpades := MustCard(Jack, Spade)

	assert.Equal(t, 0, tenClubs.Compare(tenHearts))
	assert.NotEqual(t, tenClubs, tenHearts)
	assert.Less(t, tenHearts.Compare(jackSpades), 0)
	assert.Greater(t, jackSpades.Compare(tenClubs), 0)
	assert.False(t, tenClubs.IsFaceCard())
}

func TestParseCard(t *testing.T) {
	testCases := []struct {
		in       string
		expected Card
	}{
		{"Qc", MustCard(Queen, Club)},
		{"10h", MustCard(Ten, Heart)},
		{"Td", MustCard(Ten, Diamond)},
		{"as", MustCard(Ace, Spade)},
		{"2D", MustCard(Two, Diamond)},
	}
	for _, tc := range testCases {
		c, err := ParseCard(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, c, tc.in)
	}

	for _, bad := range []string{"", "Q", "1c", "Qx", "11h"} {
		_, err := ParseCard(bad)
		assert.True(t, errors.Is(err, ErrOutOfRange), bad)
	}
}

func TestCardsToString(t *testing.T) {
	cards, err := ParseCards([]string{"2c", "10d", "As"})
	require.NoError(t, err)
	assert.Equal(t, "2♣ 10♦ A♠", CardsToString(cards))
}
