package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/fivecard/poker"
)

func TestWallet(t *testing.T) {
	_, err := NewWallet(-1)
	assert.True(t, errors.Is(err, ErrNegativeAmount))

	w, err := NewWallet(10)
	require.NoError(t, err)
	assert.Equal(t, 10, w.Balance())
	assert.True(t, w.CanPay(10))
	assert.False(t, w.CanPay(11))
	assert.False(t, w.CanPay(-1))

	require.NoError(t, w.Pay(4))
	assert.Equal(t, 6, w.Balance())

	err = w.Pay(7)
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
	assert.Equal(t, 6, w.Balance())

	err = w.Pay(-1)
	assert.True(t, errors.Is(err, ErrNegativeAmount))
	err = w.AddBalance(-1)
	assert.True(t, errors.Is(err, ErrNegativeAmount))
	assert.Equal(t, 6, w.Balance())

	require.NoError(t, w.AddBalance(1000))
	assert.Equal(t, 1006, w.Balance())
	assert.Equal(t, "$1,006.00", w.String())
}

func TestPot(t *testing.T) {
	p := Pot{}
	assert.Equal(t, 0, p.Size())
	require.NoError(t, p.Add(5))
	require.NoError(t, p.Add(5))
	assert.True(t, errors.Is(p.Add(-5), ErrNegativeAmount))
	assert.Equal(t, 10, p.Size())

	assert.Equal(t, 10, p.PayOut())
	assert.Equal(t, 0, p.Size())
	assert.Equal(t, 0, p.PayOut())
}

func TestPlayerTryBet(t *testing.T) {
	p, err := NewPlayer("Alice", 12)
	require.NoError(t, err)
	assert.True(t, p.IsActive())

	assert.True(t, p.TryBet(5))
	assert.True(t, p.TryBet(5))
	assert.Equal(t, 2, p.Cash())

	// nothing is taken when the bet cannot be covered
	assert.False(t, p.TryBet(5))
	assert.Equal(t, 2, p.Cash())
	assert.False(t, p.IsActive())

	require.NoError(t, p.CollectWinnings(20))
	assert.Equal(t, 22, p.Cash())
	assert.False(t, p.IsActive())
}

func TestPlayerHand(t *testing.T) {
	p, err := NewPlayer("Alice", 10)
	require.NoError(t, err)
	assert.Nil(t, p.Hand())

	cards, err := poker.ParseCards([]string{"Qc", "2d", "10h", "Qs", "7c"})
	require.NoError(t, err)
	require.NoError(t, p.CreateHand(cards...))
	require.NotNil(t, p.Hand())
	assert.Equal(t, poker.Pair, p.Hand().Category())

	err = p.CreateHand(cards[:4]...)
	assert.True(t, errors.Is(err, poker.ErrInvalidArity))
	assert.NotNil(t, p.Hand())

	p.clearHand()
	assert.Nil(t, p.Hand())
}
