package game

import (
	"github.com/pkg/errors"
	"voyager.com/fivecard/util"
)

// Wallet is a player's balance in whole currency units. Every mutation is
// validated first, so the balance never goes negative.
type Wallet struct {
	balance int
}

func NewWallet(initialBalance int) (*Wallet, error) {
	if initialBalance < 0 {
		return nil, errors.Wrapf(ErrNegativeAmount, "initial balance %d", initialBalance)
	}
	return &Wallet{balance: initialBalance}, nil
}

func (w *Wallet) Balance() int {
	return w.balance
}

func (w *Wallet) CanPay(amount int) bool {
	return amount >= 0 && w.balance >= amount
}

func (w *Wallet) Pay(amount int) error {
	if amount < 0 {
		return errors.Wrapf(ErrNegativeAmount, "cannot pay %d", amount)
	}
	if w.balance < amount {
		return errors.Wrapf(ErrInsufficientFunds, "cannot pay %d from a balance of %d", amount, w.balance)
	}
	w.balance -= amount
	return nil
}

func (w *Wallet) AddBalance(amount int) error {
	if amount < 0 {
		return errors.Wrapf(ErrNegativeAmount, "cannot add %d to a wallet", amount)
	}
	w.balance += amount
	return nil
}

func (w *Wallet) String() string {
	return util.FormatMoney(w.balance)
}
