package game

import (
	"github.com/pkg/errors"
	"voyager.com/fivecard/util"
)

// Pot accumulates the antes of a round until it is paid out to the winner.
type Pot struct {
	size int
}

func (p *Pot) Size() int {
	return p.size
}

func (p *Pot) Add(amount int) error {
	if amount < 0 {
		return errors.Wrapf(ErrNegativeAmount, "cannot add %d to the pot", amount)
	}
	p.size += amount
	return nil
}

// PayOut empties the pot and returns what it held.
func (p *Pot) PayOut() int {
	amount := p.size
	p.size = 0
	return amount
}

func (p *Pot) String() string {
	return util.FormatMoney(p.size)
}
