package game

import (
	"fmt"

	"voyager.com/fivecard/poker"
)

// Player is a seat at the table. A player starts active and becomes inactive
// for the rest of the game the first time they cannot pay an ante.
type Player struct {
	Name     string
	wallet   *Wallet
	hand     *poker.Hand
	isActive bool
}

func NewPlayer(name string, initialCash int) (*Player, error) {
	wallet, err := NewWallet(initialCash)
	if err != nil {
		return nil, err
	}
	return &Player{
		Name:     name,
		wallet:   wallet,
		isActive: true,
	}, nil
}

func (p *Player) Cash() int {
	return p.wallet.Balance()
}

func (p *Player) IsActive() bool {
	return p.isActive
}

// Hand is nil outside of the deal and score phases.
func (p *Player) Hand() *poker.Hand {
	return p.hand
}

func (p *Player) CreateHand(cards ...poker.Card) error {
	hand, err := poker.NewHand(cards...)
	if err != nil {
		return err
	}
	p.hand = hand
	return nil
}

func (p *Player) clearHand() {
	p.hand = nil
}

// TryBet pays amount from the wallet. When the wallet cannot cover it nothing
// is paid and the player is deactivated.
func (p *Player) TryBet(amount int) bool {
	if !p.wallet.CanPay(amount) {
		p.isActive = false
		return false
	}
	if err := p.wallet.Pay(amount); err != nil {
		p.isActive = false
		return false
	}
	return true
}

func (p *Player) CollectWinnings(amount int) error {
	return p.wallet.AddBalance(amount)
}

func (p *Player) String() string {
	if p.hand != nil {
		return fmt.Sprintf("%s (%s): %s", p.Name, p.wallet, p.hand)
	}
	return fmt.Sprintf("%s: %s", p.Name, p.wallet)
}
