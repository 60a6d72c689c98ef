package game

import (
	"github.com/pkg/errors"
)

/*
   players: 4
   human-name: Alice
   ante: 5
   wallet-size: 100
   reveal-human-hand: true
   seed: 42
*/
type Config struct {
	PlayerCount     int    `json:"players" yaml:"players"`
	HumanName       string `json:"humanName" yaml:"human-name"`
	Ante            int    `json:"ante" yaml:"ante"`
	WalletSize      int    `json:"walletSize" yaml:"wallet-size"`
	RevealHumanHand bool   `json:"revealHumanHand" yaml:"reveal-human-hand"`
	// 0 means the deck seeds itself
	Seed int64 `json:"seed" yaml:"seed"`
}

func (c Config) Validate() error {
	if c.PlayerCount < MinPlayers || c.PlayerCount > MaxPlayers {
		return errors.Wrapf(ErrInvalidArgument, "invalid number of players %d, must be between %d and %d",
			c.PlayerCount, MinPlayers, MaxPlayers)
	}
	if c.Ante < 1 {
		return errors.Wrapf(ErrInvalidArgument, "ante %d must be positive and nonzero", c.Ante)
	}
	if c.WalletSize/c.Ante < MinWalletToAnteRatio {
		return errors.Wrapf(ErrInvalidArgument, "wallet size %d must be at least %d times ante %d",
			c.WalletSize, MinWalletToAnteRatio, c.Ante)
	}
	return nil
}
