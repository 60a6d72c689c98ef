package gamescript

import (
	"fmt"
	"io/ioutil"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"voyager.com/fivecard/game"
	"voyager.com/fivecard/poker"
)

// Script contains game script YAML content.
type Script struct {
	Title     string      `yaml:"title"`
	Disabled  bool        `yaml:"disabled"`
	Game      game.Config `yaml:"game"`
	Rounds    []Round     `yaml:"rounds"`
	AfterGame AfterGame   `yaml:"after-game"`
}

// Round contains an entry in the rounds array in the game script.
type Round struct {
	Num    uint32            `yaml:"num"`
	Setup  RoundSetup        `yaml:"setup"`
	Verify RoundVerification `yaml:"verify"`
}

/*
	setup:
	  seat-cards:
	    - seat: 1
	      cards: [10s, Js, Qs, Ks, As]
*/
type RoundSetup struct {
	SeatCards []SeatCards `yaml:"seat-cards"`
}

// SeatCards are the cards dealt to a seat. Seats are numbered from 1.
type SeatCards struct {
	Seat  uint32   `yaml:"seat"`
	Cards []string `yaml:"cards"`
}

type SeatCategory struct {
	Seat     uint32 `yaml:"seat"`
	Category string `yaml:"category"`
}

// RoundVerification lists the expected outcome of a round. Unset fields are
// not checked.
type RoundVerification struct {
	Dealer     *uint32        `yaml:"dealer"`
	Pot        *int           `yaml:"pot"`
	Categories []SeatCategory `yaml:"categories"`
	Winner     *uint32        `yaml:"winner"`
	Action     string         `yaml:"action"`
	Balances   []int          `yaml:"balances"`
	Eliminated []uint32       `yaml:"eliminated"`
	// the ante of this round ends the game
	GameOver bool `yaml:"game-over"`
}

// AfterGame optionally plays the game to the end and verifies the result.
type AfterGame struct {
	PlayOut bool                  `yaml:"play-out"`
	Verify  AfterGameVerification `yaml:"verify"`
}

type AfterGameVerification struct {
	State      string   `yaml:"state"`
	Winner     *uint32  `yaml:"winner"`
	Balances   []int    `yaml:"balances"`
	Eliminated []uint32 `yaml:"eliminated"`
}

// ReadGameScript reads and validates a game script file.
func ReadGameScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading game script file [%s]", fileName)
	}

	script, err := ParseGameScript(bytes)
	if err != nil {
		return nil, errors.Wrapf(err, "Error loading game script [%s]", fileName)
	}
	return script, nil
}

func ParseGameScript(data []byte) (*Script, error) {
	var script Script
	err := yaml.Unmarshal(data, &script)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing YAML")
	}

	err = script.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "Error validating script")
	}
	return &script, nil
}

func (s *Script) Validate() error {
	if err := s.Game.Validate(); err != nil {
		return err
	}
	players := uint32(s.Game.PlayerCount)

	for i, round := range s.Rounds {
		roundNum := i + 1
		if round.Num != 0 && round.Num != uint32(roundNum) {
			return fmt.Errorf("Round %d is numbered %d", roundNum, round.Num)
		}

		// Check card setup has no duplicate seat number or card.
		seats := mapset.NewSet()
		cards := mapset.NewSet()
		for _, seatCards := range round.Setup.SeatCards {
			if err := s.validateSeat(seatCards.Seat, roundNum, "seat-cards"); err != nil {
				return err
			}
			if seats.Contains(seatCards.Seat) {
				return fmt.Errorf("Duplicate seat number [%d] in round %d seat-cards", seatCards.Seat, roundNum)
			}
			seats.Add(seatCards.Seat)

			if len(seatCards.Cards) != poker.HandSize {
				return fmt.Errorf("Seat %d in round %d has %d cards, expected %d",
					seatCards.Seat, roundNum, len(seatCards.Cards), poker.HandSize)
			}
			parsed, err := poker.ParseCards(seatCards.Cards)
			if err != nil {
				return errors.Wrapf(err, "Invalid card for seat %d in round %d", seatCards.Seat, roundNum)
			}
			for _, card := range parsed {
				if cards.Contains(card) {
					return fmt.Errorf("Card %s is dealt more than once in round %d", card, roundNum)
				}
				cards.Add(card)
			}
		}

		verify := round.Verify
		for _, c := range verify.Categories {
			if err := s.validateSeat(c.Seat, roundNum, "categories"); err != nil {
				return err
			}
			if _, err := poker.ParseHandCategory(c.Category); err != nil {
				return errors.Wrapf(err, "Round %d", roundNum)
			}
		}
		if verify.Dealer != nil {
			if err := s.validateSeat(*verify.Dealer, roundNum, "dealer"); err != nil {
				return err
			}
		}
		if verify.Winner != nil {
			if err := s.validateSeat(*verify.Winner, roundNum, "winner"); err != nil {
				return err
			}
		}
		if verify.Balances != nil && uint32(len(verify.Balances)) != players {
			return fmt.Errorf("Round %d lists %d balances for %d players", roundNum, len(verify.Balances), players)
		}
		for _, seat := range verify.Eliminated {
			if err := s.validateSeat(seat, roundNum, "eliminated"); err != nil {
				return err
			}
		}
		if verify.GameOver && i != len(s.Rounds)-1 {
			return fmt.Errorf("Round %d ends the game but is not the last round", roundNum)
		}
	}

	verify := s.AfterGame.Verify
	if verify.State != "" {
		if _, ok := game.GameState_value[verify.State]; !ok {
			return fmt.Errorf("Invalid after-game state [%s]", verify.State)
		}
	}
	if verify.Balances != nil && uint32(len(verify.Balances)) != players {
		return fmt.Errorf("After-game lists %d balances for %d players", len(verify.Balances), players)
	}
	if verify.Winner != nil {
		if err := s.validateSeat(*verify.Winner, 0, "after-game winner"); err != nil {
			return err
		}
	}
	for _, seat := range verify.Eliminated {
		if err := s.validateSeat(seat, 0, "after-game eliminated"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Script) validateSeat(seatNo uint32, roundNum int, where string) error {
	if seatNo < 1 || seatNo > uint32(s.Game.PlayerCount) {
		return fmt.Errorf("Invalid seat number [%d] in round %d %s", seatNo, roundNum, where)
	}
	return nil
}

// GetRound returns the round with the given 1-based number.
func (s *Script) GetRound(roundNum uint32) Round {
	return s.Rounds[roundNum-1]
}

// SeatCards returns the parsed cards of each seat set up for the round,
// keyed by seat number.
func (r *Round) SeatCards() (map[uint32][]poker.Card, error) {
	result := make(map[uint32][]poker.Card)
	for _, seatCards := range r.Setup.SeatCards {
		cards, err := poker.ParseCards(seatCards.Cards)
		if err != nil {
			return nil, err
		}
		result[seatCards.Seat] = cards
	}
	return result, nil
}
