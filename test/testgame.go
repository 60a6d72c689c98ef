package test

import (
	"fmt"

	"voyager.com/fivecard/game"
	"voyager.com/fivecard/logging"
	"voyager.com/fivecard/poker"
)

const testGameLoggerName = "test::testgame"

// TestGame drives a game from the table's perspective and keeps every round
// result in a round log for the verification steps.
type TestGame struct {
	game       *game.Game
	roundLog   *game.MemoryRoundLog
	lastResult *game.RoundResult
}

func NewTestGame(config game.Config) (*TestGame, error) {
	roundLog := game.NewMemoryRoundLog()
	g, err := game.NewGame(config, nil, roundLog)
	if err != nil {
		return nil, err
	}
	return &TestGame{
		game:     g,
		roundLog: roundLog,
	}, nil
}

func (t *TestGame) Advance() (*game.RoundResult, error) {
	result, err := t.game.AdvanceRound()
	if err != nil {
		return nil, err
	}
	t.lastResult = result
	logging.SubLogger(testGameLoggerName).Debug().
		Str("game", t.game.ID()).
		Int("round", result.Round).
		Str("state", result.State.String()).
		Msg(fmt.Sprintf("%s | %s", result.Action, t.game.PrintTable()))
	return result, nil
}

// SetupRound stacks the deck so that each active seat is dealt its cards.
// Seats are numbered from 1 and every active seat must be covered.
func (t *TestGame) SetupRound(seatCards map[uint32][]poker.Card) error {
	if len(seatCards) == 0 {
		return nil
	}
	cards := make([]poker.Card, 0, len(seatCards)*poker.HandSize)
	for idx, player := range t.game.Players() {
		seatNo := uint32(idx + 1)
		seat, ok := seatCards[seatNo]
		if !player.IsActive() {
			if ok {
				return fmt.Errorf("Seat %d (%s) is not active and cannot be dealt", seatNo, player.Name)
			}
			continue
		}
		if !ok {
			return fmt.Errorf("Seat %d (%s) is active but has no cards set up", seatNo, player.Name)
		}
		cards = append(cards, seat...)
	}
	return t.game.SetupDeck(cards)
}

func (t *TestGame) Game() *game.Game {
	return t.game
}

func (t *TestGame) LastResult() *game.RoundResult {
	return t.lastResult
}

func (t *TestGame) Rounds() ([]*game.RoundResult, error) {
	return t.roundLog.Load(t.game.ID())
}
