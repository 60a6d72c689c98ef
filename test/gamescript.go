package test

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"voyager.com/fivecard/game"
	"voyager.com/fivecard/gamescript"
	"voyager.com/fivecard/poker"
)

const maxPlayOutSteps = 10000

type gameScriptRun struct {
	script   *gamescript.Script
	result   *ScriptTestResult
	testGame *TestGame
}

func (g *gameScriptRun) run() error {
	testGame, err := NewTestGame(g.script.Game)
	if err != nil {
		return err
	}
	g.testGame = testGame

	for i := range g.script.Rounds {
		over, err := g.playRound(uint32(i + 1))
		if err != nil {
			return err
		}
		if over {
			break
		}
	}

	return g.afterGame()
}

// playRound runs one round, start to showdown, and verifies it. It reports
// whether the game ended during the ante.
func (g *gameScriptRun) playRound(roundNum uint32) (bool, error) {
	round := g.script.GetRound(roundNum)
	verify := round.Verify
	where := fmt.Sprintf("round %d", roundNum)

	result, err := g.testGame.Advance()
	if err != nil {
		return false, errors.Wrapf(err, "[%s] Failed to start the round", where)
	}
	if result.State != game.GameState_PRE_ANTE {
		return false, fmt.Errorf("[%s] Expected state PRE_ANTE after starting the round, actual: %s", where, result.State)
	}
	if verify.Dealer != nil {
		g.verifySeat(where, "dealer", *verify.Dealer, g.testGame.Game().Dealer())
	}

	result, err = g.testGame.Advance()
	if err != nil {
		return false, errors.Wrapf(err, "[%s] Failed to collect antes", where)
	}
	if result.State == game.GameState_OVER {
		if !verify.GameOver {
			return true, fmt.Errorf("[%s] Game ended during the ante: %s", where, result.Action)
		}
		g.verifyOutcome(where, verify.Winner, verify.Action, result, verify.Balances, verify.Eliminated)
		return true, nil
	}
	if verify.GameOver {
		g.addError(fmt.Errorf("[%s] Expected the game to end during the ante, actual state: %s", where, result.State))
	}
	if verify.Pot != nil && *verify.Pot != g.testGame.Game().Pot() {
		g.addError(fmt.Errorf("[%s] Pot does not match. Expected: %d, actual: %d",
			where, *verify.Pot, g.testGame.Game().Pot()))
	}

	// the deck is stacked after the ante so seats eliminated by it are skipped
	seatCards, err := round.SeatCards()
	if err != nil {
		return false, errors.Wrapf(err, "[%s] Invalid seat cards", where)
	}
	if err := g.testGame.SetupRound(seatCards); err != nil {
		return false, errors.Wrapf(err, "[%s] Failed to set up the deck", where)
	}

	_, err = g.testGame.Advance()
	if err != nil {
		return false, errors.Wrapf(err, "[%s] Failed to deal", where)
	}
	for _, expected := range verify.Categories {
		hand := g.testGame.Game().Player(int(expected.Seat) - 1).Hand()
		if hand == nil {
			g.addError(fmt.Errorf("[%s] Seat %d has no hand", where, expected.Seat))
			continue
		}
		category, _ := poker.ParseHandCategory(expected.Category)
		if hand.Category() != category {
			g.addError(fmt.Errorf("[%s] Seat %d hand %s category does not match. Expected: %s, actual: %s",
				where, expected.Seat, hand, expected.Category, poker.HandCategory_name[hand.Category()]))
		}
	}

	result, err = g.testGame.Advance()
	if err != nil {
		return false, errors.Wrapf(err, "[%s] Failed to score the hands", where)
	}
	g.verifyOutcome(where, verify.Winner, verify.Action, result, verify.Balances, verify.Eliminated)
	return false, nil
}

func (g *gameScriptRun) afterGame() error {
	after := g.script.AfterGame
	if after.PlayOut {
		for i := 0; g.testGame.Game().State() != game.GameState_OVER; i++ {
			if i >= maxPlayOutSteps {
				return fmt.Errorf("[after-game] Game did not finish after %d steps", maxPlayOutSteps)
			}
			if _, err := g.testGame.Advance(); err != nil {
				return errors.Wrap(err, "[after-game] Failed to play out the game")
			}
		}
	}

	verify := after.Verify
	actualState := g.testGame.Game().State().String()
	if verify.State != "" && verify.State != actualState {
		g.addError(fmt.Errorf("[after-game] State does not match. Expected: %s, actual: %s", verify.State, actualState))
	}
	g.verifyOutcome("after-game", verify.Winner, "", g.testGame.LastResult(), verify.Balances, verify.Eliminated)
	return nil
}

func (g *gameScriptRun) verifyOutcome(where string, winner *uint32, action string,
	result *game.RoundResult, balances []int, eliminated []uint32) {
	gm := g.testGame.Game()
	if winner != nil {
		actual, ok := gm.Winner()
		if !ok {
			g.addError(fmt.Errorf("[%s] Expected seat %d to win, but there is no winner", where, *winner))
		} else {
			g.verifySeat(where, "winner", *winner, actual)
		}
	}
	if action != "" && result != nil && action != result.Action {
		g.addError(fmt.Errorf("[%s] Action does not match. Expected: %q, actual: %q", where, action, result.Action))
	}
	for i, expected := range balances {
		if actual := gm.Player(i).Cash(); actual != expected {
			g.addError(fmt.Errorf("[%s] Seat %d balance does not match. Expected: %d, actual: %d",
				where, i+1, expected, actual))
		}
	}
	if eliminated != nil {
		expected := mapset.NewSet()
		for _, seatNo := range eliminated {
			expected.Add(seatNo)
		}
		actual := mapset.NewSet()
		for i, player := range gm.Players() {
			if !player.IsActive() {
				actual.Add(uint32(i + 1))
			}
		}
		if !expected.Equal(actual) {
			g.addError(fmt.Errorf("[%s] Eliminated seats do not match. Expected: %s, actual: %s",
				where, expected, actual))
		}
	}
}

func (g *gameScriptRun) verifySeat(where string, what string, expectedSeat uint32, actualIdx int) {
	if int(expectedSeat)-1 != actualIdx {
		g.addError(fmt.Errorf("[%s] %s does not match. Expected seat: %d, actual seat: %d",
			where, what, expectedSeat, actualIdx+1))
	}
}

func (g *gameScriptRun) addError(e error) {
	g.result.addError(e)
}
