package test

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/fivecard/game"
	"voyager.com/fivecard/poker"
)

func TestGameScripts(t *testing.T) {
	var out bytes.Buffer
	passed, err := RunGameScriptTests("game-scripts", &out)
	require.NoError(t, err)
	assert.True(t, passed, out.String())
	assert.Contains(t, out.String(), "All scripts passed")
	assert.Contains(t, out.String(), "disabled.yaml is disabled")
}

func TestFailingScript(t *testing.T) {
	dir := t.TempDir()
	script := `
title: Wrong expectations
game:
  players: 3
  human-name: Alice
  ante: 5
  wallet-size: 15
rounds:
  - setup:
      seat-cards:
        - seat: 1
          cards: [10s, Js, Qs, Ks, As]
        - seat: 2
          cards: [2h, 3h, 4h, 5h, 7d]
        - seat: 3
          cards: [2c, 3c, 4c, 5c, 7s]
    verify:
      dealer: 2
      categories:
        - seat: 1
          category: STRAIGHT_FLUSH
      winner: 2
      balances: [25, 10, 9]
`
	filename := filepath.Join(dir, "wrong.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte(script), 0644))

	var out bytes.Buffer
	driver := NewTestDriver(&out)
	require.NoError(t, driver.RunGameScript(filename))
	assert.False(t, driver.ReportResult())

	result := driver.ScriptResult[filename]
	assert.False(t, result.Passed)
	assert.Len(t, result.Failures, 4)
	assert.Contains(t, out.String(), "dealer does not match. Expected seat: 2, actual seat: 1")
	assert.Contains(t, out.String(), "Expected: STRAIGHT_FLUSH")
	assert.Contains(t, out.String(), "winner does not match. Expected seat: 2, actual seat: 1")
	assert.Contains(t, out.String(), "Seat 3 balance does not match. Expected: 9, actual: 10")
}

func TestInvalidScript(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte("game:\n  players: 9\n"), 0644))

	driver := NewTestDriver(ioutil.Discard)
	assert.Error(t, driver.RunGameScript(filename))
	assert.False(t, driver.ReportResult())

	passed, err := RunGameScriptTests(dir, ioutil.Discard)
	require.NoError(t, err)
	assert.False(t, passed)

	_, err = RunGameScriptTests(filepath.Join(dir, "missing"), ioutil.Discard)
	assert.Error(t, err)
}

func TestSetupRoundCoversActiveSeats(t *testing.T) {
	testGame, err := NewTestGame(game.Config{PlayerCount: 3, HumanName: "Alice", Ante: 5, WalletSize: 15})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = testGame.Advance()
		require.NoError(t, err)
	}
	require.Equal(t, game.GameState_POST_ANTE, testGame.LastResult().State)

	cards, err := poker.ParseCards([]string{"10s", "Js", "Qs", "Ks", "As"})
	require.NoError(t, err)
	err = testGame.SetupRound(map[uint32][]poker.Card{1: cards})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Seat 2 (Player 2) is active but has no cards set up")

	assert.NoError(t, testGame.SetupRound(nil))

	rounds, err := testGame.Rounds()
	require.NoError(t, err)
	assert.Len(t, rounds, 2)
	assert.Equal(t, game.GameState_POST_ANTE, testGame.LastResult().State)
}

func TestEliminatedSeatsAreNotDealt(t *testing.T) {
	var out bytes.Buffer
	driver := NewTestDriver(&out)
	filename := filepath.Join("game-scripts", "elimination_midgame.yaml")
	require.NoError(t, driver.RunGameScript(filename))
	assert.True(t, driver.ReportResult(), out.String())

	result := driver.ScriptResult[filename]
	require.NotNil(t, result)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Failures)
}
