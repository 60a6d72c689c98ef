package gamescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/fivecard/game"
	"voyager.com/fivecard/poker"
)

func getUint32Pointer(v uint32) *uint32 {
	return &v
}

func getIntPointer(v int) *int {
	return &v
}

func TestReadGameScript(t *testing.T) {
	script, err := ReadGameScript("test_scripts/script1.yaml")
	if err != nil {
		t.Fatalf("ReadGameScript returned error [%s]", err)
	}
	if script == nil {
		t.Fatal("ReadGameScript returned nil data")
	}

	expectedScript := Script{
		Title: "Royal flush sweeps the table",
		Game: game.Config{
			PlayerCount: 3,
			HumanName:   "Alice",
			Ante:        5,
			WalletSize:  15,
			Seed:        42,
		},
		Rounds: []Round{
			{
				Num: 1,
				Setup: RoundSetup{
					SeatCards: []SeatCards{
						{Seat: 1, Cards: []string{"10s", "Js", "Qs", "Ks", "As"}},
						{Seat: 2, Cards: []string{"2h", "3h", "4h", "5h", "7d"}},
						{Seat: 3, Cards: []string{"2c", "3c", "4c", "5c", "7s"}},
					},
				},
				Verify: RoundVerification{
					Dealer: getUint32Pointer(1),
					Pot:    getIntPointer(15),
					Categories: []SeatCategory{
						{Seat: 1, Category: "ROYAL_FLUSH"},
						{Seat: 2, Category: "SINGLE_CARD"},
					},
					Winner:   getUint32Pointer(1),
					Action:   "Alice wins the round",
					Balances: []int{25, 10, 10},
				},
			},
			{
				Num: 2,
				Verify: RoundVerification{
					Dealer:   getUint32Pointer(2),
					Balances: []int{20, 5, 5},
				},
			},
		},
		AfterGame: AfterGame{
			PlayOut: true,
			Verify: AfterGameVerification{
				State: "OVER",
			},
		},
	}

	if diff := cmp.Diff(expectedScript, *script); diff != "" {
		t.Errorf("Script mismatch (-expected +actual):\n%s", diff)
	}
}

func TestSeatCards(t *testing.T) {
	script, err := ReadGameScript("test_scripts/script1.yaml")
	require.NoError(t, err)

	round := script.GetRound(1)
	seatCards, err := round.SeatCards()
	require.NoError(t, err)
	assert.Len(t, seatCards, 3)
	assert.Equal(t, poker.MustCard(poker.Ace, poker.Spade), seatCards[1][4])
	assert.Equal(t, poker.MustCard(poker.Seven, poker.Diamond), seatCards[2][4])

	round = script.GetRound(2)
	seatCards, err = round.SeatCards()
	require.NoError(t, err)
	assert.Empty(t, seatCards)
}

func TestReadMissingScript(t *testing.T) {
	_, err := ReadGameScript("test_scripts/missing.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	header := `
game:
  players: 3
  human-name: Alice
  ante: 5
  wallet-size: 15
`
	cases := []struct {
		name   string
		script string
		errMsg string
	}{
		{
			name: "bad config",
			script: `
game:
  players: 2
  ante: 5
  wallet-size: 15
`,
			errMsg: "invalid number of players",
		},
		{
			name: "duplicate seat",
			script: header + `
rounds:
  - setup:
      seat-cards:
        - seat: 1
          cards: [2c, 3c, 4c, 5c, 7s]
        - seat: 1
          cards: [2h, 3h, 4h, 5h, 7d]
`,
			errMsg: "Duplicate seat number [1]",
		},
		{
			name: "seat out of range",
			script: header + `
rounds:
  - setup:
      seat-cards:
        - seat: 4
          cards: [2c, 3c, 4c, 5c, 7s]
`,
			errMsg: "Invalid seat number [4]",
		},
		{
			name: "duplicate card",
			script: header + `
rounds:
  - setup:
      seat-cards:
        - seat: 1
          cards: [2c, 3c, 4c, 5c, 7s]
        - seat: 2
          cards: [2h, 3h, 4h, 5h, 7s]
`,
			errMsg: "Card 7♠ is dealt more than once",
		},
		{
			name: "short hand",
			script: header + `
rounds:
  - setup:
      seat-cards:
        - seat: 1
          cards: [2c, 3c, 4c, 5c]
`,
			errMsg: "has 4 cards",
		},
		{
			name: "bad card",
			script: header + `
rounds:
  - setup:
      seat-cards:
        - seat: 1
          cards: [2c, 3c, 4c, 5c, 1x]
`,
			errMsg: "Invalid card for seat 1",
		},
		{
			name: "bad category",
			script: header + `
rounds:
  - verify:
      categories:
        - seat: 1
          category: FIVE_OF_A_KIND
`,
			errMsg: "FIVE_OF_A_KIND",
		},
		{
			name: "balances",
			script: header + `
rounds:
  - verify:
      balances: [10, 10]
`,
			errMsg: "lists 2 balances for 3 players",
		},
		{
			name: "game over early",
			script: header + `
rounds:
  - verify:
      game-over: true
  - verify:
      dealer: 2
`,
			errMsg: "Round 1 ends the game",
		},
		{
			name: "round number",
			script: header + `
rounds:
  - num: 2
`,
			errMsg: "Round 1 is numbered 2",
		},
		{
			name: "after game state",
			script: header + `
after-game:
  verify:
    state: FINISHED
`,
			errMsg: "Invalid after-game state [FINISHED]",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseGameScript([]byte(c.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.errMsg)
		})
	}

	_, err := ParseGameScript([]byte(header))
	assert.NoError(t, err)
}
