package game

import (
	"github.com/pkg/errors"
)

// GameState is a step of the round state machine.
//
//	NOT_STARTED -> PRE_ANTE -> POST_ANTE -> PRE_SCORE -> POST_SCORE -> PRE_ANTE ...
//	                  \-> OVER (only one player could pay the ante)
type GameState uint8

const (
	GameState_NOT_STARTED GameState = iota
	GameState_PRE_ANTE
	GameState_POST_ANTE
	GameState_PRE_SCORE
	GameState_POST_SCORE
	GameState_OVER
)

var GameState_name = map[GameState]string{
	GameState_NOT_STARTED: "NOT_STARTED",
	GameState_PRE_ANTE:    "PRE_ANTE",
	GameState_POST_ANTE:   "POST_ANTE",
	GameState_PRE_SCORE:   "PRE_SCORE",
	GameState_POST_SCORE:  "POST_SCORE",
	GameState_OVER:        "OVER",
}

var GameState_value = map[string]GameState{
	"NOT_STARTED": GameState_NOT_STARTED,
	"PRE_ANTE":    GameState_PRE_ANTE,
	"POST_ANTE":   GameState_POST_ANTE,
	"PRE_SCORE":   GameState_PRE_SCORE,
	"POST_SCORE":  GameState_POST_SCORE,
	"OVER":        GameState_OVER,
}

func (s GameState) String() string {
	if name, ok := GameState_name[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameState) UnmarshalText(text []byte) error {
	v, ok := GameState_value[string(text)]
	if !ok {
		return errors.Wrapf(ErrInvalidArgument, "unknown game state %q", string(text))
	}
	*s = v
	return nil
}

var nextActionStrings = map[GameState]string{
	GameState_NOT_STARTED: "start the game",
	GameState_PRE_ANTE:    "submit antes",
	GameState_POST_ANTE:   "deal",
	GameState_PRE_SCORE:   "compare hands",
	GameState_POST_SCORE:  "start next round",
	GameState_OVER:        "exit or start a new game",
}

// GetNextActionString returns the prompt for what AdvanceRound will do next
// from the given state. It is only meant for display.
func GetNextActionString(state GameState) string {
	return nextActionStrings[state]
}

const (
	MinPlayers = 3
	MaxPlayers = 4
	// MinWalletToAnteRatio is the number of antes every wallet must cover at
	// the start of the game.
	MinWalletToAnteRatio = 3

	humanPlayerIdx = 0
	noPlayer       = -1
)
