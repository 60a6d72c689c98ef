package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidState      = errors.New("invalid state")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrInsufficientFunds = errors.New("amount exceeds the current balance")
)

// InvalidStateError is returned when an operation is not allowed in the
// current game state, e.g. AdvanceRound after the game is over.
type InvalidStateError struct {
	State GameState
	Msg   string
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s (state %s)", ErrInvalidState, e.Msg, e.State)
}

func (e InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// InvariantViolationError signals a bug in the game logic rather than a
// caller error.
type InvariantViolationError struct {
	Msg string
}

func (e InvariantViolationError) Error() string {
	return "invariant violation: " + e.Msg
}
