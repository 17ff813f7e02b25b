package holdem

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a command was rejected
type ErrorKind int

// ErrorKind constants
const (
	KindInvalidRules ErrorKind = iota + 1
	KindInvalidTable
	KindSeatNotFound
	KindSeatTaken
	KindPlayerAlreadySeated
	KindPlayerNotFound
	KindNoSeatAvailable
	KindButtonNotAssigned
	KindNotYourTurn
	KindInvalidAmount
	KindInsufficientFunds
	KindBetTooLow
	KindCannotCheck
	KindNothingToCall
	KindNoHand
	KindHandFolded
	KindNotEnoughPlayers
	KindNotEnoughCards
	KindRoundInProgress
	KindNoRoundInProgress
	KindRebuyNotAllowed
	KindPlayerInHand
	KindIllegalState
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRules:
		return "invalid-rules"
	case KindInvalidTable:
		return "invalid-table"
	case KindSeatNotFound:
		return "seat-not-found"
	case KindSeatTaken:
		return "seat-taken"
	case KindPlayerAlreadySeated:
		return "player-already-seated"
	case KindPlayerNotFound:
		return "player-not-found"
	case KindNoSeatAvailable:
		return "no-seat-available"
	case KindButtonNotAssigned:
		return "button-not-assigned"
	case KindNotYourTurn:
		return "not-your-turn"
	case KindInvalidAmount:
		return "invalid-amount"
	case KindInsufficientFunds:
		return "insufficient-funds"
	case KindBetTooLow:
		return "bet-too-low"
	case KindCannotCheck:
		return "cannot-check"
	case KindNothingToCall:
		return "nothing-to-call"
	case KindNoHand:
		return "no-hand"
	case KindHandFolded:
		return "hand-folded"
	case KindNotEnoughPlayers:
		return "not-enough-players"
	case KindNotEnoughCards:
		return "not-enough-cards"
	case KindRoundInProgress:
		return "round-in-progress"
	case KindNoRoundInProgress:
		return "no-round-in-progress"
	case KindRebuyNotAllowed:
		return "rebuy-not-allowed"
	case KindPlayerInHand:
		return "player-in-hand"
	case KindIllegalState:
		return "illegal-state"
	}

	return "unknown"
}

// Error is returned when a command cannot be carried out
// A failed command never leaves the game partially modified.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrBetTooLow)
// holds for every bet-too-low message
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

// KindOf returns the kind of a game error
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

// IsUserError returns true if the error was caused by a rejected command rather than a defect
func IsUserError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind != KindIllegalState
}

// sentinel errors
var (
	ErrSeatNotFound        = newError(KindSeatNotFound, "seat not found")
	ErrSeatTaken           = newError(KindSeatTaken, "the seat is already taken")
	ErrPlayerAlreadySeated = newError(KindPlayerAlreadySeated, "the player is already seated")
	ErrPlayerNotFound      = newError(KindPlayerNotFound, "player not found")
	ErrNoSeatAvailable     = newError(KindNoSeatAvailable, "no other seat qualifies")
	ErrButtonNotAssigned   = newError(KindButtonNotAssigned, "the button is not assigned")
	ErrNotYourTurn         = newError(KindNotYourTurn, "it's not the player's turn")
	ErrInvalidAmount       = newError(KindInvalidAmount, "amount must be greater than zero")
	ErrInsufficientFunds   = newError(KindInsufficientFunds, "insufficient funds")
	ErrBetTooLow           = newError(KindBetTooLow, "bet is less than the minimum bet")
	ErrCannotCheck         = newError(KindCannotCheck, "cannot check, there is a bet to call")
	ErrNothingToCall       = newError(KindNothingToCall, "no bet to call, check instead")
	ErrNoHand              = newError(KindNoHand, "the player has no hand")
	ErrHandFolded          = newError(KindHandFolded, "the hand is already folded")
	ErrNotEnoughPlayers    = newError(KindNotEnoughPlayers, "not enough players")
	ErrNotEnoughCards      = newError(KindNotEnoughCards, "not enough cards")
	ErrRoundInProgress     = newError(KindRoundInProgress, "a round is already in progress")
	ErrNoRoundInProgress   = newError(KindNoRoundInProgress, "no round in progress")
	ErrRebuyNotAllowed     = newError(KindRebuyNotAllowed, "rebuys are not allowed")
	ErrPlayerInHand        = newError(KindPlayerInHand, "cannot rebuy while holding an active hand")
	ErrIllegalState        = newError(KindIllegalState, "illegal state")
)
