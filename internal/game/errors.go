package game

import (
	"errors"
	"fmt"
)

// ErrNotEnoughSeats is returned by Deal when fewer than two seats can
// be dealt in. Signalled before any state is mutated.
var ErrNotEnoughSeats = errors.New("not enough seats to deal a hand")

// InvalidActionReason classifies why an action was rejected
type InvalidActionReason int

const (
	ReasonOutOfTurn InvalidActionReason = iota
	ReasonCannotAct
	ReasonIllegalAction
	ReasonRaiseTooSmall
	ReasonInsufficientChips
)

func (r InvalidActionReason) String() string {
	return [...]string{
		"out of turn",
		"seat cannot act",
		"illegal action",
		"raise too small",
		"insufficient chips",
	}[r]
}

// InvalidActionError rejects a bad action without mutating state. The
// caller owns the retry policy; the engine never coerces an illegal
// action into a legal one.
type InvalidActionError struct {
	Seat   int
	Action Action
	Reason InvalidActionReason
	Detail string
}

func (e *InvalidActionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("seat %d cannot %s: %s (%s)", e.Seat, e.Action, e.Reason, e.Detail)
	}
	return fmt.Sprintf("seat %d cannot %s: %s", e.Seat, e.Action, e.Reason)
}

// ContractError signals an out-of-sequence call such as NextRound
// before the round is done. It marks a bug in the integration, not bad
// player input, and is deliberately distinct from InvalidActionError.
type ContractError struct {
	Op     string
	Detail string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Detail)
}

func contractErr(op, format string, args ...any) error {
	return &ContractError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
