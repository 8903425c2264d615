package bot

import (
	"github.com/lox/holdem-engine/internal/game"
)

// Decision is an agent's chosen action. RaiseTo is the total street bet
// to raise to and is only read when Action is Raise.
type Decision struct {
	Action    game.Action
	RaiseTo   int
	Reasoning string
}

// Agent picks an action from a seat's view of the hand. The view's
// LegalActions are authoritative: returning anything outside them is
// rejected by the engine, not corrected.
type Agent interface {
	Name() string
	Act(view *game.View) Decision
}

// fallback returns the safest legal action when an agent has no better
// idea: check if free, otherwise fold.
func fallback(view *game.View, reasoning string) Decision {
	if view.Can(game.Check) {
		return Decision{Action: game.Check, Reasoning: reasoning}
	}
	return Decision{Action: game.Fold, Reasoning: reasoning}
}
