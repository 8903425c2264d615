package bot

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/game"
)

// CallBot checks when it can and calls any bet, never betting itself.
// Useful as a baseline opponent: it sees every showdown it can afford.
type CallBot struct{}

// NewCallBot creates a new CallBot instance
func NewCallBot() *CallBot {
	return &CallBot{}
}

func (c *CallBot) Name() string { return "call-bot" }

func (c *CallBot) Act(view *game.View) Decision {
	if view.Can(game.Check) {
		return Decision{Action: game.Check, Reasoning: "call-bot checking"}
	}
	if la, ok := view.Legal(game.Call); ok {
		return Decision{Action: game.Call, Reasoning: fmt.Sprintf("call-bot calling %d", la.CallAmount)}
	}
	return fallback(view, "call-bot has nothing to call")
}
