package bot

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/game"
)

// ManiacBot raises at every opportunity and calls when it can't raise.
// It ends up all-in most hands, which makes it a good stress test for
// side-pot resolution.
type ManiacBot struct{}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot() *ManiacBot {
	return &ManiacBot{}
}

func (m *ManiacBot) Name() string { return "maniac-bot" }

func (m *ManiacBot) Act(view *game.View) Decision {
	if la, ok := view.Legal(game.Raise); ok {
		return Decision{
			Action:    game.Raise,
			RaiseTo:   la.MinRaiseTo,
			Reasoning: fmt.Sprintf("maniac-bot raising to %d", la.MinRaiseTo),
		}
	}
	if view.Can(game.AllIn) {
		return Decision{Action: game.AllIn, Reasoning: "maniac-bot shoving"}
	}
	if view.Can(game.Call) {
		return Decision{Action: game.Call, Reasoning: "maniac-bot calling"}
	}
	return fallback(view, "maniac-bot out of aggression")
}
