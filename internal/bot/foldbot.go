package bot

import (
	"github.com/lox/holdem-engine/internal/game"
)

// FoldBot always folds, or checks when checking is free
type FoldBot struct{}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot() *FoldBot {
	return &FoldBot{}
}

func (f *FoldBot) Name() string { return "fold-bot" }

func (f *FoldBot) Act(view *game.View) Decision {
	if view.Can(game.Check) {
		return Decision{Action: game.Check, Reasoning: "fold-bot checking for free"}
	}
	return Decision{Action: game.Fold, Reasoning: "fold-bot folding"}
}
