package bot

import (
	"math/rand"

	"github.com/lox/holdem-engine/internal/game"
)

// RandBot makes uniform random legal actions. Its raises are uniform
// over the legal range, so over many hands it exercises every corner of
// the betting state machine.
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a new RandBot instance. The RNG is required so
// simulations stay reproducible from a seed.
func NewRandBot(rng *rand.Rand) *RandBot {
	if rng == nil {
		panic("rng is required for rand-bot")
	}
	return &RandBot{rng: rng}
}

func (r *RandBot) Name() string { return "rand-bot" }

func (r *RandBot) Act(view *game.View) Decision {
	if len(view.LegalActions) == 0 {
		return fallback(view, "rand-bot has no legal actions")
	}

	la := view.LegalActions[r.rng.Intn(len(view.LegalActions))]

	raiseTo := la.MinRaiseTo
	if la.Action == game.Raise && la.MaxRaiseTo > la.MinRaiseTo {
		raiseTo = la.MinRaiseTo + r.rng.Intn(la.MaxRaiseTo-la.MinRaiseTo+1)
	}

	return Decision{Action: la.Action, RaiseTo: raiseTo, Reasoning: "rand-bot random action"}
}
