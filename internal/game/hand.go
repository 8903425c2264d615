package game

import (
	"github.com/google/uuid"

	"github.com/lox/holdem-engine/poker"
)

// Hand holds the state of a single dealt hand. It is created by
// Table.Deal and lives until the next deal; pots are not stored here
// because they are derived from seat commitments on demand.
type Hand struct {
	ID         string
	Street     Street
	Board      []poker.Card
	CurrentBet int // the street's table-high bet to match
	MinRaise   int
	Acting     int // seat ID due to act, -1 when nobody can
	settled    bool

	deck *poker.Deck
}

func newHand(deck *poker.Deck, bigBlind int) *Hand {
	return &Hand{
		ID:       uuid.NewString(),
		Street:   Preflop,
		MinRaise: bigBlind,
		Acting:   -1,
		deck:     deck,
	}
}

// PotResult records how one pot was resolved at showdown.
type PotResult struct {
	Amount      int
	Eligible    []int
	Winners     []int
	Description string // winning hand, or why no evaluation happened
}

// Settlement is the outcome of a hand: every chip in every pot assigned
// to a seat. Payouts is keyed by seat ID and includes refunds of
// uncalled over-commitments.
type Settlement struct {
	HandID  string
	Board   []poker.Card
	Pots    []PotResult
	Payouts map[int]int
	Net     map[int]int // this hand's profit/loss per dealt-in seat
}
