package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/poker"
)

type DealCmd struct {
	Seats int   `default:"6" help:"Number of seats to deal to"`
	Seed  int64 `help:"RNG seed (0 for time-based)"`
}

// Run deals one sample hand face-up: hole cards for each seat, the full
// board, and the winning hand.
func (d *DealCmd) Run(logger *log.Logger) error {
	if d.Seats < 2 || d.Seats > 10 {
		return fmt.Errorf("seats must be between 2 and 10, got %d", d.Seats)
	}
	seed := d.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	deck := poker.NewDeck(rand.New(rand.NewSource(seed)))

	holes := make([][]poker.Card, d.Seats)
	for i := range holes {
		holes[i] = deck.Deal(2)
	}
	board := deck.Deal(5)

	fmt.Println(titleStyle.Render(fmt.Sprintf(" sample hand, seed %d ", seed)))
	fmt.Printf("\n%s %s\n\n", labelStyle.Render("board:"), renderCards(board))

	bestSeat := -1
	var bestRank poker.HandRank
	for i, hole := range holes {
		cards := append(append([]poker.Card{}, hole...), board...)
		rank, err := poker.Evaluate(cards)
		if err != nil {
			return err
		}
		if bestSeat < 0 || rank.Compare(bestRank) > 0 {
			bestSeat = i
			bestRank = rank
		}
		fmt.Printf("  seat %d: %s  %s\n", i, renderCards(hole), labelStyle.Render(poker.Describe(cards)))
	}

	winner := append(append([]poker.Card{}, holes[bestSeat]...), board...)
	fmt.Printf("\n%s seat %d with %s\n", winStyle.Render("winner:"), bestSeat, poker.Describe(winner))
	return nil
}
