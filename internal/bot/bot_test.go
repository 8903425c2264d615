package bot

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lox/holdem-engine/internal/game"
)

// dealtTable returns a three-seat table with a live hand and the view of
// the seat due to act.
func dealtTable(t *testing.T, seed int64) (*game.Table, *game.View) {
	t.Helper()
	tbl := game.NewTable(rand.New(rand.NewSource(seed)), game.Config{SmallBlind: 10, BigBlind: 20}, nil)
	for i := 0; i < 3; i++ {
		if _, err := tbl.AddSeat(fmt.Sprintf("seat%d", i), 1000); err != nil {
			t.Fatalf("AddSeat: %v", err)
		}
	}
	if err := tbl.Deal(); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	return tbl, tbl.SeatView(tbl.ActingSeat())
}

func TestFoldBotFoldsFacingABet(t *testing.T) {
	t.Parallel()

	_, view := dealtTable(t, 1)
	d := NewFoldBot().Act(view)
	if d.Action != game.Fold {
		t.Errorf("fold-bot should fold facing the blind, got %s", d.Action)
	}
}

func TestFoldBotChecksWhenFree(t *testing.T) {
	t.Parallel()

	tbl, _ := dealtTable(t, 2)
	// Limp around to the big blind, whose check is free.
	for _, seat := range []int{0, 1} {
		if err := tbl.ApplyAction(seat, game.Call, 0); err != nil {
			t.Fatalf("call: %v", err)
		}
	}
	view := tbl.SeatView(2)
	d := NewFoldBot().Act(view)
	if d.Action != game.Check {
		t.Errorf("fold-bot should take the free check, got %s", d.Action)
	}
}

func TestCallBotCallsAndChecks(t *testing.T) {
	t.Parallel()

	_, view := dealtTable(t, 3)
	d := NewCallBot().Act(view)
	if d.Action != game.Call {
		t.Errorf("call-bot should call the blind, got %s", d.Action)
	}
}

func TestRandBotOnlyReturnsLegalActions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	rb := NewRandBot(rng)

	for seed := int64(0); seed < 20; seed++ {
		tbl, view := dealtTable(t, seed)
		d := rb.Act(view)
		if !view.Can(d.Action) {
			t.Fatalf("rand-bot returned illegal action %s", d.Action)
		}
		if d.Action == game.Raise {
			la, _ := view.Legal(game.Raise)
			if d.RaiseTo < la.MinRaiseTo || d.RaiseTo > la.MaxRaiseTo {
				t.Fatalf("rand-bot raise to %d outside [%d,%d]", d.RaiseTo, la.MinRaiseTo, la.MaxRaiseTo)
			}
		}
		if err := tbl.ApplyAction(view.SeatID, d.Action, d.RaiseTo); err != nil {
			t.Fatalf("engine rejected rand-bot action: %v", err)
		}
	}
}

func TestManiacBotRaisesTheMinimum(t *testing.T) {
	t.Parallel()

	_, view := dealtTable(t, 11)
	d := NewManiacBot().Act(view)
	if d.Action != game.Raise {
		t.Fatalf("maniac-bot should raise, got %s", d.Action)
	}
	la, _ := view.Legal(game.Raise)
	if d.RaiseTo != la.MinRaiseTo {
		t.Errorf("maniac-bot raises the minimum %d, got %d", la.MinRaiseTo, d.RaiseTo)
	}
}
