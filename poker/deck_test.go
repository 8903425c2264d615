package poker

import (
	"math/rand"
	"testing"
)

func TestDeckDealsUniqueCards(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(1)))

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		c, ok := d.DealOne()
		if !ok {
			t.Fatalf("Deck exhausted after %d cards", i)
		}
		if seen[c] {
			t.Fatalf("Card %v dealt twice", c)
		}
		seen[c] = true
	}

	if _, ok := d.DealOne(); ok {
		t.Error("Deck should be empty after 52 deals")
	}
}

func TestDeckDealWithoutReplacement(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(7)))

	hole := d.Deal(2)
	board := d.Deal(5)
	if len(hole) != 2 || len(board) != 5 {
		t.Fatalf("Deal sizes wrong: %d hole, %d board", len(hole), len(board))
	}
	if d.CardsRemaining() != 45 {
		t.Errorf("Expected 45 remaining, got %d", d.CardsRemaining())
	}

	for _, h := range hole {
		for _, b := range board {
			if h == b {
				t.Errorf("Card %v dealt to both hole and board", h)
			}
		}
	}
}

func TestDeckDealPastEnd(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(3)))
	d.Deal(50)

	if cards := d.Deal(3); cards != nil {
		t.Errorf("Dealing past the end should return nil, got %v", cards)
	}
	if cards := d.Deal(2); len(cards) != 2 {
		t.Errorf("Exact remaining deal should succeed, got %v", cards)
	}
}

func TestDeckShuffleIsSeedDeterministic(t *testing.T) {
	t.Parallel()

	d1 := NewDeck(rand.New(rand.NewSource(42)))
	d2 := NewDeck(rand.New(rand.NewSource(42)))

	for i := 0; i < 52; i++ {
		c1, _ := d1.DealOne()
		c2, _ := d2.DealOne()
		if c1 != c2 {
			t.Fatalf("Decks diverge at card %d: %v vs %v", i, c1, c2)
		}
	}
}

func TestDeckReshuffleRestoresAllCards(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(9)))
	d.Deal(20)
	d.Shuffle()

	if d.CardsRemaining() != 52 {
		t.Errorf("Reshuffled deck should hold 52 cards, got %d", d.CardsRemaining())
	}
}
