package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"
)

// HandRank is the comparable strength of a best-five-card hand.
// Higher values beat lower values; equal values split.
//
// The engine depends only on this total order. The underlying scores
// come from github.com/paulhankin/poker and carry no other meaning.
type HandRank int16

// Compare returns >0 if hr beats other, <0 if it loses, 0 on a tie.
func (hr HandRank) Compare(other HandRank) int {
	switch {
	case hr > other:
		return 1
	case hr < other:
		return -1
	default:
		return 0
	}
}

// Evaluate ranks the best 5-card hand from 5, 6 or 7 cards.
func Evaluate(cards []Card) (HandRank, error) {
	pcs := make([]ph.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toLibraryCard(c)
	}

	switch len(cards) {
	case 7:
		var a7 [7]ph.Card
		copy(a7[:], pcs)
		return HandRank(ph.Eval7(&a7)), nil
	case 6:
		return best5of6(pcs), nil
	case 5:
		var a5 [5]ph.Card
		copy(a5[:], pcs)
		return HandRank(ph.Eval5(&a5)), nil
	default:
		return 0, fmt.Errorf("evaluate: want 5-7 cards, got %d", len(cards))
	}
}

// Describe returns a human-readable description of the best hand,
// e.g. "two pair, kings over sevens". Used for showdown display only.
func Describe(cards []Card) string {
	pcs := make([]ph.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toLibraryCard(c)
	}
	desc, err := ph.Describe(pcs)
	if err != nil {
		return ""
	}
	return desc
}

// best5of6 evaluates all six 5-card subsets and keeps the strongest.
func best5of6(pcs []ph.Card) HandRank {
	var best HandRank
	var five [5]ph.Card
	for skip := 0; skip < 6; skip++ {
		k := 0
		for i, c := range pcs {
			if i == skip {
				continue
			}
			five[k] = c
			k++
		}
		if r := HandRank(ph.Eval5(&five)); skip == 0 || r > best {
			best = r
		}
	}
	return best
}

// toLibraryCard converts an engine card to the evaluator library's
// representation. The library numbers aces as 1; ours are high (14).
func toLibraryCard(c Card) ph.Card {
	var s ph.Suit
	switch c.Suit {
	case Spades:
		s = ph.Spade
	case Hearts:
		s = ph.Heart
	case Diamonds:
		s = ph.Diamond
	case Clubs:
		s = ph.Club
	}

	r := ph.Rank(c.Rank)
	if c.Rank == Ace {
		r = ph.Rank(1)
	}

	card, err := ph.MakeCard(s, r)
	if err != nil {
		// Only reachable with a malformed Card value, which the deck
		// never produces.
		panic(fmt.Sprintf("invalid card %v: %v", c, err))
	}
	return card
}
