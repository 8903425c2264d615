package poker

import "testing"

func mustEvaluate(t *testing.T, cards string) HandRank {
	t.Helper()
	rank, err := Evaluate(MustParseCards(cards))
	if err != nil {
		t.Fatalf("Evaluate(%q) error: %v", cards, err)
	}
	return rank
}

func TestEvaluateOrdering(t *testing.T) {
	t.Parallel()

	// Each hand must beat the one before it.
	hands := []struct {
		name  string
		cards string
	}{
		{"high card", "As Kd 9c 7h 4s 3d 2c"},
		{"pair", "As Ad 9c 7h 4s 3d 2c"},
		{"two pair", "As Ad 9c 9h 4s 3d 2c"},
		{"trips", "As Ad Ac 9h 4s 3d 2c"},
		{"straight", "5s 6d 7c 8h 9s Kd 2c"},
		{"flush", "As Ks 9s 7s 4s 3d 2c"},
		{"full house", "As Ad Ac 9h 9s 3d 2c"},
		{"quads", "As Ad Ac Ah 9s 3d 2c"},
		{"straight flush", "5s 6s 7s 8s 9s Kd 2c"},
	}

	prev := HandRank(0)
	for i, h := range hands {
		rank := mustEvaluate(t, h.cards)
		if i > 0 && rank.Compare(prev) <= 0 {
			t.Errorf("%s (%d) should beat %s (%d)", h.name, rank, hands[i-1].name, prev)
		}
		prev = rank
	}
}

func TestEvaluateKickers(t *testing.T) {
	t.Parallel()

	aceKicker := mustEvaluate(t, "Ks Kd As 7h 4s 3d 2c")
	queenKicker := mustEvaluate(t, "Ks Kd Qs 7h 4s 3d 2c")
	if aceKicker.Compare(queenKicker) <= 0 {
		t.Error("Pair of kings with ace kicker should beat queen kicker")
	}
}

func TestEvaluateTies(t *testing.T) {
	t.Parallel()

	// Identical board plays for both; hole cards don't improve either hand.
	a := mustEvaluate(t, "2c 3d As Ks Qs Js Ts")
	b := mustEvaluate(t, "2d 3h As Ks Qs Js Ts")
	if a.Compare(b) != 0 {
		t.Errorf("Board-playing hands should tie: %d vs %d", a, b)
	}
}

func TestEvaluateWheelStraight(t *testing.T) {
	t.Parallel()

	wheel := mustEvaluate(t, "As 2d 3c 4h 5s")
	sixHigh := mustEvaluate(t, "2d 3c 4h 5s 6s")
	pair := mustEvaluate(t, "As Ad 9c 7h 4s")

	if wheel.Compare(pair) <= 0 {
		t.Error("Wheel straight should beat a pair")
	}
	if sixHigh.Compare(wheel) <= 0 {
		t.Error("Six-high straight should beat the wheel")
	}
}

func TestEvaluateSixCards(t *testing.T) {
	t.Parallel()

	// Flush is only visible if the best-of-six search works.
	sixCard := mustEvaluate(t, "As Ks 9s 7s 4s 3d")
	fiveCard := mustEvaluate(t, "As Ks 9s 7s 4s")
	if sixCard.Compare(fiveCard) != 0 {
		t.Errorf("Adding an offsuit rag should not change the flush rank: %d vs %d", sixCard, fiveCard)
	}
}

func TestEvaluateCardCountBounds(t *testing.T) {
	t.Parallel()

	if _, err := Evaluate(MustParseCards("As Kd")); err == nil {
		t.Error("Evaluating 2 cards should fail")
	}
	if _, err := Evaluate(nil); err == nil {
		t.Error("Evaluating 0 cards should fail")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	if desc := Describe(MustParseCards("As Ad 9c 9h 4s 3d 2c")); desc == "" {
		t.Error("Describe should produce a description for a valid hand")
	}
}
