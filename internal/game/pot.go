package game

import "sort"

// Pot is one wagering tier of the total pool. Eligible holds the seat
// IDs that can win it: seats whose commitment covers the tier and that
// have not folded.
type Pot struct {
	Amount   int
	Tier     int // max contribution per seat counted into this pot
	Eligible []int
}

// buildPots partitions the seats' hand commitments into a main pot and
// one side pot per distinct all-in tier. Pots are derived data: this is
// recomputed from TotalCommitted whenever needed, never kept up to date
// incrementally.
//
// For tiers t_1 < t_2 < ... each seat contributes
// min(committed, t_i) - min(committed, t_{i-1}) to pot i.
func buildPots(seats []*Seat) []Pot {
	tierSet := make(map[int]bool)
	for _, s := range seats {
		if s.TotalCommitted > 0 {
			tierSet[s.TotalCommitted] = true
		}
	}
	if len(tierSet) == 0 {
		return nil
	}

	tiers := make([]int, 0, len(tierSet))
	for t := range tierSet {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)

	pots := make([]Pot, 0, len(tiers))
	prev := 0
	for _, tier := range tiers {
		pot := Pot{Tier: tier}
		for _, s := range seats {
			contribution := min(s.TotalCommitted, tier) - min(s.TotalCommitted, prev)
			pot.Amount += contribution
			if s.TotalCommitted >= tier && s.Status != StatusFolded && s.Status != StatusSittingOut {
				pot.Eligible = append(pot.Eligible, s.ID)
			}
		}
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		prev = tier
	}

	return pots
}

// potContributors returns the seats that put chips into the tier
// between prev and tier, with the amount each contributed. Used to
// refund a pot nobody is eligible for (an uncalled over-commitment by
// a seat that later folded).
func potContributors(seats []*Seat, prev, tier int) map[int]int {
	contributions := make(map[int]int)
	for _, s := range seats {
		c := min(s.TotalCommitted, tier) - min(s.TotalCommitted, prev)
		if c > 0 {
			contributions[s.ID] = c
		}
	}
	return contributions
}

// potShares divides amount equally into n shares, handing remainder
// chips one at a time to the earliest shares. Callers pass winners
// sorted clockwise from the seat after the button, which makes odd-chip
// assignment deterministic and reproducible.
func potShares(amount, n int) []int {
	if n <= 0 {
		return nil
	}

	share := amount / n
	remainder := amount % n

	shares := make([]int, n)
	for i := range shares {
		shares[i] = share
		if i < remainder {
			shares[i]++
		}
	}
	return shares
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
