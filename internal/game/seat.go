package game

import "github.com/lox/holdem-engine/poker"

// SeatStatus represents what a seat can do in the current hand
type SeatStatus int

const (
	StatusActive SeatStatus = iota
	StatusFolded
	StatusAllIn
	StatusSittingOut
)

func (s SeatStatus) String() string {
	return [...]string{"active", "folded", "allin", "sitting-out"}[s]
}

// Seat is the per-player money and status ledger. CurrentBet tracks
// chips committed this street; TotalCommitted tracks the whole hand and
// drives side-pot math. Stack + TotalCommitted is conserved from deal
// to settlement.
type Seat struct {
	ID             int
	Name           string
	Stack          int
	HoleCards      []poker.Card
	CurrentBet     int
	TotalCommitted int
	Status         SeatStatus
	HasActed       bool
	Net            int // cumulative profit/loss across hands, reporting only
}

// CanAct returns true if the seat may still take betting actions
func (s *Seat) CanAct() bool {
	return s.Status == StatusActive
}

// InHand returns true if the seat holds live cards
func (s *Seat) InHand() bool {
	return s.Status == StatusActive || s.Status == StatusAllIn
}

// commit moves chips from the stack into the street bet and hand
// commitment, capped at the remaining stack. A seat that commits its
// whole stack goes all-in.
func (s *Seat) commit(amount int) int {
	if amount > s.Stack {
		amount = s.Stack
	}
	s.Stack -= amount
	s.CurrentBet += amount
	s.TotalCommitted += amount
	if s.Stack == 0 && s.Status == StatusActive {
		s.Status = StatusAllIn
	}
	return amount
}

// commitAnte moves dead money into the hand commitment without raising
// the street bet.
func (s *Seat) commitAnte(amount int) int {
	if amount > s.Stack {
		amount = s.Stack
	}
	s.Stack -= amount
	s.TotalCommitted += amount
	if s.Stack == 0 && s.Status == StatusActive {
		s.Status = StatusAllIn
	}
	return amount
}
