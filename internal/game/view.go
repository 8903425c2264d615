package game

import "github.com/lox/holdem-engine/poker"

// SeatInfo is one seat as visible to a viewer. HoleCards is populated
// only on the viewer's own entry.
type SeatInfo struct {
	ID             int
	Name           string
	Stack          int
	CurrentBet     int
	TotalCommitted int
	Status         SeatStatus
	HoleCards      []poker.Card
}

// View is a read-only snapshot of the hand from one seat's perspective.
// Everything in it is deep-copied so agents can hold it across actions
// without observing engine mutations, and it carries no way to reach
// another seat's hole cards.
type View struct {
	HandID       string
	Street       Street
	Board        []poker.Card
	Pot          int
	CurrentBet   int
	MinRaiseTo   int
	Button       int
	Acting       int
	SeatID       int
	HoleCards    []poker.Card
	Seats        []SeatInfo
	LegalActions []LegalAction
}

// SeatView builds the snapshot seatID is allowed to see. Returns nil if
// no hand is in progress or the seat doesn't exist.
func (t *Table) SeatView(seatID int) *View {
	if !t.HandInProgress() {
		return nil
	}
	viewer := t.Seat(seatID)
	if viewer == nil {
		return nil
	}

	h := t.hand
	v := &View{
		HandID:       h.ID,
		Street:       h.Street,
		Board:        append([]poker.Card(nil), h.Board...),
		Pot:          t.PotTotal(),
		CurrentBet:   h.CurrentBet,
		MinRaiseTo:   h.CurrentBet + h.MinRaise,
		Button:       t.button,
		Acting:       h.Acting,
		SeatID:       seatID,
		HoleCards:    append([]poker.Card(nil), viewer.HoleCards...),
		Seats:        make([]SeatInfo, 0, len(t.seats)),
		LegalActions: t.LegalActions(seatID),
	}

	for _, s := range t.seats {
		info := SeatInfo{
			ID:             s.ID,
			Name:           s.Name,
			Stack:          s.Stack,
			CurrentBet:     s.CurrentBet,
			TotalCommitted: s.TotalCommitted,
			Status:         s.Status,
		}
		if s.ID == seatID {
			info.HoleCards = append([]poker.Card(nil), s.HoleCards...)
		}
		v.Seats = append(v.Seats, info)
	}

	return v
}

// ToCall returns the chips the viewer needs to match the table bet
func (v *View) ToCall() int {
	for _, s := range v.Seats {
		if s.ID == v.SeatID {
			toCall := v.CurrentBet - s.CurrentBet
			if toCall < 0 {
				return 0
			}
			return toCall
		}
	}
	return 0
}

// Can reports whether the given action is among the legal ones
func (v *View) Can(a Action) bool {
	for _, la := range v.LegalActions {
		if la.Action == a {
			return true
		}
	}
	return false
}

// Legal returns the LegalAction entry for a, if present
func (v *View) Legal(a Action) (LegalAction, bool) {
	for _, la := range v.LegalActions {
		if la.Action == a {
			return la, true
		}
	}
	return LegalAction{}, false
}
