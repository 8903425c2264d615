package game

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/poker"
)

// Config holds the table stakes
type Config struct {
	SmallBlind int
	BigBlind   int
	Ante       int
}

// Table owns one table's seats across consecutive hands and is the
// engine's entire mutation surface. It is single-threaded by design:
// ApplyAction is processed to completion before the next call, so no
// locking exists here. Independent tables never share state and may run
// in parallel.
type Table struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
	seats  []*Seat
	button int
	hand   *Hand
	hands  int
}

// NewTable creates a table. The RNG is required so deck shuffles are
// reproducible from a seed; a nil logger discards output.
func NewTable(rng *rand.Rand, cfg Config, logger *log.Logger) *Table {
	if rng == nil {
		panic("rng is required for table creation")
	}
	if cfg.BigBlind <= 0 || cfg.SmallBlind <= 0 || cfg.SmallBlind > cfg.BigBlind {
		panic(fmt.Sprintf("invalid blinds %d/%d", cfg.SmallBlind, cfg.BigBlind))
	}
	if cfg.Ante < 0 {
		panic("ante cannot be negative")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Table{
		cfg:    cfg,
		rng:    rng,
		logger: logger.WithPrefix("table"),
	}
}

// AddSeat seats a new player with the given buy-in. Seats join sitting
// out and are dealt in from the next hand.
func (t *Table) AddSeat(name string, buyIn int) (*Seat, error) {
	if t.HandInProgress() {
		return nil, contractErr("add_seat", "hand %s in progress", t.hand.ID)
	}
	if buyIn <= 0 {
		return nil, fmt.Errorf("buy-in must be positive, got %d", buyIn)
	}
	s := &Seat{
		ID:     len(t.seats),
		Name:   name,
		Stack:  buyIn,
		Status: StatusActive,
	}
	t.seats = append(t.seats, s)
	return s, nil
}

// SitOut marks a seat to be skipped by future deals
func (t *Table) SitOut(seatID int) error {
	if t.HandInProgress() {
		return contractErr("sit_out", "hand %s in progress", t.hand.ID)
	}
	s := t.Seat(seatID)
	if s == nil {
		return fmt.Errorf("unknown seat %d", seatID)
	}
	s.Status = StatusSittingOut
	return nil
}

// SitIn returns a seat to the rotation if it has chips
func (t *Table) SitIn(seatID int) error {
	if t.HandInProgress() {
		return contractErr("sit_in", "hand %s in progress", t.hand.ID)
	}
	s := t.Seat(seatID)
	if s == nil {
		return fmt.Errorf("unknown seat %d", seatID)
	}
	if s.Stack == 0 {
		return fmt.Errorf("seat %d has no chips", seatID)
	}
	s.Status = StatusActive
	return nil
}

// Seat returns the seat with the given ID, or nil
func (t *Table) Seat(id int) *Seat {
	if id < 0 || id >= len(t.seats) {
		return nil
	}
	return t.seats[id]
}

// Seats returns all seats at the table
func (t *Table) Seats() []*Seat {
	return t.seats
}

// Button returns the current dealer position
func (t *Table) Button() int {
	return t.button
}

// CurrentHand returns the hand in play (or the last settled hand)
func (t *Table) CurrentHand() *Hand {
	return t.hand
}

// HandInProgress reports whether a hand has been dealt and not settled
func (t *Table) HandInProgress() bool {
	return t.hand != nil && !t.hand.settled
}

// ActingSeat returns the seat ID due to act, or -1
func (t *Table) ActingSeat() int {
	if !t.HandInProgress() {
		return -1
	}
	return t.hand.Acting
}

// NonFoldedSeats counts seats still holding live cards
func (t *Table) NonFoldedSeats() int {
	count := 0
	for _, s := range t.seats {
		if s.InHand() {
			count++
		}
	}
	return count
}

// PotTotal returns the chips wagered so far this hand, including
// uncollected street bets
func (t *Table) PotTotal() int {
	total := 0
	for _, s := range t.seats {
		total += s.TotalCommitted
	}
	return total
}

// Pots returns the current pot partition, derived from commitments
func (t *Table) Pots() []Pot {
	return buildPots(t.seats)
}

// TotalChips sums stacks and live commitments. Constant for the life of
// the table; the conservation tests lean on this.
func (t *Table) TotalChips() int {
	total := 0
	for _, s := range t.seats {
		total += s.Stack + s.TotalCommitted
	}
	return total
}

// Deal begins a new hand: rotates the button, posts antes and blinds,
// and deals two hole cards to every seat with chips that isn't sitting
// out. Fails with ErrNotEnoughSeats before touching any state.
func (t *Table) Deal() error {
	if t.HandInProgress() {
		return contractErr("deal", "hand %s still in progress", t.hand.ID)
	}

	dealtIn := 0
	for _, s := range t.seats {
		if t.canDealIn(s) {
			dealtIn++
		}
	}
	if dealtIn < 2 {
		return ErrNotEnoughSeats
	}

	// Rotate the button to the next dealt-in seat (the first hand keeps
	// it wherever it lands).
	start := t.button
	if t.hands > 0 {
		start = t.button + 1
	}
	t.button = t.nextSeatWhere(start, t.canDealIn)

	for _, s := range t.seats {
		s.HoleCards = nil
		s.CurrentBet = 0
		s.TotalCommitted = 0
		s.HasActed = false
		if t.canDealIn(s) {
			s.Status = StatusActive
		} else {
			s.Status = StatusSittingOut
		}
	}

	t.hand = newHand(poker.NewDeck(t.rng), t.cfg.BigBlind)
	t.hands++

	if t.cfg.Ante > 0 {
		for _, s := range t.seats {
			if s.Status == StatusActive {
				s.commitAnte(t.cfg.Ante)
			}
		}
	}

	// Heads-up the button posts the small blind and acts first preflop;
	// otherwise blinds sit left of the button and action starts after
	// the big blind.
	var sb, bb int
	if dealtIn == 2 {
		sb = t.button
		bb = t.nextSeatWhere(t.button+1, (*Seat).InHand)
	} else {
		sb = t.nextSeatWhere(t.button+1, (*Seat).InHand)
		bb = t.nextSeatWhere(sb+1, (*Seat).InHand)
	}
	t.seats[sb].commit(t.cfg.SmallBlind)
	t.seats[bb].commit(t.cfg.BigBlind)
	t.hand.CurrentBet = t.cfg.BigBlind

	for _, s := range t.seats {
		if s.InHand() {
			s.HoleCards = t.hand.deck.Deal(2)
		}
	}

	if dealtIn == 2 {
		t.hand.Acting = t.nextSeatWhere(sb, (*Seat).CanAct)
	} else {
		t.hand.Acting = t.nextSeatWhere(bb+1, (*Seat).CanAct)
	}

	t.logger.Debug("dealt hand",
		"hand", t.hand.ID,
		"button", t.button,
		"sb", sb,
		"bb", bb,
		"seats", dealtIn)

	return nil
}

// canDealIn reports whether a seat joins the next hand
func (t *Table) canDealIn(s *Seat) bool {
	return s.Status != StatusSittingOut && s.Stack > 0
}

// ApplyAction is the sole mutation entry point during betting. It
// rejects illegal actions with an InvalidActionError and leaves state
// untouched; it never coerces an action into a legal one.
func (t *Table) ApplyAction(seatID int, action Action, raiseTo int) error {
	if !t.HandInProgress() {
		return contractErr("apply_action", "no hand in progress")
	}
	h := t.hand
	if h.Street == Showdown {
		return contractErr("apply_action", "betting is complete")
	}

	s := t.Seat(seatID)
	if s == nil {
		return &InvalidActionError{Seat: seatID, Action: action, Reason: ReasonCannotAct, Detail: "unknown seat"}
	}
	if !s.CanAct() {
		return &InvalidActionError{Seat: seatID, Action: action, Reason: ReasonCannotAct, Detail: s.Status.String()}
	}
	if seatID != h.Acting {
		return &InvalidActionError{Seat: seatID, Action: action, Reason: ReasonOutOfTurn}
	}

	switch action {
	case Fold:
		s.Status = StatusFolded
		s.HasActed = true

	case Check:
		if s.CurrentBet != h.CurrentBet {
			return &InvalidActionError{
				Seat: seatID, Action: action, Reason: ReasonIllegalAction,
				Detail: fmt.Sprintf("must call %d", h.CurrentBet-s.CurrentBet),
			}
		}
		s.HasActed = true

	case Call:
		toCall := h.CurrentBet - s.CurrentBet
		if toCall <= 0 {
			return &InvalidActionError{
				Seat: seatID, Action: action, Reason: ReasonIllegalAction,
				Detail: "nothing to call",
			}
		}
		// A stack that can't cover the call goes all-in on the short call.
		s.commit(toCall)
		s.HasActed = true

	case Raise:
		maxTo := s.CurrentBet + s.Stack
		switch {
		case raiseTo <= h.CurrentBet:
			return &InvalidActionError{
				Seat: seatID, Action: action, Reason: ReasonRaiseTooSmall,
				Detail: fmt.Sprintf("raise to %d does not exceed bet of %d", raiseTo, h.CurrentBet),
			}
		case raiseTo > maxTo:
			return &InvalidActionError{
				Seat: seatID, Action: action, Reason: ReasonInsufficientChips,
				Detail: fmt.Sprintf("raise to %d exceeds stack, max %d", raiseTo, maxTo),
			}
		case raiseTo < h.CurrentBet+h.MinRaise && raiseTo != maxTo:
			// Going all-in below the minimum raise is the one exception.
			return &InvalidActionError{
				Seat: seatID, Action: action, Reason: ReasonRaiseTooSmall,
				Detail: fmt.Sprintf("minimum raise is to %d", h.CurrentBet+h.MinRaise),
			}
		}
		h.MinRaise = raiseTo - h.CurrentBet
		h.CurrentBet = raiseTo
		s.commit(raiseTo - s.CurrentBet)
		t.reopenAction(seatID)
		s.HasActed = true

	case AllIn:
		newBet := s.CurrentBet + s.Stack
		s.commit(s.Stack)
		if newBet > h.CurrentBet {
			h.MinRaise = newBet - h.CurrentBet
			h.CurrentBet = newBet
			t.reopenAction(seatID)
		}
		s.HasActed = true

	default:
		return &InvalidActionError{
			Seat: seatID, Action: action, Reason: ReasonIllegalAction,
			Detail: "unknown action",
		}
	}

	t.logger.Debug("action applied",
		"hand", h.ID,
		"street", h.Street,
		"seat", seatID,
		"action", action,
		"tableBet", h.CurrentBet)

	if t.IsRoundDone() {
		h.Acting = -1
	} else {
		h.Acting = t.nextSeatWhere(seatID+1, (*Seat).CanAct)
	}
	return nil
}

// reopenAction makes every other live seat act again after a raise
func (t *Table) reopenAction(raiser int) {
	for _, s := range t.seats {
		if s.ID != raiser && s.Status == StatusActive {
			s.HasActed = false
		}
	}
}

// LegalActions returns the actions the seat may take right now,
// annotated with call amounts and raise bounds. Empty unless the seat
// is due to act. This is the single source of truth any action-masking
// layer derives from.
func (t *Table) LegalActions(seatID int) []LegalAction {
	if !t.HandInProgress() || t.hand.Street == Showdown {
		return nil
	}
	h := t.hand
	s := t.Seat(seatID)
	if s == nil || seatID != h.Acting || !s.CanAct() {
		return nil
	}

	toCall := h.CurrentBet - s.CurrentBet
	maxRaiseTo := s.CurrentBet + s.Stack
	minRaiseTo := h.CurrentBet + h.MinRaise
	if maxRaiseTo < minRaiseTo {
		minRaiseTo = maxRaiseTo
	}

	actions := []LegalAction{{Action: Fold}}
	if toCall == 0 {
		actions = append(actions, LegalAction{Action: Check})
	} else {
		// A short stack may still call; it just goes all-in doing so.
		actions = append(actions, LegalAction{Action: Call, CallAmount: min(toCall, s.Stack)})
	}
	if maxRaiseTo > h.CurrentBet {
		actions = append(actions, LegalAction{Action: Raise, MinRaiseTo: minRaiseTo, MaxRaiseTo: maxRaiseTo})
	}
	if s.Stack > 0 {
		actions = append(actions, LegalAction{Action: AllIn})
	}
	return actions
}

// IsRoundDone reports whether the current betting round is complete:
// every active seat has acted and matched the table bet, or at most one
// seat remains able to act.
func (t *Table) IsRoundDone() bool {
	if !t.HandInProgress() {
		return true
	}
	h := t.hand
	if h.Street == Showdown {
		return true
	}

	var active []*Seat
	for _, s := range t.seats {
		if s.CanAct() {
			active = append(active, s)
		}
	}

	switch len(active) {
	case 0:
		return true
	case 1:
		// The last seat able to act still owes a response to any
		// unmatched bet; once matched there is nobody left to bet into.
		return active[0].CurrentBet == h.CurrentBet
	}

	for _, s := range active {
		if !s.HasActed || s.CurrentBet != h.CurrentBet {
			return false
		}
	}
	return true
}

// NextRound advances to the next street, dealing community cards and
// resetting per-street betting state. Calling it before the round is
// done is a contract violation, not a retryable input error.
func (t *Table) NextRound() error {
	if !t.HandInProgress() {
		return contractErr("next_round", "no hand in progress")
	}
	h := t.hand
	if h.Street == Showdown {
		return contractErr("next_round", "betting is complete, settle with Showdown")
	}
	if !t.IsRoundDone() {
		return contractErr("next_round", "betting round on %s is not done", h.Street)
	}

	// With one seat left holding cards there is nothing more to deal.
	if t.NonFoldedSeats() <= 1 {
		h.Street = Showdown
		h.Acting = -1
		return nil
	}

	for _, s := range t.seats {
		s.CurrentBet = 0
		if s.Status == StatusActive {
			s.HasActed = false
		}
	}
	h.CurrentBet = 0
	h.MinRaise = t.cfg.BigBlind

	switch h.Street {
	case Preflop:
		h.Street = Flop
		h.Board = append(h.Board, h.deck.Deal(3)...)
	case Flop:
		h.Street = Turn
		h.Board = append(h.Board, h.deck.Deal(1)...)
	case Turn:
		h.Street = River
		h.Board = append(h.Board, h.deck.Deal(1)...)
	case River:
		h.Street = Showdown
		h.Acting = -1
		return nil
	}

	// When everyone left is all-in the street is immediately round-done
	// and the caller keeps advancing until showdown.
	h.Acting = t.nextSeatWhere(t.button+1, (*Seat).CanAct)

	t.logger.Debug("street advanced",
		"hand", h.ID,
		"street", h.Street,
		"board", h.Board,
		"pot", t.PotTotal())

	return nil
}

// Showdown resolves the pots, pays every wagered chip to exactly one
// stack, updates per-seat nets and settles the hand. It is a contract
// violation before betting is complete.
func (t *Table) Showdown() (*Settlement, error) {
	if !t.HandInProgress() {
		return nil, contractErr("showdown", "no hand in progress")
	}
	h := t.hand
	if h.Street != Showdown && t.NonFoldedSeats() > 1 {
		return nil, contractErr("showdown", "betting is not complete on %s", h.Street)
	}

	settlement := t.settle()
	h.settled = true
	h.Acting = -1

	t.logger.Debug("hand settled",
		"hand", h.ID,
		"pots", len(settlement.Pots),
		"payouts", settlement.Payouts)

	return settlement, nil
}

func (t *Table) settle() *Settlement {
	h := t.hand
	pots := buildPots(t.seats)

	payouts := make(map[int]int)
	results := make([]PotResult, 0, len(pots))

	prevTier := 0
	for _, pot := range pots {
		result := PotResult{Amount: pot.Amount, Eligible: pot.Eligible}

		switch {
		case len(pot.Eligible) == 0:
			// Every seat covering this tier folded: hand the chips back
			// to whoever put them in, like returning an uncalled bet.
			for id, c := range potContributors(t.seats, prevTier, pot.Tier) {
				t.seats[id].Stack += c
				payouts[id] += c
			}
			result.Description = "uncalled chips returned"

		case len(pot.Eligible) == 1:
			id := pot.Eligible[0]
			t.seats[id].Stack += pot.Amount
			payouts[id] += pot.Amount
			result.Winners = []int{id}
			result.Description = "wins uncontested"

		default:
			winners, desc := t.evaluatePot(pot)
			ordered := t.buttonOrder(winners)
			shares := potShares(pot.Amount, len(ordered))
			for i, w := range ordered {
				w.Stack += shares[i]
				payouts[w.ID] += shares[i]
				result.Winners = append(result.Winners, w.ID)
			}
			result.Description = desc
		}

		results = append(results, result)
		prevTier = pot.Tier
	}

	net := make(map[int]int)
	for _, s := range t.seats {
		if s.Status == StatusSittingOut && s.TotalCommitted == 0 {
			continue
		}
		delta := payouts[s.ID] - s.TotalCommitted
		net[s.ID] = delta
		s.Net += delta
		s.TotalCommitted = 0
		s.CurrentBet = 0
	}

	// Busted seats sit out until they rebuy.
	for _, s := range t.seats {
		if s.Status != StatusSittingOut {
			if s.Stack == 0 {
				s.Status = StatusSittingOut
			} else {
				s.Status = StatusActive
			}
		}
	}

	board := make([]poker.Card, len(h.Board))
	copy(board, h.Board)

	return &Settlement{
		HandID:  h.ID,
		Board:   board,
		Pots:    results,
		Payouts: payouts,
		Net:     net,
	}
}

// evaluatePot ranks each eligible seat's best five cards and returns
// the seats tied for the strongest hand.
func (t *Table) evaluatePot(pot Pot) ([]*Seat, string) {
	var best poker.HandRank
	var winners []*Seat

	for _, id := range pot.Eligible {
		s := t.seats[id]
		cards := make([]poker.Card, 0, 7)
		cards = append(cards, s.HoleCards...)
		cards = append(cards, t.hand.Board...)

		rank, err := poker.Evaluate(cards)
		if err != nil {
			// Unreachable at a real showdown; a contested pot always
			// sees a full board.
			continue
		}

		switch {
		case len(winners) == 0 || rank.Compare(best) > 0:
			best = rank
			winners = append(winners[:0], s)
		case rank.Compare(best) == 0:
			winners = append(winners, s)
		}
	}

	desc := ""
	if len(winners) > 0 {
		cards := make([]poker.Card, 0, 7)
		cards = append(cards, winners[0].HoleCards...)
		cards = append(cards, t.hand.Board...)
		desc = poker.Describe(cards)
	}
	return winners, desc
}

// buttonOrder sorts seats clockwise starting from the seat after the
// button. Odd chips are handed out in this order.
func (t *Table) buttonOrder(seats []*Seat) []*Seat {
	n := len(t.seats)
	ordered := make([]*Seat, len(seats))
	copy(ordered, seats)
	sort.Slice(ordered, func(i, j int) bool {
		return (ordered[i].ID-t.button-1+n)%n < (ordered[j].ID-t.button-1+n)%n
	})
	return ordered
}

// nextSeatWhere scans clockwise from the given index for a seat
// matching the predicate, returning its ID or -1.
func (t *Table) nextSeatWhere(from int, pred func(*Seat) bool) int {
	n := len(t.seats)
	for i := 0; i < n; i++ {
		idx := ((from+i)%n + n) % n
		if pred(t.seats[idx]) {
			return idx
		}
	}
	return -1
}
