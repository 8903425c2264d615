package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Tables     int // independent tables, played in parallel
	Hands      int // hands per table
	Seats      int
	Stack      int
	SmallBlind int
	BigBlind   int
	Ante       int
	Seed       int64
	Opponents  string // fold, call, rand, maniac or mixed
	Timeout    time.Duration
	Logger     *log.Logger
	Clock      quartz.Clock // injectable for tests, defaults to real time
}

// Results aggregates the outcome of a simulation run. Every hand is
// audited for chip conservation before it is counted.
type Results struct {
	Hands      int
	Showdowns  int                // hands decided by evaluation rather than folds
	PotSizes   *statistics.Sample // final pot sizes in big blinds
	NetByAgent map[string]int     // cumulative profit/loss per agent label
}

func newResults() *Results {
	return &Results{
		PotSizes:   &statistics.Sample{},
		NetByAgent: make(map[string]int),
	}
}

func (r *Results) merge(other *Results) {
	r.Hands += other.Hands
	r.Showdowns += other.Showdowns
	r.PotSizes.Merge(other.PotSizes)
	for label, net := range other.NetByAgent {
		r.NetByAgent[label] += net
	}
}

// Simulator plays seeded self-play hands between bot agents
type Simulator struct {
	cfg   Config
	clock quartz.Clock
}

// New creates a new simulator with the given configuration
func New(cfg Config) (*Simulator, error) {
	if cfg.Tables <= 0 {
		cfg.Tables = 1
	}
	if cfg.Seats < 2 {
		return nil, fmt.Errorf("simulation needs at least 2 seats, got %d", cfg.Seats)
	}
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("simulation needs at least 1 hand, got %d", cfg.Hands)
	}
	if cfg.Stack <= cfg.BigBlind {
		return nil, fmt.Errorf("stack of %d cannot cover the big blind", cfg.Stack)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(nil, log.Options{Level: log.WarnLevel})
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{cfg: cfg, clock: clock}, nil
}

// Run plays every configured hand and returns the aggregated results.
// Tables are independent and run concurrently; each hand reseeds its own
// RNG so results are reproducible regardless of scheduling.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	g, ctx := errgroup.WithContext(ctx)

	perTable := make([]*Results, s.cfg.Tables)
	for i := 0; i < s.cfg.Tables; i++ {
		i := i
		g.Go(func() error {
			results, err := s.runTable(ctx, i)
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			perTable[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := newResults()
	for _, r := range perTable {
		total.merge(r)
	}
	return total, nil
}

func (s *Simulator) runTable(ctx context.Context, tableIdx int) (*Results, error) {
	results := newResults()

	for hand := 0; hand < s.cfg.Hands; hand++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// One seed per hand keeps every deal reproducible and
		// independent of how the tables interleave.
		handSeed := s.cfg.Seed + int64(tableIdx)*int64(s.cfg.Hands) + int64(hand)
		if err := s.playHand(results, handSeed, hand); err != nil {
			return nil, fmt.Errorf("hand %d (seed %d): %w", hand, handSeed, err)
		}
	}
	return results, nil
}

// playHand deals one hand on a fresh table and folds its outcome into
// results. Agent seating rotates with the hand index so no agent type
// camps on the button.
func (s *Simulator) playHand(results *Results, handSeed int64, handIdx int) error {
	rng := rand.New(rand.NewSource(handSeed))
	tbl := game.NewTable(rng, game.Config{
		SmallBlind: s.cfg.SmallBlind,
		BigBlind:   s.cfg.BigBlind,
		Ante:       s.cfg.Ante,
	}, s.cfg.Logger)

	agents := make(map[int]bot.Agent, s.cfg.Seats)
	labels := make(map[int]string, s.cfg.Seats)
	for i := 0; i < s.cfg.Seats; i++ {
		kind := s.agentKind(i + handIdx)
		agent, err := newAgent(kind, rng)
		if err != nil {
			return err
		}
		seat, err := tbl.AddSeat(fmt.Sprintf("%s-%d", kind, i), s.cfg.Stack)
		if err != nil {
			return err
		}
		agents[seat.ID] = agent
		labels[seat.ID] = kind
	}

	total := tbl.TotalChips()
	if err := tbl.Deal(); err != nil {
		return err
	}

	for {
		for !tbl.IsRoundDone() {
			seatID := tbl.ActingSeat()
			view := tbl.SeatView(seatID)
			decision, err := s.actWithTimeout(agents[seatID], view)
			if err != nil {
				return err
			}
			if err := tbl.ApplyAction(seatID, decision.Action, decision.RaiseTo); err != nil {
				return fmt.Errorf("agent %s: %w", agents[seatID].Name(), err)
			}
		}
		if tbl.CurrentHand().Street == game.Showdown || tbl.NonFoldedSeats() <= 1 {
			break
		}
		if err := tbl.NextRound(); err != nil {
			return err
		}
	}

	contested := tbl.NonFoldedSeats() > 1
	potSize := tbl.PotTotal()

	settlement, err := tbl.Showdown()
	if err != nil {
		return err
	}
	if got := tbl.TotalChips(); got != total {
		return fmt.Errorf("chips not conserved: started with %d, ended with %d", total, got)
	}

	results.Hands++
	if contested {
		results.Showdowns++
	}
	results.PotSizes.Add(float64(potSize) / float64(s.cfg.BigBlind))
	for seatID, net := range settlement.Net {
		results.NetByAgent[labels[seatID]] += net
	}
	return nil
}

// actWithTimeout guards against an agent that never returns. The timer
// comes from the injected clock so tests can trigger the timeout without
// waiting.
func (s *Simulator) actWithTimeout(agent bot.Agent, view *game.View) (bot.Decision, error) {
	decCh := make(chan bot.Decision, 1)
	go func() {
		decCh <- agent.Act(view)
	}()

	timedOut := make(chan struct{})
	timer := s.clock.AfterFunc(s.cfg.Timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case d := <-decCh:
		return d, nil
	case <-timedOut:
		return bot.Decision{}, fmt.Errorf("agent %s timed out after %s", agent.Name(), s.cfg.Timeout)
	}
}

// agentKind maps a rotated seat index to an agent type
func (s *Simulator) agentKind(idx int) string {
	if s.cfg.Opponents != "mixed" {
		return s.cfg.Opponents
	}
	mix := []string{"call", "rand", "maniac", "fold"}
	return mix[idx%len(mix)]
}

func newAgent(kind string, rng *rand.Rand) (bot.Agent, error) {
	switch kind {
	case "fold":
		return bot.NewFoldBot(), nil
	case "call":
		return bot.NewCallBot(), nil
	case "rand":
		return bot.NewRandBot(rng), nil
	case "maniac":
		return bot.NewManiacBot(), nil
	default:
		return nil, fmt.Errorf("unknown agent type %q", kind)
	}
}
