package simulator

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/game"
)

func baseConfig() Config {
	return Config{
		Tables:     1,
		Hands:      25,
		Seats:      4,
		Stack:      1000,
		SmallBlind: 10,
		BigBlind:   20,
		Seed:       12345,
		Opponents:  "mixed",
		Timeout:    5 * time.Second,
	}
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Seats = 1
	_, err := New(cfg)
	require.Error(t, err)

	cfg = baseConfig()
	cfg.Hands = 0
	_, err = New(cfg)
	require.Error(t, err)

	cfg = baseConfig()
	cfg.Stack = 20
	_, err = New(cfg)
	require.Error(t, err)
}

func TestRunMixedAgents(t *testing.T) {
	t.Parallel()

	sim, err := New(baseConfig())
	require.NoError(t, err)

	results, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, results.Hands)
	assert.Equal(t, 25, results.PotSizes.N)
	assert.Greater(t, results.PotSizes.Max(), 0.0)

	// Every chip an agent wins is a chip another agent lost.
	netSum := 0
	for _, net := range results.NetByAgent {
		netSum += net
	}
	assert.Zero(t, netSum, "agent nets must sum to zero")
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	run := func() *Results {
		sim, err := New(baseConfig())
		require.NoError(t, err)
		results, err := sim.Run(context.Background())
		require.NoError(t, err)
		return results
	}

	assert.Equal(t, run(), run(), "same seed must reproduce identical results")
}

func TestRunParallelTables(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Tables = 4
	cfg.Hands = 10

	sim, err := New(cfg)
	require.NoError(t, err)

	results, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, results.Hands)
}

func TestFoldBotsNeverSeeShowdown(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Opponents = "fold"
	cfg.Hands = 10

	sim, err := New(cfg)
	require.NoError(t, err)

	results, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, results.Showdowns, "fold-bots always surrender the blinds")
}

func TestCallBotsAlwaysSeeShowdown(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Opponents = "call"
	cfg.Hands = 10

	sim, err := New(cfg)
	require.NoError(t, err)

	results, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, results.Hands, results.Showdowns, "call-bots check and call to every showdown")
}

func TestUnknownOpponentType(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Opponents = "psychic"
	cfg.Hands = 1

	sim, err := New(cfg)
	require.NoError(t, err)

	_, err = sim.Run(context.Background())
	require.Error(t, err)
}

// stuckAgent never returns a decision
type stuckAgent struct{}

func (stuckAgent) Name() string { return "stuck" }

func (stuckAgent) Act(view *game.View) bot.Decision {
	select {}
}

func TestActWithTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	cfg := baseConfig()
	cfg.Clock = mock
	sim, err := New(cfg)
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		_, err := sim.actWithTimeout(stuckAgent{}, nil)
		errCh <- err
	}()

	// Wait for the guard timer to be armed, then fire it.
	call := trap.MustWait(ctx)
	call.Release(ctx)
	mock.Advance(cfg.Timeout).MustWait(ctx)

	err = <-errCh
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
