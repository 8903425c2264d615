package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/simulator"
)

type CLI struct {
	Verbose bool `short:"v" help:"Verbose logging"`

	Run  RunCmd  `cmd:"" default:"withargs" help:"Run a bot-vs-bot simulation"`
	Deal DealCmd `cmd:"" help:"Deal a sample hand and show the board"`
}

type RunCmd struct {
	Config    string `short:"c" type:"path" help:"Path to HCL configuration file"`
	Hands     int    `help:"Hands per table (overrides config)"`
	Tables    int    `help:"Parallel tables (overrides config)"`
	Opponents string `help:"Agent mix: fold, call, rand, maniac, mixed (overrides config)"`
	Seed      int64  `help:"RNG seed (0 for time-based)"`
}

func (r *RunCmd) Run(logger *log.Logger) error {
	cfg, err := config.Load(r.Config)
	if err != nil {
		return err
	}
	if r.Hands > 0 {
		cfg.Simulation.Hands = r.Hands
	}
	if r.Tables > 0 {
		cfg.Simulation.Tables = r.Tables
	}
	if r.Opponents != "" {
		cfg.Simulation.Opponents = r.Opponents
	}
	if r.Seed != 0 {
		cfg.Simulation.Seed = r.Seed
	} else if r.Config == "" {
		cfg.Simulation.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	sim, err := simulator.New(simulator.Config{
		Tables:     cfg.Simulation.Tables,
		Hands:      cfg.Simulation.Hands,
		Seats:      cfg.Table.Seats,
		Stack:      cfg.Table.Stack,
		SmallBlind: cfg.Table.SmallBlind,
		BigBlind:   cfg.Table.BigBlind,
		Ante:       cfg.Table.Ante,
		Seed:       cfg.Simulation.Seed,
		Opponents:  cfg.Simulation.Opponents,
		Timeout:    timeout,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf(" %d hands x %d tables vs %s (seed %d) ",
		cfg.Simulation.Hands, cfg.Simulation.Tables, cfg.Simulation.Opponents, cfg.Simulation.Seed)))

	start := time.Now()
	results, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	printSummary(results, cfg, time.Since(start))
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-sim"),
		kong.Description("Texas hold'em engine self-play simulator"),
		kong.UsageOnError(),
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	if err := ctx.Run(logger); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
