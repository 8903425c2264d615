// Package config loads simulation configuration from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents a complete simulation configuration
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Table      TableSettings      `hcl:"table,block"`
}

// SimulationSettings controls how many hands are played and by whom
type SimulationSettings struct {
	Hands     int    `hcl:"hands,optional"`
	Tables    int    `hcl:"tables,optional"`
	Seed      int64  `hcl:"seed,optional"`
	Opponents string `hcl:"opponents,optional"`
	Timeout   string `hcl:"timeout,optional"`
	LogLevel  string `hcl:"log_level,optional"`
}

// TableSettings defines the stakes and seating for every table
type TableSettings struct {
	Seats      int `hcl:"seats,optional"`
	Stack      int `hcl:"stack,optional"`
	SmallBlind int `hcl:"small_blind"`
	BigBlind   int `hcl:"big_blind"`
	Ante       int `hcl:"ante,optional"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Hands:     1000,
			Tables:    1,
			Seed:      1,
			Opponents: "mixed",
			Timeout:   "5s",
			LogLevel:  "info",
		},
		Table: TableSettings{
			Seats:      6,
			Stack:      2000,
			SmallBlind: 10,
			BigBlind:   20,
			Ante:       0,
		},
	}
}

// Load reads an HCL configuration file, applying defaults for anything
// left unset. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Simulation.Hands == 0 {
		cfg.Simulation.Hands = defaults.Simulation.Hands
	}
	if cfg.Simulation.Tables == 0 {
		cfg.Simulation.Tables = defaults.Simulation.Tables
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = defaults.Simulation.Seed
	}
	if cfg.Simulation.Opponents == "" {
		cfg.Simulation.Opponents = defaults.Simulation.Opponents
	}
	if cfg.Simulation.Timeout == "" {
		cfg.Simulation.Timeout = defaults.Simulation.Timeout
	}
	if cfg.Simulation.LogLevel == "" {
		cfg.Simulation.LogLevel = defaults.Simulation.LogLevel
	}
	if cfg.Table.Seats == 0 {
		cfg.Table.Seats = defaults.Table.Seats
	}
	if cfg.Table.Stack == 0 {
		cfg.Table.Stack = cfg.Table.BigBlind * 100
	}

	return &cfg, nil
}

// Validate checks the configuration for values the engine would reject
func (c *Config) Validate() error {
	if c.Simulation.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Simulation.Hands)
	}
	if c.Simulation.Tables <= 0 {
		return fmt.Errorf("tables must be positive, got %d", c.Simulation.Tables)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	switch c.Simulation.Opponents {
	case "fold", "call", "rand", "maniac", "mixed":
	default:
		return fmt.Errorf("unknown opponents type %q", c.Simulation.Opponents)
	}

	if c.Table.Seats < 2 || c.Table.Seats > 10 {
		return fmt.Errorf("seats must be between 2 and 10, got %d", c.Table.Seats)
	}
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", c.Table.SmallBlind)
	}
	if c.Table.BigBlind < c.Table.SmallBlind {
		return fmt.Errorf("big blind %d cannot be below the small blind %d", c.Table.BigBlind, c.Table.SmallBlind)
	}
	if c.Table.Ante < 0 {
		return fmt.Errorf("ante cannot be negative, got %d", c.Table.Ante)
	}
	if c.Table.Stack <= c.Table.BigBlind {
		return fmt.Errorf("stack of %d cannot cover the big blind", c.Table.Stack)
	}
	return nil
}

// TimeoutDuration parses the per-decision timeout
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.Simulation.Timeout)
}
