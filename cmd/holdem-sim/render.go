package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/simulator"
	"github.com/lox/holdem-engine/poker"
)

// Static styles for terminal output
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)
)

func renderCard(c poker.Card) string {
	if c.IsRed() {
		return redCardStyle.Render(c.String())
	}
	return blackCardStyle.Render(c.String())
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

func printSummary(results *simulator.Results, cfg *config.Config, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("%s %d\n", labelStyle.Render("hands played:"), results.Hands)
	fmt.Printf("%s %d (%.1f%%)\n", labelStyle.Render("showdowns:"),
		results.Showdowns, pct(results.Showdowns, results.Hands))
	fmt.Printf("%s mean %.1f bb, median %.1f bb, P95 %.1f bb, max %.1f bb\n",
		labelStyle.Render("pot sizes:"),
		results.PotSizes.Mean(), results.PotSizes.Median(),
		results.PotSizes.Percentile(0.95), results.PotSizes.Max())
	fmt.Printf("%s %s (%.0f hands/sec)\n", labelStyle.Render("elapsed:"),
		elapsed.Round(time.Millisecond), float64(results.Hands)/elapsed.Seconds())

	// Stable ordering for the per-agent breakdown.
	agents := make([]string, 0, len(results.NetByAgent))
	for agent := range results.NetByAgent {
		agents = append(agents, agent)
	}
	sort.Strings(agents)

	fmt.Println()
	for _, agent := range agents {
		net := results.NetByAgent[agent]
		bbPerHand := float64(net) / float64(cfg.Table.BigBlind) / float64(results.Hands)
		line := fmt.Sprintf("%+d chips (%+.3f bb/hand)", net, bbPerHand)
		if net >= 0 {
			line = winStyle.Render(line)
		} else {
			line = lossStyle.Render(line)
		}
		fmt.Printf("  %-12s %s\n", agent, line)
	}
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
