package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hadari24/blackjack-network/pkg/stats"
)

// renderOverview renders the Overview tab: the dealer's aggregate numbers
// as label/value lines. width constrains the label column.
func renderOverview(sum stats.Summary, width int) string {
	if sum.DealerName == "" {
		return dimStyle.Render("  Waiting for the first refresh.")
	}

	labelWidth := colWidth(width, 0.25)

	line := func(label, value string) string {
		return labelStyle.Width(labelWidth).Render(label) + value
	}

	rate := 0.0
	if rounds := sum.PlayerWins + sum.PlayerLosses + sum.PlayerTies; rounds > 0 {
		rate = float64(sum.PlayerWins) / float64(rounds) * 100
	}

	tableState := dimStyle.Render("idle")
	if sum.InMatch {
		tableState = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Render("playing " + sum.CurrentPlayer)
	}

	lines := []string{
		line("DEALER", sum.DealerName),
		line("UPTIME", (time.Duration(sum.UptimeSeconds) * time.Second).String()),
		line("TABLE", tableState),
		"",
		line("MATCHES", fmt.Sprintf("%d", sum.Matches)),
		line("ROUNDS", fmt.Sprintf("%d", sum.Rounds)),
		line("PLAYER W/L/T", fmt.Sprintf("%d / %d / %d", sum.PlayerWins, sum.PlayerLosses, sum.PlayerTies)),
		line("PLAYER WIN RATE", fmt.Sprintf("%.1f%%", rate)),
		line("FAULTS", fmt.Sprintf("%d", sum.Faults)),
	}

	return strings.Join(lines, "\n")
}
