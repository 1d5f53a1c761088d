package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hadari24/blackjack-network/pkg/stats"
)

// outcomeColor returns a lipgloss foreground colour for a match record. A
// faulted match reads red, a match the player won on balance green.
func outcomeColor(rec stats.MatchRecord) lipgloss.Color {
	switch {
	case rec.Fault != "":
		return lipgloss.Color("1") // red
	case rec.Wins > rec.Losses:
		return lipgloss.Color("2") // green
	case rec.Losses > rec.Wins:
		return lipgloss.Color("3") // yellow
	default:
		return lipgloss.Color("8") // grey
	}
}

// renderMatches renders the Matches tab content as a lipgloss-styled table
// and returns it as a string. width constrains the overall column layout.
func renderMatches(recs []stats.MatchRecord, width int) string {
	if len(recs) == 0 {
		return dimStyle.Render("  No matches played yet.")
	}

	colPlayer := colWidth(width, 0.22)
	colRounds := colWidth(width, 0.10)
	colScore := colWidth(width, 0.16)
	colEnded := colWidth(width, 0.16)
	colFault := colWidth(width, 0.28)

	header := strings.Join([]string{
		headerCellStyle.Width(colPlayer).Render("PLAYER"),
		headerCellStyle.Width(colRounds).Render("ROUNDS"),
		headerCellStyle.Width(colScore).Render("W/L/T"),
		headerCellStyle.Width(colEnded).Render("ENDED"),
		headerCellStyle.Width(colFault).Render("FAULT"),
	}, "")

	var rows []string
	rows = append(rows, header)
	for i, rec := range recs {
		style := rowStyle
		if i%2 == 0 {
			style = altRowStyle
		}

		ended := "-"
		if !rec.EndedAt.IsZero() {
			ended = rec.EndedAt.Format("15:04:05")
		}
		score := fmt.Sprintf("%d/%d/%d", rec.Wins, rec.Losses, rec.Ties)
		scoreCell := lipgloss.NewStyle().
			Width(colScore).
			Foreground(outcomeColor(rec)).
			Render(truncate(score, colScore-1))

		row := strings.Join([]string{
			style.Width(colPlayer).Render(truncate(rec.ClientName, colPlayer-1)),
			style.Width(colRounds).Render(fmt.Sprintf("%d/%d", rec.Rounds(), rec.Requested)),
			scoreCell,
			style.Width(colEnded).Render(ended),
			style.Width(colFault).Render(truncate(rec.Fault, colFault-1)),
		}, "")
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

// colWidth converts a fractional width into an integer column width, leaving
// a small gutter between columns.
func colWidth(totalWidth int, fraction float64) int {
	w := int(float64(totalWidth) * fraction)
	if w < 8 {
		w = 8
	}
	return w
}

// truncate shortens s to maxLen runes, appending "…" if truncation occurred.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return fmt.Sprintf("%s…", string(runes[:maxLen-1]))
}
