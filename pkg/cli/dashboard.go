package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hadari24/blackjack-network/pkg/tui"
)

// dashboardCmd launches the interactive TUI dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive dealer dashboard",
	Long: `Launch an interactive terminal dashboard showing a running dealer's
numbers: the overview tab aggregates matches, rounds, and win rates, the
matches tab lists recent matches. Data is refreshed every 2 seconds from
the dealer's stats API.

Key bindings:
  Tab / Shift+Tab  Navigate between tabs
  1 / 2            Jump directly to Overview / Matches
  r                Force an immediate data refresh
  q / Ctrl+C       Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.New(statsClient), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
