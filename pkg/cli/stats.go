package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matchesLimit int

// statsCmd shows a running dealer's aggregate numbers.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a running dealer's numbers",
	Long:  "Read the summary, recent matches, or a single match from a dealer's stats API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := statsClient.Summary()
		if err != nil {
			return fmt.Errorf("failed to read stats: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(sum))
		return nil
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recent matches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		recs, err := statsClient.Matches(matchesLimit)
		if err != nil {
			return fmt.Errorf("failed to list matches: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(recs))
		return nil
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <id>",
	Short: "Show one match by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := statsClient.Match(args[0])
		if err != nil {
			return fmt.Errorf("failed to get match: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(rec))
		return nil
	},
}

func init() {
	matchesCmd.Flags().IntVar(&matchesLimit, "limit", 20, "most matches to list")
	statsCmd.AddCommand(matchesCmd)
	statsCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(statsCmd)
}
