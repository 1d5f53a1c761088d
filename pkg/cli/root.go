// Package cli implements the blackjack command tree: serve runs a dealer,
// play joins one, and the rest read a running dealer's stats API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadari24/blackjack-network/pkg/config"
	"github.com/hadari24/blackjack-network/pkg/output"
	"github.com/hadari24/blackjack-network/pkg/statsapi"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
	statsURL     string

	// Shared state set during PersistentPreRun
	cfg         *config.Config
	statsClient *statsapi.Client
	formatter   output.Formatter
)

// rootCmd is the base command for blackjack.
var rootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Discoverable network blackjack: run a dealer or join one",
	Long: `Blackjack runs casino tables over the local network. A dealer
broadcasts offers over UDP until a player picks one up, connects over
TCP, and plays out a match. The same binary serves both sides of the
table, plus a stats API and dashboard for watching a dealer work.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags
		if statsURL != "" {
			cfg.StatsURL = statsURL
		}
		if outputFormat != "" {
			cfg.OutputFormat = outputFormat
		}

		statsClient = statsapi.NewClient(cfg.StatsURL)
		formatter = output.NewFormatter(cfg.OutputFormat)

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// RootCmd returns the root cobra.Command for testing purposes.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.blackjack/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml (default \"table\")")
	rootCmd.PersistentFlags().StringVar(&statsURL, "server", "", "dealer stats API URL")
}
