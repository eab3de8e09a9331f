package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fairsweep",
	Short: "Analyzer for ns-3 UL-OFDMA mixed 11ac/11ax fairness sweeps",
	Long: `fairsweep turns the free-text logs of an ns-3 UL-OFDMA fairness sweep
into tables and figures: it parses every per-configuration result block,
selects the best fairness-feasible throughput per scenario, and plots
observed results against optional model predictions.`,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
