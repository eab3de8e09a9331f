package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fairsweep/fairsweep/sweep"
)

var (
	summaryInput   string // Directory holding sweep logs
	summaryPattern string // Glob pattern for sweep log base names
	summaryLog     string // Log verbosity level
)

// summaryCmd loads a sweep corpus and prints per-scenario metric
// distributions without rendering figures
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print per-scenario throughput and fairness distributions",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(summaryLog)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", summaryLog)
		}
		logrus.SetLevel(level)

		if summaryInput == "" {
			logrus.Fatalf("Input directory not provided.")
		}
		table, err := sweep.LoadDir(summaryInput, summaryPattern)
		if err != nil {
			logrus.Fatalf("Loading sweep logs failed: %v", err)
		}
		printDigest(sweep.Summarize(table))
	},
}

func printDigest(stats []sweep.ScenarioStats) {
	fmt.Println("=== Sweep Summary ===")
	fmt.Printf("%-8s %-5s %-10s %-7s %-8s %-30s %s\n",
		"nLegacy", "nHe", "mu", "blocks", "cwPairs", "throughput Mbps (min/mean/max)", "jain (min/mean/max)")
	for _, s := range stats {
		fmt.Printf("%-8d %-5d %-10g %-7d %-8d %8.2f /%8.2f /%8.2f     %6.3f /%6.3f /%6.3f\n",
			s.NLegacy, s.NHe, s.Mu, s.Records, s.CWPairs,
			s.Throughput.Min, s.Throughput.Mean, s.Throughput.Max,
			s.Fairness.Min, s.Fairness.Mean, s.Fairness.Max)
	}
}

func init() {
	summaryCmd.Flags().StringVar(&summaryInput, "input", "", "Directory containing fairness sweep logs")
	summaryCmd.Flags().StringVar(&summaryPattern, "pattern", sweep.DefaultPattern, "Glob pattern for sweep log base names")
	summaryCmd.Flags().StringVar(&summaryLog, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(summaryCmd)
}
