package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fairsweep/fairsweep/charts"
	"github.com/fairsweep/fairsweep/sweep"
)

var (
	// CLI flags for the analyze pipeline
	inputDir    string  // Directory holding fairness_nLegacy*_mHe*_mu*.txt logs
	pattern     string  // Glob pattern for sweep log base names
	outDir      string  // Output directory for figures and CSV exports
	eta         float64 // Fairness threshold for best-feasible selection
	scatterByMu bool    // One scatter figure per mu instead of one per scenario
	modelCSV    string  // Optional model predictions to overlay
	exportCSV   bool    // Export parsed and best-feasible tables as CSV
	configPath  string  // Optional YAML file mirroring these flags
	logLevel    string  // Log verbosity level
)

// analyzeCmd runs the full pipeline: load logs, export tables, select
// best-feasible configurations, render figures
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Parse sweep logs and plot fairness-constrained throughput",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		applyConfigFile(cmd)
		if inputDir == "" {
			logrus.Fatalf("Input directory not provided. Use --input or an analysis config.")
		}

		table, err := sweep.LoadDir(inputDir, pattern)
		if err != nil {
			logrus.Fatalf("Loading sweep logs failed: %v", err)
		}
		logrus.Infof("Parsed %d records across %d scenarios from %s",
			len(table), len(table.Scenarios()), inputDir)

		if err := os.MkdirAll(outDir, 0755); err != nil {
			logrus.Fatalf("Creating output directory %s failed: %v", outDir, err)
		}

		if exportCSV {
			path := filepath.Join(outDir, "parsed_cw_level.csv")
			if err := sweep.WriteRecordsCSV(table, path); err != nil {
				logrus.Fatalf("Exporting parsed table failed: %v", err)
			}
			logrus.Infof("Exported %s", path)
		}

		if err := charts.ScatterThrVsFairness(table, outDir, scatterByMu); err != nil {
			logrus.Fatalf("Rendering scatter figures failed: %v", err)
		}

		best := sweep.SelectBestFeasible(table, eta)
		if exportCSV {
			path := filepath.Join(outDir, sweep.BestFeasibleCSVName(eta))
			if err := sweep.WriteBestFeasibleCSV(best, path); err != nil {
				logrus.Fatalf("Exporting best-feasible table failed: %v", err)
			}
			logrus.Infof("Exported %s", path)
		}

		var overlay []sweep.OverlayRow
		if modelCSV != "" {
			if overlay, err = sweep.LoadOverlay(modelCSV); err != nil {
				logrus.Fatalf("Loading model overlay failed: %v", err)
			}
		}
		if err := charts.BestThrVsMu(best, overlay, outDir, eta); err != nil {
			logrus.Fatalf("Rendering best-feasible figures failed: %v", err)
		}

		printDigest(sweep.Summarize(table))
		fmt.Printf("Done. Figures saved to: %s\n", outDir)
	},
}

// applyConfigFile fills flags the user left unset from --config values.
// Explicit command-line flags win over file values.
func applyConfigFile(cmd *cobra.Command) {
	if configPath == "" {
		return
	}
	cfg, err := sweep.LoadAnalysisConfig(configPath)
	if err != nil {
		logrus.Fatalf("Loading analysis config failed: %v", err)
	}
	flags := cmd.Flags()
	if !flags.Changed("input") && cfg.Input != "" {
		inputDir = cfg.Input
	}
	if !flags.Changed("pattern") && cfg.Pattern != "" {
		pattern = cfg.Pattern
	}
	if !flags.Changed("outdir") && cfg.OutDir != "" {
		outDir = cfg.OutDir
	}
	if !flags.Changed("eta") && cfg.Eta != nil {
		eta = *cfg.Eta
	}
	if !flags.Changed("scatter-by-mu") && cfg.ScatterByMu {
		scatterByMu = true
	}
	if !flags.Changed("model-best-csv") && cfg.ModelBestCSV != "" {
		modelCSV = cfg.ModelBestCSV
	}
	if !flags.Changed("export-csv") && cfg.ExportCSV {
		exportCSV = true
	}
}

// init sets up CLI flags and subcommands
func init() {
	analyzeCmd.Flags().StringVar(&inputDir, "input", "", "Directory containing fairness sweep logs")
	analyzeCmd.Flags().StringVar(&pattern, "pattern", sweep.DefaultPattern, "Glob pattern for sweep log base names")
	analyzeCmd.Flags().StringVar(&outDir, "outdir", "figs", "Output directory for figures and CSV exports")
	analyzeCmd.Flags().Float64Var(&eta, "eta", sweep.DefaultEta, "Fairness threshold for best-feasible throughput")
	analyzeCmd.Flags().BoolVar(&scatterByMu, "scatter-by-mu", false, "Generate one scatter figure per mu (more figures)")
	analyzeCmd.Flags().StringVar(&modelCSV, "model-best-csv", "", "Optional CSV overlaying model results (columns: nLegacy,nHe,mu,best_thr_model)")
	analyzeCmd.Flags().BoolVar(&exportCSV, "export-csv", false, "Export parsed CW-level table and best-feasible table as CSV")
	analyzeCmd.Flags().StringVar(&configPath, "config", "", "YAML analysis config; explicit flags override file values")
	analyzeCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `analyze` as a subcommand to `root`
	rootCmd.AddCommand(analyzeCmd)
}
