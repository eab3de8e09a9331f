package sweep

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Column layouts for the two CSV exports. Kept in one place so writers
// and any downstream reader agree on names and order.
var (
	recordColumns = []string{
		"nLegacy", "nHe", "mu",
		"apCwMin", "apCwMax",
		"thr_total_mbps", "thr_he_avg_mbps", "thr_legacy_avg_mbps",
		"jain_group", "src_file",
	}
	bestFeasibleColumns = []string{
		"nLegacy", "nHe", "mu",
		"best_thr_obs", "best_cwmin_obs", "best_cwmax_obs", "best_jain_obs",
	}
)

// BestFeasibleCSVName names the export for a given threshold, e.g.
// best_feasible_eta0.95.csv.
func BestFeasibleCSVName(eta float64) string {
	return fmt.Sprintf("best_feasible_eta%s.csv", ff(eta))
}

// WriteRecordsCSV writes the flat per-block table to path.
func WriteRecordsCSV(table Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating records CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(recordColumns); err != nil {
		return fmt.Errorf("writing records CSV header: %w", err)
	}
	for _, r := range table {
		row := []string{
			strconv.Itoa(r.NLegacy),
			strconv.Itoa(r.NHe),
			ff(r.Mu),
			strconv.Itoa(r.CWMin),
			strconv.Itoa(r.CWMax),
			ff(r.ThrTotalMbps),
			ff(r.ThrHeAvgMbps),
			ff(r.ThrLegacyAvgMbps),
			ff(r.JainGroup),
			r.SrcFile,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing records CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteBestFeasibleCSV writes the per-scenario selection to path.
// Infeasible scenarios keep their row; the four observation columns hold
// NaN so the gap is explicit rather than a dropped line.
func WriteBestFeasibleCSV(rows []BestFeasible, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating best-feasible CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(bestFeasibleColumns); err != nil {
		return fmt.Errorf("writing best-feasible CSV header: %w", err)
	}
	nan := ff(math.NaN())
	for _, b := range rows {
		row := []string{
			strconv.Itoa(b.NLegacy),
			strconv.Itoa(b.NHe),
			ff(b.Mu),
			nan, nan, nan, nan,
		}
		if b.Feasible {
			row[3] = ff(b.ThrObs)
			row[4] = strconv.Itoa(b.CWMinObs)
			row[5] = strconv.Itoa(b.CWMaxObs)
			row[6] = ff(b.JainObs)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing best-feasible CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ff formats floats the shortest way that round-trips, matching how mu
// values appear in file names (0.01, 2e-05).
func ff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
