package sweep

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestWriteRecordsCSV_HeaderAndValues(t *testing.T) {
	table := Table{
		{
			ScenarioKey:      ScenarioKey{NLegacy: 4, NHe: 2, Mu: 0.01},
			CWMin:            15,
			CWMax:            63,
			ThrTotalMbps:     50.0,
			ThrHeAvgMbps:     20.0,
			ThrLegacyAvgMbps: 10.0,
			JainGroup:        0.98,
			SrcFile:          "fairness_nLegacy4_mHe2_mu0.01.txt",
		},
	}
	path := filepath.Join(t.TempDir(), "parsed_cw_level.csv")

	if err := WriteRecordsCSV(table, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if !reflect.DeepEqual(rows[0], recordColumns) {
		t.Errorf("header = %v, want %v", rows[0], recordColumns)
	}
	want := []string{"4", "2", "0.01", "15", "63", "50", "20", "10", "0.98", "fairness_nLegacy4_mHe2_mu0.01.txt"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func TestWriteBestFeasibleCSV_FeasibleRow(t *testing.T) {
	rows := []BestFeasible{{
		ScenarioKey: ScenarioKey{NLegacy: 4, NHe: 2, Mu: 0.01},
		Feasible:    true,
		ThrObs:      50.0,
		CWMinObs:    15,
		CWMaxObs:    63,
		JainObs:     0.98,
	}}
	path := filepath.Join(t.TempDir(), "best.csv")

	if err := WriteBestFeasibleCSV(rows, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readCSV(t, path)
	if !reflect.DeepEqual(got[0], bestFeasibleColumns) {
		t.Errorf("header = %v, want %v", got[0], bestFeasibleColumns)
	}
	want := []string{"4", "2", "0.01", "50", "15", "63", "0.98"}
	if !reflect.DeepEqual(got[1], want) {
		t.Errorf("row = %v, want %v", got[1], want)
	}
}

func TestWriteBestFeasibleCSV_InfeasibleRow_ExplicitNaN(t *testing.T) {
	rows := []BestFeasible{{
		ScenarioKey: ScenarioKey{NLegacy: 8, NHe: 2, Mu: 0.02},
	}}
	path := filepath.Join(t.TempDir(), "best.csv")

	if err := WriteBestFeasibleCSV(rows, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readCSV(t, path)
	want := []string{"8", "2", "0.02", "NaN", "NaN", "NaN", "NaN"}
	if !reflect.DeepEqual(got[1], want) {
		t.Errorf("row = %v, want %v", got[1], want)
	}
}

func TestBestFeasibleCSVName_FormatsEta(t *testing.T) {
	cases := []struct {
		eta  float64
		want string
	}{
		{0.95, "best_feasible_eta0.95.csv"},
		{0.5, "best_feasible_eta0.5.csv"},
		{1, "best_feasible_eta1.csv"},
		{0, "best_feasible_eta0.csv"},
	}
	for _, c := range cases {
		if got := BestFeasibleCSVName(c.eta); got != c.want {
			t.Errorf("BestFeasibleCSVName(%v) = %q, want %q", c.eta, got, c.want)
		}
	}
}

func TestWriteRecordsCSV_RepeatedRuns_ByteIdentical(t *testing.T) {
	table := Table{
		{
			ScenarioKey: ScenarioKey{NLegacy: 4, NHe: 2, Mu: 0.01},
			CWMin:       15, CWMax: 63,
			ThrTotalMbps: 50.0, ThrHeAvgMbps: 20.0, ThrLegacyAvgMbps: 10.0,
			JainGroup: 0.98,
			SrcFile:   "a.txt",
		},
		{
			ScenarioKey: ScenarioKey{NLegacy: 4, NHe: 2, Mu: 0.01},
			CWMin:       31, CWMax: 127,
			ThrTotalMbps: 60.0, ThrHeAvgMbps: 28.0, ThrLegacyAvgMbps: 8.0,
			JainGroup: 0.80,
			SrcFile:   "a.txt",
		},
	}
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	if err := WriteRecordsCSV(table, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteRecordsCSV(table, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("repeated exports of the same table differ")
	}
}

func TestWriteRecordsCSV_TinyMu_ScientificNotation(t *testing.T) {
	table := Table{
		{
			ScenarioKey: ScenarioKey{NLegacy: 4, NHe: 2, Mu: 2e-05},
			CWMin:       15, CWMax: 63,
			ThrTotalMbps: 50.0, ThrHeAvgMbps: 20.0, ThrLegacyAvgMbps: 10.0,
			JainGroup: 0.98,
			SrcFile:   "fairness_nLegacy4_mHe2_mu2e-05.txt",
		},
	}
	path := filepath.Join(t.TempDir(), "parsed.csv")

	if err := WriteRecordsCSV(table, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readCSV(t, path)
	if rows[1][2] != "2e-05" {
		t.Errorf("mu cell = %q, want %q", rows[1][2], "2e-05")
	}
}
