package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// OverlayRow is one externally computed model prediction: the best
// achievable throughput for a scenario key according to an analytical
// model, used side by side with observed results.
type OverlayRow struct {
	ScenarioKey
	BestThrModel float64
}

// overlayColumns are the columns a model CSV must provide. Extra columns
// are allowed and ignored; order does not matter.
var overlayColumns = []string{"nLegacy", "nHe", "mu", "best_thr_model"}

// LoadOverlay reads a model prediction CSV. The header is validated
// before any row is parsed; missing required columns produce a
// *SchemaError naming all of them at once.
func LoadOverlay(path string) ([]OverlayRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model overlay: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading model overlay header from %s: %w", path, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, want := range overlayColumns {
		if _, ok := col[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	var rows []OverlayRow
	line := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading model overlay row %d from %s: %w", line, path, err)
		}

		var row OverlayRow
		if row.NLegacy, err = parseOverlayInt(fields[col["nLegacy"]]); err != nil {
			return nil, fmt.Errorf("%s: row %d: nLegacy: %v", path, line, err)
		}
		if row.NHe, err = parseOverlayInt(fields[col["nHe"]]); err != nil {
			return nil, fmt.Errorf("%s: row %d: nHe: %v", path, line, err)
		}
		if row.Mu, err = strconv.ParseFloat(strings.TrimSpace(fields[col["mu"]]), 64); err != nil {
			return nil, fmt.Errorf("%s: row %d: mu: %v", path, line, err)
		}
		if row.BestThrModel, err = strconv.ParseFloat(strings.TrimSpace(fields[col["best_thr_model"]]), 64); err != nil {
			return nil, fmt.Errorf("%s: row %d: best_thr_model: %v", path, line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseOverlayInt accepts both "4" and "4.0"; model CSVs written by
// numeric tooling often carry the float suffix on integer columns.
func parseOverlayInt(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
