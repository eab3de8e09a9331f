package sweep

import "sort"

// BestFeasible is the per-scenario outcome of constrained selection: the
// highest-throughput configuration whose fairness met the threshold. When
// no configuration qualifies, Feasible is false and the observation fields
// are meaningless (exported as NaN).
type BestFeasible struct {
	ScenarioKey

	Feasible bool

	ThrObs   float64
	CWMinObs int
	CWMaxObs int
	JainObs  float64
}

// SelectBestFeasible returns one row per scenario key: among the key's
// records with JainGroup >= eta, the one with maximal total throughput.
// Ties keep the earliest record in table order, so the result is
// deterministic for a given corpus. Rows come back sorted by key
// ascending, and scenarios with no feasible record still get a row,
// marked infeasible.
//
// eta is not clamped: 0 accepts every record, anything above the Jain
// index's valid range marks every scenario infeasible.
func SelectBestFeasible(table Table, eta float64) []BestFeasible {
	groups := make(map[ScenarioKey][]Record, len(table))
	for _, r := range table {
		groups[r.ScenarioKey] = append(groups[r.ScenarioKey], r)
	}

	keys := make([]ScenarioKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	rows := make([]BestFeasible, 0, len(keys))
	for _, k := range keys {
		row := BestFeasible{ScenarioKey: k}
		for _, r := range groups[k] {
			if r.JainGroup < eta {
				continue
			}
			// Strict > keeps the first of equal maxima.
			if !row.Feasible || r.ThrTotalMbps > row.ThrObs {
				row.Feasible = true
				row.ThrObs = r.ThrTotalMbps
				row.CWMinObs = r.CWMin
				row.CWMaxObs = r.CWMax
				row.JainObs = r.JainGroup
			}
		}
		rows = append(rows, row)
	}
	return rows
}
