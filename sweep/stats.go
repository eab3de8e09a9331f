package sweep

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution summarizes one metric over a scenario's records.
type Distribution struct {
	Mean  float64
	P50   float64
	P95   float64
	Min   float64
	Max   float64
	Count int
}

// NewDistribution computes a Distribution over values. An empty input
// yields the zero Distribution.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return Distribution{
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.50, stat.LinInterp, sorted, nil),
		P95:   stat.Quantile(0.95, stat.LinInterp, sorted, nil),
		Min:   floats.Min(sorted),
		Max:   floats.Max(sorted),
		Count: len(sorted),
	}
}

// ScenarioStats aggregates one scenario key's metric distributions across
// all contention-window configurations tried for it. CWPairs counts the
// distinct (CWMin, CWMax) configurations; it differs from Records when a
// configuration appears in more than one log.
type ScenarioStats struct {
	ScenarioKey
	Records    int
	CWPairs    int
	Throughput Distribution
	Fairness   Distribution
}

// Summarize computes per-scenario statistics over the table, sorted by
// key ascending.
func Summarize(table Table) []ScenarioStats {
	groups := make(map[ScenarioKey][]Record, len(table))
	for _, r := range table {
		groups[r.ScenarioKey] = append(groups[r.ScenarioKey], r)
	}
	keys := make([]ScenarioKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	out := make([]ScenarioStats, 0, len(keys))
	for _, k := range keys {
		records := groups[k]
		thr := make([]float64, len(records))
		jain := make([]float64, len(records))
		pairs := make(map[[2]int]bool, len(records))
		for i, r := range records {
			thr[i] = r.ThrTotalMbps
			jain[i] = r.JainGroup
			pairs[[2]int{r.CWMin, r.CWMax}] = true
		}
		out = append(out, ScenarioStats{
			ScenarioKey: k,
			Records:     len(records),
			CWPairs:     len(pairs),
			Throughput:  NewDistribution(thr),
			Fairness:    NewDistribution(jain),
		})
	}
	return out
}
