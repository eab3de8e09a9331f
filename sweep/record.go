package sweep

// ScenarioKey identifies one simulated population mix: nLegacy 11ac
// stations, nHe 11ax stations, and the MU access-request interval mu
// in seconds.
type ScenarioKey struct {
	NLegacy int
	NHe     int
	Mu      float64
}

// Less orders keys by (NLegacy, NHe, Mu) ascending.
func (k ScenarioKey) Less(other ScenarioKey) bool {
	if k.NLegacy != other.NLegacy {
		return k.NLegacy < other.NLegacy
	}
	if k.NHe != other.NHe {
		return k.NHe < other.NHe
	}
	return k.Mu < other.Mu
}

// Record is one fully parsed result block: the AP contention-window
// configuration tried plus the four metrics the simulation reported for
// it. SrcFile is the base name of the log the block came from.
type Record struct {
	ScenarioKey

	// AP BE access-category contention window bounds for this block.
	CWMin int
	CWMax int

	ThrTotalMbps     float64
	ThrHeAvgMbps     float64
	ThrLegacyAvgMbps float64
	JainGroup        float64

	SrcFile string
}

// Table is an ordered collection of records. Order is load order: files in
// lexical path order, blocks in file order.
type Table []Record

// Scenarios returns the distinct scenario keys in first-appearance order.
func (t Table) Scenarios() []ScenarioKey {
	seen := make(map[ScenarioKey]bool, len(t))
	var keys []ScenarioKey
	for _, r := range t {
		if !seen[r.ScenarioKey] {
			seen[r.ScenarioKey] = true
			keys = append(keys, r.ScenarioKey)
		}
	}
	return keys
}
