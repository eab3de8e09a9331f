package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(nL, nH int, mu float64, cwMin, cwMax int, thr, jain float64) Record {
	return Record{
		ScenarioKey:  ScenarioKey{NLegacy: nL, NHe: nH, Mu: mu},
		CWMin:        cwMin,
		CWMax:        cwMax,
		ThrTotalMbps: thr,
		JainGroup:    jain,
	}
}

// Two configurations for one scenario: the fairer one carries less
// throughput. A high threshold must pick it, a low one must not.
func twoBlockScenario() Table {
	return Table{
		rec(4, 2, 0.01, 15, 63, 50.0, 0.98),
		rec(4, 2, 0.01, 31, 127, 60.0, 0.80),
	}
}

func TestSelectBestFeasible_HighThreshold_PicksFairerBlock(t *testing.T) {
	rows := SelectBestFeasible(twoBlockScenario(), 0.95)

	assert.Len(t, rows, 1)
	want := BestFeasible{
		ScenarioKey: ScenarioKey{NLegacy: 4, NHe: 2, Mu: 0.01},
		Feasible:    true,
		ThrObs:      50.0,
		CWMinObs:    15,
		CWMaxObs:    63,
		JainObs:     0.98,
	}
	assert.Equal(t, want, rows[0])
}

func TestSelectBestFeasible_LowThreshold_PicksHigherThroughput(t *testing.T) {
	rows := SelectBestFeasible(twoBlockScenario(), 0.5)

	assert.Len(t, rows, 1)
	assert.True(t, rows[0].Feasible)
	assert.Equal(t, 60.0, rows[0].ThrObs)
	assert.Equal(t, 31, rows[0].CWMinObs)
	assert.Equal(t, 127, rows[0].CWMaxObs)
}

func TestSelectBestFeasible_ThresholdAboveRange_AllInfeasible(t *testing.T) {
	rows := SelectBestFeasible(twoBlockScenario(), 1.0001)

	assert.Len(t, rows, 1)
	assert.False(t, rows[0].Feasible)
	assert.Equal(t, ScenarioKey{NLegacy: 4, NHe: 2, Mu: 0.01}, rows[0].ScenarioKey)
}

func TestSelectBestFeasible_ZeroThreshold_AcceptsEverything(t *testing.T) {
	rows := SelectBestFeasible(twoBlockScenario(), 0)

	assert.Len(t, rows, 1)
	assert.Equal(t, 60.0, rows[0].ThrObs)
}

func TestSelectBestFeasible_JainEqualToThreshold_IsFeasible(t *testing.T) {
	table := Table{rec(4, 2, 0.01, 15, 63, 50.0, 0.95)}

	rows := SelectBestFeasible(table, 0.95)

	assert.True(t, rows[0].Feasible)
}

func TestSelectBestFeasible_TiedThroughput_KeepsFirstInTableOrder(t *testing.T) {
	table := Table{
		rec(4, 2, 0.01, 15, 63, 55.0, 0.97),
		rec(4, 2, 0.01, 31, 127, 55.0, 0.99),
	}

	rows := SelectBestFeasible(table, 0.9)

	assert.Equal(t, 15, rows[0].CWMinObs)
	assert.Equal(t, 0.97, rows[0].JainObs)
}

func TestSelectBestFeasible_RowsSortedByKeyAscending(t *testing.T) {
	table := Table{
		rec(8, 2, 0.02, 15, 63, 40.0, 0.96),
		rec(4, 4, 0.01, 15, 63, 45.0, 0.96),
		rec(4, 2, 0.02, 15, 63, 50.0, 0.96),
		rec(4, 2, 0.01, 15, 63, 55.0, 0.96),
	}

	rows := SelectBestFeasible(table, 0.9)

	assert.Len(t, rows, 4)
	wantKeys := []ScenarioKey{
		{NLegacy: 4, NHe: 2, Mu: 0.01},
		{NLegacy: 4, NHe: 2, Mu: 0.02},
		{NLegacy: 4, NHe: 4, Mu: 0.01},
		{NLegacy: 8, NHe: 2, Mu: 0.02},
	}
	for i, want := range wantKeys {
		assert.Equal(t, want, rows[i].ScenarioKey, "row %d", i)
	}
}

func TestSelectBestFeasible_MixedFeasibility_OneRowPerScenario(t *testing.T) {
	table := Table{
		rec(4, 2, 0.01, 15, 63, 50.0, 0.98),
		rec(8, 2, 0.01, 15, 63, 42.0, 0.70), // never clears 0.95
	}

	rows := SelectBestFeasible(table, 0.95)

	assert.Len(t, rows, 2)
	assert.True(t, rows[0].Feasible)
	assert.False(t, rows[1].Feasible)
}

func TestSelectBestFeasible_EmptyTable_NoRows(t *testing.T) {
	rows := SelectBestFeasible(nil, 0.95)

	assert.Empty(t, rows)
}

func TestSelectBestFeasible_SameInput_SameOutput(t *testing.T) {
	table := Table{
		rec(4, 2, 0.01, 15, 63, 50.0, 0.98),
		rec(4, 2, 0.01, 31, 127, 50.0, 0.97),
		rec(8, 2, 0.01, 15, 63, 42.0, 0.96),
	}

	first := SelectBestFeasible(table, 0.95)
	second := SelectBestFeasible(table, 0.95)

	assert.Equal(t, first, second)
}
