// Package charts renders the analysis figures: per-scenario scatter plots
// of throughput against fairness, and best-feasible throughput against mu
// with an optional model overlay. One figure per (nLegacy, nHe) pair; mu
// varies inside each figure.
package charts

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/fairsweep/fairsweep/sweep"
)

// scenarioPair is the (nLegacy, nHe) part of a scenario key. Figure file
// names carry it as nL<L>_nH<H>.
type scenarioPair struct {
	nLegacy int
	nHe     int
}

func (s scenarioPair) tag() string {
	return fmt.Sprintf("nL%d_nH%d", s.nLegacy, s.nHe)
}

func formatG(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ScatterThrVsFairness writes one scatter figure per scenario pair, total
// throughput over Jain fairness, with one colored series per mu. With
// byMu set it writes one figure per (pair, mu) instead.
//
// Files: scatter_thr_vs_fairness_<tag>.png, or with byMu
// scatter_thr_vs_fairness_<tag>_mu<mu>.png. outDir must exist.
func ScatterThrVsFairness(table sweep.Table, outDir string, byMu bool) error {
	pairs, byPair := groupByPair(table)
	for _, pair := range pairs {
		records := byPair[pair]
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Mu != records[j].Mu {
				return records[i].Mu < records[j].Mu
			}
			if records[i].CWMin != records[j].CWMin {
				return records[i].CWMin < records[j].CWMin
			}
			return records[i].CWMax < records[j].CWMax
		})
		mus := distinctMus(records)

		if byMu {
			for _, mu := range mus {
				p := newPlot(
					fmt.Sprintf("Throughput vs Fairness (%s), mu=%s", pair.tag(), formatG(mu)),
					"Jain fairness (HE vs Legacy)",
					"Total throughput (Mbps)",
				)
				if err := plotutil.AddScatters(p, fairnessXYs(records, mu)); err != nil {
					return fmt.Errorf("%s: building scatter series: %w", pair.tag(), err)
				}
				name := fmt.Sprintf("scatter_thr_vs_fairness_%s_mu%s.png", pair.tag(), formatG(mu))
				if err := savePlot(p, filepath.Join(outDir, name)); err != nil {
					return err
				}
			}
			continue
		}

		p := newPlot(
			fmt.Sprintf("Throughput vs Fairness (%s)", pair.tag()),
			"Jain fairness (HE vs Legacy)",
			"Total throughput (Mbps)",
		)
		args := make([]interface{}, 0, 2*len(mus))
		for _, mu := range mus {
			args = append(args, "mu="+formatG(mu), fairnessXYs(records, mu))
		}
		if err := plotutil.AddScatters(p, args...); err != nil {
			return fmt.Errorf("%s: building scatter series: %w", pair.tag(), err)
		}
		name := fmt.Sprintf("scatter_thr_vs_fairness_%s.png", pair.tag())
		if err := savePlot(p, filepath.Join(outDir, name)); err != nil {
			return err
		}
	}
	return nil
}

// BestThrVsMu writes one line figure per scenario pair: the best feasible
// throughput at each mu, observed points joined in mu order. Infeasible
// scenarios contribute no point; a pair with no feasible point at all is
// skipped with a warning.
//
// overlay is nil when no model file was given. When present, the model
// series is drawn alongside and the figure is saved a second time under
// the _obs_vs_model name.
func BestThrVsMu(best []sweep.BestFeasible, overlay []sweep.OverlayRow, outDir string, eta float64) error {
	var pairs []scenarioPair
	byPair := make(map[scenarioPair][]sweep.BestFeasible)
	for _, b := range best {
		pr := scenarioPair{b.NLegacy, b.NHe}
		if _, ok := byPair[pr]; !ok {
			pairs = append(pairs, pr)
		}
		byPair[pr] = append(byPair[pr], b)
	}
	sortPairs(pairs)

	for _, pair := range pairs {
		rows := byPair[pair]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Mu < rows[j].Mu })

		var obs plotter.XYs
		for _, b := range rows {
			if !b.Feasible {
				continue
			}
			obs = append(obs, plotter.XY{X: b.Mu, Y: b.ThrObs})
		}
		if len(obs) == 0 {
			logrus.Warnf("%s: no feasible configuration at any mu, skipping figure", pair.tag())
			continue
		}

		p := newPlot(
			fmt.Sprintf("Best-feasible throughput vs mu (%s), eta=%s", pair.tag(), formatG(eta)),
			"mu (muAccessReqInterval)",
			"Best feasible total throughput (Mbps)",
		)
		args := []interface{}{"Observed (ns-3)", obs}
		if model := modelXYs(overlay, pair); len(model) > 0 {
			args = append(args, "Model", model)
		}
		if err := plotutil.AddLinePoints(p, args...); err != nil {
			return fmt.Errorf("%s: building line series: %w", pair.tag(), err)
		}

		name := fmt.Sprintf("best_thr_vs_mu_%s.png", pair.tag())
		if err := savePlot(p, filepath.Join(outDir, name)); err != nil {
			return err
		}
		if overlay != nil {
			name = fmt.Sprintf("best_thr_vs_mu_%s_obs_vs_model.png", pair.tag())
			if err := savePlot(p, filepath.Join(outDir, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func savePlot(p *plot.Plot, path string) error {
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	logrus.Debugf("wrote %s", path)
	return nil
}

func groupByPair(table sweep.Table) ([]scenarioPair, map[scenarioPair][]sweep.Record) {
	byPair := make(map[scenarioPair][]sweep.Record)
	var pairs []scenarioPair
	for _, r := range table {
		pr := scenarioPair{r.NLegacy, r.NHe}
		if _, ok := byPair[pr]; !ok {
			pairs = append(pairs, pr)
		}
		byPair[pr] = append(byPair[pr], r)
	}
	sortPairs(pairs)
	return pairs, byPair
}

func sortPairs(pairs []scenarioPair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].nLegacy != pairs[j].nLegacy {
			return pairs[i].nLegacy < pairs[j].nLegacy
		}
		return pairs[i].nHe < pairs[j].nHe
	})
}

func distinctMus(records []sweep.Record) []float64 {
	seen := make(map[float64]bool)
	var mus []float64
	for _, r := range records {
		if !seen[r.Mu] {
			seen[r.Mu] = true
			mus = append(mus, r.Mu)
		}
	}
	sort.Float64s(mus)
	return mus
}

func fairnessXYs(records []sweep.Record, mu float64) plotter.XYs {
	var xys plotter.XYs
	for _, r := range records {
		if r.Mu == mu {
			xys = append(xys, plotter.XY{X: r.JainGroup, Y: r.ThrTotalMbps})
		}
	}
	return xys
}

func modelXYs(overlay []sweep.OverlayRow, pair scenarioPair) plotter.XYs {
	var xys plotter.XYs
	for _, m := range overlay {
		if m.NLegacy == pair.nLegacy && m.NHe == pair.nHe {
			xys = append(xys, plotter.XY{X: m.Mu, Y: m.BestThrModel})
		}
	}
	sort.Slice(xys, func(i, j int) bool { return xys[i].X < xys[j].X })
	return xys
}
