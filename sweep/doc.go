// Package sweep recovers structured results from ns-3 UL-OFDMA fairness
// sweep logs and derives per-scenario summaries from them.
//
// # Reading Guide
//
// A sweep run produces one free-text log per scenario, where a scenario is
// a (nLegacy, nHe, mu) population mix. Each log holds one scenario header
// followed by one result block per AP contention-window configuration
// tried in that scenario.
//
//   - extract.go turns one log's text into Records (one per complete block)
//   - corpus.go loads a directory of logs into a single Table
//   - feasible.go selects, per scenario, the best throughput among
//     fairness-feasible configurations
//   - overlay.go loads externally computed model throughputs for comparison
//   - stats.go summarizes metric distributions per scenario
//   - export.go writes the flat and best-feasible tables as CSV
//
// Extraction is resilient at block level: a block missing any of its metric
// lines is skipped, the rest of the file still parses. File-level failures
// (no header, no blocks at all) are hard errors carrying the file name.
package sweep
