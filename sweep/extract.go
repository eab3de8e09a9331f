package sweep

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Line-anchored patterns for the sweep log format. The simulation prints
// the scenario header once, then a dashed marker line per AP
// contention-window configuration followed by that configuration's metric
// lines. Anything else (per-STA dumps, queue stats, ns-3 chatter) is
// ignored.
var (
	reNLegacy = regexp.MustCompile(`(?m)^\s*nLegacy\s*=\s*(\d+)\s*$`)
	reMHe     = regexp.MustCompile(`(?m)^\s*mHe\s*=\s*(\d+)\s*$`)
	reMu      = regexp.MustCompile(`(?m)^\s*muAccessReqInterval\s*=\s*([0-9.eE+-]+)\s*$`)

	// The leading and trailing dash runs keep ordinary lines that merely
	// mention AP_CWMIN from being taken for block markers.
	reBlockCW = regexp.MustCompile(`(?m)^-{3,}\s*AP_CWMIN\s*=\s*(\d+)\s*AP_CWMAX\s*=\s*(\d+)\s*-{3,}\s*$`)

	reThrTotal = regexp.MustCompile(`(?m)^Network throughput .*=\s*([0-9.]+)\s*Mbps\s*$`)
	reThrGroup = regexp.MustCompile(`(?m)^Group-average throughput .*:\s*HE\(11ax\)\s*=\s*([0-9.]+)\s*Mbps,\s*Legacy\(11ac\)\s*=\s*([0-9.]+)\s*Mbps\s*$`)
	reJain     = regexp.MustCompile(`(?m)^Jain_group.*=\s*([0-9.]+)\s*$`)
)

// Extract parses the full text of one sweep log into records. srcFile is
// recorded on every record for provenance and prefixed to every error.
//
// The scenario header is searched over the whole document and the first
// match of each field wins. A block missing any metric line is skipped;
// a log with no header or no block markers at all is an error.
func Extract(text, srcFile string) ([]Record, error) {
	key, err := extractHeader(text, srcFile)
	if err != nil {
		return nil, err
	}

	markers := reBlockCW.FindAllStringSubmatchIndex(text, -1)
	if len(markers) == 0 {
		return nil, fmt.Errorf("%s: %w", srcFile, ErrNoBlocks)
	}

	records := make([]Record, 0, len(markers))
	for i, m := range markers {
		cwMin, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			return nil, fmt.Errorf("%s: block %d: AP_CWMIN %q: %v", srcFile, i, text[m[2]:m[3]], err)
		}
		cwMax, err := strconv.Atoi(text[m[4]:m[5]])
		if err != nil {
			return nil, fmt.Errorf("%s: block %d: AP_CWMAX %q: %v", srcFile, i, text[m[4]:m[5]], err)
		}
		if cwMin > cwMax {
			logrus.Warnf("%s: block %d: AP_CWMIN %d exceeds AP_CWMAX %d", srcFile, i, cwMin, cwMax)
		}

		// The block body runs from this marker to the next one (or EOF).
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		body := text[m[1]:end]

		mThr := reThrTotal.FindStringSubmatch(body)
		mGroup := reThrGroup.FindStringSubmatch(body)
		mJain := reJain.FindStringSubmatch(body)
		if mThr == nil || mGroup == nil || mJain == nil {
			// Killed or truncated runs leave partial blocks behind; keep
			// the rest of the file usable.
			logrus.Debugf("%s: block %d (cw %d/%d): incomplete, skipping", srcFile, i, cwMin, cwMax)
			continue
		}

		rec := Record{
			ScenarioKey: key,
			CWMin:       cwMin,
			CWMax:       cwMax,
			SrcFile:     srcFile,
		}
		if rec.ThrTotalMbps, err = parseMetric(mThr[1]); err != nil {
			return nil, fmt.Errorf("%s: block %d: network throughput: %v", srcFile, i, err)
		}
		if rec.ThrHeAvgMbps, err = parseMetric(mGroup[1]); err != nil {
			return nil, fmt.Errorf("%s: block %d: HE group throughput: %v", srcFile, i, err)
		}
		if rec.ThrLegacyAvgMbps, err = parseMetric(mGroup[2]); err != nil {
			return nil, fmt.Errorf("%s: block %d: legacy group throughput: %v", srcFile, i, err)
		}
		if rec.JainGroup, err = parseMetric(mJain[1]); err != nil {
			return nil, fmt.Errorf("%s: block %d: Jain index: %v", srcFile, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// extractHeader locates the three scenario parameters anywhere in the
// document. All three must be present and parseable.
func extractHeader(text, srcFile string) (ScenarioKey, error) {
	mNL := reNLegacy.FindStringSubmatch(text)
	mNH := reMHe.FindStringSubmatch(text)
	mMu := reMu.FindStringSubmatch(text)
	if mNL == nil || mNH == nil || mMu == nil {
		return ScenarioKey{}, fmt.Errorf("%s: %w", srcFile, ErrMissingHeader)
	}

	var key ScenarioKey
	var err error
	if key.NLegacy, err = strconv.Atoi(mNL[1]); err != nil {
		return ScenarioKey{}, fmt.Errorf("%s: nLegacy %q: %w", srcFile, mNL[1], ErrMissingHeader)
	}
	if key.NHe, err = strconv.Atoi(mNH[1]); err != nil {
		return ScenarioKey{}, fmt.Errorf("%s: mHe %q: %w", srcFile, mNH[1], ErrMissingHeader)
	}
	if key.Mu, err = strconv.ParseFloat(mMu[1], 64); err != nil {
		return ScenarioKey{}, fmt.Errorf("%s: muAccessReqInterval %q: %w", srcFile, mMu[1], ErrMissingHeader)
	}
	return key, nil
}

// parseMetric parses a metric value already vetted by a [0-9.]+ capture.
// Degenerate captures like "1.2.3" still fail here and fail the file.
func parseMetric(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %v", s, err)
	}
	return v, nil
}
