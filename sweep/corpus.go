package sweep

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
)

// DefaultPattern matches the file names the sweep driver writes, one log
// per (nLegacy, mHe, mu) scenario.
const DefaultPattern = "fairness_nLegacy*_mHe*_mu*.txt"

// LoadDir parses every log under dir whose base name matches pattern and
// concatenates their records into one table. Files are visited in lexical
// path order so the table layout is reproducible run to run.
//
// Any unreadable or unparseable file fails the whole load; a corpus that
// yields zero records (all blocks incomplete everywhere) is ErrEmptyCorpus.
func LoadDir(dir, pattern string) (Table, error) {
	glob := filepath.Join(dir, pattern)
	files, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", glob, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", glob, ErrNoMatchingFiles)
	}
	sort.Strings(files)

	var table Table
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading sweep log: %w", err)
		}
		records, err := Extract(string(data), filepath.Base(path))
		if err != nil {
			return nil, err
		}
		logrus.Debugf("%s: %d records", path, len(records))
		table = append(table, records...)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%s: %w", glob, ErrEmptyCorpus)
	}
	return table, nil
}
