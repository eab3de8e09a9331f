package sweep

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultEta is the fairness threshold used when neither flag nor config
// file sets one.
const DefaultEta = 0.95

// AnalysisConfig mirrors the analyze command's flags so a sweep can be
// described once in YAML and rerun. Flags set explicitly on the command
// line win over file values. Eta is a pointer because 0 is a meaningful
// threshold, distinct from "not set".
type AnalysisConfig struct {
	Input        string   `yaml:"input"`
	Pattern      string   `yaml:"pattern,omitempty"`
	OutDir       string   `yaml:"outdir,omitempty"`
	Eta          *float64 `yaml:"eta,omitempty"`
	ScatterByMu  bool     `yaml:"scatter_by_mu,omitempty"`
	ModelBestCSV string   `yaml:"model_best_csv,omitempty"`
	ExportCSV    bool     `yaml:"export_csv,omitempty"`
}

// LoadAnalysisConfig reads and validates a YAML analysis config. Unknown
// keys are rejected so typos surface instead of silently reverting a
// setting to its default.
func LoadAnalysisConfig(path string) (*AnalysisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis config: %w", err)
	}

	var cfg AnalysisConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing analysis config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the file's values are usable on their own terms. It
// does not require input to be present, since the flag may supply it.
func (c *AnalysisConfig) Validate() error {
	if c.Eta != nil {
		if math.IsNaN(*c.Eta) || math.IsInf(*c.Eta, 0) {
			return fmt.Errorf("eta: must be a finite number, got %v", *c.Eta)
		}
	}
	return nil
}
