package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/ssq-sim/sim"
)

// RunFile is the YAML run configuration loaded with --config.
// Nil pointer fields mean "not set in YAML" and leave the default untouched.
type RunFile struct {
	ArrivalMean *float64 `yaml:"arrival_mean"`
	Stop        *float64 `yaml:"stop"`
	Seed        *int64   `yaml:"seed"`
	Policy      string   `yaml:"policy"`
	ServiceMin  *float64 `yaml:"service_min"`
	ServiceMax  *float64 `yaml:"service_max"`
	Trace       string   `yaml:"trace"`
}

// LoadRunFile reads a run configuration with strict field checking:
// unknown keys are errors so typos do not silently fall back to defaults.
func LoadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var f RunFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return &f, nil
}

// Apply copies every field set in the file onto cfg.
func (f *RunFile) Apply(cfg *sim.Config) error {
	if f.ArrivalMean != nil {
		cfg.ArrivalMean = *f.ArrivalMean
	}
	if f.Stop != nil {
		cfg.Stop = *f.Stop
	}
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
	if f.Policy != "" {
		p, err := sim.ParsePolicy(f.Policy)
		if err != nil {
			return err
		}
		cfg.Policy = p
	}
	if f.ServiceMin != nil {
		cfg.ServiceMin = *f.ServiceMin
	}
	if f.ServiceMax != nil {
		cfg.ServiceMax = *f.ServiceMax
	}
	if f.Trace != "" {
		enabled, err := parseTraceLevel(f.Trace)
		if err != nil {
			return err
		}
		cfg.Trace = enabled
	}
	return nil
}
