// Package testutil provides shared test infrastructure for the ssq simulator:
// the golden sample paths and float assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-worked sample path. Gaps and Services are
// listed in arrival order; the expected series are in completion order.
type GoldenTestCase struct {
	Name        string        `json:"name"`
	Policy      string        `json:"policy"`
	ArrivalMean float64       `json:"arrival_mean"`
	Stop        float64       `json:"stop"`
	ServiceMin  float64       `json:"service_min"`
	ServiceMax  float64       `json:"service_max"`
	Gaps        []float64     `json:"gaps"`
	Services    []float64     `json:"services"`
	Metrics     GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected statistics of a golden test case.
type GoldenMetrics struct {
	// Exact match
	Jobs int64 `json:"jobs"`

	// Per-job series, completion order
	Delays []float64 `json:"delays"`
	Waits  []float64 `json:"waits"`

	// Time-weighted areas and clock
	AreaNode    float64 `json:"area_node"`
	AreaQueue   float64 `json:"area_queue"`
	AreaService float64 `json:"area_service"`
	Horizon     float64 `json:"horizon"`
	LastArrival float64 `json:"last_arrival"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with absolute tolerance tol.
// Hand-worked values are small, so a relative check would be needlessly strict near zero.
func AssertFloat64Equal(t *testing.T, name string, want, got, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(want-got) > tol {
		t.Errorf("%s: got %v, want %v (diff=%v)", name, got, want, math.Abs(want-got))
	}
}

// AssertSeriesEqual compares two series element by element.
func AssertSeriesEqual(t *testing.T, name string, want, got []float64, tol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: got %d values, want %d", name, len(got), len(want))
		return
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > tol {
			t.Errorf("%s[%d]: got %v, want %v", name, i, got[i], want[i])
		}
	}
}
