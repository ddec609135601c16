package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/inference-sim/ssq-sim/sim"
	"github.com/inference-sim/ssq-sim/sim/analytic"
)

// Results is the JSON document written by WriteResultsJSON.
type Results struct {
	RunID      string               `json:"run_id"`
	Reports    []*sim.Report        `json:"reports"`
	Prediction *analytic.Prediction `json:"mg1_prediction,omitempty"`
	Skipped    []string             `json:"no_jobs_completed,omitempty"` // policies that completed no job
}

// WriteResultsJSON writes res as indented JSON to path.
func WriteResultsJSON(path string, res *Results) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	return nil
}
