package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	sim "github.com/inference-sim/ssq-sim/sim"
	"github.com/inference-sim/ssq-sim/sim/analytic"
	"github.com/inference-sim/ssq-sim/sim/export"
)

// writeOutputs sends finished runs to every sink selected by flags.
// All runs of one invocation share a run ID.
func writeOutputs(results []*runResult, cfg sim.Config) error {
	if csvDir == "" && sqlitePath == "" && resultsPath == "" {
		return nil
	}
	runID := export.NewRunID()

	if csvDir != "" {
		for _, res := range results {
			path, err := export.WriteSeriesCSV(csvDir, string(res.Policy), res.Delays, res.Waits)
			if err != nil {
				return err
			}
			logrus.Infof("Wrote %s series to %s", res.Policy, path)
		}
	}

	if sqlitePath != "" {
		if err := writeSQLite(runID, results); err != nil {
			return err
		}
	}

	if resultsPath != "" {
		doc := &export.Results{RunID: runID}
		for _, res := range results {
			if res.Report == nil {
				doc.Skipped = append(doc.Skipped, string(res.Policy))
				continue
			}
			doc.Reports = append(doc.Reports, res.Report)
		}
		p, err := analytic.MG1(cfg.ArrivalMean, analytic.UniformService(cfg.ServiceMin, cfg.ServiceMax))
		if err == nil {
			doc.Prediction = p
		} else if !errors.Is(err, analytic.ErrUnstable) {
			return err
		}
		if err := export.WriteResultsJSON(resultsPath, doc); err != nil {
			return err
		}
		logrus.Infof("Wrote results to %s", resultsPath)
	}
	return nil
}

func writeSQLite(runID string, results []*runResult) (err error) {
	path := sqlitePath
	if path == "auto" {
		path = export.DefaultSQLitePath(runID)
	}
	w, err := export.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()
	for _, res := range results {
		if res.Report == nil {
			continue
		}
		if err := w.WriteRun(runID, res.Report, res.Delays, res.Waits); err != nil {
			return err
		}
	}
	logrus.Infof("Wrote run %s to %s", runID, w.Path())
	return nil
}
