package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

// SeriesPath returns the CSV path for a policy inside dir.
func SeriesPath(dir, policy string) string {
	return filepath.Join(dir, policy+".csv")
}

// WriteSeriesCSV writes the per-job delay and wait series to <dir>/<policy>.csv
// with columns job,delay,wait. Jobs are numbered 1.. in completion order.
// An existing file is overwritten.
func WriteSeriesCSV(dir, policy string, delays, waits []float64) (string, error) {
	if len(delays) != len(waits) {
		return "", fmt.Errorf("series length mismatch: %d delays, %d waits", len(delays), len(waits))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	path := SeriesPath(dir, policy)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Errorf("Error closing file %s: %v", path, closeErr)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"job", "delay", "wait"}); err != nil {
		return "", fmt.Errorf("writing header to %s: %w", path, err)
	}
	for i := range delays {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(delays[i], 'g', -1, 64),
			strconv.FormatFloat(waits[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing row %d to %s: %w", i+1, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", path, err)
	}

	logrus.Debugf("Wrote %d jobs to %s", len(delays), path)
	return path, nil
}

// ReadSeriesCSV reads a file produced by WriteSeriesCSV back into its two series.
func ReadSeriesCSV(path string) (delays, waits []float64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: missing header", path)
	}
	for i, row := range rows[1:] {
		if len(row) != 3 {
			return nil, nil, fmt.Errorf("%s row %d: want 3 columns, got %d", path, i+2, len(row))
		}
		d, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d delay: %w", path, i+2, err)
		}
		w, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d wait: %w", path, i+2, err)
		}
		delays = append(delays, d)
		waits = append(waits, w)
	}
	return delays, waits, nil
}
