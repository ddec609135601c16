package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	limit int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errDiskFull
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestWriteSweep_OneRowPerLoadAndPolicy(t *testing.T) {
	// GIVEN two loads and a short horizon
	var buf bytes.Buffer

	// WHEN the sweep is written
	require.NoError(t, writeSweep(&buf, []float64{4.0, 2.0}, 500, 1))

	// THEN there is a header plus four policies per load
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+2*4)
	assert.Equal(t, "arrival_mean", rows[0][0])
	assert.Equal(t, []string{"4.00", "FCFS"}, []string{rows[1][0], rows[1][2]})
	assert.Equal(t, []string{"2.00", "RO"}, []string{rows[8][0], rows[8][2]})
}

func TestWriteSweep_ReportsShortWrite(t *testing.T) {
	// GIVEN an output that fails after a few bytes
	out := &failingWriter{limit: 10}

	// WHEN the sweep is written
	err := writeSweep(out, []float64{4.0}, 200, 1)

	// THEN the failure surfaces instead of leaving a truncated file unnoticed
	assert.ErrorIs(t, err, errDiskFull)
}

func TestWriteSweep_UnstableLoadIsAnError(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeSweep(&buf, []float64{1.0}, 200, 1))
}
