package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/inference-sim/ssq-sim/sim"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRunFile_PartialFileKeepsDefaults(t *testing.T) {
	// GIVEN a file that sets only the seed and policy
	path := writeYAML(t, "seed: 5\npolicy: lcfs\n")

	// WHEN it is loaded and applied to the defaults
	f, err := LoadRunFile(path)
	require.NoError(t, err)
	cfg := sim.DefaultConfig()
	require.NoError(t, f.Apply(&cfg))

	// THEN only those fields change
	want := sim.DefaultConfig()
	want.Seed = 5
	want.Policy = sim.PolicyLCFS
	assert.Equal(t, want, cfg)
}

func TestLoadRunFile_AllFields(t *testing.T) {
	path := writeYAML(t, `
arrival_mean: 1.6
stop: 500
seed: 9
policy: RO
service_min: 0.5
service_max: 2.5
trace: events
`)
	f, err := LoadRunFile(path)
	require.NoError(t, err)
	cfg := sim.DefaultConfig()
	require.NoError(t, f.Apply(&cfg))

	assert.Equal(t, sim.Config{
		ArrivalMean: 1.6,
		Stop:        500,
		Seed:        9,
		Policy:      sim.PolicyRO,
		ServiceMin:  0.5,
		ServiceMax:  2.5,
		Trace:       true,
	}, cfg)
}

func TestLoadRunFile_UnknownFieldRejected(t *testing.T) {
	path := writeYAML(t, "arrival_rate: 0.5\n")
	_, err := LoadRunFile(path)
	assert.Error(t, err)
}

func TestLoadRunFile_MissingFile(t *testing.T) {
	_, err := LoadRunFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRunFile_Apply_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		file RunFile
	}{
		{"unknown policy", RunFile{Policy: "PS"}},
		{"unknown trace level", RunFile{Trace: "verbose"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := sim.DefaultConfig()
			assert.Error(t, tc.file.Apply(&cfg))
		})
	}
}
