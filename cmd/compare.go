package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/ssq-sim/sim"
)

var comparePolicies []string // Policies run side by side by `compare`

// compareCmd runs several policies on one sample path
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every policy on the same seed and compare delays",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		policies, err := parsePolicies(comparePolicies)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Comparing %v with seed %d", policies, cfg.Seed)
		results, err := runPolicies(cmd.Context(), cfg, policies)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		printComparison(os.Stdout, results)
		printPrediction(os.Stdout, cfg)

		if err := writeOutputs(results, cfg); err != nil {
			logrus.Fatalf("Writing results failed: %v", err)
		}
		logrus.Info("Comparison complete.")
	},
}

// parsePolicies validates user-supplied names, dropping duplicates.
func parsePolicies(names []string) ([]sim.Policy, error) {
	seen := make(map[sim.Policy]bool)
	var out []sim.Policy
	for _, n := range names {
		p, err := sim.ParsePolicy(n)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no policies to compare")
	}
	return out, nil
}

func policyNames(ps []sim.Policy) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return names
}

func printComparison(w io.Writer, results []*runResult) {
	fmt.Fprintln(w, "=== Policy Comparison ===")
	fmt.Fprintf(w, "%-6s %8s %10s %10s %10s %10s %10s\n",
		"policy", "jobs", "avg delay", "avg wait", "p95 wait", "max wait", "util")
	for _, res := range results {
		r := res.Report
		if r == nil {
			fmt.Fprintf(w, "%-6s %8s\n", res.Policy, "no jobs completed")
			continue
		}
		fmt.Fprintf(w, "%-6s %8d %10.3f %10.3f %10.3f %10.3f %10.3f\n",
			r.Policy, r.Jobs, r.MeanDelay, r.MeanWait, r.WaitDist.P95, r.WaitDist.Max, r.Utilization)
	}
}
