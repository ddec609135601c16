package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	sim "github.com/inference-sim/ssq-sim/sim"
	"github.com/inference-sim/ssq-sim/sim/analytic"
	"github.com/inference-sim/ssq-sim/sim/trace"
)

// runResult is one finished run handed to the reporting side.
type runResult struct {
	Policy sim.Policy
	Report *sim.Report // nil when no job completed
	Delays []float64
	Waits  []float64
	Trace  *trace.TraceSummary // nil unless tracing was enabled
}

// runPolicy runs cfg to completion. A run in which no job completed is not an
// error; its Report is nil.
func runPolicy(cfg sim.Config) (*runResult, error) {
	s, err := sim.NewSimulator(cfg)
	if err != nil {
		return nil, err
	}
	s.Run()

	res := &runResult{
		Policy: s.Config.Policy,
		Delays: s.Metrics.Delays,
		Waits:  s.Metrics.Waits,
	}
	if s.Trace.Enabled() {
		res.Trace = trace.Summarize(s.Trace)
	}
	report, err := s.Report()
	switch {
	case errors.Is(err, sim.ErrNoJobsCompleted):
		logrus.Warnf("%s: no jobs completed before stop time %.2f", cfg.Policy, cfg.Stop)
	case err != nil:
		return nil, err
	default:
		res.Report = report
	}
	return res, nil
}

// runPolicies runs cfg once per policy in parallel. Every run builds its own
// simulator and RNG from cfg.Seed, so all runs see the same arrival and
// service sample path. Results are returned in the order of policies.
func runPolicies(ctx context.Context, cfg sim.Config, policies []sim.Policy) ([]*runResult, error) {
	results := make([]*runResult, len(policies))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range policies {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := cfg
			c.Policy = p
			res, err := runPolicy(c)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printResult(w io.Writer, res *runResult) {
	if res.Report == nil {
		fmt.Fprintf(w, "=== Simulation Metrics (%s) ===\n\nno jobs completed\n", res.Policy)
		return
	}
	res.Report.Print(w)
	if res.Trace != nil {
		fmt.Fprintf(w, "\nevent trace\n")
		fmt.Fprintf(w, "   events %d (arrivals %d, completions %d), max # in node %d, max # in queue %d\n",
			res.Trace.TotalEvents, res.Trace.Arrivals, res.Trace.Completions, res.Trace.MaxNumber, res.Trace.MaxQueueLen)
	}
}

// printPrediction prints the M/G/1 steady-state means for cfg, or why there are none.
func printPrediction(w io.Writer, cfg sim.Config) {
	p, err := analytic.MG1(cfg.ArrivalMean, analytic.UniformService(cfg.ServiceMin, cfg.ServiceMax))
	if err != nil {
		fmt.Fprintf(w, "\nM/G/1 prediction unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(w, "\nM/G/1 prediction (FCFS, LCFS, RO)\n")
	fmt.Fprintf(w, "   average wait ............ = %6.2f\n", p.AvgWait)
	fmt.Fprintf(w, "   average delay ........... = %6.2f\n", p.AvgDelay)
	fmt.Fprintf(w, "   average # in the node ... = %6.2f\n", p.AvgInNode)
	fmt.Fprintf(w, "   average # in the queue .. = %6.2f\n", p.AvgInQueue)
	fmt.Fprintf(w, "   utilization ............. = %6.2f\n", p.Utilization)
}
