// Tracks time-weighted areas and per-job delay/response series for one run.

package sim

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoJobsCompleted is returned by Metrics.Report when no job departed, so
// none of the per-job ratios are defined.
var ErrNoJobsCompleted = errors.New("no jobs completed")

// Metrics accumulates the statistics of a run. It only integrates and
// appends; it never reads simulator state on its own.
type Metrics struct {
	Index int64 // completed jobs

	// Time-weighted integrals over [0, Horizon].
	AreaNode    float64 // ∫ number in system
	AreaQueue   float64 // ∫ number waiting
	AreaService float64 // ∫ server busy

	Horizon     float64 // time of the last processed event
	LastArrival float64 // last arrival accepted before the horizon closed

	Delays []float64 // per-job wait before service, completion order
	Waits  []float64 // per-job response time (delay + service), completion order
}

// NewMetrics returns an empty accumulator.
func NewMetrics() *Metrics {
	return &Metrics{
		Delays: make([]float64, 0),
		Waits:  make([]float64, 0),
	}
}

// Integrate adds one interval of length dt during which number jobs were in
// the system. Intervals with an empty system contribute nothing.
func (m *Metrics) Integrate(dt float64, number int64) {
	if number <= 0 {
		return
	}
	m.AreaNode += dt * float64(number)
	m.AreaQueue += dt * float64(number-1)
	m.AreaService += dt
}

// RecordJob appends one completed job's delay and response time.
// The response time is delay + service exactly.
func (m *Metrics) RecordJob(delay, service float64) {
	m.Index++
	m.Delays = append(m.Delays, delay)
	m.Waits = append(m.Waits, delay+service)
}

// Report holds the finished numbers of a run, ready for printing or export.
type Report struct {
	Policy Policy `json:"policy"`
	Seed   int64  `json:"seed"`
	Jobs   int64  `json:"jobs"`

	Horizon float64 `json:"horizon"`

	// Per-job averages derived from the areas.
	AvgInterarrival float64 `json:"avg_interarrival"`
	AvgWait         float64 `json:"avg_wait"`
	AvgDelay        float64 `json:"avg_delay"`
	AvgService      float64 `json:"avg_service"`

	// Time averages.
	AvgInNode   float64 `json:"avg_in_node"`
	AvgInQueue  float64 `json:"avg_in_queue"`
	Utilization float64 `json:"utilization"`

	// Count averages over the per-job series.
	MeanDelay float64 `json:"mean_delay"`
	MeanWait  float64 `json:"mean_wait"`

	DelayDist Distribution `json:"delay_distribution"`
	WaitDist  Distribution `json:"wait_distribution"`
}

// Report derives the final aggregates. It returns ErrNoJobsCompleted instead
// of dividing by a zero job count.
func (m *Metrics) Report(policy Policy, seed int64) (*Report, error) {
	if m.Index == 0 {
		return nil, ErrNoJobsCompleted
	}
	n := float64(m.Index)
	r := &Report{
		Policy:          policy,
		Seed:            seed,
		Jobs:            m.Index,
		Horizon:         m.Horizon,
		AvgInterarrival: m.LastArrival / n,
		AvgWait:         m.AreaNode / n,
		AvgDelay:        m.AreaQueue / n,
		AvgService:      m.AreaService / n,
		MeanDelay:       CalculateMean(m.Delays),
		MeanWait:        CalculateMean(m.Waits),
		DelayDist:       NewDistribution(m.Delays),
		WaitDist:        NewDistribution(m.Waits),
	}
	if m.Horizon > 0 {
		r.AvgInNode = m.AreaNode / m.Horizon
		r.AvgInQueue = m.AreaQueue / m.Horizon
		r.Utilization = m.AreaService / m.Horizon
	}
	return r, nil
}

// Print writes the report in the classic ssq layout.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "=== Simulation Metrics (%s) ===\n", r.Policy)
	fmt.Fprintf(w, "\nfor %d jobs\n", r.Jobs)
	fmt.Fprintf(w, "   average interarrival time = %6.2f\n", r.AvgInterarrival)
	fmt.Fprintf(w, "   average wait ............ = %6.2f\n", r.AvgWait)
	fmt.Fprintf(w, "   average delay ........... = %6.2f\n", r.AvgDelay)
	fmt.Fprintf(w, "   average service time .... = %6.2f\n", r.AvgService)
	fmt.Fprintf(w, "   average # in the node ... = %6.2f\n", r.AvgInNode)
	fmt.Fprintf(w, "   average # in the queue .. = %6.2f\n", r.AvgInQueue)
	fmt.Fprintf(w, "   utilization ............. = %6.2f\n", r.Utilization)
	fmt.Fprintf(w, "\nper-job series\n")
	fmt.Fprintf(w, "   mean delay .............. = %6.2f  (p50 %.2f, p95 %.2f, p99 %.2f, max %.2f)\n",
		r.MeanDelay, r.DelayDist.P50, r.DelayDist.P95, r.DelayDist.P99, r.DelayDist.Max)
	fmt.Fprintf(w, "   mean wait ............... = %6.2f  (p50 %.2f, p95 %.2f, p99 %.2f, max %.2f)\n",
		r.MeanWait, r.WaitDist.P50, r.WaitDist.P95, r.WaitDist.P99, r.WaitDist.Max)
}
