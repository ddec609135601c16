// sim/simulator.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/ssq-sim/sim/trace"
)

// Clock holds the event times of the single-server loop.
type Clock struct {
	Current    float64 // time of the last processed event; never decreases
	Arrival    float64 // next pending arrival, Infinity once the horizon closed
	Completion float64 // end of the current service, Infinity while idle
	Next       float64 // min(Arrival, Completion), the time being processed
	Last       float64 // last arrival accepted before the horizon closed
}

// servedJob is the job currently holding the server. It is kept by value so
// a job arriving to an idle server is never materialized in the waiting room.
type servedJob struct {
	seq     int64
	arrival float64
	service float64
	start   float64
}

// Simulator is the core object that holds simulated time, system state and
// the event loop for one run. A Simulator is not safe for concurrent use;
// parallel runs each need their own.
type Simulator struct {
	Config      Config
	Clock       Clock
	Number      int64 // jobs in the system, waiting or in service
	WaitingRoom *WaitingRoom
	Metrics     *Metrics
	Trace       *trace.SimulationTrace // nil unless Config.Trace

	rng       RandomSource
	arrivals  *ArrivalGenerator
	inService servedJob
	arrived   int64
}

// NewSimulator validates cfg and builds a simulator whose streams are all
// planted from cfg.Seed.
func NewSimulator(cfg Config) (*Simulator, error) {
	return NewSimulatorWithSource(cfg, NewStreamRNG(cfg.Seed))
}

// NewSimulatorWithSource builds a simulator drawing from rng instead of a
// StreamRNG. rng must already be seeded.
func NewSimulatorWithSource(cfg Config, rng RandomSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("invalid simulation config: nil random source")
	}
	policy, _ := ParsePolicy(string(cfg.Policy))
	cfg.Policy = policy

	s := &Simulator{
		Config:      cfg,
		WaitingRoom: NewWaitingRoom(NewDiscipline(policy, rng)),
		Metrics:     NewMetrics(),
		rng:         rng,
		arrivals:    NewArrivalGenerator(rng, cfg.ArrivalMean, cfg.Stop, cfg.ServiceMin, cfg.ServiceMax),
	}
	if cfg.Trace {
		s.Trace = trace.NewSimulationTrace(trace.TraceLevelEvents)
	}
	return s, nil
}

// Run drives the loop until the horizon has closed and the system drained.
func (sim *Simulator) Run() {
	logrus.Infof("Starting %s run: arrival mean %.3f, stop %.1f, seed %d",
		sim.Config.Policy, sim.Config.ArrivalMean, sim.Config.Stop, sim.Config.Seed)

	sim.Clock = Clock{Arrival: sim.arrivals.NextArrivalTime(), Completion: Infinity}
	for sim.Clock.Arrival != Infinity || sim.Number > 0 {
		sim.Step()
	}

	sim.Metrics.Horizon = sim.Clock.Current
	sim.Metrics.LastArrival = sim.Clock.Last
	logrus.Infof("[t=%.4f] Simulation ended: %d jobs completed", sim.Clock.Current, sim.Metrics.Index)
}

// Step processes exactly one event: it integrates the areas over
// [Current, Next) with the pre-event number in system, advances the clock
// and executes the arrival (which wins ties) or the completion.
func (sim *Simulator) Step() {
	ev := sim.nextEvent()
	next := ev.Timestamp()
	if next == Infinity {
		panic("Step: no pending event")
	}
	if next < sim.Clock.Current || math.IsNaN(next) {
		panic(fmt.Sprintf("Step: time moved backwards from %v to %v", sim.Clock.Current, next))
	}
	sim.Clock.Next = next

	if sim.Number > 0 {
		sim.Metrics.Integrate(next-sim.Clock.Current, sim.Number)
	}
	sim.Clock.Current = next

	ev.Execute(sim)
	sim.checkConservation()
}

// nextEvent picks the event at min(Arrival, Completion).
func (sim *Simulator) nextEvent() Event {
	if sim.Clock.Arrival <= sim.Clock.Completion {
		return &ArrivalEvent{time: sim.Clock.Arrival}
	}
	return &CompletionEvent{time: sim.Clock.Completion}
}

// Busy reports whether a job holds the server.
func (sim *Simulator) Busy() bool {
	return sim.Clock.Completion != Infinity
}

// Arrived returns the number of arrivals accepted so far.
func (sim *Simulator) Arrived() int64 {
	return sim.arrived
}

// checkConservation panics when the number in system disagrees with the
// waiting room plus the server.
func (sim *Simulator) checkConservation() {
	inService := int64(0)
	if sim.Busy() {
		inService = 1
	}
	if sim.Number < 0 || sim.Number != int64(sim.WaitingRoom.Len())+inService {
		panic(fmt.Sprintf("number in system %d != waiting %d + in service %d",
			sim.Number, sim.WaitingRoom.Len(), inService))
	}
}

func (sim *Simulator) record(kind trace.EventKind, seq int64) {
	if !sim.Trace.Enabled() {
		return
	}
	sim.Trace.Record(trace.EventRecord{
		Time:     sim.Clock.Current,
		Kind:     kind,
		Number:   sim.Number,
		QueueLen: sim.WaitingRoom.Len(),
		Busy:     sim.Busy(),
		Seq:      seq,
	})
}

// Report derives the run's final aggregates. See Metrics.Report.
func (sim *Simulator) Report() (*Report, error) {
	return sim.Metrics.Report(sim.Config.Policy, sim.Config.Seed)
}
