package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/ssq-sim/sim/trace"
)

// Event defines the interface for the two simulation events.
// Each event has a Timestamp and an Execute method that mutates the
// simulator once the clock has been advanced to that timestamp.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent represents a job entering the system.
type ArrivalEvent struct {
	time float64
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute admits the job: it starts service at once when the system was
// empty and otherwise waits in the waiting room. The next arrival is drawn
// afterwards; when it falls beyond the horizon the arrival clock is closed.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	sim.Number++
	sim.arrived++
	seq := sim.arrived
	service := sim.arrivals.NextServiceTime()

	if sim.Number == 1 {
		sim.inService = servedJob{seq: seq, arrival: e.time, service: service, start: e.time}
		sim.Clock.Completion = e.time + service
	} else {
		sim.WaitingRoom.Add(&Job{Seq: seq, ArrivalTime: e.time, ServiceTime: service})
	}

	sim.Clock.Arrival = sim.arrivals.NextArrivalTime()
	if sim.Clock.Arrival == Infinity {
		sim.Clock.Last = e.time
		logrus.Debugf("[t=%.4f] horizon closed after %d arrivals", e.time, sim.arrived)
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("<< Arrival: job %d at %.4f (service %.4f, number %d)", seq, e.time, service, sim.Number)
	}
	sim.record(trace.KindArrival, seq)
}

// CompletionEvent represents the job in service leaving the system.
type CompletionEvent struct {
	time float64
}

// Timestamp returns the scheduled time of the CompletionEvent.
func (e *CompletionEvent) Timestamp() float64 {
	return e.time
}

// Execute records the departing job and hands the server to the next job the
// waiting room yields, or idles the server when nobody is waiting.
func (e *CompletionEvent) Execute(sim *Simulator) {
	done := sim.inService
	sim.Metrics.RecordJob(done.start-done.arrival, done.service)
	sim.Number--

	if sim.Number > 0 {
		next := sim.WaitingRoom.RemoveNext()
		sim.inService = servedJob{seq: next.Seq, arrival: next.ArrivalTime, service: next.ServiceTime, start: e.time}
		sim.Clock.Completion = e.time + next.ServiceTime
	} else {
		sim.inService = servedJob{}
		sim.Clock.Completion = Infinity
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("<< Completion: job %d at %.4f (delay %.4f, number %d)", done.seq, e.time, done.start-done.arrival, sim.Number)
	}
	sim.record(trace.KindCompletion, done.seq)
}
