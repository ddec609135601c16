// Package sim provides the discrete-event engine for a single-server queue
// with one unbounded waiting room.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - simulator.go: the Clock, the event loop and the conservation check
//   - event.go: ArrivalEvent and CompletionEvent, the only two state transitions
//   - waiting_room.go: the container of jobs that arrived to a busy server
//
// # Architecture
//
// The driver advances time by jumping to min(next arrival, current
// completion), integrates the time-weighted areas in Metrics over the
// interval it skipped, and executes the event. Arrival and service times come
// from an ArrivalGenerator drawing from a RandomSource with independent
// streams for arrivals, services and random-order picks, so one seed yields
// the same sample path under every policy.
//
// Sub-packages:
//   - sim/trace/: optional per-event records and their summary
//   - sim/analytic/: M/G/1 closed-form means for comparison
//   - sim/export/: CSV, JSON and SQLite sinks for finished runs
//
// # Key Interfaces
//
//   - RandomSource: PlantSeeds / SelectStream / Random multi-stream generator
//   - Discipline: ordering of waiting jobs (FCFS, LCFS, SJF, RO)
//   - Selector: optional hook for disciplines that pick a job at removal time
package sim
