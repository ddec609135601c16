// Package trace provides per-event recording for single-server queue runs.
// It has no dependencies on sim/ and stores plain data types.
package trace

// EventKind distinguishes the two event types the driver processes.
type EventKind string

const (
	KindArrival    EventKind = "arrival"
	KindCompletion EventKind = "completion"
)

// EventRecord captures system state immediately after one event is processed.
type EventRecord struct {
	Time     float64   // simulated time of the event
	Kind     EventKind // arrival or completion
	Number   int64     // number in system after the event
	QueueLen int       // waiting-room length after the event
	Busy     bool      // server busy after the event
	Seq      int64     // arrival ordinal of the job the event concerns
}
