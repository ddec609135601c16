package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents      int
	Arrivals         int
	Completions      int
	MaxNumber        int64 // peak number in system
	MaxQueueLen      int   // peak waiting-room length
	ConservationOK   bool  // Number == Arrivals - Completions after every event
	FirstViolationAt int   // index of the first violating record, -1 if none
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields with ConservationOK set).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{ConservationOK: true, FirstViolationAt: -1}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for i, ev := range st.Events {
		switch ev.Kind {
		case KindArrival:
			summary.Arrivals++
		case KindCompletion:
			summary.Completions++
		}
		if ev.Number > summary.MaxNumber {
			summary.MaxNumber = ev.Number
		}
		if ev.QueueLen > summary.MaxQueueLen {
			summary.MaxQueueLen = ev.QueueLen
		}
		if summary.ConservationOK && ev.Number != int64(summary.Arrivals-summary.Completions) {
			summary.ConservationOK = false
			summary.FirstViolationAt = i
		}
	}
	return summary
}
