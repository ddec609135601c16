// Defines the Job struct that models one customer in the single-server queue.

package sim

import "fmt"

// Job is a customer that arrived while the server was busy.
// It is owned by the WaitingRoom from Add until RemoveNext hands it back.
type Job struct {
	Seq         int64   // Arrival ordinal, 1-based; deterministic tie-breaker
	ArrivalTime float64 // Simulated time the job entered the system
	ServiceTime float64 // Server time required, drawn once on arrival
}

func (j Job) String() string {
	return fmt.Sprintf("Job: (Seq: %d, ArrivalTime: %.4f, ServiceTime: %.4f)", j.Seq, j.ArrivalTime, j.ServiceTime)
}
