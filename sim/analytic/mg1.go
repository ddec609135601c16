// Package analytic computes closed-form steady-state means for the M/G/1
// queue the simulator models, for side-by-side comparison with simulated
// results.
package analytic

import (
	"errors"
	"fmt"
)

// ErrUnstable is returned when the offered load is at or above 1, in which
// case the queue has no steady state.
var ErrUnstable = errors.New("queue is unstable (utilization >= 1)")

// ServiceMoments holds the first two moments of the service-time law.
type ServiceMoments struct {
	Mean         float64 // E[S]
	SecondMoment float64 // E[S²]
}

// UniformService returns the moments of Uniform(a, b).
func UniformService(a, b float64) ServiceMoments {
	return ServiceMoments{
		Mean:         (a + b) / 2,
		SecondMoment: (a*a + a*b + b*b) / 3,
	}
}

// Prediction holds Pollaczek-Khinchine steady-state means.
type Prediction struct {
	ArrivalRate float64 `json:"arrival_rate"` // λ
	Utilization float64 `json:"utilization"`  // ρ = λ E[S]
	AvgDelay    float64 `json:"avg_delay"`    // Wq
	AvgWait     float64 `json:"avg_wait"`     // W = Wq + E[S]
	AvgInQueue  float64 `json:"avg_in_queue"` // Lq = λ Wq
	AvgInNode   float64 `json:"avg_in_node"`  // L = λ W
}

// MG1 predicts the steady-state means for Poisson arrivals with mean
// inter-arrival time interarrivalMean and service moments s.
// The means hold for FCFS, LCFS and random order alike since none of them
// looks at service times; SJF is not covered.
func MG1(interarrivalMean float64, s ServiceMoments) (*Prediction, error) {
	if !(interarrivalMean > 0) {
		return nil, fmt.Errorf("interarrival mean must be positive, got %v", interarrivalMean)
	}
	if !(s.Mean > 0) || s.SecondMoment < s.Mean*s.Mean*(1-1e-12) {
		return nil, fmt.Errorf("invalid service moments %+v", s)
	}
	lambda := 1.0 / interarrivalMean
	rho := lambda * s.Mean
	if rho >= 1 {
		return nil, fmt.Errorf("%w: rho=%.4f", ErrUnstable, rho)
	}
	wq := lambda * s.SecondMoment / (2 * (1 - rho))
	w := wq + s.Mean
	return &Prediction{
		ArrivalRate: lambda,
		Utilization: rho,
		AvgDelay:    wq,
		AvgWait:     w,
		AvgInQueue:  lambda * wq,
		AvgInNode:   lambda * w,
	}, nil
}
