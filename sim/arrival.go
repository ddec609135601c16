package sim

import "math"

// Infinity is the sentinel timestamp for "no further arrivals" and "server idle".
var Infinity = math.Inf(1)

// ArrivalGenerator produces successive arrival timestamps and service-time
// draws. It is carried and mutated by the Simulator that owns it.
type ArrivalGenerator struct {
	rng        RandomSource
	mean       float64 // mean inter-arrival time
	stop       float64 // arrivals at or beyond stop are refused
	serviceMin float64
	serviceMax float64

	clock     float64 // running arrival clock
	exhausted bool
}

// NewArrivalGenerator returns a generator starting at time 0.
// mean is the exponential inter-arrival mean; service times are
// Uniform(serviceMin, serviceMax).
func NewArrivalGenerator(rng RandomSource, mean, stop, serviceMin, serviceMax float64) *ArrivalGenerator {
	if rng == nil {
		panic("NewArrivalGenerator: rng must not be nil")
	}
	return &ArrivalGenerator{
		rng:        rng,
		mean:       mean,
		stop:       stop,
		serviceMin: serviceMin,
		serviceMax: serviceMax,
	}
}

// NextArrivalTime advances the arrival clock by an exponential gap drawn from
// StreamArrival. Once a draw reaches the stop time it returns Infinity, and
// every later call returns Infinity without drawing.
func (g *ArrivalGenerator) NextArrivalTime() float64 {
	if g.exhausted {
		return Infinity
	}
	g.rng.SelectStream(StreamArrival)
	g.clock += exponential(g.rng, g.mean)
	if g.clock >= g.stop {
		g.exhausted = true
		return Infinity
	}
	return g.clock
}

// NextServiceTime draws a Uniform(serviceMin, serviceMax) duration from StreamService.
func (g *ArrivalGenerator) NextServiceTime() float64 {
	g.rng.SelectStream(StreamService)
	return uniform(g.rng, g.serviceMin, g.serviceMax)
}

// Exhausted reports whether the horizon has closed.
func (g *ArrivalGenerator) Exhausted() bool {
	return g.exhausted
}

// exponential draws from an exponential distribution with mean m.
func exponential(rng RandomSource, m float64) float64 {
	return -m * math.Log(1.0-rng.Random())
}

// uniform draws from Uniform(a, b).
func uniform(rng RandomSource, a, b float64) float64 {
	return a + (b-a)*rng.Random()
}
