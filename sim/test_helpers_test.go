package sim

import (
	"fmt"
	"math"
)

// scriptedSource replays fixed draws per stream. When the arrival stream runs
// dry it returns a draw close to 1, producing a gap that closes any horizon
// used in these tests; the order stream falls back to 0.5.
type scriptedSource struct {
	current int
	draws   [NumStreams][]float64
	pos     [NumStreams]int
}

func newScriptedSource(arrivals, services, order []float64) *scriptedSource {
	return &scriptedSource{draws: [NumStreams][]float64{arrivals, services, order}}
}

func (s *scriptedSource) PlantSeeds(int64)     { s.pos = [NumStreams]int{} }
func (s *scriptedSource) SelectStream(id int) { s.current = id }

func (s *scriptedSource) Random() float64 {
	id := s.current
	if s.pos[id] >= len(s.draws[id]) {
		switch id {
		case StreamArrival:
			return 1 - 1e-12
		case StreamOrder:
			return 0.5
		default:
			panic(fmt.Sprintf("scriptedSource: stream %d exhausted", id))
		}
	}
	v := s.draws[id][s.pos[id]]
	s.pos[id]++
	return v
}

// gapDraw returns the uniform draw that exponential(mean) maps to gap.
func gapDraw(gap, mean float64) float64 {
	return 1 - math.Exp(-gap/mean)
}

// serviceDraw returns the uniform draw that uniform(a, b) maps to s.
func serviceDraw(s, a, b float64) float64 {
	return (s - a) / (b - a)
}

// scriptedConfig is the configuration used with scriptedSource: mean 2,
// Uniform(1, 2) service, stop 10.
func scriptedConfig(p Policy) Config {
	cfg := DefaultConfig()
	cfg.Stop = 10
	cfg.Policy = p
	cfg.Trace = true
	return cfg
}

// scriptedSourceFor returns a source whose arrivals happen after the given
// gaps and whose jobs take the given service times, in arrival order.
func scriptedSourceFor(cfg Config, gaps, services []float64) *scriptedSource {
	arrivals := make([]float64, len(gaps))
	for i, g := range gaps {
		arrivals[i] = gapDraw(g, cfg.ArrivalMean)
	}
	svc := make([]float64, len(services))
	for i, s := range services {
		svc[i] = serviceDraw(s, cfg.ServiceMin, cfg.ServiceMax)
	}
	return newScriptedSource(arrivals, svc, nil)
}

// newScriptedSimulator builds a traced simulator over scriptedConfig(p)
// replaying the given gaps and service times.
func newScriptedSimulator(p Policy, gaps, services []float64) *Simulator {
	cfg := scriptedConfig(p)
	s, err := NewSimulatorWithSource(cfg, scriptedSourceFor(cfg, gaps, services))
	if err != nil {
		panic(err)
	}
	return s
}

// runReference runs the reference configuration under p with the given seed.
func runReference(p Policy, seed int64, traced bool) *Simulator {
	cfg := DefaultConfig()
	cfg.Policy = p
	cfg.Seed = seed
	cfg.Trace = traced
	s, err := NewSimulator(cfg)
	if err != nil {
		panic(err)
	}
	s.Run()
	return s
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
