package sim

import (
	"fmt"
	"math"
)

// Config groups the parameters of one single-server queue run.
type Config struct {
	ArrivalMean float64 // mean inter-arrival time (exponential); must be > 0
	Stop        float64 // horizon: no arrivals are accepted at or beyond Stop
	Seed        int64   // master seed for every RNG stream
	Policy      Policy  // queueing discipline for waiting jobs
	ServiceMin  float64 // lower bound of the uniform service law (> 0)
	ServiceMax  float64 // upper bound of the uniform service law (>= ServiceMin)
	Trace       bool    // record every event in Simulator.Trace
}

// DefaultConfig returns the reference configuration: mean inter-arrival 2.0,
// stop 20000, service Uniform(1, 2), FCFS, seed 123456789.
func DefaultConfig() Config {
	return Config{
		ArrivalMean: 2.0,
		Stop:        20000.0,
		Seed:        123456789,
		Policy:      PolicyFCFS,
		ServiceMin:  1.0,
		ServiceMax:  2.0,
	}
}

// Validate checks parameter ranges and the policy name.
func (c Config) Validate() error {
	if !(c.ArrivalMean > 0) || math.IsInf(c.ArrivalMean, 0) {
		return fmt.Errorf("arrival mean must be a positive finite number, got %v", c.ArrivalMean)
	}
	if !(c.Stop > 0) || math.IsInf(c.Stop, 0) {
		return fmt.Errorf("stop time must be a positive finite number, got %v", c.Stop)
	}
	if !(c.ServiceMin > 0) || math.IsInf(c.ServiceMin, 0) || math.IsInf(c.ServiceMax, 0) {
		return fmt.Errorf("service bounds must be positive and finite, got [%v, %v]", c.ServiceMin, c.ServiceMax)
	}
	if !(c.ServiceMax >= c.ServiceMin) {
		return fmt.Errorf("service max %v is below service min %v", c.ServiceMax, c.ServiceMin)
	}
	if _, err := ParsePolicy(string(c.Policy)); err != nil {
		return err
	}
	return nil
}
