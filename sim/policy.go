package sim

import (
	"errors"
	"fmt"
	"strings"
)

// Policy names the queueing discipline used to pick the next waiting job.
// It is chosen once at configuration time and never changes during a run.
type Policy string

const (
	PolicyFCFS Policy = "FCFS" // First-Come-First-Served
	PolicyLCFS Policy = "LCFS" // Last-Come-First-Served, non-preemptive
	PolicySJF  Policy = "SJF"  // Shortest-Job-First, non-preemptive
	PolicyRO   Policy = "RO"   // Random-Order
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("unknown scheduling policy")

// validPolicies is the set of recognized policy names.
var validPolicies = map[Policy]bool{
	PolicyFCFS: true,
	PolicyLCFS: true,
	PolicySJF:  true,
	PolicyRO:   true,
}

// AllPolicies lists every policy in presentation order.
func AllPolicies() []Policy {
	return []Policy{PolicyFCFS, PolicyLCFS, PolicySJF, PolicyRO}
}

// IsValidPolicy returns true if name is a recognized policy (case-insensitive).
func IsValidPolicy(name string) bool {
	return validPolicies[Policy(strings.ToUpper(strings.TrimSpace(name)))]
}

// ParsePolicy converts a user-supplied name into a Policy.
// Matching is case-insensitive; "fcfs" and "FCFS" are the same policy.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(strings.ToUpper(strings.TrimSpace(name)))
	if !validPolicies[p] {
		return "", fmt.Errorf("%w %q (valid: FCFS, LCFS, SJF, RO)", ErrUnknownPolicy, name)
	}
	return p, nil
}

// Discipline orders waiting jobs. Less reports whether a should leave the
// waiting room before b. Implementations must be a strict weak ordering.
type Discipline interface {
	Less(a, b *Job) bool
}

// Selector is implemented by disciplines that choose the next job at removal
// time instead of by ordering. Select returns an index in [0, n).
type Selector interface {
	Select(n int) int
}

// FCFSDiscipline serves the earliest arrival first, then the lowest Seq.
type FCFSDiscipline struct{}

func (FCFSDiscipline) Less(a, b *Job) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Seq < b.Seq
}

// LCFSDiscipline serves the latest arrival first. A job already in service
// is never interrupted; only the choice among waiting jobs changes.
type LCFSDiscipline struct{}

func (LCFSDiscipline) Less(a, b *Job) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime > b.ArrivalTime
	}
	return a.Seq > b.Seq
}

// SJFDiscipline serves the shortest service time first, then by arrival order.
// Warning: long jobs can starve under sustained load.
type SJFDiscipline struct{}

func (SJFDiscipline) Less(a, b *Job) bool {
	if a.ServiceTime != b.ServiceTime {
		return a.ServiceTime < b.ServiceTime
	}
	return a.Seq < b.Seq
}

// RandomOrderDiscipline serves a uniformly random waiting job.
//
// The choice is made when a job leaves: Select draws one Uniform[0,1) value
// from StreamOrder and maps it onto the jobs waiting at that moment, so every
// one of them is equally likely regardless of how long it has waited.
// Less only keeps the room's heap deterministic.
type RandomOrderDiscipline struct {
	rng RandomSource
}

// NewRandomOrderDiscipline returns a discipline drawing from rng.
func NewRandomOrderDiscipline(rng RandomSource) *RandomOrderDiscipline {
	if rng == nil {
		panic("NewRandomOrderDiscipline: rng must not be nil")
	}
	return &RandomOrderDiscipline{rng: rng}
}

func (d *RandomOrderDiscipline) Select(n int) int {
	d.rng.SelectStream(StreamOrder)
	i := int(d.rng.Random() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func (d *RandomOrderDiscipline) Less(a, b *Job) bool {
	return a.Seq < b.Seq
}

// NewDiscipline creates the Discipline for p. rng is only consulted by PolicyRO.
// Panics on unrecognized policies; use ParsePolicy to validate user input first.
func NewDiscipline(p Policy, rng RandomSource) Discipline {
	switch p {
	case PolicyFCFS:
		return FCFSDiscipline{}
	case PolicyLCFS:
		return LCFSDiscipline{}
	case PolicySJF:
		return SJFDiscipline{}
	case PolicyRO:
		return NewRandomOrderDiscipline(rng)
	default:
		panic(fmt.Sprintf("unhandled policy %q", p))
	}
}
