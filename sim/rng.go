package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// RandomSource is the multi-stream generator the engine draws from.
// Reusing the same seed and call sequence MUST reproduce bit-identical draws.
type RandomSource interface {
	// PlantSeeds initializes every stream deterministically from one seed.
	PlantSeeds(seed int64)
	// SelectStream switches the stream used by subsequent Random calls.
	SelectStream(id int)
	// Random returns a draw in [0, 1) from the selected stream.
	Random() float64
}

// === Stream IDs ===

const (
	// StreamArrival feeds inter-arrival gaps.
	StreamArrival = 0
	// StreamService feeds service-time draws.
	StreamService = 1
	// StreamOrder feeds random-order selection draws.
	StreamOrder = 2

	// NumStreams is the number of streams a StreamRNG carries.
	NumStreams = 3
)

// streamNames are hashed into per-stream seeds.
var streamNames = [NumStreams]string{"arrival", "service", "order"}

// === StreamRNG ===

// StreamRNG provides deterministic, isolated RNG instances per stream.
//
// Derivation formula:
//   - StreamArrival uses the master seed directly
//   - every other stream uses masterSeed XOR fnv1a64(streamName)
//
// Thread-safety: NOT thread-safe. Each simulation run owns its own StreamRNG.
type StreamRNG struct {
	seed    int64
	current int
	streams [NumStreams]*rand.Rand
}

// NewStreamRNG creates a StreamRNG with all streams planted from seed.
func NewStreamRNG(seed int64) *StreamRNG {
	r := &StreamRNG{}
	r.PlantSeeds(seed)
	return r
}

// PlantSeeds reseeds every stream and selects StreamArrival.
func (r *StreamRNG) PlantSeeds(seed int64) {
	r.seed = seed
	r.current = StreamArrival
	for id := range r.streams {
		r.streams[id] = rand.New(rand.NewSource(deriveSeed(seed, id)))
	}
}

// SelectStream switches the active stream. Panics on an unknown stream ID.
func (r *StreamRNG) SelectStream(id int) {
	if id < 0 || id >= NumStreams {
		panic(fmt.Sprintf("SelectStream: unknown stream %d", id))
	}
	r.current = id
}

// Random draws from the active stream.
func (r *StreamRNG) Random() float64 {
	return r.streams[r.current].Float64()
}

// Seed returns the seed the streams were planted from.
func (r *StreamRNG) Seed() int64 {
	return r.seed
}

func deriveSeed(seed int64, id int) int64 {
	if id == StreamArrival {
		return seed
	}
	return seed ^ fnv1a64(streamNames[id])
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
