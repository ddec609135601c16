package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRoom adds jobs 1..3 with arrivals 1, 2, 3 and services 1.8, 1.2, 1.5.
func fillRoom(wr *WaitingRoom) {
	wr.Add(&Job{Seq: 1, ArrivalTime: 1, ServiceTime: 1.8})
	wr.Add(&Job{Seq: 2, ArrivalTime: 2, ServiceTime: 1.2})
	wr.Add(&Job{Seq: 3, ArrivalTime: 3, ServiceTime: 1.5})
}

func drain(wr *WaitingRoom) []int64 {
	var order []int64
	for !wr.IsEmpty() {
		order = append(order, wr.RemoveNext().Seq)
	}
	return order
}

func TestWaitingRoom_RemovalOrderPerPolicy(t *testing.T) {
	tests := []struct {
		policy Policy
		want   []int64
	}{
		{PolicyFCFS, []int64{1, 2, 3}},
		{PolicyLCFS, []int64{3, 2, 1}},
		{PolicySJF, []int64{2, 3, 1}},
	}
	for _, tc := range tests {
		t.Run(string(tc.policy), func(t *testing.T) {
			// GIVEN a room holding three jobs
			wr := NewWaitingRoom(NewDiscipline(tc.policy, nil))
			fillRoom(wr)
			require.Equal(t, 3, wr.Len())

			// WHEN it is drained
			got := drain(wr)

			// THEN jobs leave in the discipline's order
			assert.Equal(t, tc.want, got)
			assert.Equal(t, 0, wr.Len())
		})
	}
}

func TestWaitingRoom_InterleavedAddAndRemove(t *testing.T) {
	// LCFS: the most recent arrival among those present leaves first
	wr := NewWaitingRoom(LCFSDiscipline{})
	wr.Add(&Job{Seq: 1, ArrivalTime: 1})
	wr.Add(&Job{Seq: 2, ArrivalTime: 2})
	assert.Equal(t, int64(2), wr.RemoveNext().Seq)

	wr.Add(&Job{Seq: 3, ArrivalTime: 3})
	assert.Equal(t, []int64{3, 1}, drain(wr))
}

func TestWaitingRoom_RandomOrderPicksAtRemoval(t *testing.T) {
	// GIVEN draws that pick the last, then the first, then the only job
	rng := newScriptedSource(nil, nil, []float64{0.9, 0.1, 0.5})
	wr := NewWaitingRoom(NewDiscipline(PolicyRO, rng))
	fillRoom(wr)

	// THEN no draw happens on Add and each removal consumes one draw
	assert.Equal(t, 0, rng.pos[StreamOrder])
	assert.Equal(t, []int64{3, 1, 2}, drain(wr))
	assert.Equal(t, 3, rng.pos[StreamOrder])
}

func TestWaitingRoom_RandomOrderIsUniform(t *testing.T) {
	// GIVEN four waiting jobs under RO and many independent trials
	const trials = 20000
	const size = 4
	rng := NewStreamRNG(2024)
	counts := make([]int, size)

	for i := 0; i < trials; i++ {
		wr := NewWaitingRoom(NewDiscipline(PolicyRO, rng))
		for s := 1; s <= size; s++ {
			wr.Add(&Job{Seq: int64(s), ArrivalTime: float64(s)})
		}
		counts[wr.RemoveNext().Seq-1]++
	}

	// THEN each job is picked first about a quarter of the time
	for s, c := range counts {
		frac := float64(c) / trials
		assert.InDelta(t, 0.25, frac, 0.02, "job %d picked with frequency %.4f", s+1, frac)
	}
}

func TestWaitingRoom_RandomOrderIsUniformAfterEarlierRemovals(t *testing.T) {
	// GIVEN jobs 1 and 2 waiting, one removed, then job 3 added
	const trials = 100000
	rng := NewStreamRNG(77)
	newcomer := 0

	for i := 0; i < trials; i++ {
		wr := NewWaitingRoom(NewDiscipline(PolicyRO, rng))
		wr.Add(&Job{Seq: 1, ArrivalTime: 1})
		wr.Add(&Job{Seq: 2, ArrivalTime: 2})
		wr.RemoveNext()
		wr.Add(&Job{Seq: 3, ArrivalTime: 3})

		// WHEN the next job leaves
		if wr.RemoveNext().Seq == 3 {
			newcomer++
		}
	}

	// THEN the newcomer and the job left over are equally likely
	frac := float64(newcomer) / trials
	assert.InDelta(t, 0.5, frac, 0.01, "newcomer picked with frequency %.4f", frac)
}

func TestWaitingRoom_RandomOrderIsUniformUnderChurn(t *testing.T) {
	// GIVEN a room kept at three waiting jobs, one leaving per new arrival
	const rounds = 60000
	rng := NewStreamRNG(5)
	wr := NewWaitingRoom(NewDiscipline(PolicyRO, rng))
	for s := int64(1); s <= 3; s++ {
		wr.Add(&Job{Seq: s, ArrivalTime: float64(s)})
	}

	// WHEN each removal is classified by the picked job's age rank among those waiting
	counts := make([]int, 3)
	for r := 0; r < rounds; r++ {
		waiting := append([]*Job(nil), wr.jobs.items...)
		picked := wr.RemoveNext()
		rank := 0
		for _, j := range waiting {
			if j.Seq < picked.Seq {
				rank++
			}
		}
		counts[rank]++
		seq := int64(r + 4)
		wr.Add(&Job{Seq: seq, ArrivalTime: float64(seq)})
	}

	// THEN oldest, middle and newest are each picked a third of the time
	for rank, c := range counts {
		frac := float64(c) / rounds
		assert.InDelta(t, 1.0/3, frac, 0.01, "age rank %d picked with frequency %.4f", rank, frac)
	}
}

func TestWaitingRoom_RemoveNextOnEmptyPanics(t *testing.T) {
	wr := NewWaitingRoom(FCFSDiscipline{})
	assert.PanicsWithValue(t, "WaitingRoom.RemoveNext: waiting room is empty", func() { wr.RemoveNext() })
}

func TestWaitingRoom_AddNilPanics(t *testing.T) {
	wr := NewWaitingRoom(FCFSDiscipline{})
	assert.Panics(t, func() { wr.Add(nil) })
}

func TestNewWaitingRoom_NilDisciplinePanics(t *testing.T) {
	assert.Panics(t, func() { NewWaitingRoom(nil) })
}

func TestWaitingRoom_String(t *testing.T) {
	wr := NewWaitingRoom(FCFSDiscipline{})
	assert.Equal(t, "[]", wr.String())
	wr.Add(&Job{Seq: 7, ArrivalTime: 1})
	assert.Equal(t, "[7]", wr.String())
}
