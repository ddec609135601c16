// Implements the WaitingRoom, which holds jobs that arrived while the server was busy.

package sim

import (
	"container/heap"
	"fmt"
	"strings"
)

// WaitingRoom is an unbounded container of not-yet-served jobs. The next job
// to serve is decided by the Discipline supplied at construction; the room
// itself knows nothing about individual policies.
type WaitingRoom struct {
	jobs       jobHeap
	discipline Discipline
	selector   Selector // non-nil when discipline picks at removal time
}

// NewWaitingRoom creates an empty waiting room ordered by d.
func NewWaitingRoom(d Discipline) *WaitingRoom {
	if d == nil {
		panic("NewWaitingRoom: discipline must not be nil")
	}
	wr := &WaitingRoom{
		jobs:       jobHeap{less: d.Less},
		discipline: d,
	}
	if s, ok := d.(Selector); ok {
		wr.selector = s
	}
	return wr
}

// Add places a job in the waiting room. The room owns it until RemoveNext.
func (wr *WaitingRoom) Add(j *Job) {
	if j == nil {
		panic("WaitingRoom.Add: job must not be nil")
	}
	heap.Push(&wr.jobs, j)
}

// RemoveNext removes and returns the job the discipline ranks first, or the
// one its Selector picks among the jobs waiting now.
// Calling it on an empty room is an invariant violation and panics.
func (wr *WaitingRoom) RemoveNext() *Job {
	if wr.jobs.Len() == 0 {
		panic("WaitingRoom.RemoveNext: waiting room is empty")
	}
	if wr.selector != nil {
		return heap.Remove(&wr.jobs, wr.selector.Select(wr.jobs.Len())).(*Job)
	}
	return heap.Pop(&wr.jobs).(*Job)
}

// IsEmpty reports whether no job is waiting.
func (wr *WaitingRoom) IsEmpty() bool {
	return wr.jobs.Len() == 0
}

// Len returns the number of waiting jobs.
func (wr *WaitingRoom) Len() int {
	return wr.jobs.Len()
}

func (wr *WaitingRoom) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range wr.jobs.items {
		sb.WriteString(fmt.Sprint(j.Seq))
		if i < len(wr.jobs.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// jobHeap implements heap.Interface over the discipline's ordering.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type jobHeap struct {
	items []*Job
	less  func(a, b *Job) bool
}

func (h jobHeap) Len() int           { return len(h.items) }
func (h jobHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h jobHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *jobHeap) Push(x any) {
	h.items = append(h.items, x.(*Job))
}

func (h *jobHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the slot so the room holds no stale pointer
	h.items = old[0 : n-1]
	return item
}
