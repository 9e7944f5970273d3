package solver

import (
	"container/heap"

	"github.com/go-ricrob/amphipod/internal/intern"
)

var _ heap.Interface = (*queue)(nil)

// entry is a pending expansion: a state id and the total cost it was reached with.
type entry struct {
	id   intern.ID
	cost int
}

// queue is a min-heap of entries ordered by cost.
//
// Improving the cost of a queued state pushes a second entry; the outdated one
// is dropped when popped (lazy deletion).
type queue []entry

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(entry)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}
