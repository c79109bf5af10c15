package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// cellItem is one frontier entry: a cell and the f-cost it was pushed with.
// seq is the insertion number, used to break f-cost ties.
type cellItem struct {
	p   gridgraph.Point
	f   float64
	seq uint64
}

// cellPQ is a min-heap of *cellItem ordered by f ascending, then by insertion
// order. Entries are never decreased in place: an improved cell is pushed
// again and the older entry stays behind (“lazy decrease-key”), so the heap
// holds O(pushes) items rather than O(cells).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by f-cost; equal costs pop first-in first-out.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *cellItem.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
