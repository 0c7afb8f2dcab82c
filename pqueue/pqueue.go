// This file implements the Min queue on top of container/heap.
package pqueue

import (
	"cmp"
	"container/heap"
)

// entry is one (priority, item) pair stored in the heap.
type entry[P cmp.Ordered, T any] struct {
	priority P
	item     T
}

// pairHeap adapts a slice of entries to heap.Interface, ordered by ascending
// priority. Equal priorities have no defined relative order.
type pairHeap[P cmp.Ordered, T any] []entry[P, T]

// Len returns the number of entries in the heap.
func (h pairHeap[P, T]) Len() int { return len(h) }

// Less defines the comparison: smaller priority → popped first.
func (h pairHeap[P, T]) Less(i, j int) bool { return h[i].priority < h[j].priority }

// Swap swaps two entries.
func (h pairHeap[P, T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new entry; called by heap.Push.
func (h *pairHeap[P, T]) Push(x any) { *h = append(*h, x.(entry[P, T])) }

// Pop removes and returns the last entry; called by heap.Pop.
func (h *pairHeap[P, T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Min is a binary min-heap of (priority, item) pairs.
//
// The zero value is not usable; construct with NewMin. Min is not
// goroutine-safe: each algorithm run owns its queue exclusively.
type Min[P cmp.Ordered, T any] struct {
	h pairHeap[P, T]
}

// NewMin returns an empty queue with the given capacity hint.
func NewMin[P cmp.Ordered, T any](capacity int) *Min[P, T] {
	q := &Min[P, T]{h: make(pairHeap[P, T], 0, capacity)}
	heap.Init(&q.h)

	return q
}

// Len returns the number of queued entries, including stale duplicates the
// caller has yet to discard.
func (q *Min[P, T]) Len() int { return q.h.Len() }

// Push inserts item with the given priority. Duplicate items with differing
// priorities are allowed; see the package documentation on lazy deletion.
func (q *Min[P, T]) Push(priority P, item T) {
	heap.Push(&q.h, entry[P, T]{priority: priority, item: item})
}

// Pop removes and returns the minimum-priority entry.
// ok is false when the queue is empty.
func (q *Min[P, T]) Pop() (priority P, item T, ok bool) {
	if q.h.Len() == 0 {
		return priority, item, false
	}
	e := heap.Pop(&q.h).(entry[P, T])

	return e.priority, e.item, true
}

// Peek returns the minimum-priority entry without removing it.
// ok is false when the queue is empty.
func (q *Min[P, T]) Peek() (priority P, item T, ok bool) {
	if q.h.Len() == 0 {
		return priority, item, false
	}

	return q.h[0].priority, q.h[0].item, true
}
