package container

import "container/heap"

// Less reports whether a sorts before b. Elements the comparator considers
// equal are popped in no defined order; insertion order is not tracked.
type Less[T any] func(a, b T) bool

// MinHeap is a binary min-heap over elements of type T, ordered by a
// caller-supplied total comparator. It wraps container/heap so pop always
// returns the minimum element per the comparator.
type MinHeap[T any] struct {
	h *innerHeap[T]
}

// NewMinHeap creates an empty heap ordered by less.
func NewMinHeap[T any](less Less[T]) *MinHeap[T] {
	h := &innerHeap[T]{less: less}
	heap.Init(h)
	return &MinHeap[T]{h: h}
}

// Push inserts v into the heap.
func (m *MinHeap[T]) Push(v T) {
	heap.Push(m.h, v)
}

// Pop removes and returns the minimum element. Panics if the heap is
// empty; callers should check IsEmpty first.
func (m *MinHeap[T]) Pop() T {
	return heap.Pop(m.h).(T)
}

// Peek returns the minimum element without removing it. Panics if the
// heap is empty.
func (m *MinHeap[T]) Peek() T {
	return m.h.items[0]
}

// Len returns the number of elements in the heap.
func (m *MinHeap[T]) Len() int {
	return len(m.h.items)
}

// IsEmpty reports whether the heap has no elements.
func (m *MinHeap[T]) IsEmpty() bool {
	return len(m.h.items) == 0
}

// innerHeap adapts a slice of T plus a comparator to heap.Interface. It
// keeps no insertion sequence, so ties are ordered only by container/heap's
// sift operations (see Less).
type innerHeap[T any] struct {
	items []T
	less  Less[T]
}

func (h *innerHeap[T]) Len() int            { return len(h.items) }
func (h *innerHeap[T]) Less(i, j int) bool  { return h.less(h.items[i], h.items[j]) }
func (h *innerHeap[T]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *innerHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(T)) }
func (h *innerHeap[T]) Pop() interface{} {
	n := len(h.items)
	item := h.items[n-1]
	h.items = h.items[:n-1]
	return item
}
