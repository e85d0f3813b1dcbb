package minheap

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Heap is a binary min-heap over T ordered by less.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New returns an empty heap ordered by less.
// less must be a strict weak ordering.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// WithCapacity returns an empty heap whose backing slice can hold n
// elements before growing.
func WithCapacity[T any](n int, less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{data: make([]T, 0, n), less: less}
}

// NewOrdered returns an empty heap ordered by the < operator.
func NewOrdered[T constraints.Ordered]() *Heap[T] {
	return New(orderedLess[T])
}

// From builds a heap from items in one pass: the items are copied,
// sorted once and the sorted copy becomes the backing slice.
// The caller's slice is not modified.
func From[T any](items []T, less func(a, b T) bool) *Heap[T] {
	data := make([]T, len(items))
	copy(data, items)
	slices.SortFunc(data, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})

	return &Heap[T]{data: data, less: less}
}

// FromOrdered is From with the < operator.
func FromOrdered[T constraints.Ordered](items ...T) *Heap[T] {
	return From(items, orderedLess[T])
}

func orderedLess[T constraints.Ordered](a, b T) bool { return a < b }

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Push adds item to the heap.
// Time: amortised O(log n).
func (h *Heap[T]) Push(item T) {
	h.data = append(h.data, item)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the minimum element.
// On an empty heap it returns the zero value and false.
// Time: O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, false
	}
	last := n - 1
	h.data[0], h.data[last] = h.data[last], h.data[0]
	item := h.data[last]
	h.data[last] = zero // release references held by the vacated slot
	h.data = h.data[:last]
	h.siftDown(0)

	return item, true
}

// Peek returns the minimum element without removing it.
// On an empty heap it returns the zero value and false.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	return h.data[0], true
}

// siftUp moves data[i] towards the root while it is less than its parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.data[i], h.data[p]) {
			return
		}
		h.data[i], h.data[p] = h.data[p], h.data[i]
		i = p
	}
}

// siftDown moves data[i] towards the leaves. The left child is preferred
// unless the right child is strictly smaller.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		l := left(i)
		if l >= n {
			return
		}
		target := l
		if r := right(i); r < n && h.less(h.data[r], h.data[l]) {
			target = r
		}
		if !h.less(h.data[target], h.data[i]) {
			return
		}
		h.data[i], h.data[target] = h.data[target], h.data[i]
		i = target
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
