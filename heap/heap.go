package heap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Heap is a binary heap laid out in a slice. For node i, its children are
// at 2i+1 and 2i+2 and its parent is at (i-1)/2.
//
// Heap is not safe for concurrent use.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool // reports whether a belongs above b
}

// New creates a heap for an ordered element type. Without options it is a
// min-heap comparing elements with <.
//
// items become the heap's storage and are reordered in place; the caller
// must not use the slice afterwards.
func New[T constraints.Ordered](items []T, opts ...Option[T]) (*Heap[T], error) {
	return newHeap(items, naturalOrder[T], opts)
}

// NewFunc creates a heap for an element type without a natural order.
// Either WithKey or WithLess must be given.
func NewFunc[T any](items []T, opts ...Option[T]) (*Heap[T], error) {
	return newHeap(items, nil, opts)
}

func newHeap[T any](items []T, natural func(Order) func(a, b T) bool, opts []Option[T]) (*Heap[T], error) {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	less, err := o.resolve(natural)
	if err != nil {
		return nil, err
	}

	h := &Heap[T]{
		items: items,
		less:  less,
	}
	h.init()
	return h, nil
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Empty reports whether the heap has no elements.
func (h *Heap[T]) Empty() bool {
	return len(h.items) == 0
}

// NotEmpty reports whether the heap has at least one element.
func (h *Heap[T]) NotEmpty() bool {
	return !h.Empty()
}

// Push adds v to the heap and returns the heap so calls can be chained.
func (h *Heap[T]) Push(v T) *Heap[T] {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
	return h
}

// Pop removes and returns the top element.
func (h *Heap[T]) Pop() (T, error) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}

	top := h.items[0]
	last := h.items[n-1]

	var zero T
	h.items[n-1] = zero // drop the reference held by the backing array
	h.items = h.items[:n-1]

	if n > 1 {
		h.items[0] = last
		h.down(0)
	}
	return top, nil
}

// Top returns the top element without removing it.
func (h *Heap[T]) Top() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.items[0], nil
}

// All drains the heap, yielding elements in order. Iteration consumes the
// heap: a second pass yields nothing. Elements not reached because the
// consumer stopped early stay in the heap.
func (h *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h.NotEmpty() {
			v, _ := h.Pop()
			if !yield(v) {
				return
			}
		}
	}
}

// init establishes the heap property over the whole slice.
func (h *Heap[T]) init() {
	for i := len(h.items) / 2; i >= 0; i-- {
		h.down(i)
	}
}

// up moves the element at index i up to its proper position.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.less(h.items[parent], h.items[i]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n || left < 0 { // left < 0 after int overflow
			return
		}

		best := i
		if !h.less(h.items[best], h.items[left]) {
			best = left
		}
		if right := left + 1; right < n && !h.less(h.items[best], h.items[right]) {
			best = right
		}

		if best == i {
			return
		}
		h.swap(i, best)
		i = best
	}
}

// swap swaps items at index i and j.
func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}
