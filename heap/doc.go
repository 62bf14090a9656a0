// Package heap implements a generic binary heap (priority queue) whose
// ordering is chosen once, at construction.
//
// The heap is stored in a slice acting as an implicit complete binary tree:
// the element at index i has children at 2i+1 and 2i+2. Every element ranks
// at least as high as its children, so the top of the heap is always the
// extremal element under the configured ordering.
//
// Ordering is configured in exactly one of two ways:
//   - a direction, Min (the default) or Max, optionally applied to a key
//     extracted from each element with WithKey;
//   - a custom comparator given with WithLess.
//
// Mixing the two, or passing an unknown Order, fails with ErrInvalidConfig.
//
// Key features:
//   - O(n) construction from an existing slice
//   - O(log n) Push and Pop
//   - O(1) Top, Len and Empty
//   - Draining iteration in order with All, usable with range and the slices package
//
// Basic usage:
//
//	h, err := heap.New([]int{5, 3, 7}, heap.WithOrder[int](heap.Max))
//	if err != nil {
//	    return err
//	}
//	h.Push(10).Push(1)
//
//	top, _ := h.Top() // 10
//
//	sorted := slices.Collect(h.All()) // [10 7 5 3 1], h is now empty
//
// Ordering strings by length:
//
//	h, _ := heap.New(words, heap.WithKey(func(s string) int { return len(s) }))
//
// Pop and Top return ErrEmpty when the heap has no elements. The order in
// which equal-ranked elements are returned is unspecified.
package heap
