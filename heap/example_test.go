package heap_test

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/davidvella/binaryheap/heap"
)

// ExampleNew demonstrates using the heap as a min-heap.
func ExampleNew() {
	h, err := heap.New([]int{5, 3, 7})
	if err != nil {
		panic(err)
	}

	h.Push(1).Push(4)

	top, _ := h.Top()
	fmt.Println("Top:", top)

	for h.NotEmpty() {
		v, _ := h.Pop()
		fmt.Printf("%d ", v)
	}
	fmt.Println()

	// Output:
	// Top: 1
	// 1 3 4 5 7
}

// ExampleNew_max demonstrates a max-heap drained into a slice.
func ExampleNew_max() {
	h, err := heap.New([]int{10, 20, 15}, heap.WithOrder[int](heap.Max))
	if err != nil {
		panic(err)
	}

	fmt.Println(slices.Collect(h.All()))
	fmt.Println("Empty:", h.Empty())

	// Output:
	// [20 15 10]
	// Empty: true
}

// ExampleWithKey orders strings by their length.
func ExampleWithKey() {
	words := []string{"zzz", "c", "aa", "sifjlkjf", "778687ihuk"}

	h, err := heap.New(words, heap.WithKey(func(s string) int { return len(s) }))
	if err != nil {
		panic(err)
	}

	fmt.Println(strings.Join(slices.Collect(h.All()), " "))

	// Output: c aa zzz sifjlkjf 778687ihuk
}

// ExampleNewFunc processes tasks with a custom comparator.
func ExampleNewFunc() {
	type Task struct {
		Priority int
		Name     string
	}

	h, err := heap.NewFunc(nil, heap.WithLess(func(a, b Task) bool {
		return a.Priority < b.Priority
	}))
	if err != nil {
		panic(err)
	}

	h.Push(Task{Priority: 2, Name: "Low priority"})
	h.Push(Task{Priority: 1, Name: "High priority"})

	for task := range h.All() {
		fmt.Printf("Processing: %s (priority %d)\n", task.Name, task.Priority)
	}

	// Output:
	// Processing: High priority (priority 1)
	// Processing: Low priority (priority 2)
}

// ExampleHeap_Pop shows the error returned by an empty heap.
func ExampleHeap_Pop() {
	h, _ := heap.New[int](nil)

	_, err := h.Pop()
	fmt.Println(errors.Is(err, heap.ErrEmpty))

	// Output: true
}
