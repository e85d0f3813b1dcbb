package minheap_test

import (
	"fmt"

	"github.com/katalvlaran/hillpath/minheap"
)

// ExampleHeap shows a heap of candidates ordered by cost only.
func ExampleHeap() {
	type candidate struct {
		node int
		cost int64
	}
	h := minheap.New(func(a, b candidate) bool { return a.cost < b.cost })
	h.Push(candidate{node: 3, cost: 7})
	h.Push(candidate{node: 1, cost: 2})
	h.Push(candidate{node: 2, cost: 5})

	for !h.IsEmpty() {
		c, _ := h.Pop()
		fmt.Printf("node=%d cost=%d\n", c.node, c.cost)
	}
	// Output:
	// node=1 cost=2
	// node=2 cost=5
	// node=3 cost=7
}

// ExampleFromOrdered builds a heap from a literal list in one pass.
func ExampleFromOrdered() {
	h := minheap.FromOrdered(5, 3, 8, 1)
	top, _ := h.Peek()
	fmt.Println("min:", top, "len:", h.Len())
	// Output: min: 1 len: 4
}
