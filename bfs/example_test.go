package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hillpath/bfs"
	"github.com/katalvlaran/hillpath/core"
)

// ExampleBFS counts hops on a small directed graph.
//
//	0 → 1 → 3
//	0 → 2
func ExampleBFS() {
	b := core.NewBuilder(4)
	_ = b.AddEdge(0, 1, 1)
	_ = b.AddEdge(0, 2, 1)
	_ = b.AddEdge(1, 3, 1)

	res, err := bfs.BFS(b.Build(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(3)
	fmt.Println("order:", res.Order)
	fmt.Println("depth[3]:", res.Depth[3], "path:", path)
	// Output:
	// order: [0 1 2 3]
	// depth[3]: 2 path: [0 1 3]
}
