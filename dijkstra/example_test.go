// Package dijkstra_test provides examples demonstrating shortest-path queries.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/hillpath/core"
	"github.com/katalvlaran/hillpath/dijkstra"
)

// ExampleShortestPath finds the cheapest route in a small directed graph.
//
//	0 →(3) 1 →(3) 3
//	0 →(1) 2 →(1) 1
//	2 →(5) 3
func ExampleShortestPath() {
	b := core.NewBuilder(4)
	_ = b.AddEdge(0, 1, 3)
	_ = b.AddEdge(0, 2, 1)
	_ = b.AddEdge(2, 1, 1)
	_ = b.AddEdge(1, 3, 3)
	_ = b.AddEdge(2, 3, 5)

	p, ok := dijkstra.ShortestPath(b.Build(), 0, 3)
	if !ok {
		fmt.Println("unreachable")
		return
	}
	fmt.Printf("path=%v cost=%d\n", p.Nodes, p.Cost)
	// Output: path=[0 2 1 3] cost=5
}

// ExampleShortestPath_unreachable shows the "no path" result.
func ExampleShortestPath_unreachable() {
	b := core.NewBuilder(2)
	_ = b.AddEdge(1, 0, 1)

	_, ok := dijkstra.ShortestPath(b.Build(), 0, 1)
	fmt.Println("reachable:", ok)
	// Output: reachable: false
}
