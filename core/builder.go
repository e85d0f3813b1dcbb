package core

import "fmt"

// Builder accumulates edges for a Graph with a fixed node count.
// It is the only way to grow an adjacency table; Build freezes it.
type Builder struct {
	adjacency [][]Edge
	edges     int
}

// NewBuilder returns a Builder for n nodes with no edges.
// A negative n is treated as zero; use NewBuilderChecked to get an error.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}

	return &Builder{adjacency: make([][]Edge, n)}
}

// NewBuilderChecked is NewBuilder that rejects a negative n with ErrNegativeSize.
func NewBuilderChecked(n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}

	return NewBuilder(n), nil
}

// NodeCount returns the number of nodes the Builder was created with.
func (b *Builder) NodeCount() int { return len(b.adjacency) }

// AddEdge appends the directed edge from→to with the given weight.
// Parallel edges and self-loops are kept as given.
// Complexity: amortised O(1).
func (b *Builder) AddEdge(from, to NodeIndex, weight int64) error {
	n := len(b.adjacency)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from=%d (nodes=%d)", ErrNodeOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to=%d (nodes=%d)", ErrNodeOutOfRange, to, n)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}
	b.adjacency[from] = append(b.adjacency[from], Edge{To: to, Weight: weight})
	b.edges++

	return nil
}

// Build returns the Graph holding every edge added so far.
// The Builder must not be used afterwards.
func (b *Builder) Build() *Graph {
	g := &Graph{adjacency: b.adjacency, edges: b.edges}
	b.adjacency = nil
	b.edges = 0

	return g
}

// FromAdjacency copies adj into a new Graph after checking that every
// target is in range and every weight is non-negative.
func FromAdjacency(adj [][]Edge) (*Graph, error) {
	b := NewBuilder(len(adj))
	for from, list := range adj {
		for _, e := range list {
			if err := b.AddEdge(from, e.To, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(), nil
}
