package core

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of directed edges, parallel edges included.
func (g *Graph) EdgeCount() int { return g.edges }

// Neighbors returns the outgoing edges of u in insertion order.
// The slice is shared with the graph and must not be modified.
// u must be a valid NodeIndex.
func (g *Graph) Neighbors(u NodeIndex) []Edge {
	return g.adjacency[u]
}

// HasEdge reports whether an edge u→v exists and returns the smallest
// weight among parallel u→v edges.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v NodeIndex) (int64, bool) {
	if u < 0 || u >= len(g.adjacency) {
		return 0, false
	}
	var (
		best  int64
		found bool
	)
	for _, e := range g.adjacency[u] {
		if e.To != v {
			continue
		}
		if !found || e.Weight < best {
			best = e.Weight
			found = true
		}
	}

	return best, found
}

// Reverse returns the transposed graph: every edge u→v becomes v→u with
// the same weight. Edges keep the order in which their sources are scanned.
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	in := make([]int, len(g.adjacency))
	for _, list := range g.adjacency {
		for _, e := range list {
			in[e.To]++
		}
	}
	adj := make([][]Edge, len(g.adjacency))
	for v, n := range in {
		if n > 0 {
			adj[v] = make([]Edge, 0, n)
		}
	}
	for u, list := range g.adjacency {
		for _, e := range list {
			adj[e.To] = append(adj[e.To], Edge{To: u, Weight: e.Weight})
		}
	}

	return &Graph{adjacency: adj, edges: g.edges}
}

// Filter returns a new graph holding only the edges for which keep
// returns true. The node count is unchanged.
// Complexity: O(V + E).
func (g *Graph) Filter(keep func(from NodeIndex, e Edge) bool) *Graph {
	adj := make([][]Edge, len(g.adjacency))
	edges := 0
	for u, list := range g.adjacency {
		for _, e := range list {
			if keep(u, e) {
				adj[u] = append(adj[u], e)
				edges++
			}
		}
	}

	return &Graph{adjacency: adj, edges: edges}
}
