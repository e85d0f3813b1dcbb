package dijkstra

import (
	"slices"

	"github.com/katalvlaran/hillpath/core"
	"github.com/katalvlaran/hillpath/minheap"
)

// ShortestPath returns the cheapest path from start to end in g.
// The boolean is false when end is unreachable (or farther than MaxCost).
// When start == end the path is [start] with cost 0.
//
// Complexity: O((V + E) log E) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, end core.NodeIndex, opts ...Option) (Path, bool) {
	return ShortestPathFrom(g, []core.NodeIndex{start}, end, opts...)
}

// ShortestPathFrom returns the cheapest path to end from any node in starts.
// Every start is settled at cost 0 before the search begins, so the
// returned path begins at the start closest to end. Duplicate starts are
// harmless; an empty starts slice yields false.
func ShortestPathFrom(g *core.Graph, starts []core.NodeIndex, end core.NodeIndex, opts ...Option) (Path, bool) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:     g,
		opts:  cfg,
		table: make([]settled, g.NodeCount()),
		pq: minheap.WithCapacity(g.NodeCount(), func(a, b candidate) bool {
			return a.cost < b.cost
		}),
	}
	r.seed(starts)
	r.process(end)

	path, ok := r.result(end)
	if l := cfg.Logger; l != nil {
		l.Debug("dijkstra: query finished",
			"sources", len(starts),
			"end", end,
			"reached", ok,
			"cost", path.Cost,
			"settled", r.settledCount,
			"pushed", r.pushed,
			"stale", r.stale,
		)
	}

	return path, ok
}

// candidate is a frontier entry: reaching to via from at total cost.
// Only cost takes part in ordering.
type candidate struct {
	from core.NodeIndex
	to   core.NodeIndex
	cost int64
}

// settled is one row of the path-and-cost table. A node is visited exactly
// when ok is true; sources are their own predecessor.
type settled struct {
	from core.NodeIndex
	cost int64
	ok   bool
}

// runner holds the mutable state of one query.
type runner struct {
	g     *core.Graph
	opts  Options
	table []settled
	pq    *minheap.Heap[candidate]

	settledCount int
	pushed       int
	stale        int
}

// seed settles every source at cost 0 and queues their outgoing edges.
func (r *runner) seed(starts []core.NodeIndex) {
	fresh := make([]core.NodeIndex, 0, len(starts))
	for _, s := range starts {
		if r.table[s].ok {
			continue
		}
		r.settle(s, s, 0)
		fresh = append(fresh, s)
	}
	for _, s := range fresh {
		r.relax(s, 0)
	}
}

// process drains the frontier until end is settled or nothing is left.
func (r *runner) process(end core.NodeIndex) {
	if r.table[end].ok {
		return
	}
	for {
		c, ok := r.pq.Pop()
		if !ok {
			return
		}
		if r.table[c.to].ok {
			r.stale++
			continue
		}
		r.settle(c.to, c.from, c.cost)
		if c.to == end {
			return
		}
		r.relax(c.to, c.cost)
	}
}

// settle commits the final predecessor and cost of node.
func (r *runner) settle(node, from core.NodeIndex, cost int64) {
	r.table[node] = settled{from: from, cost: cost, ok: true}
	r.settledCount++
	r.opts.OnSettle(node, cost)
}

// relax queues one candidate per outgoing edge of u, which was settled at
// cost. Edges that would exceed MaxCost are skipped; the subtraction form
// keeps the comparison free of overflow.
func (r *runner) relax(u core.NodeIndex, cost int64) {
	for _, e := range r.g.Neighbors(u) {
		if e.Weight > r.opts.MaxCost-cost {
			continue
		}
		r.pq.Push(candidate{from: u, to: e.To, cost: cost + e.Weight})
		r.pushed++
	}
}

// result rebuilds the path to end by walking predecessors back to a source.
func (r *runner) result(end core.NodeIndex) (Path, bool) {
	row := r.table[end]
	if !row.ok {
		return Path{}, false
	}
	nodes := []core.NodeIndex{end}
	for cur := end; r.table[cur].from != cur; {
		cur = r.table[cur].from
		nodes = append(nodes, cur)
	}
	slices.Reverse(nodes)

	return Path{Nodes: nodes, Cost: row.cost}, true
}
