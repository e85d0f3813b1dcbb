// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order. Edge weights are ignored.
//
// BFS explores nodes in increasing hop distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/hillpath/core"
	"github.com/rhartert/sparsesets"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  core.NodeIndex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited *sparsesets.Set
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
//
// Complexity: O(V + E) time and memory.
func BFS(g *core.Graph, start core.NodeIndex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (nodes=%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: sparsesets.New(n),
		res: &Result{
			Order:  make([]core.NodeIndex, 0, n),
			Depth:  make([]int, n),
			Parent: make([]core.NodeIndex, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = v
	}

	w.enqueue(start, 0, start)
	return w.res, w.loop()
}

// Reachable returns every node reachable from start (start included),
// in BFS visit order.
func Reachable(g *core.Graph, start core.NodeIndex, opts ...Option) ([]core.NodeIndex, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// enqueue marks node visited at depth d with the given parent.
func (w *walker) enqueue(node core.NodeIndex, d int, parent core.NodeIndex) {
	w.visited.Insert(node)
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each
// unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.node) {
		if !w.opts.FilterNeighbor(item.node, e) {
			continue
		}
		if !w.visited.Contains(e.To) {
			w.enqueue(e.To, next, item.node)
		}
	}
}
