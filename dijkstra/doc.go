// Package dijkstra answers single-pair shortest-path queries on a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns the cheapest start→end path, or
//     false when end cannot be reached. "No path" is a normal result.
//   - ShortestPathFrom(g, starts, end) runs the same search from several
//     sources at once; the returned path begins at whichever source is
//     closest to end.
//   - The frontier is a minheap.Heap of candidates {from, to, cost} ordered
//     by cost. Stale candidates are not removed from the heap; they are
//     discarded when popped if their target is already settled (lazy
//     deletion), so no decrease-key operation is needed.
//   - A single flat table records, per node, its predecessor and cost once
//     settled. It doubles as the visited set, and the path is rebuilt by
//     walking it backwards from end.
//
// Complexity:
//
//   - Time:  O((V + E) log E) worst case; the search stops as soon as end
//     is settled.
//   - Space: O(V + E) for the table and the heap.
//
// Preconditions:
//
//   - start, end and every Edge.To are valid indices of g. core.Builder and
//     core.FromAdjacency enforce this for edges; query indices are the
//     caller's responsibility and are not checked here.
//
// Options:
//
//   - WithMaxCost(c):     candidates costing more than c are never queued.
//   - WithOnSettle(fn):   called once per node when its cost becomes final.
//   - WithLogger(l):      debug tracing of each query through slog.
package dijkstra
