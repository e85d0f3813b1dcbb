// Package hillpath finds shortest routes across elevation maps.
//
// The work is split into small subpackages:
//
//	minheap/   — generic binary min-heap ordered by a less function
//	core/      — immutable weighted digraph over dense int node indices
//	dijkstra/  — single- and multi-source shortest paths with lazy deletion
//	bfs/       — breadth-first reachability over core graphs
//	heightmap/ — parsing of S/E/a–z elevation grids and the climbing rules
//	config/    — YAML run configuration for the command
//	cmd/hillpath — the command-line front end
//
// A typical query parses a map, builds its move graph and asks for the
// cheapest route from S to E:
//
//	hm, err := heightmap.Parse(input)
//	if err != nil {
//		return err
//	}
//	steps, err := hm.FewestSteps()
//
// FewestStepsFromLowest answers the same question from the best of every
// elevation-a cell in one multi-source search.
package hillpath
