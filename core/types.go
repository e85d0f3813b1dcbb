// Package core defines the static, directed, weighted Graph consumed by the
// traversal packages.
//
// Nodes are dense, zero-based integers (NodeIndex). The Graph owns one edge
// list per node; an Edge belongs to its source node's list and only records
// the target and weight. Graphs are built once through a Builder or
// FromAdjacency and never change afterwards.
//
// Errors:
//
//	ErrNodeOutOfRange  - an edge endpoint is not a valid NodeIndex.
//	ErrNegativeWeight  - an edge weight is below zero.
//	ErrNegativeSize    - a Builder was asked for a negative node count.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNodeOutOfRange indicates an edge endpoint outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNegativeSize indicates a negative node count.
	ErrNegativeSize = errors.New("core: node count must be non-negative")
)

// NodeIndex identifies a node by its position in the adjacency table.
type NodeIndex = int

// Edge is a directed, weighted connection to node To.
type Edge struct {
	To     NodeIndex
	Weight int64
}

// Graph is an immutable adjacency list indexed by NodeIndex.
// Every Edge.To is a valid index into the table.
type Graph struct {
	adjacency [][]Edge
	edges     int
}
