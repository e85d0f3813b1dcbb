// Package heightmap treats an elevation grid as a directed graph and finds
// the fewest steps from the start marker to the best-signal location.
//
// What:
//
//   - Parse reads lines of 'a'..'z' elevations with exactly one 'S' (start,
//     elevation 'a') and one 'E' (end, elevation 'z').
//   - A step may climb at most one level; going down or staying level is
//     always allowed (CanStep).
//   - Graph turns every cell into a node (row-major index y*Width + x) with
//     an edge to each in-bounds neighbour the step rule allows.
//   - FewestSteps runs dijkstra from S to E. FewestStepsFromLowest runs it
//     from every lowest cell at once and reports the best starting point.
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): orthogonal (default) or diagonal moves.
//   - WithWeighting(w): edge cost per move; UnitWeighting (default) counts
//     steps, ClimbWeighting favours climbing over level and downhill moves.
//   - WithLogger(l): debug tracing of graph construction and searches.
//
// Complexity:
//
//   - Parse, Graph: O(W×H) time and memory.
//   - FewestSteps:  O(W×H×d×log(W×H×d)), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell, ErrNoStart, ErrNoEnd,
//     ErrDuplicateMarker from Parse.
//   - ErrUnreachable when no route exists.
package heightmap
