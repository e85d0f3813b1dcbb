package heightmap

import (
	"errors"

	"github.com/katalvlaran/hillpath/core"
	"golang.org/x/exp/slog"
)

// Sentinel errors for heightmap operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrBadCell indicates a character other than 'a'..'z', 'S' or 'E'.
	ErrBadCell = errors.New("heightmap: invalid cell")
	// ErrNoStart indicates the grid has no 'S' marker.
	ErrNoStart = errors.New("heightmap: no start marker 'S'")
	// ErrNoEnd indicates the grid has no 'E' marker.
	ErrNoEnd = errors.New("heightmap: no end marker 'E'")
	// ErrDuplicateMarker indicates more than one 'S' or 'E'.
	ErrDuplicateMarker = errors.New("heightmap: marker appears more than once")
	// ErrUnreachable indicates no route exists to the end cell.
	ErrUnreachable = errors.New("heightmap: end is unreachable")
)

// Elevation is a cell height: 0 for 'a' up to 25 for 'z'.
type Elevation uint8

const (
	// Lowest is the elevation of 'a' and of the start marker.
	Lowest Elevation = 0
	// Highest is the elevation of 'z' and of the end marker.
	Highest Elevation = 25
)

// CanStep reports whether a move from one elevation to another is allowed:
// at most one level up, any distance down.
func CanStep(from, to Elevation) bool {
	return to <= from+1
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Weighting returns the cost of a single allowed move.
// It must never return a negative value.
type Weighting func(from, to Elevation) int64

// UnitWeighting charges 1 per move, so path cost equals step count.
func UnitWeighting(_, _ Elevation) int64 { return 1 }

// ClimbWeighting charges 1 for climbing, 2 for a level move and 3 for
// going down.
func ClimbWeighting(from, to Elevation) int64 {
	switch {
	case to > from:
		return 1
	case to == from:
		return 2
	default:
		return 3
	}
}

// Options contains tunable parameters for graph construction and search.
type Options struct {
	Conn      Connectivity
	Weighting Weighting
	Logger    *slog.Logger
}

// Option is a functional option for Graph and the solvers.
type Option func(*Options)

// DefaultOptions returns Conn4 with UnitWeighting and no logger.
func DefaultOptions() Options {
	return Options{
		Conn:      Conn4,
		Weighting: UnitWeighting,
	}
}

// WithConnectivity selects orthogonal or diagonal neighbours.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithWeighting sets the per-move cost. A nil w keeps the current value.
func WithWeighting(w Weighting) Option {
	return func(o *Options) {
		if w != nil {
			o.Weighting = w
		}
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// HeightMap is an immutable, rectangular elevation grid.
// Cells are stored row-major; a cell's index is its core.NodeIndex in Graph.
type HeightMap struct {
	Width, Height int
	cells         []Elevation
	start, end    core.NodeIndex
}
