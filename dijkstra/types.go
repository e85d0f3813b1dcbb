package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/hillpath/core"
	"golang.org/x/exp/slog"
)

// ErrBadMaxCost is the panic value of WithMaxCost for a negative cap.
var ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

// Path is the result of a successful query.
// Nodes runs from the source to the target, both inclusive.
type Path struct {
	Nodes []core.NodeIndex
	Cost  int64
}

// Steps returns the number of edges along the path.
func (p Path) Steps() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// Options configures a query.
//
// MaxCost  – candidates whose cost exceeds this value are not queued,
//
//	so targets farther away report as unreachable. Default math.MaxInt64.
//
// OnSettle – called once for every node whose cost becomes final,
//
//	in settling order. Default no-op.
//
// Logger   – receives debug records for each query. Default nil (silent).
type Options struct {
	MaxCost  int64
	OnSettle func(node core.NodeIndex, cost int64)
	Logger   *slog.Logger
}

// Option is a functional option for ShortestPath and ShortestPathFrom.
type Option func(*Options)

// DefaultOptions returns the settings used when no Option is given.
func DefaultOptions() Options {
	return Options{
		MaxCost:  math.MaxInt64,
		OnSettle: func(core.NodeIndex, int64) {},
		Logger:   nil,
	}
}

// WithMaxCost caps the cost of explored paths.
// Panics with ErrBadMaxCost if c is negative.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
	}
}

// WithOnSettle registers a hook run when a node's cost becomes final.
func WithOnSettle(fn func(node core.NodeIndex, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
