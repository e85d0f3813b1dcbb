package heightmap

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillpath/bfs"
	"github.com/katalvlaran/hillpath/core"
	"github.com/katalvlaran/hillpath/dijkstra"
)

// Route returns the cheapest path from 'S' to 'E'.
func (hm *HeightMap) Route(opts ...Option) (dijkstra.Path, error) {
	return hm.route([]core.NodeIndex{hm.start}, buildOptions(opts))
}

// RouteFromLowest returns the cheapest path to 'E' starting from any
// Lowest cell.
func (hm *HeightMap) RouteFromLowest(opts ...Option) (dijkstra.Path, error) {
	return hm.route(hm.Lowlands(), buildOptions(opts))
}

// FewestSteps returns the number of moves on the route from 'S' to 'E'.
// Under UnitWeighting this is the minimum possible step count.
func (hm *HeightMap) FewestSteps(opts ...Option) (int, error) {
	p, err := hm.Route(opts...)
	if err != nil {
		return 0, err
	}

	return p.Steps(), nil
}

// FewestStepsFromLowest returns the number of moves on the route to 'E'
// from the best Lowest cell.
func (hm *HeightMap) FewestStepsFromLowest(opts ...Option) (int, error) {
	p, err := hm.RouteFromLowest(opts...)
	if err != nil {
		return 0, err
	}

	return p.Steps(), nil
}

func (hm *HeightMap) route(starts []core.NodeIndex, o Options) (dijkstra.Path, error) {
	g, err := hm.graph(o)
	if err != nil {
		return dijkstra.Path{}, err
	}
	p, ok := dijkstra.ShortestPathFrom(g, starts, hm.end, dijkstra.WithLogger(o.Logger))
	if !ok {
		return dijkstra.Path{}, fmt.Errorf("%w: from %d start cell(s)", ErrUnreachable, len(starts))
	}

	return p, nil
}

// ReachableFrom returns how many cells can be reached from idx, idx
// included. Connectivity is taken from opts; weights play no part.
func (hm *HeightMap) ReachableFrom(idx core.NodeIndex, opts ...Option) (int, error) {
	g, err := hm.Graph(opts...)
	if err != nil {
		return 0, err
	}
	nodes, err := bfs.Reachable(g, idx)
	if err != nil {
		return 0, err
	}

	return len(nodes), nil
}

// Render draws path over the grid: each cell on the path shows the
// direction of the next move and the final cell shows 'E'; every other
// cell is '.'. Each row ends with a newline.
func (hm *HeightMap) Render(path []core.NodeIndex) string {
	canvas := make([]byte, len(hm.cells))
	for i := range canvas {
		canvas[i] = '.'
	}
	for i := 0; i+1 < len(path); i++ {
		x0, y0 := hm.Coordinate(path[i])
		x1, y1 := hm.Coordinate(path[i+1])
		canvas[path[i]] = arrow(x1-x0, y1-y0)
	}
	if n := len(path); n > 0 {
		canvas[path[n-1]] = 'E'
	}

	var sb strings.Builder
	sb.Grow(len(canvas) + hm.Height)
	for y := 0; y < hm.Height; y++ {
		sb.Write(canvas[y*hm.Width : (y+1)*hm.Width])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// arrow picks the glyph for a single move by (dx, dy).
func arrow(dx, dy int) byte {
	switch {
	case dy == 0 && dx > 0:
		return '>'
	case dy == 0 && dx < 0:
		return '<'
	case dx == 0 && dy < 0:
		return '^'
	case dx == 0 && dy > 0:
		return 'v'
	case dx*dy < 0:
		return '/'
	default:
		return '\\'
	}
}
