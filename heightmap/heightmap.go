package heightmap

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillpath/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Parse builds a HeightMap from its text form. Windows line endings and
// trailing blank lines are accepted.
// Complexity: O(W×H).
func Parse(input string) (*HeightMap, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil, ErrEmptyGrid
	}
	rows := strings.Split(input, "\n")
	w := len(rows[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	hm := &HeightMap{
		Width:  w,
		Height: len(rows),
		cells:  make([]Elevation, 0, w*len(rows)),
		start:  -1,
		end:    -1,
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			if err := hm.addCell(row[x], x, y); err != nil {
				return nil, err
			}
		}
	}
	if hm.start < 0 {
		return nil, ErrNoStart
	}
	if hm.end < 0 {
		return nil, ErrNoEnd
	}

	return hm, nil
}

// addCell appends the elevation for ch at (x, y) and records markers.
func (hm *HeightMap) addCell(ch byte, x, y int) error {
	idx := len(hm.cells)
	switch {
	case ch >= 'a' && ch <= 'z':
		hm.cells = append(hm.cells, Elevation(ch-'a'))
	case ch == 'S':
		if hm.start >= 0 {
			return fmt.Errorf("%w: 'S' at (%d,%d)", ErrDuplicateMarker, x, y)
		}
		hm.start = idx
		hm.cells = append(hm.cells, Lowest)
	case ch == 'E':
		if hm.end >= 0 {
			return fmt.Errorf("%w: 'E' at (%d,%d)", ErrDuplicateMarker, x, y)
		}
		hm.end = idx
		hm.cells = append(hm.cells, Highest)
	default:
		return fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, x, y)
	}

	return nil
}

// Start returns the node index of the 'S' cell.
func (hm *HeightMap) Start() core.NodeIndex { return hm.start }

// End returns the node index of the 'E' cell.
func (hm *HeightMap) End() core.NodeIndex { return hm.end }

// Len returns the number of cells.
func (hm *HeightMap) Len() int { return len(hm.cells) }

// ElevationAt returns the elevation of cell idx.
func (hm *HeightMap) ElevationAt(idx core.NodeIndex) Elevation { return hm.cells[idx] }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (hm *HeightMap) InBounds(x, y int) bool {
	return x >= 0 && x < hm.Width && y >= 0 && y < hm.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (hm *HeightMap) Index(x, y int) core.NodeIndex {
	return y*hm.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (hm *HeightMap) Coordinate(idx core.NodeIndex) (x, y int) {
	return idx % hm.Width, idx / hm.Width
}

// Lowlands returns every cell at the Lowest elevation, 'S' included,
// in row-major order.
func (hm *HeightMap) Lowlands() []core.NodeIndex {
	var out []core.NodeIndex
	for i, e := range hm.cells {
		if e == Lowest {
			out = append(out, i)
		}
	}

	return out
}

// Graph converts the map into a directed graph: one node per cell and an
// edge to every neighbour the step rule allows, weighted by o.Weighting.
// Neighbours are visited N, E, S, W (plus diagonals under Conn8).
// Complexity: O(W×H×d) time and memory.
func (hm *HeightMap) Graph(opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)
	return hm.graph(o)
}

func (hm *HeightMap) graph(o Options) (*core.Graph, error) {
	offsets := offsets4
	if o.Conn == Conn8 {
		offsets = offsets8
	}
	b := core.NewBuilder(len(hm.cells))
	for u, from := range hm.cells {
		x, y := hm.Coordinate(u)
		for _, d := range offsets {
			nx, ny := x+d[0], y+d[1]
			if !hm.InBounds(nx, ny) {
				continue
			}
			v := hm.Index(nx, ny)
			to := hm.cells[v]
			if !CanStep(from, to) {
				continue
			}
			if err := b.AddEdge(u, v, o.Weighting(from, to)); err != nil {
				return nil, fmt.Errorf("heightmap: edge (%d,%d)→(%d,%d): %w", x, y, nx, ny, err)
			}
		}
	}
	g := b.Build()
	if o.Logger != nil {
		o.Logger.Debug("heightmap: graph built",
			"width", hm.Width, "height", hm.Height, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	}

	return g, nil
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
