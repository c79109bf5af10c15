// Package gridgraph provides utilities to treat a 2D occupancy grid as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Open/blocked predicates and neighbor enumeration
//   - Identification of connected components of open cells
//
// Cells with value < OpenThreshold are blocked; cells with value ≥ OpenThreshold are open.
package gridgraph

import "strings"

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	threshold := opts.OpenThreshold
	if threshold == 0 {
		threshold = DefaultGridOptions().OpenThreshold
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		OpenThreshold:   threshold,
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph with the default OpenThreshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether p lies within the grid boundaries.
func (gg *GridGraph) Contains(p Point) bool {
	return gg.InBounds(p.X, p.Y)
}

// IsOpen reports whether (x,y) is inside the grid and passable.
// Complexity: O(1).
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.OpenThreshold
}

// IsOpenAt is IsOpen for a Point.
func (gg *GridGraph) IsOpenAt(p Point) bool {
	return gg.IsOpen(p.X, p.Y)
}

// NeighborOffsets returns the precomputed (dx,dy) neighbor offsets for gg.Conn.
// Callers must not modify the returned slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the open cells adjacent to p under gg.Conn,
// in the order of NeighborOffsets.
func (gg *GridGraph) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		q := p.Add(d[0], d[1])
		if gg.IsOpenAt(q) {
			out = append(out, q)
		}
	}

	return out
}

// OpenCount returns the number of open cells.
// Complexity: O(W×H).
func (gg *GridGraph) OpenCount() int {
	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] >= gg.OpenThreshold {
				n++
			}
		}
	}

	return n
}

// Size returns the total number of cells, Width×Height.
func (gg *GridGraph) Size() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// PointAt converts a row-major index back to a Point.
func (gg *GridGraph) PointAt(idx int) Point {
	x, y := gg.Coordinate(idx)
	return Point{X: x, Y: y}
}

// String renders the grid one row per line, '.' for open and '#' for blocked.
func (gg *GridGraph) String() string {
	var b strings.Builder
	b.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] >= gg.OpenThreshold {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
