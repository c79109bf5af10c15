// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Point addresses a cell as (column, row). X is the horizontal axis
// (column index), Y the vertical axis (row index). Both are zero-based.
// The (col,row) order is part of every public contract in this module.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: col, Y: row}.
func Pt(col, row int) Point {
	return Point{X: col, Y: row}
}

// String formats the point as "(col,row)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered open (passable).
	// Zero selects the default of 1, so GridOptions{} keeps 0 blocked and 1 open;
	// use a negative threshold to make zero-valued cells open.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity for Neighbors and components.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// OpenThreshold=1 (0 is blocked, 1 is open), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn8,
	}
}

// GridGraph treats a 2D occupancy grid as a graph. It is immutable once built,
// so any number of goroutines may read it concurrently.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Conn and OpenThreshold are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	OpenThreshold   int
	neighborOffsets [][2]int
}
