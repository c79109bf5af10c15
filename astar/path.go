package astar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Path is an ordered sequence of (column, row) cells from source to
// destination inclusive.
type Path []gridgraph.Point

// Len returns the number of cells in the path.
func (p Path) Len() int { return len(p) }

// Steps returns the number of moves, Len()-1, or 0 for an empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// String formats the path as "(c,r) -> (c,r) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// Pairs returns the path as [col,row] pairs, the wire form used by gridfile and the server.
func (p Path) Pairs() [][2]int {
	out := make([][2]int, len(p))
	for i, c := range p {
		out[i] = [2]int{c.X, c.Y}
	}
	return out
}

// Verify checks that p is a legal route on gg from src to dst:
// non-empty, starts at src, ends at dst, visits no cell twice, touches only
// open in-bounds cells, and every consecutive pair is one of the 8 unit moves.
// The first violation is returned wrapped in ErrInvalidPath.
func (p Path) Verify(gg *gridgraph.GridGraph, src, dst gridgraph.Point) error {
	if gg == nil {
		return ErrNilGrid
	}
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != src {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, p[0], src)
	}
	if last := p[len(p)-1]; last != dst {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, dst)
	}

	seen := make(map[gridgraph.Point]struct{}, len(p))
	for i, c := range p {
		if !gg.IsOpenAt(c) {
			return fmt.Errorf("%w: step %d at %v is blocked or out of bounds", ErrInvalidPath, i, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %v visited twice", ErrInvalidPath, c)
		}
		seen[c] = struct{}{}
		if i == 0 {
			continue
		}
		dx, dy := abs(c.X-p[i-1].X), abs(c.Y-p[i-1].Y)
		if dx > 1 || dy > 1 || dx+dy == 0 {
			return fmt.Errorf("%w: %v -> %v is not a unit move", ErrInvalidPath, p[i-1], c)
		}
	}

	return nil
}
