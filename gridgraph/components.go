package gridgraph

// ConnectedComponents finds all contiguous regions of open cells
// (CellValues[y][x] ≥ OpenThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order. Components are ordered by their
// first cell in row-major scan.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Size())
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) {
				continue // wall
			}
			i0 := gg.Index(x, y)
			if seen[i0] {
				continue
			}
			comps = append(comps, gg.flood(i0, seen, -1))
		}
	}

	return comps
}

// Connected reports whether a and b are open cells joined by a chain of open
// neighbors under gg.Conn. It stops as soon as b is reached.
//
// Time:   O(W·H·d) worst case.
// Memory: O(W·H).
func (gg *GridGraph) Connected(a, b Point) bool {
	if !gg.IsOpenAt(a) || !gg.IsOpenAt(b) {
		return false
	}
	if a == b {
		return true
	}
	target := gg.Index(b.X, b.Y)
	comp := gg.flood(gg.Index(a.X, a.Y), make([]bool, gg.Size()), target)

	return comp[len(comp)-1] == target
}

// flood runs a BFS from start over open cells, marking seen and returning the
// visited indices in discovery order. If stop ≥ 0 the walk ends once stop is
// dequeued, leaving it as the last element.
func (gg *GridGraph) flood(start int, seen []bool, stop int) []int {
	queue := []int{start}
	seen[start] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == stop {
			return queue[:qi+1]
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.IsOpen(vx, vy) {
				continue
			}
			vi := gg.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
