// Package astar implements A* search between two cells of an occupancy grid.
//
// Movement is 8-directional and every step, diagonal or orthogonal, costs 1.
// The frontier is a binary heap keyed on f = g + h with lazy decrease-key;
// per-cell records (f, g, h, parent) live in a flat table allocated for the
// call and dropped when it returns.
package astar

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// stepCost is the cost of any single move.
const stepCost = 1.0

// directions lists the eight moves as (Δrow, Δcol), in expansion order.
var directions = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Search finds a path from src to dst on gg, both given as (column, row).
//
// Returns:
//
//   - path: src … dst inclusive, in traversal order. Path{src} when src == dst.
//   - err:  nil, or one of ErrNilGrid, ErrOutOfBounds, ErrBlocked, ErrNoPath
//     (wrapped with the endpoints; test with errors.Is).
//
// Preconditions and validation (in order):
//  1. gg must be non-nil (ErrNilGrid).
//  2. src and dst must lie within the grid (ErrOutOfBounds).
//  3. src and dst must be open (ErrBlocked).
//  4. src == dst short-circuits to a single-cell path.
//
// Search never mutates gg and keeps no state between calls, so concurrent
// searches over the same grid are safe.
//
// Complexity:
//
//   - Time:  O(P log P), P = frontier pushes (bounded by 8 per expansion).
//   - Space: O(W·H + P).
func Search(gg *gridgraph.GridGraph, src, dst gridgraph.Point, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{gg: gg, src: src, dst: dst, options: cfg}
	started := time.Now()
	path, err := r.run()

	stats := Stats{
		Outcome:  OutcomeOf(err),
		Expanded: r.expanded,
		Pushed:   r.pushed,
		PathLen:  len(path),
		Duration: time.Since(started),
	}
	if err == nil && len(path) == 1 {
		stats.Outcome = OutcomeTrivial
	}
	for _, obs := range cfg.Observers {
		obs.ObserveSearch(stats)
	}

	return path, err
}

// cellRecord is the per-search state of one grid cell.
// parent == the cell itself marks the source.
type cellRecord struct {
	f, g, h float64
	parent  gridgraph.Point
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	gg       *gridgraph.GridGraph
	src, dst gridgraph.Point
	options  Options

	cells  []cellRecord // row-major, one per grid cell
	closed []bool       // row-major, true once expanded
	pq     cellPQ
	seq    uint64

	expanded int
	pushed   int
}

// run validates the endpoints and then drives the search loop.
func (r *runner) run() (Path, error) {
	if r.gg == nil {
		return nil, ErrNilGrid
	}
	log := r.options.Logger.With(slog.String("src", r.src.String()), slog.String("dst", r.dst.String()))

	if !r.gg.Contains(r.src) || !r.gg.Contains(r.dst) {
		log.Info("source or destination is invalid",
			slog.Int("width", r.gg.Width), slog.Int("height", r.gg.Height))
		return nil, fmt.Errorf("%w: src=%v dst=%v grid=%dx%d",
			ErrOutOfBounds, r.src, r.dst, r.gg.Width, r.gg.Height)
	}
	if !r.gg.IsOpenAt(r.src) || !r.gg.IsOpenAt(r.dst) {
		log.Info("source or destination is blocked")
		return nil, fmt.Errorf("%w: src=%v dst=%v", ErrBlocked, r.src, r.dst)
	}
	if r.src == r.dst {
		log.Info("already at the destination")
		return Path{r.src}, nil
	}

	r.init()
	if path := r.process(); path != nil {
		return path, nil
	}
	log.Info("failed to find the destination cell", slog.Int("expanded", r.expanded))

	return nil, fmt.Errorf("%w: src=%v dst=%v", ErrNoPath, r.src, r.dst)
}

// init allocates the cell table and seeds the frontier with the source.
func (r *runner) init() {
	n := r.gg.Size()
	r.cells = make([]cellRecord, n)
	r.closed = make([]bool, n)
	inf := math.Inf(1)
	for i := range r.cells {
		r.cells[i] = cellRecord{f: inf, g: inf}
	}

	r.cells[r.index(r.src)] = cellRecord{parent: r.src}
	r.pq = make(cellPQ, 0, n)
	heap.Init(&r.pq)
	r.push(r.src, 0)
}

// process pops the cheapest frontier entry until the destination becomes a
// neighbor of the expanded cell or the frontier runs dry (nil path).
func (r *runner) process() Path {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*cellItem).p
		ci := r.index(cur)
		if r.closed[ci] && r.options.SkipClosed {
			continue
		}
		r.closed[ci] = true
		r.expanded++
		r.options.OnExpand(cur)

		if r.expand(cur, ci) {
			return r.reconstruct()
		}
	}

	return nil
}

// expand relaxes the eight neighbors of cur. It reports true as soon as the
// destination is reached; the destination is linked but never pushed.
func (r *runner) expand(cur gridgraph.Point, ci int) bool {
	for _, d := range directions {
		next := cur.Add(d[1], d[0])
		if !r.gg.IsOpenAt(next) {
			continue // out of bounds or blocked
		}
		ni := r.index(next)
		if r.closed[ni] {
			continue
		}
		if next == r.dst {
			r.cells[ni].parent = cur
			return true
		}

		gNew := r.cells[ci].g + stepCost
		hNew := r.options.Heuristic(next, r.dst)
		fNew := gNew + hNew

		// Strict improvement only; an equal f keeps the older parent.
		rec := &r.cells[ni]
		if math.IsInf(rec.f, 1) || rec.f > fNew {
			*rec = cellRecord{f: fNew, g: gNew, h: hNew, parent: cur}
			r.push(next, fNew)
		}
	}

	return false
}

func (r *runner) push(p gridgraph.Point, f float64) {
	heap.Push(&r.pq, &cellItem{p: p, f: f, seq: r.seq})
	r.seq++
	r.pushed++
	r.options.OnPush(p, f)
}

func (r *runner) index(p gridgraph.Point) int {
	return r.gg.Index(p.X, p.Y)
}

// reconstruct follows parent links from the destination back to the cell
// that is its own parent, then reverses into source→destination order.
func (r *runner) reconstruct() Path {
	var path Path
	cur := r.dst
	for {
		path = append(path, cur)
		parent := r.cells[r.index(cur)].parent
		if parent == cur {
			break
		}
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
