// Package astar provides A* pathfinding over gridgraph occupancy grids.
//
// Overview:
//
//   - Search returns a path of (column, row) cells from a source to a
//     destination, or a sentinel error explaining why none was produced.
//   - Movement is 8-directional; every move costs exactly 1.0.
//   - The frontier is a min-heap on f = g + h with lazy decrease-key: improved
//     cells are pushed again and stale entries are left in place.
//   - Cells are finalised (closed) when popped and never relaxed again.
//   - Ties on f pop in insertion order, so identical calls return identical paths.
//
// When to use:
//
//   - Robotics, games and simulations with passable/blocked tiles and
//     king-move adjacency.
//   - Read-heavy workloads: a GridGraph is immutable and shareable; each
//     Search owns all of its state.
//
// Heuristics:
//
//   - Euclidean (default): straight-line distance. With unit diagonal cost it
//     may overestimate, so paths are valid but not always step-minimal.
//   - Chebyshev: max(|dx|,|dy|), exact on open grids; yields step-minimal paths.
//   - Octile: distance under √2 diagonals; overestimates like Euclidean here.
//   - Any HeuristicFunc may be supplied with WithHeuristic.
//
// Search outline:
//
//  1. Validate: nil grid, bounds (ErrOutOfBounds), open endpoints (ErrBlocked).
//  2. src == dst returns Path{src}.
//  3. Seed the frontier with (0, src); the source is its own parent.
//  4. Pop min-f, close it, and visit its 8 neighbors in a fixed order,
//     skipping out-of-bounds, blocked and closed cells.
//  5. A neighbor equal to dst is linked to the current cell and the path is
//     rebuilt immediately; dst itself is never pushed.
//  6. Otherwise g' = g+1, f' = g' + h(neighbor); the record is replaced and
//     the neighbor pushed only on strict improvement of f.
//  7. An empty frontier yields ErrNoPath.
//
// Re-expansion:
//
//   - By default a cell popped again after being closed is expanded again.
//     This only costs time: closed neighbors are skipped and unclosed ones
//     only change on strict improvement.
//   - WithSkipClosed() drops such stale entries instead.
//
// Observability:
//
//   - A *slog.Logger (WithLogger, default slog.Default()) receives one Info
//     message for each failure and for the src == dst shortcut. Nothing in
//     the return value depends on it.
//   - Observers (WithObserver) receive a Stats record per call; see the
//     metrics package for a Prometheus implementation.
//   - WithOnExpand / WithOnPush expose every step.
//
// Complexity:
//
//   - Time:  O(P log P), P = frontier pushes ≤ 8 × expansions.
//   - Space: O(W·H) for the cell table and closed set, plus O(P) heap entries.
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrNilGrid, ErrOutOfBounds, ErrBlocked, ErrNoPath from Search.
//   - ErrUnknownHeuristic from HeuristicByName.
//   - ErrInvalidPath from Path.Verify.
//
// Thread safety:
//
//   - Search is safe for concurrent use on the same *gridgraph.GridGraph.
//   - Observers and hooks shared between goroutines must synchronise themselves.
package astar
