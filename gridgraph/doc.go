// Package gridgraph treats a 2D occupancy grid as a graph of open and
// blocked cells, the substrate every search in gridpath runs on.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable OpenThreshold.
//   - Cells with value ≥ OpenThreshold are open; everything else is blocked.
//   - Point{X, Y} addresses a cell as (column, row).
//   - Neighbors enumerates open adjacent cells under Conn4 or Conn8.
//   - ConnectedComponents / Connected answer reachability questions by BFS.
//
// Why:
//
//   - Validation (empty, ragged) happens once at construction, so algorithms
//     built on top can treat the grid as well-formed and read-only.
//   - A cheap reachability pre-check for tooling and diagnostics.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H) time and memory (deep copy).
//   - InBounds / IsOpen:   O(1).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Connected:           O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.OpenThreshold: minimum value considered open.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
