// Package gridpath finds routes across occupancy grids with A* search.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light toolkit built around one algorithm:
//		• Grids: open/blocked cells, 8-way neighbors, connectivity checks
//		• Search: A* with unit-cost king moves and pluggable heuristics
//		• Builders: open, walled and seeded random grids for tests and demos
//		• Files: YAML grid documents with optional endpoints
//		• Service: an HTTP endpoint with Prometheus metrics and tracing
//		• CLI: search, generate, inspect and serve from the shell
//
// ✨ Why choose gridpath?
//
//   - Deterministic – ties break in insertion order, so repeated calls agree
//   - Safe to share – grids are immutable, every search owns its state
//   - Observable – slog diagnostics, per-search Stats, step hooks
//
// Packages:
//
//	gridgraph/  the grid: bounds, open cells, neighbors, components
//	astar/      Search, heuristics, Path and its Verify check
//	builder/    grid generators (Open, Wall, Random)
//	gridfile/   YAML encode/decode of grids and endpoints
//	metrics/    Prometheus Collector implementing astar.Observer
//
// Quick ASCII example (S source, D destination, # blocked, * path):
//
//	S * * .
//	# # # *
//	D * * .
//
// Command line:
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
//	gridpath generate --rows 20 --cols 40 --seed 1 --from 0,0 --to 39,19 -o g.yaml
//	gridpath search --grid g.yaml --render
package gridpath
