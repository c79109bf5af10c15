// Package builder generates occupancy grids for tests, benchmarks and the CLI.
//
// Every constructor returns a fresh [][]int with 1 for open and 0 for blocked
// cells, ready for gridgraph.NewGridGraph. Constructors are pure functions of
// their arguments and options: with the same seed they produce the same grid.
//
// Constructors:
//
//   - Open(rows, cols):            all cells open.
//   - Random(rows, cols, opts...): each cell blocked with probability Density;
//     requires an RNG (WithSeed or WithRand).
//   - Wall(rows, cols, col, gaps...): open grid with column col blocked except
//     the listed gap rows.
//
// Options:
//
//   - WithSeed / WithRand:  RNG for stochastic constructors.
//   - WithDensity(p):       obstacle probability, p ∈ [0,1]. Default 0.3.
//   - WithKeepOpen(pts...): cells forced open after sampling (e.g. endpoints).
//
// Guarantees:
//
//   - Option constructors panic on meaningless input (nil RNG, p∉[0,1]).
//   - Constructors return sentinel errors, wrapped with the method name; they
//     never panic at runtime.
//   - Sampling order is row-major, so results are reproducible per seed.
package builder
