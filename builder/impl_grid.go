// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_grid.go: Open, Random and Wall constructors.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooSmall).
//   • Cells are 1 (open) or 0 (blocked); rows are independent slices.
//   • Random samples row-major, one Float64 per cell, then applies keepOpen.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(rows*cols) for the result.

package builder

import "fmt"

const (
	methodOpen   = "Open"
	methodRandom = "Random"
	methodWall   = "Wall"
)

// Open returns a rows×cols grid with every cell open.
func Open(rows, cols int) ([][]int, error) {
	if err := validateDims(methodOpen, rows, cols); err != nil {
		return nil, err
	}
	return filled(rows, cols, cellOpen), nil
}

// Random returns a rows×cols grid where each cell is blocked independently
// with probability density (WithDensity, default 0.3). Cells listed with
// WithKeepOpen are open regardless of the draw. Requires WithSeed or WithRand.
func Random(rows, cols int, opts ...GridOption) ([][]int, error) {
	if err := validateDims(methodRandom, rows, cols); err != nil {
		return nil, err
	}
	cfg := newGridConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	grid := filled(rows, cols, cellOpen)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cfg.rng.Float64() < cfg.density {
				grid[r][c] = cellBlocked
			}
		}
	}
	for _, p := range cfg.keepOpen {
		if p.Y >= 0 && p.Y < rows && p.X >= 0 && p.X < cols {
			grid[p.Y][p.X] = cellOpen
		}
	}

	return grid, nil
}

// Wall returns an open rows×cols grid whose column col is blocked in every
// row except the given gap rows. With no gaps the two sides are disconnected.
func Wall(rows, cols, col int, gaps ...int) ([][]int, error) {
	if err := validateDims(methodWall, rows, cols); err != nil {
		return nil, err
	}
	if col < 0 || col >= cols {
		return nil, fmt.Errorf("%s: col=%d not in [0,%d): %w", methodWall, col, cols, ErrBadWall)
	}

	grid := filled(rows, cols, cellOpen)
	for r := 0; r < rows; r++ {
		grid[r][col] = cellBlocked
	}
	for _, g := range gaps {
		if g < 0 || g >= rows {
			return nil, fmt.Errorf("%s: gap row=%d not in [0,%d): %w", methodWall, g, rows, ErrBadWall)
		}
		grid[g][col] = cellOpen
	}

	return grid, nil
}

func validateDims(method string, rows, cols int) error {
	if rows < minDim || cols < minDim {
		return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			method, rows, cols, minDim, ErrTooSmall)
	}
	return nil
}

func filled(rows, cols, v int) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		row := make([]int, cols)
		for c := range row {
			row[c] = v
		}
		grid[r] = row
	}
	return grid
}
