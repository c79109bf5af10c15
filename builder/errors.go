// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the method name with %w wrapping.

package builder

import "errors"

// ErrTooSmall indicates rows or cols below 1.
var ErrTooSmall = errors.New("builder: grid dimension too small")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWall indicates a wall column or gap row outside the grid.
var ErrBadWall = errors.New("builder: wall position out of range")
