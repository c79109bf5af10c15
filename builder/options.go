// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type GridOption func(*gridConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// GridOption customizes a constructor by mutating a gridConfig before
// generation begins.
type GridOption func(*gridConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) GridOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *gridConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) GridOption {
	return func(c *gridConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the probability that Random blocks a cell.
// Panics if p is outside [0,1].
func WithDensity(p float64) GridOption {
	if p < minDensity || p > maxDensity {
		panic("builder: WithDensity(p∉[0,1])")
	}
	return func(c *gridConfig) {
		c.density = p
	}
}

// WithKeepOpen forces the given cells open after sampling. Points outside the
// grid are ignored.
func WithKeepOpen(pts ...gridgraph.Point) GridOption {
	return func(c *gridConfig) {
		c.keepOpen = append(c.keepOpen, pts...)
	}
}
