// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil  (Random fails with ErrNeedRandSource unless seeded)
//   • density  = 0.3
//   • keepOpen = none

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	minDim         = 1
	minDensity     = 0.0
	maxDensity     = 1.0
	defaultDensity = 0.3

	cellBlocked = 0
	cellOpen    = 1
)

// gridConfig aggregates all knobs used by constructors.
type gridConfig struct {
	rng      *rand.Rand
	density  float64
	keepOpen []gridgraph.Point
}

// newGridConfig applies opts in order over the defaults.
func newGridConfig(opts ...GridOption) gridConfig {
	cfg := gridConfig{density: defaultDensity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
