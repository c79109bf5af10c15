package astar

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// HeuristicFunc returns the estimated cost from a cell to the destination.
type HeuristicFunc func(from, to gridgraph.Point) float64

// Canonical heuristic names accepted by HeuristicByName.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicChebyshev = "chebyshev"
	HeuristicOctile    = "octile"
)

var heuristics = map[string]HeuristicFunc{
	HeuristicEuclidean: Euclidean,
	HeuristicChebyshev: Chebyshev,
	HeuristicOctile:    Octile,
}

// Euclidean is the straight-line distance sqrt(dx²+dy²).
//
// With every step costing 1.0 (diagonals included) it can overestimate the
// remaining cost on diagonal-heavy routes, so returned paths are not
// guaranteed minimal in step count. It is the default; the exact paths
// asserted in this package's tests depend on it.
func Euclidean(from, to gridgraph.Point) float64 {
	dx := float64(from.X - to.X)
	dy := float64(from.Y - to.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev is max(|dx|,|dy|): the exact step count on an open 8-connected
// grid with unit diagonal cost. Consistent, so paths are minimal.
func Chebyshev(from, to gridgraph.Point) float64 {
	return float64(max(abs(from.X-to.X), abs(from.Y-to.Y)))
}

// Octile is the 8-connected distance when diagonal steps cost √2.
// Under unit diagonal cost it overestimates just like Euclidean.
func Octile(from, to gridgraph.Point) float64 {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	return float64(max(dx, dy)) + (math.Sqrt2-1)*float64(min(dx, dy))
}

// HeuristicByName resolves one of HeuristicEuclidean, HeuristicChebyshev or
// HeuristicOctile (case-insensitive). An empty name selects Euclidean.
func HeuristicByName(name string) (HeuristicFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Euclidean, nil
	}
	h, ok := heuristics[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownHeuristic, name, strings.Join(HeuristicNames(), ", "))
	}

	return h, nil
}

// HeuristicNames lists the accepted heuristic names in sorted order.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for k := range heuristics {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
