// Package astar_test provides examples demonstrating how to use Search.
// Each example is runnable via “go test -run Example”.
package astar_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleSearch finds a route around a wall. Coordinates are (column, row).
func ExampleSearch() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 1, 1},
		{0, 0, 0, 1},
		{1, 1, 1, 1},
	}, gridgraph.Conn8)

	path, err := astar.Search(gg, gridgraph.Pt(0, 0), gridgraph.Pt(0, 2),
		astar.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: (0,0) -> (1,0) -> (2,0) -> (3,1) -> (2,2) -> (1,2) -> (0,2)
}

// ExampleSearch_failure shows how callers branch on the failure reason.
func ExampleSearch_failure() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 0, 1},
		{1, 0, 1},
	}, gridgraph.Conn8)
	quiet := astar.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, dst := range []gridgraph.Point{gridgraph.Pt(3, 0), gridgraph.Pt(1, 0), gridgraph.Pt(2, 1)} {
		_, err := astar.Search(gg, gridgraph.Pt(0, 0), dst, quiet)
		switch {
		case errors.Is(err, astar.ErrOutOfBounds):
			fmt.Println(dst, "out of bounds")
		case errors.Is(err, astar.ErrBlocked):
			fmt.Println(dst, "blocked")
		case errors.Is(err, astar.ErrNoPath):
			fmt.Println(dst, "unreachable")
		}
	}
	// Output:
	// (3,0) out of bounds
	// (1,0) blocked
	// (2,1) unreachable
}

// ExampleWithHeuristic selects the Chebyshev heuristic, which is exact for
// unit-cost king moves, and reports search statistics.
func ExampleWithHeuristic() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	}, gridgraph.Conn8)

	var stats astar.Stats
	path, _ := astar.Search(gg, gridgraph.Pt(0, 0), gridgraph.Pt(4, 1),
		astar.WithHeuristic(astar.Chebyshev),
		astar.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		astar.WithObserver(astar.ObserverFunc(func(s astar.Stats) { stats = s })),
	)
	fmt.Println(path.Steps(), stats.Outcome)
	// Output: 4 found
}
