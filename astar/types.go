// Package astar defines core types and configuration options
// for A* search on 8-connected occupancy grids.
//
// Options:
//
//	– Heuristic:  estimate of the remaining cost; Euclidean by default.
//	– SkipClosed: drop frontier entries whose cell was already expanded.
//	– Logger:     diagnostic channel for failure and shortcut messages.
//	– Observers:  receive one Stats record per Search call.
//	– OnExpand / OnPush: per-step hooks for tracing or visualisation.
//
// Errors (sentinel):
//
//	– ErrNilGrid        if the provided grid pointer is nil.
//	– ErrOutOfBounds    if the source or destination lies outside the grid.
//	– ErrBlocked        if the source or destination cell is blocked.
//	– ErrNoPath         if the frontier is exhausted before reaching the destination.
//	– ErrUnknownHeuristic from HeuristicByName for an unrecognised name.
//	– ErrInvalidPath    from Path.Verify.
package astar

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that the source or destination is not within
	// [0,Width)×[0,Height). It takes precedence over ErrBlocked.
	ErrOutOfBounds = errors.New("astar: source or destination is out of bounds")

	// ErrBlocked indicates that the source or destination references a blocked cell.
	ErrBlocked = errors.New("astar: source or destination is blocked")

	// ErrNoPath indicates that no sequence of legal moves connects source and destination.
	ErrNoPath = errors.New("astar: no path found")

	// ErrUnknownHeuristic indicates that HeuristicByName received an unsupported name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")

	// ErrInvalidPath indicates that Path.Verify rejected a path.
	ErrInvalidPath = errors.New("astar: invalid path")
)

// Options configures the behavior of the A* search.
//
//   - Heuristic: estimated cost from a cell to the destination. Must be non-nil.
//   - SkipClosed: drop frontier entries of cells that are already closed
//     instead of expanding them again. The returned path is the same either way.
//   - Logger: receives advisory messages; never consulted for the result.
//   - Observers: each one receives exactly one Stats per Search.
type Options struct {
	Heuristic  HeuristicFunc
	SkipClosed bool
	Logger     *slog.Logger
	Observers  []Observer

	// OnExpand is called each time a cell is popped and expanded.
	OnExpand func(p gridgraph.Point)

	// OnPush is called each time a cell is pushed onto the frontier with its f-cost.
	OnPush func(p gridgraph.Point, f float64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the defaults:
//
//   - Heuristic:  Euclidean.
//   - SkipClosed: false (closed cells popped again are re-expanded).
//   - Logger:     slog.Default().
//   - Observers:  none.
//   - OnExpand / OnPush: no-ops.
func DefaultOptions() Options {
	return Options{
		Heuristic:  Euclidean,
		SkipClosed: false,
		Logger:     slog.Default(),
		OnExpand:   func(gridgraph.Point) {},
		OnPush:     func(gridgraph.Point, float64) {},
	}
}

// WithHeuristic sets the heuristic. Panics on nil.
func WithHeuristic(h HeuristicFunc) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithSkipClosed drops stale frontier entries whose cell is already closed.
func WithSkipClosed() Option {
	return func(o *Options) {
		o.SkipClosed = true
	}
}

// WithLogger routes diagnostic messages to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("astar: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver registers an Observer. May be given several times; nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}

// WithOnExpand registers a callback run for every expanded cell.
func WithOnExpand(fn func(p gridgraph.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run for every frontier insertion.
func WithOnPush(fn func(p gridgraph.Point, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}
