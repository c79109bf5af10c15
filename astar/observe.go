package astar

import (
	"errors"
	"time"
)

// Outcome classifies how a Search ended.
type Outcome int

const (
	// OutcomeFound means a path of two or more cells was returned.
	OutcomeFound Outcome = iota
	// OutcomeTrivial means source == destination; the path is the single cell.
	OutcomeTrivial
	// OutcomeOutOfBounds corresponds to ErrOutOfBounds.
	OutcomeOutOfBounds
	// OutcomeBlocked corresponds to ErrBlocked.
	OutcomeBlocked
	// OutcomeNoPath corresponds to ErrNoPath.
	OutcomeNoPath
	// OutcomeInvalid covers every other error (nil grid).
	OutcomeInvalid
)

var outcomeNames = [...]string{
	OutcomeFound:       "found",
	OutcomeTrivial:     "trivial",
	OutcomeOutOfBounds: "out_of_bounds",
	OutcomeBlocked:     "blocked",
	OutcomeNoPath:      "no_path",
	OutcomeInvalid:     "invalid",
}

// String returns the snake_case name used in metrics labels and JSON.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Outcomes lists every Outcome, in declaration order.
func Outcomes() []Outcome {
	return []Outcome{OutcomeFound, OutcomeTrivial, OutcomeOutOfBounds, OutcomeBlocked, OutcomeNoPath, OutcomeInvalid}
}

// OutcomeOf maps an error returned by Search to its Outcome.
// A nil error maps to OutcomeFound; Search itself reports OutcomeTrivial
// through Stats when it takes the source == destination shortcut.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, ErrOutOfBounds):
		return OutcomeOutOfBounds
	case errors.Is(err, ErrBlocked):
		return OutcomeBlocked
	case errors.Is(err, ErrNoPath):
		return OutcomeNoPath
	default:
		return OutcomeInvalid
	}
}

// Stats summarises one Search call.
type Stats struct {
	Outcome  Outcome
	Expanded int // frontier pops that were expanded (re-expansions included)
	Pushed   int // frontier insertions, the initial source entry included
	PathLen  int // cells in the returned path; 0 on failure
	Duration time.Duration
}

// Observer receives the Stats of every Search it is registered with.
// Implementations must be safe for concurrent use if shared across goroutines.
type Observer interface {
	ObserveSearch(s Stats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s Stats)

// ObserveSearch calls f(s).
func (f ObserverFunc) ObserveSearch(s Stats) { f(s) }
