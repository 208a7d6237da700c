// Package search defines core types, configuration options, and
// sentinel errors for the incremental grid shortest-path engine.
//
// The engine performs best-first search over 4-connected grid neighbors
// and suspends after every node expansion, so a caller (typically an
// animation loop) paces the exploration one Advance call at a time.
//
// Complexity:
//
//	– Time:  O(N log N) over a full search, N = rows×cols
//	   • Each cell is expanded at most once: up to N fresh pops.
//	   • Each relaxation may push one entry: up to 4N pushes.
//	   • Each heap operation costs O(log N) under lazy decrease-key.
//	– Space: O(N)
//	   • O(N) for the distance table, parent table, and grid snapshot.
//	   • O(N) worst-case frontier entries (duplicates included).
//
// Options:
//
//	– WithAlgorithm:  select AlgorithmAStar or AlgorithmDijkstra.
//	– WithHeuristic:  plug a custom admissible heuristic; overrides the
//	                  algorithm default (zero heuristic ⇒ Dijkstra).
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the provided grid pointer is nil.
//	– ErrUnknownAlgorithm  if the algorithm selector is not recognized.
//	– ErrAlreadyFinished   if Advance is called after a terminal step.
//	– ErrNoParentRecorded  if path reconstruction hits a broken chain.
//	– ErrPathUnavailable   if Path/Cost/Parents are queried before the
//	                       search has reported success.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm selector.
	// This is a caller-side configuration error, not an engine fault.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrAlreadyFinished indicates that Advance was called after the
	// engine reported a terminal step. The engine state is unchanged.
	ErrAlreadyFinished = errors.New("search: search already finished")

	// ErrNoParentRecorded indicates a broken parent chain during path
	// reconstruction. It signals an engine invariant violation and
	// should never occur after a Found result.
	ErrNoParentRecorded = errors.New("search: no parent recorded")

	// ErrPathUnavailable indicates that path data was requested before
	// the search reported success.
	ErrPathUnavailable = errors.New("search: path unavailable before success")
)

// Algorithm selects the priority function of the engine.
type Algorithm int

const (
	// AlgorithmAStar orders the frontier by accumulated distance plus
	// the Manhattan estimate to the goal.
	AlgorithmAStar Algorithm = iota
	// AlgorithmDijkstra orders the frontier by accumulated distance only.
	AlgorithmDijkstra
)

// String returns the canonical selector accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmAStar:
		return "astar"
	case AlgorithmDijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps the selectors "astar" and "dijkstra"
// (case-insensitive) to their Algorithm values.
// Anything else returns ErrUnknownAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar":
		return AlgorithmAStar, nil
	case "dijkstra":
		return AlgorithmDijkstra, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Heuristic estimates the remaining distance from a cell to the goal.
// It must never overestimate (admissibility) for the engine to retain
// Dijkstra-identical optimality.
type Heuristic func(from, goal grid.Coord) int64

// ZeroHeuristic always estimates zero, turning the engine into plain
// Dijkstra.
func ZeroHeuristic(_, _ grid.Coord) int64 { return 0 }

// StepKind discriminates the outcome of a single Advance call.
type StepKind int

const (
	// StepVisited reports that a cell was popped from the frontier and
	// expanded; the Cell field carries its coordinate.
	StepVisited StepKind = iota
	// StepFound reports that the goal has been reached; the Cost field
	// carries the shortest distance. Terminal.
	StepFound
	// StepNoPath reports that the frontier was exhausted without
	// reaching the goal. Terminal.
	StepNoPath
)

// Step is the discriminated result of one Advance call.
// Cell is meaningful only for StepVisited, Cost only for StepFound.
type Step struct {
	Kind StepKind
	Cell grid.Coord
	Cost int64
}

// Status is the lifecycle state of one search.
type Status int

const (
	// StatusRunning means the search has not yet reported a terminal step.
	StatusRunning Status = iota
	// StatusFound means the goal was reached; cost and path are available.
	StatusFound
	// StatusNoPath means the frontier was exhausted without reaching the goal.
	StatusNoPath
)

// Options configures engine construction.
//
// Algorithm – frontier priority function selector (default AlgorithmAStar).
// Heuristic – optional custom estimate; when nil the algorithm default
//
//	is used (Manhattan for A*, zero for Dijkstra).
type Options struct {
	Algorithm Algorithm
	Heuristic Heuristic

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithAlgorithm selects the search variant. An out-of-range value is
// recorded and surfaced as ErrUnknownAlgorithm when New is invoked.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != AlgorithmAStar && a != AlgorithmDijkstra {
			o.err = fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))

			return
		}
		o.Algorithm = a
	}
}

// WithHeuristic plugs a custom heuristic, overriding the algorithm
// default. Passing nil keeps the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns an Options struct with sensible defaults:
// AlgorithmAStar and the algorithm's own heuristic.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgorithmAStar,
		Heuristic: nil,
		err:       nil,
	}
}

// Result aggregates a whole search driven to completion by Run.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool
	// Cost is the shortest distance from start to goal; zero unless Found.
	Cost int64
	// Visited lists every expanded cell in expansion order, the goal
	// included when Found.
	Visited []grid.Coord
}
