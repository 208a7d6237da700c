// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/pathviz.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
//
// ErrInvalidGrid is the base kind for every construction failure;
// the specific sentinels below wrap it, so callers may match either
// the broad kind or the precise cause with errors.Is.
var (
	// ErrInvalidGrid is the umbrella error for any malformed grid input.
	ErrInvalidGrid = errors.New("grid: invalid grid")
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrNoStart indicates no Start cell was found or supplied.
	ErrNoStart = fmt.Errorf("%w: no start cell", ErrInvalidGrid)
	// ErrNoGoal indicates no Goal cell was found or supplied.
	ErrNoGoal = fmt.Errorf("%w: no goal cell", ErrInvalidGrid)
	// ErrCoordOutOfBounds indicates an explicit start/goal coordinate outside the grid.
	ErrCoordOutOfBounds = fmt.Errorf("%w: coordinate out of bounds", ErrInvalidGrid)
	// ErrCoordObstructed indicates an explicit start/goal coordinate on an Obstacle cell.
	ErrCoordObstructed = fmt.Errorf("%w: coordinate is an obstacle", ErrInvalidGrid)
)

// State is the content of a single grid cell.
type State uint8

const (
	// Empty marks a traversable cell.
	Empty State = iota
	// Obstacle marks an impassable cell.
	Obstacle
	// Start marks the search origin. Exactly one is expected.
	Start
	// Goal marks the search target. Exactly one is expected.
	Goal
)

// String returns a short human-readable name for the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Coord addresses a cell by row and column. The zero value is the
// top-left cell. Coord is comparable and safe to use as a map key.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Options contains tunable parameters for grid construction.
//
// Start / Goal override the default row-major scan for the sentinel
// cell states. When set, the corresponding cell state in the input is
// not consulted at all.
type Options struct {
	Start    Coord
	Goal     Coord
	hasStart bool
	hasGoal  bool
}

// Option is a functional option for configuring grid construction.
type Option func(*Options)

// WithStart pins the start coordinate explicitly instead of scanning
// for the first Start-state cell.
func WithStart(c Coord) Option {
	return func(o *Options) {
		o.Start = c
		o.hasStart = true
	}
}

// WithGoal pins the goal coordinate explicitly instead of scanning
// for the first Goal-state cell.
func WithGoal(c Coord) Option {
	return func(o *Options) {
		o.Goal = c
		o.hasGoal = true
	}
}

// DefaultOptions returns Options with no explicit start/goal, meaning
// both are inferred by a row-major scan of the input cells.
func DefaultOptions() Options {
	return Options{}
}
