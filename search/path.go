package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Cost returns the shortest distance from start to goal.
// Returns ErrPathUnavailable unless the search reported StepFound.
func (e *Engine) Cost() (int64, error) {
	if e.status != StatusFound {
		return 0, ErrPathUnavailable
	}

	return e.cost, nil
}

// Parents returns a copy of the parent table: for every reached cell
// except the start, the coordinate it was relaxed from. The copy keeps
// the engine's own table immune to caller edits.
func (e *Engine) Parents() map[grid.Coord]grid.Coord {
	parents := make(map[grid.Coord]grid.Coord, len(e.parent))
	for k, v := range e.parent {
		parents[k] = v
	}

	return parents
}

// Path reconstructs the shortest path by walking parent pointers from
// the goal back to the start, then reversing, so the result runs
// start→goal inclusive of both endpoints.
//
// Returns ErrPathUnavailable unless the search reported StepFound, and
// ErrNoParentRecorded if the chain breaks before reaching the start —
// an engine invariant violation that should never occur after success.
//
// Complexity: O(path length).
func (e *Engine) Path() ([]grid.Coord, error) {
	if e.status != StatusFound {
		return nil, ErrPathUnavailable
	}

	start := e.g.Start()
	path := make([]grid.Coord, 0, e.cost+1)
	for cur := e.goal; ; {
		path = append(path, cur)
		if cur == start {
			break
		}
		prev, ok := e.parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: chain broken at %s", ErrNoParentRecorded, cur)
		}
		cur = prev
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Run drives the engine to completion without animation, collecting the
// visited sequence. It checks ctx once per step so long searches remain
// cancellable; the engine itself never blocks.
//
// Returns the terminal Result, ctx.Err() on cancellation, or
// ErrAlreadyFinished if the search already ended.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		step, err := e.Advance()
		if err != nil {
			return nil, err
		}
		switch step.Kind {
		case StepVisited:
			res.Visited = append(res.Visited, step.Cell)
		case StepFound:
			res.Found = true
			res.Cost = step.Cost

			return res, nil
		case StepNoPath:
			return res, nil
		}
	}
}
