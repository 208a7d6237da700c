// Package search implements an incremental best-first shortest-path
// engine over 4-connected grids. One engine instance owns one search:
// it snapshots the grid at construction, then expands exactly one cell
// per Advance call until the goal is popped or the frontier drains.
//
// Notes on implementation choices:
//
//   - A single traversal serves both variants; the heuristic is the only
//     difference (Manhattan for A*, zero for Dijkstra).
//   - Lazy decrease-key: relaxations push duplicate frontier entries and
//     stale ones are discarded at pop time by recomputing the priority
//     against the current best distance.
//   - The goal cell is emitted as a StepVisited before success is
//     reported, so one extra Advance returns the terminal StepFound.
package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// neighborOffsets is the fixed relaxation order: +row, +col, -row, -col.
// Diagonal moves are never considered.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// unreached marks a cell with no recorded distance yet.
const unreached = math.MaxInt64

// Engine holds the mutable state of a single incremental search.
// It is not safe for concurrent use; run side-by-side searches on
// separate instances, which share nothing.
type Engine struct {
	g          *grid.Grid                // private snapshot of the caller's grid
	goal       grid.Coord                // cached from the snapshot
	h          Heuristic                 // priority bias; zero func for Dijkstra
	dist       [][]int64                 // best known distance from start per cell
	parent     map[grid.Coord]grid.Coord // relaxation predecessors
	frontier   cellQueue                 // min-heap of pending expansions
	status     Status                    // Running until a terminal step is returned
	cost       int64                     // shortest distance, latched when the goal pops
	goalPopped bool                      // goal visited, terminal step pending
}

// New constructs an Engine bound to a deep copy of g, so later edits to
// the caller's grid never affect the running search.
//
// Returns ErrNilGrid for a nil grid and ErrUnknownAlgorithm for an
// out-of-range WithAlgorithm value.
//
// Complexity: O(rows×cols) time and memory for the snapshot and tables.
func New(g *grid.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	h := o.Heuristic
	if h == nil {
		switch o.Algorithm {
		case AlgorithmAStar:
			h = grid.Manhattan
		case AlgorithmDijkstra:
			h = ZeroHeuristic
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(o.Algorithm))
		}
	}

	snap := g.Clone()
	rows, cols := snap.Rows(), snap.Cols()

	dist := make([][]int64, rows)
	for r := 0; r < rows; r++ {
		dist[r] = make([]int64, cols)
		for c := 0; c < cols; c++ {
			dist[r][c] = unreached
		}
	}

	e := &Engine{
		g:        snap,
		goal:     snap.Goal(),
		h:        h,
		dist:     dist,
		parent:   make(map[grid.Coord]grid.Coord, rows*cols),
		frontier: make(cellQueue, 0, rows+cols),
		status:   StatusRunning,
	}

	// Seed the frontier with the start cell at distance 0.
	start := snap.Start()
	e.dist[start.Row][start.Col] = 0
	heap.Init(&e.frontier)
	heap.Push(&e.frontier, &cellItem{priority: e.h(start, e.goal), cell: start})

	return e, nil
}

// Advance performs one node expansion and returns exactly one Step:
//
//   - StepVisited{Cell}: a fresh frontier entry was popped and expanded.
//   - StepFound{Cost}:   the goal was popped on the previous Advance;
//     the search is terminal.
//   - StepNoPath:        the frontier drained without reaching the goal;
//     the search is terminal.
//
// Stale frontier entries (priority above the cell's current best
// distance plus heuristic) are discarded silently within a single call,
// so no cell is ever expanded twice.
//
// Calling Advance after a terminal step returns ErrAlreadyFinished and
// mutates nothing.
func (e *Engine) Advance() (Step, error) {
	if e.status != StatusRunning {
		return Step{}, ErrAlreadyFinished
	}

	// The goal was emitted as visited last call; report success now.
	if e.goalPopped {
		e.status = StatusFound

		return Step{Kind: StepFound, Cost: e.cost}, nil
	}

	for e.frontier.Len() > 0 {
		item := heap.Pop(&e.frontier).(*cellItem)
		cur := item.cell
		best := e.dist[cur.Row][cur.Col]

		// Stale entry: a later relaxation improved this cell already.
		if item.priority > best+e.h(cur, e.goal) {
			continue
		}

		if cur == e.goal {
			// Latch the cost; the terminal StepFound is returned on the
			// next Advance. The goal's neighbors are never relaxed.
			e.cost = best
			e.goalPopped = true
		} else {
			e.relax(cur, best)
		}

		return Step{Kind: StepVisited, Cell: cur}, nil
	}

	e.status = StatusNoPath

	return Step{Kind: StepNoPath}, nil
}

// relax attempts to improve the distance of each in-bounds, non-obstacle
// neighbor of cur via a unit-weight edge. Strict improvements update the
// distance and parent tables and push a fresh frontier entry; ties never
// push, which keeps the visit order deterministic.
func (e *Engine) relax(cur grid.Coord, curDist int64) {
	tentative := curDist + 1
	for _, d := range neighborOffsets {
		next := grid.Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
		if !e.g.Walkable(next) {
			continue
		}
		if tentative >= e.dist[next.Row][next.Col] {
			continue
		}
		e.dist[next.Row][next.Col] = tentative
		e.parent[next] = cur
		heap.Push(&e.frontier, &cellItem{
			priority: tentative + e.h(next, e.goal),
			cell:     next,
		})
	}
}

// Status returns the lifecycle state of the search.
func (e *Engine) Status() Status { return e.status }

// cellItem is one frontier entry: a coordinate and the priority it was
// pushed with. Duplicates for the same coordinate may coexist under the
// lazy decrease-key strategy; only the freshest is ever acted upon.
type cellItem struct {
	priority int64
	cell     grid.Coord
}

// cellQueue is a min-heap of *cellItem ordered by priority, with
// (row, col) as the tie-break so equal-priority pops are stable across
// runs.
type cellQueue []*cellItem

// Len returns the number of items in the heap.
func (q cellQueue) Len() int { return len(q) }

// Less orders by priority, then row, then column.
func (q cellQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	if q[i].cell.Row != q[j].cell.Row {
		return q[i].cell.Row < q[j].cell.Row
	}

	return q[i].cell.Col < q[j].cell.Col
}

// Swap swaps two elements in the heap.
func (q cellQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds a new element x onto the heap; x must be of type *cellItem.
func (q *cellQueue) Push(x interface{}) { *q = append(*q, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
