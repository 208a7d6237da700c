// Package grid provides the immutable 2D obstacle map consumed by the
// pathviz search engine. A Grid is built once from a rectangular slice
// of cell states plus start/goal coordinates (explicit or inferred),
// and never mutates afterwards.
package grid

// Grid is an immutable rows×cols obstacle map with designated start and
// goal cells. The input cells are deep-copied at construction, so a
// caller editing its original slice can never affect a built Grid.
type Grid struct {
	rows, cols int
	cells      [][]State
	start      Coord
	goal       Coord
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cell
// states. Start and goal are taken from WithStart/WithGoal options when
// given; otherwise the first Start-state and first Goal-state cell found
// in a row-major scan are used (first occurrence wins if duplicated).
//
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNoStart / ErrNoGoal if a required coordinate is missing,
// ErrCoordOutOfBounds / ErrCoordObstructed for bad explicit coordinates.
// All of these wrap ErrInvalidGrid.
//
// Complexity: O(rows×cols) time and memory.
func New(cells [][]State, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to prevent external mutation.
	copied := make([][]State, rows)
	for r := 0; r < rows; r++ {
		copied[r] = make([]State, cols)
		copy(copied[r], cells[r])
	}

	g := &Grid{rows: rows, cols: cols, cells: copied}

	start, ok := g.resolve(o.Start, o.hasStart, Start)
	if !ok {
		return nil, ErrNoStart
	}
	goal, ok := g.resolve(o.Goal, o.hasGoal, Goal)
	if !ok {
		return nil, ErrNoGoal
	}
	if o.hasStart {
		if !g.InBounds(start) {
			return nil, ErrCoordOutOfBounds
		}
		if g.At(start) == Obstacle {
			return nil, ErrCoordObstructed
		}
	}
	if o.hasGoal {
		if !g.InBounds(goal) {
			return nil, ErrCoordOutOfBounds
		}
		if g.At(goal) == Obstacle {
			return nil, ErrCoordObstructed
		}
	}
	g.start, g.goal = start, goal

	return g, nil
}

// resolve picks the explicit coordinate when supplied, or scans the
// cells row-major for the first occurrence of want.
func (g *Grid) resolve(explicit Coord, has bool, want State) (Coord, bool) {
	if has {
		return explicit, true
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == want {
				return Coord{Row: r, Col: c}, true
			}
		}
	}

	return Coord{}, false
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal coordinate.
func (g *Grid) Goal() Coord { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state stored at c. Out-of-bounds coordinates report
// Obstacle, so callers may treat the outside world as impassable.
func (g *Grid) At(c Coord) State {
	if !g.InBounds(c) {
		return Obstacle
	}

	return g.cells[c.Row][c.Col]
}

// Walkable reports whether c is in bounds and not an Obstacle.
// Complexity: O(1).
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != Obstacle
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cells := make([][]State, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]State, g.cols)
		copy(cells[r], g.cells[r])
	}

	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
		start: g.start,
		goal:  g.goal,
	}
}

// Manhattan returns |Δrow| + |Δcol| between a and b: the exact remaining
// distance lower bound on a 4-connected unit-cost grid, hence an
// admissible and consistent A* heuristic.
func Manhattan(a, b Coord) int64 {
	dr := int64(a.Row - b.Row)
	if dr < 0 {
		dr = -dr
	}
	dc := int64(a.Col - b.Col)
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
