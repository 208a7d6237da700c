package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathviz/grid"
)

// parse builds a cell matrix from ASCII art:
// '.'=Empty, '#'=Obstacle, 'S'=Start, 'G'=Goal.
func parse(art []string) [][]grid.State {
	cells := make([][]grid.State, len(art))
	for r, line := range art {
		cells[r] = make([]grid.State, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				cells[r][c] = grid.Obstacle
			case 'S':
				cells[r][c] = grid.Start
			case 'G':
				cells[r][c] = grid.Goal
			default:
				cells[r][c] = grid.Empty
			}
		}
	}

	return cells
}

// mustGrid builds a grid from art or fails the test.
func mustGrid(t *testing.T, art []string) *grid.Grid {
	t.Helper()
	g, err := grid.New(parse(art))
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

// randomGrid builds a rows×cols grid with obstacle density p, start at
// the top-left and goal at the bottom-right corner (both kept clear).
func randomGrid(t *testing.T, rng *rand.Rand, rows, cols int, p float64) *grid.Grid {
	t.Helper()
	cells := make([][]grid.State, rows)
	for r := range cells {
		cells[r] = make([]grid.State, cols)
		for c := range cells[r] {
			if rng.Float64() < p {
				cells[r][c] = grid.Obstacle
			}
		}
	}
	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: rows - 1, Col: cols - 1}
	cells[start.Row][start.Col] = grid.Empty
	cells[goal.Row][goal.Col] = grid.Empty

	g, err := grid.New(cells, grid.WithStart(start), grid.WithGoal(goal))
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

// bfsOracle computes the shortest 4-connected path length by plain BFS,
// the brute-force reference for both engine variants.
func bfsOracle(g *grid.Grid) (int64, bool) {
	type item struct {
		c grid.Coord
		d int64
	}
	offsets := [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	seen := map[grid.Coord]bool{g.Start(): true}
	queue := []item{{c: g.Start()}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if it.c == g.Goal() {
			return it.d, true
		}
		for _, d := range offsets {
			n := grid.Coord{Row: it.c.Row + d[0], Col: it.c.Col + d[1]}
			if !g.Walkable(n) || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, item{c: n, d: it.d + 1})
		}
	}

	return 0, false
}

// adjacent reports whether a and b are 4-connected neighbors.
func adjacent(a, b grid.Coord) bool {
	return grid.Manhattan(a, b) == 1
}
