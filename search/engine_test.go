// Package search_test contains unit tests for the incremental search
// engine: construction validation, the Advance step protocol, variant
// equivalence, determinism, and the terminal-state contract.
package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// drain runs Advance to the terminal step and returns the visited
// sequence and the terminal step.
func drain(t *testing.T, e *search.Engine) ([]grid.Coord, search.Step) {
	t.Helper()
	var visited []grid.Coord
	for {
		step, err := e.Advance()
		require.NoError(t, err)
		if step.Kind != search.StepVisited {
			return visited, step
		}
		visited = append(visited, step.Cell)
	}
}

// ------------------------------------------------------------------------
// 1. Validation: construction and selector parsing.
// ------------------------------------------------------------------------

func TestNew_NilGrid(t *testing.T) {
	_, err := search.New(nil)
	require.ErrorIs(t, err, search.ErrNilGrid)
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	g := mustGrid(t, []string{"SG"})
	_, err := search.New(g, search.WithAlgorithm(search.Algorithm(42)))
	require.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want search.Algorithm
		ok   bool
	}{
		{"astar", search.AlgorithmAStar, true},
		{"dijkstra", search.AlgorithmDijkstra, true},
		{"AStar", search.AlgorithmAStar, true},
		{" dijkstra ", search.AlgorithmDijkstra, true},
		{"bfs", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := search.ParseAlgorithm(tc.in)
		if !tc.ok {
			require.ErrorIs(t, err, search.ErrUnknownAlgorithm, "input %q", tc.in)

			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

// ------------------------------------------------------------------------
// 2. Step protocol on the concrete scenarios.
// ------------------------------------------------------------------------

// TestAdvance_Open3x3: no obstacles, start top-left, goal bottom-right.
// Shortest cost is 4 and the reconstructed path spans 5 cells, for both
// variants.
func TestAdvance_Open3x3(t *testing.T) {
	for _, algo := range []search.Algorithm{search.AlgorithmAStar, search.AlgorithmDijkstra} {
		t.Run(algo.String(), func(t *testing.T) {
			g := mustGrid(t, []string{
				"S..",
				"...",
				"..G",
			})
			e, err := search.New(g, search.WithAlgorithm(algo))
			require.NoError(t, err)

			visited, terminal := drain(t, e)
			require.Equal(t, search.StepFound, terminal.Kind)
			require.Equal(t, int64(4), terminal.Cost)

			// The goal itself is emitted as visited before success.
			require.Equal(t, g.Goal(), visited[len(visited)-1])
			require.Equal(t, search.StatusFound, e.Status())

			path, err := e.Path()
			require.NoError(t, err)
			require.Len(t, path, 5)
			require.Equal(t, g.Start(), path[0])
			require.Equal(t, g.Goal(), path[len(path)-1])
		})
	}
}

// TestAdvance_BlockedRow: the entire middle row is obstacles, so the
// goal is unreachable and the visited sequence is finite.
func TestAdvance_BlockedRow(t *testing.T) {
	for _, algo := range []search.Algorithm{search.AlgorithmAStar, search.AlgorithmDijkstra} {
		t.Run(algo.String(), func(t *testing.T) {
			g := mustGrid(t, []string{
				"S..",
				"###",
				"G..",
			})
			e, err := search.New(g, search.WithAlgorithm(algo))
			require.NoError(t, err)

			visited, terminal := drain(t, e)
			require.Equal(t, search.StepNoPath, terminal.Kind)
			require.Equal(t, search.StatusNoPath, e.Status())
			// Only the top row is reachable.
			require.Len(t, visited, 3)

			_, err = e.Path()
			require.ErrorIs(t, err, search.ErrPathUnavailable)
			_, err = e.Cost()
			require.ErrorIs(t, err, search.ErrPathUnavailable)
		})
	}
}

// TestAdvance_StartEqualsGoal: the first Advance visits the start cell,
// the second reports Found with cost 0, and the path is a single cell.
func TestAdvance_StartEqualsGoal(t *testing.T) {
	cells := parse([]string{
		"...",
		"...",
	})
	c := grid.Coord{Row: 1, Col: 1}
	g, err := grid.New(cells, grid.WithStart(c), grid.WithGoal(c))
	require.NoError(t, err)

	e, err := search.New(g)
	require.NoError(t, err)

	step, err := e.Advance()
	require.NoError(t, err)
	require.Equal(t, search.StepVisited, step.Kind)
	require.Equal(t, c, step.Cell)

	step, err = e.Advance()
	require.NoError(t, err)
	require.Equal(t, search.StepFound, step.Kind)
	require.Equal(t, int64(0), step.Cost)

	path, err := e.Path()
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{c}, path)
}

// TestAdvance_VisitOrderAStar pins the exact deterministic expansion
// sequence on the open 3×3 grid: every cell has f=4, so ties resolve
// purely by (row, col).
func TestAdvance_VisitOrderAStar(t *testing.T) {
	g := mustGrid(t, []string{
		"S..",
		"...",
		"..G",
	})
	e, err := search.New(g, search.WithAlgorithm(search.AlgorithmAStar))
	require.NoError(t, err)

	visited, terminal := drain(t, e)
	require.Equal(t, search.StepFound, terminal.Kind)
	require.Equal(t, []grid.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, visited)
}

// ------------------------------------------------------------------------
// 3. Terminal-state contract.
// ------------------------------------------------------------------------

// TestAdvance_AlreadyFinished: once terminal, Advance keeps failing with
// ErrAlreadyFinished and the engine state never changes.
func TestAdvance_AlreadyFinished(t *testing.T) {
	g := mustGrid(t, []string{"S.G"})
	e, err := search.New(g)
	require.NoError(t, err)

	_, terminal := drain(t, e)
	require.Equal(t, search.StepFound, terminal.Kind)

	pathBefore, err := e.Path()
	require.NoError(t, err)
	parentsBefore := e.Parents()

	for i := 0; i < 3; i++ {
		_, err := e.Advance()
		require.ErrorIs(t, err, search.ErrAlreadyFinished)
	}

	pathAfter, err := e.Path()
	require.NoError(t, err)
	require.Equal(t, pathBefore, pathAfter)
	require.Equal(t, parentsBefore, e.Parents())
}

// ------------------------------------------------------------------------
// 4. Variant equivalence and the admissibility bound.
// ------------------------------------------------------------------------

// TestVariants_EqualCostsMatchOracle: on randomized grids, both variants
// agree with each other and with a brute-force BFS on reachability and
// shortest cost, and A* never expands more cells than Dijkstra.
func TestVariants_EqualCostsMatchOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		g := randomGrid(t, rng, 12, 16, 0.3)
		oracleCost, oracleFound := bfsOracle(g)

		astar, err := search.New(g, search.WithAlgorithm(search.AlgorithmAStar))
		require.NoError(t, err)
		dijkstra, err := search.New(g, search.WithAlgorithm(search.AlgorithmDijkstra))
		require.NoError(t, err)

		aVisited, aTerm := drain(t, astar)
		dVisited, dTerm := drain(t, dijkstra)

		if !oracleFound {
			require.Equal(t, search.StepNoPath, aTerm.Kind, "grid %d", i)
			require.Equal(t, search.StepNoPath, dTerm.Kind, "grid %d", i)

			continue
		}
		require.Equal(t, search.StepFound, aTerm.Kind, "grid %d", i)
		require.Equal(t, search.StepFound, dTerm.Kind, "grid %d", i)
		require.Equal(t, oracleCost, aTerm.Cost, "grid %d", i)
		require.Equal(t, oracleCost, dTerm.Cost, "grid %d", i)
		require.LessOrEqual(t, len(aVisited), len(dVisited), "grid %d", i)
	}
}

// TestAStar_VisitsStrictlyFewer: with the goal straight across the top
// row, the Manhattan bias sends A* directly there while Dijkstra also
// explores downwards.
func TestAStar_VisitsStrictlyFewer(t *testing.T) {
	art := []string{
		"S.G",
		"...",
		"...",
	}
	astar, err := search.New(mustGrid(t, art), search.WithAlgorithm(search.AlgorithmAStar))
	require.NoError(t, err)
	dijkstra, err := search.New(mustGrid(t, art), search.WithAlgorithm(search.AlgorithmDijkstra))
	require.NoError(t, err)

	aVisited, aTerm := drain(t, astar)
	dVisited, dTerm := drain(t, dijkstra)
	require.Equal(t, int64(2), aTerm.Cost)
	require.Equal(t, int64(2), dTerm.Cost)
	require.Less(t, len(aVisited), len(dVisited))
}

// ------------------------------------------------------------------------
// 5. Determinism and ownership.
// ------------------------------------------------------------------------

// TestDeterminism: two engines of the same variant on the same grid
// produce identical visited sequences and costs.
func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randomGrid(t, rng, 10, 10, 0.25)

	for _, algo := range []search.Algorithm{search.AlgorithmAStar, search.AlgorithmDijkstra} {
		t.Run(algo.String(), func(t *testing.T) {
			e1, err := search.New(g, search.WithAlgorithm(algo))
			require.NoError(t, err)
			e2, err := search.New(g, search.WithAlgorithm(algo))
			require.NoError(t, err)

			v1, t1 := drain(t, e1)
			v2, t2 := drain(t, e2)
			require.Equal(t, v1, v2)
			require.Equal(t, t1, t2)
		})
	}
}

// TestSnapshotIsolation: painting new obstacles into the caller's cells
// after construction never affects an in-flight search.
func TestSnapshotIsolation(t *testing.T) {
	cells := parse([]string{
		"S..",
		"...",
		"..G",
	})
	g, err := grid.New(cells)
	require.NoError(t, err)
	e, err := search.New(g)
	require.NoError(t, err)

	// Wall off the goal in the caller's copy mid-search.
	_, err = e.Advance()
	require.NoError(t, err)
	cells[1][1] = grid.Obstacle
	cells[1][2] = grid.Obstacle
	cells[2][1] = grid.Obstacle

	_, terminal := drain(t, e)
	require.Equal(t, search.StepFound, terminal.Kind)
	require.Equal(t, int64(4), terminal.Cost)
}

// TestCustomHeuristic: a zero custom heuristic makes A* behave exactly
// like Dijkstra.
func TestCustomHeuristic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGrid(t, rng, 8, 8, 0.2)

	zeroed, err := search.New(g,
		search.WithAlgorithm(search.AlgorithmAStar),
		search.WithHeuristic(search.ZeroHeuristic),
	)
	require.NoError(t, err)
	dijkstra, err := search.New(g, search.WithAlgorithm(search.AlgorithmDijkstra))
	require.NoError(t, err)

	v1, t1 := drain(t, zeroed)
	v2, t2 := drain(t, dijkstra)
	require.Equal(t, v2, v1)
	require.Equal(t, t2, t1)
}
