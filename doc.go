// Package pathviz is an interactive grid pathfinding toolkit: paint
// obstacles on a 2D grid, pick start and goal cells, and watch A* or
// Dijkstra explore the grid one cell at a time before the shortest
// path is drawn.
//
// 🚀 What is pathviz?
//
//	A small, focused library plus a terminal front-end:
//		• grid/       — immutable rows×cols obstacle map with start/goal cells
//		• search/     — incremental best-first engine (A* & Dijkstra) that
//		                suspends after every expansion for animation
//		• cmd/pathviz — tcell terminal visualizer driving the engine
//
// ✨ Why choose pathviz?
//
//   - Step-driven – one Advance() per tick, no callbacks, no goroutines
//   - Deterministic – stable tie-breaks, identical runs every time
//   - Owned state – the engine snapshots the grid; edit yours freely
//   - Two variants, one traversal – the heuristic is the only difference
//
// Quick ASCII example (S=start, G=goal, #=obstacle):
//
//	S . .
//	# # .
//	G . .
//
// Build the grid, run the engine, read the path:
//
//	g, _ := grid.New(cells)
//	eng, _ := search.New(g, search.WithAlgorithm(search.AlgorithmAStar))
//	for {
//	    step, err := eng.Advance()
//	    if err != nil || step.Kind != search.StepVisited {
//	        break
//	    }
//	    render(step.Cell)
//	}
//	path, _ := eng.Path()
//
//	go get github.com/katalvlaran/pathviz
package pathviz
