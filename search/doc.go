// Package search provides an incremental, suspendable shortest-path
// engine over 4-connected obstacle grids, with A* and Dijkstra variants
// sharing one traversal.
//
// Overview:
//
//   - The engine is an explicit state machine: each Advance call pops
//     one frontier cell, relaxes its neighbors, and returns a
//     discriminated Step, so an animation loop can render progress one
//     cell per tick.
//   - Both variants share identical relaxation, termination, and
//     stale-entry handling; only the frontier priority differs —
//     accumulated distance for Dijkstra, accumulated distance plus the
//     Manhattan estimate for A*. The Manhattan estimate is admissible
//     and consistent on 4-connected unit-cost grids, so A* returns the
//     same cost as Dijkstra while typically visiting fewer cells.
//   - The frontier uses lazy decrease-key: improvements push duplicate
//     entries, and a popped entry is discarded when its stored priority
//     exceeds the cell's current best distance plus heuristic.
//   - Frontier ties break on (row, col), making the visit sequence
//     fully deterministic for a given grid and variant.
//
// Step protocol:
//
//   - StepVisited{Cell} for every expanded cell, the goal included: the
//     goal is emitted as visited first, and the following Advance
//     returns the terminal step.
//   - StepFound{Cost} once, when the goal was popped. Terminal.
//   - StepNoPath once, when the frontier drains. Terminal.
//   - Advance after a terminal step fails with ErrAlreadyFinished and
//     never mutates state.
//
// Ownership and concurrency:
//
//   - New deep-copies the grid, so the caller may keep editing its own
//     copy while a search is in flight.
//   - An Engine performs no internal concurrency, holds no locks, and
//     never blocks; between Advance calls its state is fully consistent
//     and inspectable (Status, Parents, Cost, Path).
//   - Side-by-side searches (e.g. comparing variants) need only
//     separate Engine instances; they share nothing.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for a full search, N = rows×cols.
//   - Space: O(N) for tables, snapshot, and frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          nil *grid.Grid passed to New.
//   - ErrUnknownAlgorithm: unrecognized algorithm selector (caller-side
//     misconfiguration).
//   - ErrAlreadyFinished:  Advance called past termination.
//   - ErrNoParentRecorded: reconstruction invariant violated (engine bug).
//   - ErrPathUnavailable:  Path/Cost queried before success.
//
// See also:
//
//   - grid.Grid: the immutable obstacle map consumed by the engine.
//   - cmd/pathviz: a terminal visualizer driving Advance off a ticker.
package search
