// Package grid models a rectangular obstacle map with designated start
// and goal cells, the input contract of the pathviz search engine.
//
// What:
//
//   - Grid wraps a rectangular [][]State with exactly one start and one
//     goal coordinate, explicit or inferred by row-major scan.
//   - Deep-copies its input and exposes only read access afterwards, so
//     an in-flight search can never observe an external edit.
//   - Manhattan provides the admissible 4-connected distance estimate.
//
// Why:
//
//   - Obstacle painting UIs: hand a finalized snapshot to a solver while
//     the user keeps editing.
//   - Any 4-connected unit-cost shortest-path problem on a grid.
//
// Complexity:
//
//   - New / Clone: O(rows×cols) time and memory.
//   - At / InBounds / Walkable / Manhattan: O(1).
//
// Options:
//
//   - WithStart / WithGoal: pin coordinates explicitly instead of
//     scanning for the Start / Goal cell states.
//
// Errors (all wrap ErrInvalidGrid):
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart / ErrNoGoal: a required coordinate is missing.
//   - ErrCoordOutOfBounds / ErrCoordObstructed: bad explicit coordinate.
package grid
