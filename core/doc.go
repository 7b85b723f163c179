// Package core defines the maze primitives shared by every other package:
// Cell coordinates, compass Directions, the incrementally built Graph of
// passable adjacency, the CellSet used as a visited set, and Path.
//
// What:
//
//   - Cell{Row, Col} is an immutable grid coordinate. Row grows southward,
//     Col grows eastward, so North is Row-1 and East is Col+1.
//   - Direction enumerates North, East, South, West in clockwise order.
//   - Graph records which neighboring cells are mutually passable. It only
//     ever grows: cells and passages are added, never removed.
//   - Path is an ordered list of cells whose consecutive entries are
//     passable-adjacent.
//
// Invariants:
//
//   - Adjacency is symmetric: Connect(a, b) makes b a neighbor of a and a
//     a neighbor of b.
//   - Only orthogonally adjacent, distinct cells can be connected.
//   - Start and exit are fixed at construction.
//
// Determinism:
//
//	Neighbors are returned in N, E, S, W order and Cells in row-major order,
//	so every traversal built on a Graph is reproducible.
//
// Concurrency:
//
//	Graph guards its state with a sync.RWMutex. The solver itself is single
//	threaded; the lock keeps read-only sharing with renderers safe.
//
// Errors:
//
//   - ErrNotAdjacent  two consecutive path cells are not grid neighbors.
//   - ErrEmptyPath    a path with no cells was supplied.
//   - ErrBrokenPath   a path hop is not a passage in the graph.
package core
