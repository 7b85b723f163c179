// Package bfs computes fewest-move routes through a mapped maze with a
// level-order breadth-first search over a core.Graph.
//
// What
//
//   - Search(g, from, to, opts...) expands cells in non-decreasing distance
//     from `from`, recording for each newly discovered cell the cell that
//     discovered it, and stops as soon as `to` is dequeued.
//   - Result.PathTo(dest) follows the parent links back from dest and
//     reverses them into a from→dest Path.
//   - ShortestPath(g, opts...) is Search from g.Start() to g.Exit()
//     followed by PathTo.
//
// Guarantees
//
//   - The returned path has the fewest edges of any passable route.
//   - Ties are broken by core.Graph.Neighbors order (N, E, S, W), so the
//     same graph always yields the same path.
//   - An unreachable target is reported as ErrNoPath, never as an empty
//     or partial path.
//
// Complexity (V = cells, E = passages)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, depth and parent maps.
//
// Options
//
//   - WithContext(ctx)    cancellation checked once per dequeue.
//   - WithOnDequeue(fn)   hook called with each cell and its depth.
//
// Errors
//
//   - ErrGraphNil         graph pointer is nil.
//   - ErrStartNotFound    the source cell is not in the graph.
//   - ErrNoPath           the target was not reached.
package bfs
