// Package bfs finds fewest-stops routes on the delivery map.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Hops(v): number of edges from start to v
//   - PathTo(v): the route with the fewest intersections
//   - Obstacles are never entered, exactly as in the distance solver.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - A courier on foot often cares about how many crossings a route has,
//     not its exact length. BFS answers that in O(V + E).
//   - The first route returned by dfs.AllPaths has the same number of hops,
//     which makes BFS a cheap cross-check for the enumerator.
//
// Determinism
//
//	Neighbors are returned in edge declaration order and enqueued in that
//	order, so the visit sequence and the chosen route are reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       dense depth and parent tables plus the queue
//
// Errors
//
//   - ErrOptionViolation: an option received an invalid value.
//   - ctx.Err(): the context was cancelled during the search.
package bfs
