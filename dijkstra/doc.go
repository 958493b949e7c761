// Package dijkstra finds minimum-length routes on the delivery map.
//
// Overview:
//
//   - Edge weights are the Euclidean lengths of road segments, so they are
//     always non-negative and Dijkstra's greedy settling order is exact.
//   - Obstacle nodes are invisible to the search: they are never settled,
//     never relaxed and cannot be the start or the end of a route.
//   - The search runs on dense tables indexed by core.NodeID and a lazy
//     binary heap ordered by (distance, id), so ties always resolve to the
//     lower node id and results are reproducible.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, start, end core.NodeID, opts ...Option) Result
//	func From(g *core.Graph, source core.NodeID, opts ...Option) *Tree
//
//	  - ShortestPath stops as soon as end is settled and returns the route
//	    and its length; Result.Found() is false when no route exists.
//	  - From grows the full shortest-path tree; Tree.Distance and Tree.PathTo
//	    answer any number of queries from the same source.
//	  - WithMaxDistance(d) bounds the search radius; nodes farther than d are
//	    reported as unreachable.
//
// Outcomes (no error values; "no route" is a normal answer):
//
//   - start == end and traversable: Path [start], Distance 0.
//   - end unreachable, or either endpoint an obstacle or unknown id:
//     empty Path, Distance +Inf.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with O(E) worst-case heap entries under lazy decrease-key.
//
// Concurrency:
//
//   - Every call owns its tables; any number of calls may share one Graph.
//
// Panics:
//
//   - WithMaxDistance panics with ErrBadMaxDistance on a negative or NaN cap.
package dijkstra
