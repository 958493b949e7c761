// SPDX-License-Identifier: MIT
//
// File: neighbors.go
// Role: the Neighbor Resolver, the single place where obstacle semantics are enforced.

package core

// Neighbors returns the ids of every node joined to id by an edge, in either
// orientation, whose category is not Obstacle.
//
// Behavior highlights:
//   - An out-of-range id yields an empty result rather than an error.
//   - Order follows edge declaration order; duplicate edges repeat a neighbor.
//   - A self-loop lists id itself once (it is only excluded if id is an obstacle).
//   - The returned slice is freshly allocated and owned by the caller.
//
// Every traversal in this module reads adjacency through Neighbors and never
// through Edges, so obstacles cannot appear on any derived path.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id NodeID) []NodeID {
	if !g.Has(id) {
		return nil
	}

	inc := g.incident[id]
	out := make([]NodeID, 0, len(inc))
	for _, n := range inc {
		if g.nodes[n].IsObstacle() {
			continue
		}
		out = append(out, n)
	}

	return out
}
