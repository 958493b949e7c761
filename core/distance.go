// SPDX-License-Identifier: MIT

package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns the Euclidean distance between the positions of a and b.
// It is the only edge weight in this module: symmetric, non-negative and
// satisfying the triangle inequality.
func Distance(a, b Node) float64 {
	return r2.Norm(r2.Sub(a.Pos, b.Pos))
}

// Distance returns the Euclidean distance between nodes u and v of g,
// or +Inf if either id is out of range.
func (g *Graph) Distance(u, v NodeID) float64 {
	if !g.Has(u) || !g.Has(v) {
		return math.Inf(1)
	}

	return Distance(g.nodes[u], g.nodes[v])
}

// PathLength sums the Euclidean length of consecutive hops of p.
// An empty or single-node path has length 0; an id outside g yields +Inf.
func (g *Graph) PathLength(p Path) float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += g.Distance(p[i-1], p[i])
	}

	return total
}
