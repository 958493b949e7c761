// SPDX-License-Identifier: MIT

package spatial

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// R-tree fan-out: 2D, min 25, max 50 entries per node.
const (
	dims     = 2
	minChild = 25
	maxChild = 50
)

// pointTol is the half-side of the box each node occupies in the tree.
const pointTol = 1e-9

// entry wraps a node for R-tree storage.
type entry struct {
	id   core.NodeID
	pos  r2.Vec
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.bbox }

// Index answers nearest-node and range queries over a graph's
// traversable nodes.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex indexes every traversable node of g. A nil or empty graph
// gives an empty index.
//
// Complexity: O(V log V).
func NewIndex(g *core.Graph) *Index {
	tree := rtreego.NewTree(dims, minChild, maxChild)
	size := 0
	for _, n := range g.Nodes() {
		if n.IsObstacle() {
			continue
		}
		tree.Insert(&entry{
			id:   n.ID,
			pos:  n.Pos,
			bbox: rtreego.Point{n.Pos.X, n.Pos.Y}.ToRect(pointTol),
		})
		size++
	}

	return &Index{tree: tree, size: size}
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the traversable node closest to (x, y).
// ok is false when the index is empty or the query point is not finite.
func (ix *Index) Nearest(x, y float64) (id core.NodeID, ok bool) {
	if ix.size == 0 || !finite(x) || !finite(y) {
		return 0, false
	}
	q := r2.Vec{X: x, Y: y}

	// 1) The tree's best candidate bounds the search radius.
	first := ix.tree.NearestNeighbors(1, rtreego.Point{x, y})
	if len(first) == 0 || first[0] == nil {
		return 0, false
	}
	radius := r2.Norm(r2.Sub(first[0].(*entry).pos, q))

	// 2) Every node within radius lies in the enclosing square; refine
	//    exactly so ties resolve to the lower id.
	best, bestDist := core.NodeID(-1), math.Inf(1)
	for _, e := range ix.search(x-radius, y-radius, x+radius, y+radius) {
		d := r2.Norm(r2.Sub(e.pos, q))
		if d < bestDist || (d == bestDist && e.id < best) {
			best, bestDist = e.id, d
		}
	}
	if best < 0 {
		// Rounding kept the candidate itself out of the square.
		return first[0].(*entry).id, true
	}

	return best, true
}

// Within returns the ids of traversable nodes with minX <= x <= maxX and
// minY <= y <= maxY, ascending. An inverted rectangle matches nothing.
func (ix *Index) Within(minX, minY, maxX, maxY float64) []core.NodeID {
	if minX > maxX || minY > maxY {
		return nil
	}

	var ids []core.NodeID
	for _, e := range ix.search(minX, minY, maxX, maxY) {
		if e.pos.X >= minX && e.pos.X <= maxX && e.pos.Y >= minY && e.pos.Y <= maxY {
			ids = append(ids, e.id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// search returns the entries whose boxes meet the given rectangle, padded
// by pointTol so that degenerate rectangles are accepted by rtreego.
func (ix *Index) search(minX, minY, maxX, maxY float64) []*entry {
	bbox, err := rtreego.NewRect(
		rtreego.Point{minX - pointTol, minY - pointTol},
		[]float64{maxX - minX + 2*pointTol, maxY - minY + 2*pointTol},
	)
	if err != nil {
		return nil
	}

	results := ix.tree.SearchIntersect(bbox)
	entries := make([]*entry, 0, len(results))
	for _, item := range results {
		entries = append(entries, item.(*entry))
	}

	return entries
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
