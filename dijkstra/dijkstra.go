// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// obstacle-aware delivery map.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the dense distance, predecessor and settled tables.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Adjacency is read only through core.Graph.Neighbors, so obstacles are
//     never settled, relaxed or used as endpoints.
//   - Heap ties break on the lower node id, which makes results deterministic.
//   - ShortestPath stops as soon as the target is settled; with non-negative
//     weights a settled node is never improved again.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// ShortestPath returns the minimum-length route from start to end and its
// total Euclidean distance.
//
// Outcomes:
//   - start == end (traversable): the single-node path, distance 0.
//   - end unreachable: NoPath() (empty path, +Inf).
//   - start or end an obstacle, out of range, or g nil: NoPath().
//
// Complexity: O((V + E) log V) worst case; usually less thanks to the early exit.
func ShortestPath(g *core.Graph, start, end core.NodeID, opts ...Option) Result {
	// 1) Obstacles and invalid ids can be neither source nor destination.
	if !g.Traversable(start) || !g.Traversable(end) {
		return NoPath()
	}

	// 2) Grow the tree until end is settled.
	r := newRunner(g, start, opts)
	r.target, r.hasTarget = end, true
	r.process()

	// 3) Rebuild the route from the predecessor chain.
	return r.tree().PathTo(end)
}

// From computes shortest distances from source to every node of g.
// The returned tree reports +Inf for every node when source is not
// traversable.
//
// Complexity: O((V + E) log V).
func From(g *core.Graph, source core.NodeID, opts ...Option) *Tree {
	if !g.Traversable(source) {
		t := &Tree{
			source: source,
			dist:   make([]float64, g.NodeCount()),
			prev:   make([]core.NodeID, g.NodeCount()),
		}
		for i := range t.dist {
			t.dist[i] = math.Inf(1)
			t.prev[i] = noPred
		}

		return t
	}

	r := newRunner(g, source, opts)
	r.process()

	return r.tree()
}

// runner holds the mutable state for a single solver execution.
type runner struct {
	g         *core.Graph   // The input graph; read-only.
	options   Options       // Configuration options.
	source    core.NodeID   // Where the search starts.
	target    core.NodeID   // Early-exit node, valid when hasTarget.
	hasTarget bool          // Whether to stop once target is settled.
	dist      []float64     // dist[v] = current best distance from source.
	prev      []core.NodeID // prev[v] = predecessor on the best known route.
	settled   []bool        // settled[v] = distance of v is final.
	pq        nodePQ        // Min-heap for the lazy priority queue.
}

// newRunner applies opts and initializes every table: dist = +Inf, no
// predecessor, nothing settled, and the source pushed with distance 0.
func newRunner(g *core.Graph, source core.NodeID, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make([]float64, n),
		prev:    make([]core.NodeID, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = noPred
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// process is the core loop. It repeatedly settles the unsettled node with the
// smallest tentative distance and relaxes its traversable neighbors.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every reachable node settled).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The target has been settled.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries left behind by lazy decrease-key.
		if r.settled[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.settled[u] = true
		if r.hasTarget && u == r.target {
			break
		}

		r.relax(u)
	}
}

// relax tries to improve the distance of every unsettled neighbor v of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u core.NodeID) {
	from, _ := r.g.Node(u)
	for _, v := range r.g.Neighbors(u) {
		// Self-loops and duplicate edges land here as already-settled nodes
		// or as non-improving candidates.
		if r.settled[v] {
			continue
		}

		to, _ := r.g.Node(v)
		alt := r.dist[u] + core.Distance(from, to)
		if alt > r.options.MaxDistance || alt >= r.dist[v] {
			continue
		}

		r.dist[v] = alt
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: alt})
	}
}

// tree hands the runner's tables over to a Tree. Relaxation never records a
// distance above MaxDistance, so capped nodes already read as +Inf.
func (r *runner) tree() *Tree {
	return &Tree{source: r.source, dist: r.dist, prev: r.prev}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances pop the lower id first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
