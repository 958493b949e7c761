// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction and read-only accessors.
// Concurrency:
//   - A Graph is never mutated after NewGraph returns, so every method is
//     safe for concurrent use without locking.

package core

import (
	"fmt"
	"math"
)

// Graph is the immutable delivery map: a node collection indexed by NodeID
// and an undirected edge collection.
//
// incident holds, per node, the opposite endpoint of every edge touching it,
// in edge declaration order. It is a structural index only; obstacle
// filtering happens at query time in Neighbors.
type Graph struct {
	nodes    []Node
	edges    []Edge
	incident [][]NodeID
}

// NewGraph validates nodes and edges and returns the graph built from them.
// Input slices are copied; later changes by the caller are not observed.
//
// Validation (in order):
//  1. nodes[i].ID must equal i (ErrNodeIDMismatch).
//  2. Category must be declared (ErrUnknownCategory).
//  3. Position must be finite (ErrBadPosition).
//  4. Both endpoints of every edge must name a node (ErrEdgeOutOfRange).
//
// Self-loops and duplicate edges are accepted; the traversals treat them
// as redundant relaxation attempts.
//
// Complexity: O(V + E) time and space.
func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	for i, n := range nodes {
		if n.ID != NodeID(i) {
			return nil, fmt.Errorf("%w: nodes[%d].ID = %d", ErrNodeIDMismatch, i, n.ID)
		}
		if !n.Category.Valid() {
			return nil, fmt.Errorf("%w: node %d has category %d", ErrUnknownCategory, i, uint8(n.Category))
		}
		if !finite(n.Pos.X) || !finite(n.Pos.Y) {
			return nil, fmt.Errorf("%w: node %d at (%v, %v)", ErrBadPosition, i, n.Pos.X, n.Pos.Y)
		}
	}

	count := len(nodes)
	for i, e := range edges {
		if e.U < 0 || int(e.U) >= count || e.V < 0 || int(e.V) >= count {
			return nil, fmt.Errorf("%w: edges[%d] = (%d, %d) with %d nodes", ErrEdgeOutOfRange, i, e.U, e.V, count)
		}
	}

	g := &Graph{
		nodes:    make([]Node, count),
		edges:    make([]Edge, len(edges)),
		incident: make([][]NodeID, count),
	}
	copy(g.nodes, nodes)
	copy(g.edges, edges)

	for _, e := range g.edges {
		g.incident[e.U] = append(g.incident[e.U], e.V)
		if e.U != e.V {
			g.incident[e.V] = append(g.incident[e.V], e.U)
		}
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on error. It is intended for
// graphs declared in source code, where an error is a programming mistake.
func MustGraph(nodes []Node, edges []Edge) *Graph {
	g, err := NewGraph(nodes, edges)
	if err != nil {
		panic(err)
	}

	return g
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// NodeCount returns the number of nodes, obstacles included.
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.nodes)
}

// EdgeCount returns the number of declared edges, dead ones included.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return len(g.edges)
}

// Has reports whether id names a node of g.
func (g *Graph) Has(id NodeID) bool {
	return g != nil && id >= 0 && int(id) < len(g.nodes)
}

// Traversable reports whether id names a node that routes may use.
func (g *Graph) Traversable(id NodeID) bool {
	return g.Has(id) && !g.nodes[id].IsObstacle()
}

// Node returns the node with the given id, and false if id is out of range.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if !g.Has(id) {
		return Node{}, false
	}

	return g.nodes[id], true
}

// Nodes returns a copy of the node collection in id order.
func (g *Graph) Nodes() []Node {
	if g == nil {
		return nil
	}
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge collection in declaration order.
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodesByCategory returns the ids of all nodes of category c, ascending.
func (g *Graph) NodesByCategory(c Category) []NodeID {
	if g == nil {
		return nil
	}
	var out []NodeID
	for _, n := range g.nodes {
		if n.Category == c {
			out = append(out, n.ID)
		}
	}

	return out
}
