// Package core defines the immutable delivery-map graph: nodes with a planar
// position and a category, undirected edges between node ids, the Euclidean
// edge weight, and the obstacle-aware Neighbor Resolver.
//
// What:
//
//   - Node: id (dense index), position (gonum r2.Vec in the unit square),
//     Category (Ordinary, Origin, Destination, Obstacle) and opaque display
//     strings (Label, Name, Emoji).
//   - Edge: unordered pair of ids. Edges may touch obstacles; such edges are
//     structurally present but dead, because Neighbors drops obstacle
//     endpoints at query time.
//   - Graph: built once by NewGraph, then read-only.
//
// Invariants:
//
//   - Node.ID == index in Graph.Nodes(); traversals size their distance,
//     predecessor and visited tables by NodeCount() and index them by id.
//   - Neighbors never returns an obstacle id and never fails; an invalid id
//     has no neighbors.
//
// Errors (construction only):
//
//	ErrNodeIDMismatch   - node id differs from its index.
//	ErrEdgeOutOfRange   - edge endpoint names no node.
//	ErrUnknownCategory  - category outside the declared set.
//	ErrBadPosition      - NaN or infinite coordinate.
//
// Concurrency:
//
//	A *Graph is safe for concurrent readers. Nothing mutates it after
//	construction, so no locks are taken.
//
// Complexity:
//
//	NewGraph O(V+E); Neighbors O(deg); Distance O(1).
package core
