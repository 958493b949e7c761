// SPDX-License-Identifier: MIT
//
// Package dijkstra defines the result types and configuration options of
// the shortest-path solver.
//
// Options:
//
//	– MaxDistance: optional cap on distances to explore; nodes farther than
//	  this from the source are never settled. Default +Inf (no cap).
//
// Errors (sentinel, raised via panic from option constructors only):
//
//	– ErrBadMaxDistance if MaxDistance < 0 or NaN.
package dijkstra

import (
	"errors"
	"math"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// ErrBadMaxDistance indicates that WithMaxDistance received a negative or NaN value.
var ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

// Options configures the behavior of the solver.
type Options struct {
	MaxDistance float64 // Maximum distance to explore (inclusive)
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max are treated as unreachable.
// Must pass a non-negative value; anything else panics with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			// Invalid configuration is a programming error; fail at option construction.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with no distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}

// Result is the outcome of a single-pair query.
//
// When no route exists Path is empty and Distance is +Inf. That is a normal
// outcome, not an error.
type Result struct {
	Path     core.Path
	Distance float64
}

// NoPath returns the result reported when the target cannot be reached.
func NoPath() Result {
	return Result{Path: nil, Distance: math.Inf(1)}
}

// Found reports whether r holds a route.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Tree holds single-source shortest distances and predecessor links for
// every node of the graph it was computed on. Tables are indexed by NodeID.
type Tree struct {
	source core.NodeID
	dist   []float64     // dist[v] = best distance from source, +Inf if unreached
	prev   []core.NodeID // prev[v] = predecessor of v, noPred for the source and unreached nodes
}

// noPred marks the absence of a predecessor.
const noPred core.NodeID = -1

// Distance returns the shortest distance from the source to v,
// or +Inf if v is unreachable or out of range.
func (t *Tree) Distance(v core.NodeID) float64 {
	if v < 0 || int(v) >= len(t.dist) {
		return math.Inf(1)
	}

	return t.dist[v]
}

// Reachable reports whether v has a finite distance from the source.
func (t *Tree) Reachable(v core.NodeID) bool {
	return !math.IsInf(t.Distance(v), 1)
}

// PathTo reconstructs the shortest route from the source to v.
func (t *Tree) PathTo(v core.NodeID) Result {
	if !t.Reachable(v) {
		return NoPath()
	}

	// Walk predecessors backward, then reverse in place.
	var path core.Path
	for u := v; u != noPred; u = t.prev[u] {
		path = append(path, u)
		if len(path) > len(t.prev) {
			// A predecessor cycle cannot come out of the solver; refuse to loop.
			return NoPath()
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if path[0] != t.source {
		return NoPath()
	}

	return Result{Path: path, Distance: t.dist[v]}
}
