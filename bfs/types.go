// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start: the node the search began at.
//   - Order: nodes visited, in visit sequence.
//
// Per-node hop counts and parent links are queried through Hops and PathTo.
type Result struct {
	Start core.NodeID
	Order []core.NodeID

	depth  []int         // depth[v] = hops from Start, -1 if unreached
	parent []core.NodeID // parent[v] = predecessor in the BFS tree, -1 for roots
}

// unreached marks both an unset depth and an absent parent.
const unreached = -1

// Reached reports whether v was discovered.
func (r *Result) Reached(v core.NodeID) bool {
	_, ok := r.Hops(v)
	return ok
}

// Hops returns the number of edges on the fewest-stops route to v.
func (r *Result) Hops(v core.NodeID) (int, bool) {
	if v < 0 || int(v) >= len(r.depth) || r.depth[v] == unreached {
		return 0, false
	}

	return r.depth[v], true
}

// PathTo reconstructs the fewest-stops route from Start to dest.
// Returns nil if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) core.Path {
	if !r.Reached(dest) {
		return nil
	}
	// build reversed path
	var path core.Path
	for cur := dest; cur != unreached; cur = r.parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
