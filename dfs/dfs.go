// Package dfs enumerates simple routes between two nodes of the delivery map
// by depth-first search.
//
// Key features:
//   - AllPaths(g, start, end, opts...): every simple route within the hop cap,
//     sorted by node count, truncated to MaxPaths
//   - Obstacles are never entered; neighbors come from core.Graph.Neighbors
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   exponential in the worst case (the number of simple paths);
//     bounded in practice by MaxDepth.
//   - Memory: O(V) for the recursion stack plus the routes collected.
package dfs

import (
	"slices"
	"sort"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// walker encapsulates state during enumeration.
type walker struct {
	graph  *core.Graph // underlying graph
	opts   Options     // enumeration options
	end    core.NodeID // destination
	onPath []bool      // onPath[v] = v is on the current branch
	stack  core.Path   // current branch, start first
	found  []core.Path // completed routes in discovery order
}

// AllPaths returns simple routes from start to end, fewest nodes first.
//
// Routes are discovered in neighbor order and sorted stably by length, so
// equally long routes keep their discovery order. The result is truncated
// to MaxPaths (default 5). Routes never revisit a node and never take more
// than MaxDepth hops (default 20).
//
// An obstacle, unknown id or nil graph at either end yields an empty result
// and no error. start == end yields the single route [start]. Parallel
// edges between two nodes count as one road, so no route is reported twice.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ctx.Err() if the context ends mid-search; no routes are returned.
func AllPaths(g *core.Graph, start, end core.NodeID, opts ...Option) ([]core.Path, error) {
	// 1. Apply options and surface any violation
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Obstacles and unknown ids cannot be endpoints
	if !g.Traversable(start) || !g.Traversable(end) {
		return nil, nil
	}

	// 3. Walk from start
	w := &walker{
		graph:  g,
		opts:   o,
		end:    end,
		onPath: make([]bool, g.NodeCount()),
		stack:  make(core.Path, 0, min(o.MaxDepth, g.NodeCount()-1)+1),
	}
	if err := w.walk(start, 0); err != nil {
		return nil, err
	}

	// 4. Order by length, keeping discovery order among equals
	sort.SliceStable(w.found, func(i, j int) bool {
		return len(w.found[i]) < len(w.found[j])
	})
	if o.MaxPaths > 0 && len(w.found) > o.MaxPaths {
		w.found = w.found[:o.MaxPaths]
	}

	return w.found, nil
}

// walk extends the current branch with id, reached after depth hops.
func (w *walker) walk(id core.NodeID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Hop cap: abandon the branch
	if depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Enter id
	w.onPath[id] = true
	w.stack = append(w.stack, id)

	// 4. Record or descend
	if id == w.end {
		w.found = append(w.found, w.stack.Clone())
	} else {
		nbrs := w.graph.Neighbors(id)
		for i, nid := range nbrs {
			if w.onPath[nid] || slices.Contains(nbrs[:i], nid) {
				continue
			}
			if err := w.walk(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Leave id so sibling branches may use it
	w.stack = w.stack[:len(w.stack)-1]
	w.onPath[id] = false

	return nil
}
