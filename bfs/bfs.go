// Package bfs provides breadth-first search over the delivery map,
// returning fewest-stops routes, hop counts and visit order.
//
// BFS explores nodes in increasing hop count from a start node, never
// entering obstacles, with optional depth limiting and cancellation.
package bfs

import (
	"context"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// An obstacle, unknown start or nil graph yields a Result that reaches
// nothing. Returns ErrOptionViolation for bad options and ctx.Err() on
// cancellation.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker with dense tables
	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			depth:  make([]int, n),
			parent: make([]core.NodeID, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.depth[i] = unreached
		w.res.parent[i] = unreached
	}

	// Obstacles and unknown ids reach nothing
	if !g.Traversable(start) {
		return w.res, nil
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, unreached)
	// Main loop
	return w.res, w.loop()
}

// enqueue records depth and parent of id and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.res.depth[id] = d
	w.res.parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		// first time seen?
		if w.res.depth[nbr] == unreached {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
