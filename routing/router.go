// SPDX-License-Identifier: MIT

package routing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/bfs"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dfs"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dijkstra"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/spatial"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/table"
)

var (
	// ErrNilGraph is returned by NewRouter for a nil graph.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrNotCustomer is returned by Plan when the user node is not an origin.
	ErrNotCustomer = errors.New("routing: node is not a customer location")

	// ErrNotRestaurant is returned by Plan when the restaurant node is not a destination.
	ErrNotRestaurant = errors.New("routing: node is not a restaurant")
)

// Option configures a Router.
type Option func(*Router)

// WithEnumeration sets the default options of every Alternatives call.
func WithEnumeration(opts ...dfs.Option) Option {
	return func(r *Router) {
		r.enum = append(r.enum, opts...)
	}
}

// WithSolver sets the options of every shortest-path search.
func WithSolver(opts ...dijkstra.Option) Option {
	return func(r *Router) {
		r.solver = append(r.solver, opts...)
	}
}

// Router answers routing queries over one delivery map.
type Router struct {
	g      *core.Graph
	index  *spatial.Index
	enum   []dfs.Option
	solver []dijkstra.Option

	tableOnce sync.Once
	tab       *table.Table
	tabErr    error
}

// Plan is the answer to a delivery order.
type Plan struct {
	User         core.NodeID
	Restaurant   core.NodeID
	Shortest     dijkstra.Result // customer → restaurant
	Alternatives []core.Path     // customer → restaurant, fewest stops first
	Courier      dijkstra.Result // restaurant → customer
}

// NewRouter indexes g and returns a Router over it.
func NewRouter(g *core.Graph, opts ...Option) (*Router, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := &Router{g: g, index: spatial.NewIndex(g)}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Graph returns the map the router serves.
func (r *Router) Graph() *core.Graph { return r.g }

// ShortestPath returns the minimum-distance route between two nodes.
func (r *Router) ShortestPath(from, to core.NodeID) dijkstra.Result {
	return dijkstra.ShortestPath(r.g, from, to, r.solver...)
}

// Alternatives enumerates simple routes, fewest stops first. Per-call opts
// are applied after the router defaults.
func (r *Router) Alternatives(ctx context.Context, from, to core.NodeID, opts ...dfs.Option) ([]core.Path, error) {
	all := make([]dfs.Option, 0, len(r.enum)+len(opts)+1)
	all = append(all, dfs.WithContext(ctx))
	all = append(all, r.enum...)
	all = append(all, opts...)

	return dfs.AllPaths(r.g, from, to, all...)
}

// FewestStops returns the route with the fewest intersections, or nil.
func (r *Router) FewestStops(ctx context.Context, from, to core.NodeID) (core.Path, error) {
	res, err := bfs.BFS(r.g, from, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return res.PathTo(to), nil
}

// Plan answers a delivery order from user to restaurant.
func (r *Router) Plan(ctx context.Context, user, restaurant core.NodeID) (*Plan, error) {
	if n, ok := r.g.Node(user); !ok || n.Category != core.Origin {
		return nil, fmt.Errorf("%w: %d", ErrNotCustomer, user)
	}
	if n, ok := r.g.Node(restaurant); !ok || n.Category != core.Destination {
		return nil, fmt.Errorf("%w: %d", ErrNotRestaurant, restaurant)
	}

	alts, err := r.Alternatives(ctx, user, restaurant)
	if err != nil {
		return nil, err
	}

	return &Plan{
		User:         user,
		Restaurant:   restaurant,
		Shortest:     r.ShortestPath(user, restaurant),
		Alternatives: alts,
		Courier:      r.ShortestPath(restaurant, user),
	}, nil
}

// Nearest snaps a point to the closest traversable node.
func (r *Router) Nearest(x, y float64) (core.NodeID, bool) {
	return r.index.Nearest(x, y)
}

// Within returns the traversable nodes inside an axis-aligned rectangle,
// ascending by id.
func (r *Router) Within(minX, minY, maxX, maxY float64) []core.NodeID {
	return r.index.Within(minX, minY, maxX, maxY)
}

// DistanceTable returns the restaurant × customer table. It is computed on
// first use and shared afterwards.
func (r *Router) DistanceTable() (*table.Table, error) {
	r.tableOnce.Do(func() {
		r.tab, r.tabErr = table.Default(r.g)
	})

	return r.tab, r.tabErr
}
