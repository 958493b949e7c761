// SPDX-License-Identifier: MIT

package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dijkstra"
)

// Feature kinds and route roles.
const (
	KindNode  = "node"
	KindEdge  = "edge"
	KindRoute = "route"

	RoleShortest    = "shortest"
	RoleAlternative = "alternative"
)

// point converts a node position to an orb point.
func point(n core.Node) orb.Point { return orb.Point{n.Pos.X, n.Pos.Y} }

// LineString returns the geometry of p on g. ok is false if p is empty or
// names a node g does not have.
func LineString(g *core.Graph, p core.Path) (ls orb.LineString, ok bool) {
	if len(p) == 0 {
		return nil, false
	}
	ls = make(orb.LineString, 0, len(p))
	for _, id := range p {
		n, found := g.Node(id)
		if !found {
			return nil, false
		}
		ls = append(ls, point(n))
	}

	return ls, true
}

// Graph returns every node as a Point feature followed by every edge as a
// LineString feature, in id and declaration order.
func Graph(g *core.Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, n := range g.Nodes() {
		f := geojson.NewFeature(point(n))
		f.ID = int(n.ID)
		f.Properties["kind"] = KindNode
		f.Properties["id"] = int(n.ID)
		f.Properties["category"] = n.Category.String()
		if n.Label != "" {
			f.Properties["label"] = n.Label
		}
		if n.Name != "" {
			f.Properties["name"] = n.Name
		}
		if n.Emoji != "" {
			f.Properties["emoji"] = n.Emoji
		}
		fc.Append(f)
	}

	for _, e := range g.Edges() {
		u, _ := g.Node(e.U)
		v, _ := g.Node(e.V)
		ls := orb.LineString{point(u), point(v)}

		f := geojson.NewFeature(ls)
		f.Properties["kind"] = KindEdge
		f.Properties["u"] = int(e.U)
		f.Properties["v"] = int(e.V)
		f.Properties["length"] = planar.Length(ls)
		f.Properties["traversable"] = !u.IsObstacle() && !v.IsObstacle()
		fc.Append(f)
	}

	return fc
}

// Routes returns the shortest route (when found) followed by the
// alternatives in rank order. Empty paths are skipped.
func Routes(g *core.Graph, shortest dijkstra.Result, alternatives []core.Path) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if f := routeFeature(g, shortest.Path); f != nil {
		f.Properties["role"] = RoleShortest
		f.Properties["distance"] = shortest.Distance
		fc.Append(f)
	}
	for i, p := range alternatives {
		f := routeFeature(g, p)
		if f == nil {
			continue
		}
		f.Properties["role"] = RoleAlternative
		f.Properties["rank"] = i + 1
		fc.Append(f)
	}

	return fc
}

// routeFeature builds the shared part of a route feature, or nil.
func routeFeature(g *core.Graph, p core.Path) *geojson.Feature {
	ls, ok := LineString(g, p)
	if !ok {
		return nil
	}

	var f *geojson.Feature
	if len(ls) == 1 {
		f = geojson.NewFeature(ls[0])
	} else {
		f = geojson.NewFeature(ls)
	}
	f.Properties["kind"] = KindRoute
	f.Properties["stops"] = len(p)
	f.Properties["length"] = planar.Length(ls)
	f.Properties["path"] = p.Ints()

	return f
}
