// Package dijkstra_test contains unit tests for the shortest-path solver.
// They cover the fixed routes of the reference map, obstacle handling,
// tie-breaking, distance caps and the single-source Tree API.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/builder"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dfs"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dijkstra"
)

const eps = 1e-9

// line builds n collinear nodes one unit apart, joined in sequence.
func line(t *testing.T, n int, blocked ...core.NodeID) *core.Graph {
	t.Helper()
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{ID: core.NodeID(i), Pos: r2.Vec{X: float64(i)}}
	}
	for _, b := range blocked {
		nodes[b].Category = core.Obstacle
	}
	var edges []core.Edge
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{U: core.NodeID(i), V: core.NodeID(i + 1)})
	}
	g, err := core.NewGraph(nodes, edges)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Reference map routes.
// ------------------------------------------------------------------------

func TestShortestPath_ReferenceMap(t *testing.T) {
	g := builder.DeliveryMap()
	cases := []struct {
		name       string
		start, end core.NodeID
		path       core.Path
		distance   float64
	}{
		{"home to pizza", builder.Home, builder.PizzaPalace, core.Path{2, 4, 8, 13, 9}, 0.8960819521389871},
		{"pizza to home", builder.PizzaPalace, builder.Home, core.Path{9, 13, 8, 4, 2}, 0.8960819521389871},
		{"work to burger", builder.Work, builder.BurgerJoint, core.Path{3, 8, 13, 9, 10}, 0.9345574765077224},
		{"office to salad", builder.Office, builder.SaladStop, core.Path{7, 11}, 0.20615528128088306},
		{"home to salad", builder.Home, builder.SaladStop, core.Path{2, 4, 5, 6, 11}, 0.8035655673269362},
		{"park to pizza", builder.Park, builder.PizzaPalace, core.Path{5, 6, 10, 9}, 0.6418941133868262},
		{"corner to corner", 0, 17, core.Path{0, 1, 4, 5, 6, 10, 14, 17}, 1.3896363821136},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := dijkstra.ShortestPath(g, tc.start, tc.end)
			require.True(t, res.Found())
			assert.Equal(t, tc.path, res.Path)
			assert.InDelta(t, tc.distance, res.Distance, eps)
		})
	}
}

// TestShortestPath_Properties checks every ordered pair of the reference map:
// routes follow real edges, avoid obstacles, have the reported length and
// are as short in one direction as in the other.
func TestShortestPath_Properties(t *testing.T) {
	g := builder.DeliveryMap()
	for u := 0; u < g.NodeCount(); u++ {
		for v := 0; v < g.NodeCount(); v++ {
			s, e := core.NodeID(u), core.NodeID(v)
			res := dijkstra.ShortestPath(g, s, e)
			if !g.Traversable(s) || !g.Traversable(e) {
				assert.False(t, res.Found(), "%d→%d touches an obstacle", s, e)
				continue
			}
			require.True(t, res.Found(), "%d→%d", s, e)
			assert.Equal(t, s, res.Path[0])
			assert.Equal(t, e, res.Path[len(res.Path)-1])
			for i := 1; i < len(res.Path); i++ {
				assert.Contains(t, g.Neighbors(res.Path[i-1]), res.Path[i])
			}
			assert.InDelta(t, g.PathLength(res.Path), res.Distance, eps)

			back := dijkstra.ShortestPath(g, e, s)
			assert.InDelta(t, res.Distance, back.Distance, eps)
		}
	}
}

// TestShortestPath_MatchesExhaustiveSearch compares every pair against the
// shortest of all simple obstacle-free routes listed by dfs.AllPaths.
func TestShortestPath_MatchesExhaustiveSearch(t *testing.T) {
	grid4, err := builder.Grid([]string{
		"U...",
		".#..",
		"..#.",
		"...R",
	}, builder.Conn4)
	require.NoError(t, err)
	grid8, err := builder.Grid([]string{
		"U.#",
		"...",
		"#.R",
	}, builder.Conn8)
	require.NoError(t, err)

	maps := map[string]*core.Graph{
		"reference": builder.DeliveryMap(),
		"grid4":     grid4,
		"grid8":     grid8,
	}
	for name, g := range maps {
		t.Run(name, func(t *testing.T) {
			for u := 0; u < g.NodeCount(); u++ {
				for v := 0; v < g.NodeCount(); v++ {
					s, e := core.NodeID(u), core.NodeID(v)
					paths, err := dfs.AllPaths(g, s, e, dfs.WithMaxPaths(0), dfs.WithMaxDepth(g.NodeCount()))
					require.NoError(t, err)

					res := dijkstra.ShortestPath(g, s, e)
					if len(paths) == 0 {
						assert.False(t, res.Found(), "%d→%d", s, e)
						assert.True(t, math.IsInf(res.Distance, 1), "%d→%d", s, e)
						continue
					}
					best := math.Inf(1)
					for _, p := range paths {
						best = math.Min(best, g.PathLength(p))
					}
					require.True(t, res.Found(), "%d→%d", s, e)
					assert.InDelta(t, best, res.Distance, eps, "%d→%d", s, e)
				}
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Edge cases.
// ------------------------------------------------------------------------

func TestShortestPath_SameNode(t *testing.T) {
	g := builder.DeliveryMap()
	res := dijkstra.ShortestPath(g, builder.Home, builder.Home)
	assert.Equal(t, core.Path{builder.Home}, res.Path)
	assert.Zero(t, res.Distance)
}

func TestShortestPath_NoRoute(t *testing.T) {
	g := builder.DeliveryMap()
	cases := []struct {
		name       string
		g          *core.Graph
		start, end core.NodeID
	}{
		{"obstacle start", g, 18, builder.Home},
		{"obstacle end", g, builder.Home, 19},
		{"obstacle both", g, 18, 18},
		{"unknown start", g, -1, builder.Home},
		{"unknown end", g, builder.Home, 24},
		{"nil graph", nil, 0, 0},
		{"blocked bridge", line(t, 3, 1), 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := dijkstra.ShortestPath(tc.g, tc.start, tc.end)
			assert.False(t, res.Found())
			assert.Empty(t, res.Path)
			assert.True(t, math.IsInf(res.Distance, 1))
		})
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	g, err := core.NewGraph(
		[]core.Node{{ID: 0}, {ID: 1, Pos: r2.Vec{X: 1}}, {ID: 2, Pos: r2.Vec{X: 2}}},
		[]core.Edge{{U: 0, V: 1}},
	)
	require.NoError(t, err)
	assert.False(t, dijkstra.ShortestPath(g, 0, 2).Found())
	assert.True(t, dijkstra.ShortestPath(g, 1, 0).Found())
}

// TestShortestPath_TieBreak uses a unit square with two routes of equal
// length; the one through the lower id wins regardless of edge order.
func TestShortestPath_TieBreak(t *testing.T) {
	nodes := []core.Node{
		{ID: 0, Pos: r2.Vec{X: 0, Y: 0}},
		{ID: 1, Pos: r2.Vec{X: 1, Y: 0}},
		{ID: 2, Pos: r2.Vec{X: 0, Y: 1}},
		{ID: 3, Pos: r2.Vec{X: 1, Y: 1}},
	}
	forward := []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}
	reverse := []core.Edge{{U: 2, V: 3}, {U: 1, V: 3}, {U: 0, V: 2}, {U: 0, V: 1}}

	for _, edges := range [][]core.Edge{forward, reverse} {
		g := core.MustGraph(nodes, edges)
		res := dijkstra.ShortestPath(g, 0, 3)
		assert.Equal(t, core.Path{0, 1, 3}, res.Path)
		assert.InDelta(t, 2.0, res.Distance, eps)
	}
}

func TestShortestPath_SelfLoopAndDuplicates(t *testing.T) {
	g := core.MustGraph(
		[]core.Node{{ID: 0}, {ID: 1, Pos: r2.Vec{X: 1}}},
		[]core.Edge{{U: 0, V: 0}, {U: 0, V: 1}, {U: 1, V: 0}},
	)
	res := dijkstra.ShortestPath(g, 0, 1)
	assert.Equal(t, core.Path{0, 1}, res.Path)
	assert.InDelta(t, 1.0, res.Distance, eps)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestWithMaxDistance(t *testing.T) {
	g := line(t, 4)

	res := dijkstra.ShortestPath(g, 0, 1, dijkstra.WithMaxDistance(1.5))
	assert.True(t, res.Found())

	res = dijkstra.ShortestPath(g, 0, 2, dijkstra.WithMaxDistance(1.5))
	assert.False(t, res.Found())

	// The cap is inclusive.
	res = dijkstra.ShortestPath(g, 0, 2, dijkstra.WithMaxDistance(2))
	assert.Equal(t, core.Path{0, 1, 2}, res.Path)

	tree := dijkstra.From(g, 0, dijkstra.WithMaxDistance(1.5))
	assert.InDelta(t, 1.0, tree.Distance(1), eps)
	assert.True(t, math.IsInf(tree.Distance(2), 1))
	assert.True(t, math.IsInf(tree.Distance(3), 1))
}

func TestWithMaxDistance_Panics(t *testing.T) {
	g := line(t, 2)
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.ShortestPath(g, 0, 1, dijkstra.WithMaxDistance(-1))
	})
	assert.Panics(t, func() {
		dijkstra.From(g, 0, dijkstra.WithMaxDistance(math.NaN()))
	})
	assert.NotPanics(t, func() {
		dijkstra.ShortestPath(g, 0, 1, dijkstra.WithMaxDistance(0))
	})
}

// ------------------------------------------------------------------------
// 4. Single-source trees.
// ------------------------------------------------------------------------

func TestFrom_ReferenceMap(t *testing.T) {
	g := builder.DeliveryMap()
	tree := dijkstra.From(g, builder.PizzaPalace)

	assert.Zero(t, tree.Distance(builder.PizzaPalace))
	assert.InDelta(t, 0.8960819521389871, tree.Distance(builder.Home), eps)

	res := tree.PathTo(builder.Home)
	assert.Equal(t, core.Path{9, 13, 8, 4, 2}, res.Path)
	assert.Equal(t, core.Path{builder.PizzaPalace}, tree.PathTo(builder.PizzaPalace).Path)

	// Obstacles and unknown ids are unreachable.
	assert.False(t, tree.Reachable(18))
	assert.False(t, tree.PathTo(18).Found())
	assert.True(t, math.IsInf(tree.Distance(99), 1))
	assert.True(t, math.IsInf(tree.Distance(-1), 1))

	// Every traversable node agrees with the single-pair solver.
	for v := 0; v < g.NodeCount(); v++ {
		id := core.NodeID(v)
		want := dijkstra.ShortestPath(g, builder.PizzaPalace, id)
		got := tree.PathTo(id)
		assert.Equal(t, want.Found(), got.Found(), "node %d", id)
		if want.Found() {
			assert.InDelta(t, want.Distance, got.Distance, eps, "node %d", id)
		}
	}
}

func TestFrom_ObstacleSource(t *testing.T) {
	g := builder.DeliveryMap()
	tree := dijkstra.From(g, 21)
	for v := 0; v < g.NodeCount(); v++ {
		assert.False(t, tree.Reachable(core.NodeID(v)))
	}
	assert.False(t, tree.PathTo(21).Found())
}

func TestFrom_NilGraph(t *testing.T) {
	tree := dijkstra.From(nil, 0)
	assert.False(t, tree.Reachable(0))
}
