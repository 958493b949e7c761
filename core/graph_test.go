package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// square builds a unit square A(0)–B(1)–C(2)–D(3)–A with an obstacle X(4)
// in the middle joined to every corner.
//
//	0───1
//	│ 4 │
//	3───2
func square(t *testing.T) *core.Graph {
	t.Helper()
	nodes := []core.Node{
		{ID: 0, Pos: r2.Vec{X: 0, Y: 0}, Category: core.Origin, Label: "A"},
		{ID: 1, Pos: r2.Vec{X: 1, Y: 0}},
		{ID: 2, Pos: r2.Vec{X: 1, Y: 1}, Category: core.Destination, Name: "C"},
		{ID: 3, Pos: r2.Vec{X: 0, Y: 1}},
		{ID: 4, Pos: r2.Vec{X: 0.5, Y: 0.5}, Category: core.Obstacle},
	}
	edges := []core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
		{U: 0, V: 4}, {U: 1, V: 4}, {U: 2, V: 4}, {U: 3, V: 4},
	}
	g, err := core.NewGraph(nodes, edges)
	require.NoError(t, err)

	return g
}

func TestNewGraph_Validation(t *testing.T) {
	ok := []core.Node{{ID: 0}, {ID: 1}}

	tests := []struct {
		name  string
		nodes []core.Node
		edges []core.Edge
		want  error
	}{
		{"id mismatch", []core.Node{{ID: 0}, {ID: 2}}, nil, core.ErrNodeIDMismatch},
		{"unknown category", []core.Node{{ID: 0, Category: core.Category(9)}}, nil, core.ErrUnknownCategory},
		{"NaN position", []core.Node{{ID: 0, Pos: r2.Vec{X: math.NaN()}}}, nil, core.ErrBadPosition},
		{"infinite position", []core.Node{{ID: 0, Pos: r2.Vec{Y: math.Inf(-1)}}}, nil, core.ErrBadPosition},
		{"edge past end", ok, []core.Edge{{U: 0, V: 2}}, core.ErrEdgeOutOfRange},
		{"negative endpoint", ok, []core.Edge{{U: -1, V: 1}}, core.ErrEdgeOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.nodes, tc.edges)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewGraph_AcceptsLoopsAndDuplicates(t *testing.T) {
	g, err := core.NewGraph(
		[]core.Node{{ID: 0}, {ID: 1}},
		[]core.Edge{{U: 0, V: 0}, {U: 0, V: 1}, {U: 1, V: 0}},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []core.NodeID{0, 1, 1}, g.Neighbors(0))
	assert.Equal(t, []core.NodeID{0, 0}, g.Neighbors(1))
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Empty(t, g.Neighbors(0))
}

func TestNewGraph_CopiesInput(t *testing.T) {
	nodes := []core.Node{{ID: 0, Label: "before"}, {ID: 1}}
	edges := []core.Edge{{U: 0, V: 1}}
	g, err := core.NewGraph(nodes, edges)
	require.NoError(t, err)

	nodes[0].Label = "after"
	edges[0] = core.Edge{U: 1, V: 1}

	n, ok := g.Node(0)
	require.True(t, ok)
	assert.Equal(t, "before", n.Label)
	assert.Equal(t, []core.Edge{{U: 0, V: 1}}, g.Edges())

	// Accessors hand out copies as well.
	g.Nodes()[0].Label = "mutated"
	n, _ = g.Node(0)
	assert.Equal(t, "before", n.Label)
}

func TestMustGraph_Panics(t *testing.T) {
	assert.Panics(t, func() {
		core.MustGraph([]core.Node{{ID: 0}}, []core.Edge{{U: 0, V: 1}})
	})
}

func TestGraph_Accessors(t *testing.T) {
	g := square(t)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.True(t, g.Has(4))
	assert.False(t, g.Has(5))
	assert.False(t, g.Has(-1))
	assert.True(t, g.Traversable(0))
	assert.False(t, g.Traversable(4), "obstacle is not traversable")
	assert.False(t, g.Traversable(99))

	_, ok := g.Node(7)
	assert.False(t, ok)

	assert.Equal(t, []core.NodeID{0}, g.NodesByCategory(core.Origin))
	assert.Equal(t, []core.NodeID{2}, g.NodesByCategory(core.Destination))
	assert.Equal(t, []core.NodeID{1, 3}, g.NodesByCategory(core.Ordinary))
	assert.Equal(t, []core.NodeID{4}, g.NodesByCategory(core.Obstacle))
}

func TestGraph_NilReceiver(t *testing.T) {
	var g *core.Graph
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Has(0))
	assert.Nil(t, g.Neighbors(0))
	assert.Nil(t, g.Nodes())
	assert.True(t, math.IsInf(g.Distance(0, 1), 1))
}

func TestCategory_Text(t *testing.T) {
	for alias, want := range map[string]core.Category{
		"street": core.Ordinary, "USER": core.Origin, " restaurant ": core.Destination,
		"black": core.Obstacle, "obstacle": core.Obstacle, "destination": core.Destination,
	} {
		got, err := core.ParseCategory(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, got, alias)
	}

	_, err := core.ParseCategory("river")
	assert.ErrorIs(t, err, core.ErrUnknownCategory)

	text, err := core.Origin.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "origin", string(text))

	var c core.Category
	require.NoError(t, c.UnmarshalText([]byte("black")))
	assert.Equal(t, core.Obstacle, c)

	_, err = core.Category(42).MarshalText()
	assert.ErrorIs(t, err, core.ErrUnknownCategory)
	assert.Equal(t, "category(42)", core.Category(42).String())
}

func TestPath_Helpers(t *testing.T) {
	p := core.Path{2, 4, 8}
	assert.Equal(t, []int{2, 4, 8}, p.Ints())

	c := p.Clone()
	c[0] = 7
	assert.Equal(t, core.NodeID(2), p[0])
	assert.Nil(t, core.Path(nil).Clone())
}
