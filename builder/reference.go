// SPDX-License-Identifier: MIT
//
// File: reference.go
// Role: The built-in reference city used by the server, the CLI and tests.

package builder

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// Landmarks of the reference map.
const (
	Home   core.NodeID = 2 // P1: Home
	Work   core.NodeID = 3 // P2: Work
	Park   core.NodeID = 5 // P3: Park
	Office core.NodeID = 7 // P4: Office

	PizzaPalace core.NodeID = 9
	BurgerJoint core.NodeID = 10
	SaladStop   core.NodeID = 11
)

// referenceNodes lists the 24 nodes of the reference map; ids equal indexes.
var referenceNodes = []core.Node{
	{ID: 0, Pos: r2.Vec{X: 0.05, Y: 0.05}},
	{ID: 1, Pos: r2.Vec{X: 0.2, Y: 0.1}},
	{ID: 2, Pos: r2.Vec{X: 0.45, Y: 0.08}, Category: core.Origin, Label: "P1: Home"},
	{ID: 3, Pos: r2.Vec{X: 0.1, Y: 0.25}, Category: core.Origin, Label: "P2: Work"},
	{ID: 4, Pos: r2.Vec{X: 0.35, Y: 0.2}},
	{ID: 5, Pos: r2.Vec{X: 0.6, Y: 0.25}, Category: core.Origin, Label: "P3: Park"},
	{ID: 6, Pos: r2.Vec{X: 0.75, Y: 0.4}},
	{ID: 7, Pos: r2.Vec{X: 0.85, Y: 0.3}, Category: core.Origin, Label: "P4: Office"},
	{ID: 8, Pos: r2.Vec{X: 0.25, Y: 0.4}},
	{ID: 9, Pos: r2.Vec{X: 0.45, Y: 0.55}, Category: core.Destination, Name: "Pizza Palace", Emoji: "🍕"},
	{ID: 10, Pos: r2.Vec{X: 0.65, Y: 0.6}, Category: core.Destination, Name: "Burger Joint", Emoji: "🍔"},
	{ID: 11, Pos: r2.Vec{X: 0.9, Y: 0.5}, Category: core.Destination, Name: "Salad Stop", Emoji: "🥗"},
	{ID: 12, Pos: r2.Vec{X: 0.5, Y: 0.8}},
	{ID: 13, Pos: r2.Vec{X: 0.3, Y: 0.7}},
	{ID: 14, Pos: r2.Vec{X: 0.75, Y: 0.75}},
	{ID: 15, Pos: r2.Vec{X: 0.15, Y: 0.6}},
	{ID: 16, Pos: r2.Vec{X: 0.4, Y: 0.9}},
	{ID: 17, Pos: r2.Vec{X: 0.85, Y: 0.9}},
	{ID: 18, Pos: r2.Vec{X: 0.4, Y: 0.4}, Category: core.Obstacle},
	{ID: 19, Pos: r2.Vec{X: 0.55, Y: 0.15}, Category: core.Obstacle},
	{ID: 20, Pos: r2.Vec{X: 0.08, Y: 0.45}, Category: core.Obstacle},
	{ID: 21, Pos: r2.Vec{X: 0.7, Y: 0.5}, Category: core.Obstacle},
	{ID: 22, Pos: r2.Vec{X: 0.6, Y: 0.75}, Category: core.Obstacle},
	{ID: 23, Pos: r2.Vec{X: 0.2, Y: 0.85}, Category: core.Obstacle},
}

// referenceEdges lists the 39 road segments. Order matters: it fixes the
// neighbor order seen by the traversals.
var referenceEdges = [][2]core.NodeID{
	{0, 1}, {0, 3}, {0, 20}, {1, 2}, {1, 4}, {2, 4}, {2, 19}, {3, 8}, {3, 4}, {3, 20},
	{4, 5}, {4, 8}, {4, 18}, {5, 6}, {5, 7}, {5, 19}, {6, 7}, {6, 10}, {6, 21}, {8, 15},
	{8, 13}, {8, 18}, {9, 10}, {9, 13}, {9, 12}, {10, 14}, {10, 21}, {10, 22}, {11, 6}, {11, 7},
	{11, 14}, {12, 16}, {12, 14}, {12, 22}, {13, 15}, {13, 16}, {14, 17}, {15, 23}, {16, 17},
}

// DeliveryMap returns a fresh copy of the reference city: 24 nodes, 39 edges,
// four customer locations, three restaurants and six roadblocks.
//
// The data is static and known to be valid, so construction cannot fail.
func DeliveryMap() *core.Graph {
	edges := make([]core.Edge, len(referenceEdges))
	for i, e := range referenceEdges {
		edges[i] = core.Edge{U: e[0], V: e[1]}
	}

	return core.MustGraph(referenceNodes, edges)
}
