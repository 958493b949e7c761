// SPDX-License-Identifier: MIT
//
// File: spec.go
// Role: JSON interchange for delivery maps.

package builder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// ErrBadSpec indicates that a map description could not be decoded or
// did not describe a valid graph.
var ErrBadSpec = errors.New("builder: invalid map description")

// nodeSpec is the wire form of a single node.
type nodeSpec struct {
	ID       core.NodeID   `json:"id"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Category core.Category `json:"type"`
	Label    string        `json:"label,omitempty"`
	Name     string        `json:"name,omitempty"`
	Emoji    string        `json:"emoji,omitempty"`
}

// mapSpec is the wire form of a whole map. Edges are [u, v] pairs.
type mapSpec struct {
	Nodes []nodeSpec       `json:"nodes"`
	Edges [][2]core.NodeID `json:"edges"`
}

// Load decodes a JSON map description from r and builds the graph.
// Unknown fields are rejected so that typos do not silently drop data.
//
// Complexity: O(V + E).
func Load(r io.Reader) (*core.Graph, error) {
	var spec mapSpec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrBadSpec, err)
	}

	nodes := make([]core.Node, len(spec.Nodes))
	for i, n := range spec.Nodes {
		nodes[i] = core.Node{
			ID:       n.ID,
			Pos:      r2.Vec{X: n.X, Y: n.Y},
			Category: n.Category,
			Label:    n.Label,
			Name:     n.Name,
			Emoji:    n.Emoji,
		}
	}
	edges := make([]core.Edge, len(spec.Edges))
	for i, e := range spec.Edges {
		edges[i] = core.Edge{U: e[0], V: e[1]}
	}

	g, err := core.NewGraph(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSpec, err)
	}

	return g, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("builder: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Save writes g to w in the format accepted by Load, with canonical
// category names and indentation.
func Save(w io.Writer, g *core.Graph) error {
	spec := mapSpec{
		Nodes: make([]nodeSpec, 0, g.NodeCount()),
		Edges: make([][2]core.NodeID, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		spec.Nodes = append(spec.Nodes, nodeSpec{
			ID:       n.ID,
			X:        n.Pos.X,
			Y:        n.Pos.Y,
			Category: n.Category,
			Label:    n.Label,
			Name:     n.Name,
			Emoji:    n.Emoji,
		})
	}
	for _, e := range g.Edges() {
		spec.Edges = append(spec.Edges, [2]core.NodeID{e.U, e.V})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("builder: encode: %w", err)
	}

	return nil
}
