// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Category, Path and the sentinel errors of graph construction.
// Policy:
//   - Node ids are dense array indices; every traversal indexes per-node tables by id.
//   - Construction errors are configuration errors; queries never return them.

package core

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for graph construction.
var (
	// ErrNodeIDMismatch indicates a node whose ID differs from its position in the node slice.
	ErrNodeIDMismatch = errors.New("core: node id does not match its index")

	// ErrEdgeOutOfRange indicates an edge endpoint that does not name a node.
	ErrEdgeOutOfRange = errors.New("core: edge endpoint out of range")

	// ErrUnknownCategory indicates a node category outside the known set.
	ErrUnknownCategory = errors.New("core: unknown node category")

	// ErrBadPosition indicates a node coordinate that is NaN or infinite.
	ErrBadPosition = errors.New("core: node position is not finite")
)

// NodeID identifies a node by its index in the graph's node collection.
// A NodeID is only meaningful for the graph that issued it.
type NodeID int

// Category classifies what a node represents on the map.
type Category uint8

const (
	// Ordinary is a plain street intersection.
	Ordinary Category = iota
	// Origin is a selectable pickup point (a customer location).
	Origin
	// Destination is a selectable drop point (a restaurant).
	Destination
	// Obstacle occupies a map position that must never be traversed.
	Obstacle
)

var categoryNames = [...]string{
	Ordinary:    "ordinary",
	Origin:      "origin",
	Destination: "destination",
	Obstacle:    "obstacle",
}

// categoryAliases maps accepted spellings, including the tags used by the
// map front-end, onto categories.
var categoryAliases = map[string]Category{
	"ordinary":    Ordinary,
	"street":      Ordinary,
	"origin":      Origin,
	"user":        Origin,
	"destination": Destination,
	"restaurant":  Destination,
	"obstacle":    Obstacle,
	"black":       Obstacle,
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool { return int(c) < len(categoryNames) }

// String returns the canonical lower-case name of c.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", uint8(c))
	}

	return categoryNames[c]
}

// ParseCategory resolves a canonical name or front-end tag, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}

	return c, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}

	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// Node is an immutable graph vertex.
//
// Label, Name and Emoji are display data carried for the presentation
// layer; no routine in this module inspects them.
type Node struct {
	ID       NodeID
	Pos      r2.Vec // position in the normalized unit square
	Category Category

	Label string
	Name  string
	Emoji string
}

// IsObstacle reports whether n must be excluded from every traversal.
func (n Node) IsObstacle() bool { return n.Category == Obstacle }

// Edge is an unordered, unweighted pair of node ids.
// Its weight is derived on demand from the endpoint positions.
type Edge struct {
	U, V NodeID
}

// Path is an ordered sequence of node ids, start to end inclusive.
type Path []NodeID

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Ints converts p to plain ints, the representation used on the wire.
func (p Path) Ints() []int {
	out := make([]int, len(p))
	for i, id := range p {
		out[i] = int(id)
	}

	return out
}
