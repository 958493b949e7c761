// SPDX-License-Identifier: MIT

package api

import (
	"math"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dijkstra"
)

// NodeJSON describes one node.
type NodeJSON struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Type  string  `json:"type"`
	Label string  `json:"label,omitempty"`
	Name  string  `json:"name,omitempty"`
	Emoji string  `json:"emoji,omitempty"`
}

// RouteJSON is a single route. Distance is absent when Found is false,
// since JSON cannot carry +Inf.
type RouteJSON struct {
	From        int      `json:"from"`
	To          int      `json:"to"`
	Found       bool     `json:"found"`
	Path        []int    `json:"path"`
	Stops       int      `json:"stops"`
	Distance    *float64 `json:"distance,omitempty"`
	TimeTakenMs float64  `json:"timeTakenMs"`
}

// AlternativeJSON is one ranked alternative route.
type AlternativeJSON struct {
	Rank   int     `json:"rank"`
	Stops  int     `json:"stops"`
	Length float64 `json:"length"`
	Path   []int   `json:"path"`
}

// PathsJSON is the answer of /api/paths.
type PathsJSON struct {
	From        int               `json:"from"`
	To          int               `json:"to"`
	Count       int               `json:"count"`
	Paths       []AlternativeJSON `json:"paths"`
	TimeTakenMs float64           `json:"timeTakenMs"`
}

// PlanJSON is the answer of /api/plan.
type PlanJSON struct {
	User         NodeJSON          `json:"user"`
	Restaurant   NodeJSON          `json:"restaurant"`
	Shortest     RouteJSON         `json:"shortest"`
	Alternatives []AlternativeJSON `json:"alternatives"`
	Courier      RouteJSON         `json:"courier"`
}

// NearestJSON is the answer of /api/nearest.
type NearestJSON struct {
	Node     NodeJSON `json:"node"`
	Distance float64  `json:"distance"`
}

// WithinJSON lists the traversable nodes inside a rectangle.
type WithinJSON struct {
	Count int        `json:"count"`
	Nodes []NodeJSON `json:"nodes"`
}

// TableJSON is the answer of /api/table. Unreachable cells are null.
type TableJSON struct {
	Rows      []NodeJSON   `json:"rows"`
	Cols      []NodeJSON   `json:"cols"`
	Distances [][]*float64 `json:"distances"`
}

// HealthJSON is the answer of /health.
type HealthJSON struct {
	Status string `json:"status"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

func nodeJSON(n core.Node) NodeJSON {
	return NodeJSON{
		ID:    int(n.ID),
		X:     n.Pos.X,
		Y:     n.Pos.Y,
		Type:  n.Category.String(),
		Label: n.Label,
		Name:  n.Name,
		Emoji: n.Emoji,
	}
}

func routeJSON(from, to core.NodeID, res dijkstra.Result) RouteJSON {
	out := RouteJSON{
		From:  int(from),
		To:    int(to),
		Found: res.Found(),
		Path:  res.Path.Ints(),
		Stops: len(res.Path),
	}
	out.Distance = finite(res.Distance)

	return out
}

func alternativesJSON(g *core.Graph, paths []core.Path) []AlternativeJSON {
	out := make([]AlternativeJSON, 0, len(paths))
	for i, p := range paths {
		out = append(out, AlternativeJSON{
			Rank:   i + 1,
			Stops:  len(p),
			Length: g.PathLength(p),
			Path:   p.Ints(),
		})
	}

	return out
}

// finite returns a pointer to d, or nil for infinities and NaN.
func finite(d float64) *float64 {
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return nil
	}

	return &d
}
