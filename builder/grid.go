// SPDX-License-Identifier: MIT
//
// File: grid.go
// Role: Synthetic street grids drawn as text, for tests, benchmarks and
// quick experiments with roadblock layouts.

package builder

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
)

// Sentinel errors for Grid.
var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("builder: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("builder: all grid rows must have the same length")
	// ErrUnknownCell indicates a character outside the grid alphabet.
	ErrUnknownCell = errors.New("builder: unknown grid cell")
)

// Connectivity selects which neighboring cells are joined by a road.
type Connectivity int

const (
	// Conn4 joins N, E, S, W neighbors.
	Conn4 Connectivity = iota
	// Conn8 also joins the four diagonals.
	Conn8
)

// Grid cell alphabet.
const (
	CellStreet     = '.'
	CellRoadblock  = '#'
	CellCustomer   = 'U'
	CellRestaurant = 'R'
)

// forward offsets (dx, dy) so that each undirected road is emitted once.
var (
	offsets4 = [][2]int{{1, 0}, {0, 1}}
	offsets8 = [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
)

// Grid builds a map from a text layout, one string per row, top row first.
// Cell (x, y) becomes node y*width + x placed at (x, y) / max(width, height),
// so the whole grid fits the unit square like the reference map.
//
// Roadblocks keep their node and their roads; they are filtered out at query
// time like every obstacle. Customers are labelled "U1", "U2", ... and
// restaurants named "R1", "R2", ... in row-major order.
//
// Complexity: O(W·H) time and space.
func Grid(layout []string, conn Connectivity) (*core.Graph, error) {
	height := len(layout)
	if height == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(layout[0])
	for y, row := range layout {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), width)
		}
	}
	scale := 1 / float64(max(width, height))

	nodes := make([]core.Node, 0, width*height)
	customers, restaurants := 0, 0
	for y, row := range layout {
		for x := 0; x < width; x++ {
			n := core.Node{
				ID:  core.NodeID(y*width + x),
				Pos: r2.Vec{X: float64(x) * scale, Y: float64(y) * scale},
			}
			switch row[x] {
			case CellStreet:
			case CellRoadblock:
				n.Category = core.Obstacle
			case CellCustomer:
				customers++
				n.Category, n.Label = core.Origin, fmt.Sprintf("U%d", customers)
			case CellRestaurant:
				restaurants++
				n.Category, n.Name = core.Destination, fmt.Sprintf("R%d", restaurants)
			default:
				return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrUnknownCell, row[x], x, y)
			}
			nodes = append(nodes, n)
		}
	}

	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	var edges []core.Edge
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, d := range offsets {
				vx, vy := x+d[0], y+d[1]
				if vx < 0 || vx >= width || vy >= height {
					continue
				}
				edges = append(edges, core.Edge{U: core.NodeID(y*width + x), V: core.NodeID(vy*width + vx)})
			}
		}
	}

	return core.NewGraph(nodes, edges)
}
