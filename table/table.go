// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dijkstra"
)

var (
	// ErrEmptyAxis is returned when a table would have no rows or no columns.
	ErrEmptyAxis = errors.New("table: origins and destinations must be non-empty")

	// ErrUnknownNode is returned when an origin or destination is not in the graph.
	ErrUnknownNode = errors.New("table: unknown node")
)

// Table is an immutable matrix of shortest distances: row i is origin
// Rows()[i], column j is destination Cols()[j].
type Table struct {
	g    *core.Graph
	rows []core.NodeID
	cols []core.NodeID
	dist *mat.Dense
}

// Build runs one shortest-path search per origin, concurrently, and reads
// the distance to every destination. Obstacles may be listed; their row or
// column is all +Inf.
func Build(g *core.Graph, origins, dests []core.NodeID) (*Table, error) {
	if len(origins) == 0 || len(dests) == 0 {
		return nil, ErrEmptyAxis
	}
	for _, ids := range [][]core.NodeID{origins, dests} {
		for _, id := range ids {
			if !g.Has(id) {
				return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
			}
		}
	}

	r, c := len(origins), len(dests)
	data := make([]float64, r*c)

	// Each goroutine owns one row of data.
	var wg sync.WaitGroup
	wg.Add(r)
	for i, o := range origins {
		go func(i int, o core.NodeID) {
			defer wg.Done()
			tree := dijkstra.From(g, o)
			row := data[i*c : (i+1)*c]
			for j, d := range dests {
				row[j] = tree.Distance(d)
			}
		}(i, o)
	}
	wg.Wait()

	return &Table{
		g:    g,
		rows: append([]core.NodeID(nil), origins...),
		cols: append([]core.NodeID(nil), dests...),
		dist: mat.NewDense(r, c, data),
	}, nil
}

// Default builds the dispatcher layout: restaurants as rows, customer
// locations as columns.
func Default(g *core.Graph) (*Table, error) {
	return Build(g, g.NodesByCategory(core.Destination), g.NodesByCategory(core.Origin))
}

// Rows returns a copy of the row node ids.
func (t *Table) Rows() []core.NodeID { return append([]core.NodeID(nil), t.rows...) }

// Cols returns a copy of the column node ids.
func (t *Table) Cols() []core.NodeID { return append([]core.NodeID(nil), t.cols...) }

// Dims returns the number of rows and columns.
func (t *Table) Dims() (r, c int) { return t.dist.Dims() }

// At returns the distance in row i, column j. It panics on out-of-range
// indices, like mat.Dense.
func (t *Table) At(i, j int) float64 { return t.dist.At(i, j) }

// Matrix returns a copy of the underlying distances.
func (t *Table) Matrix() *mat.Dense { return mat.DenseCopyOf(t.dist) }

// Lookup returns the distance between two node ids, if both are on the table.
func (t *Table) Lookup(origin, dest core.NodeID) (float64, bool) {
	i, j := index(t.rows, origin), index(t.cols, dest)
	if i < 0 || j < 0 {
		return 0, false
	}

	return t.dist.At(i, j), true
}

// Nearest returns the column of the closest reachable destination for row i,
// the lower column on ties. ok is false if the row reaches nothing.
func (t *Table) Nearest(i int) (j int, ok bool) {
	row := mat.Row(nil, i, t.dist)
	best := math.Inf(1)
	j = -1
	for col, d := range row {
		if d < best {
			best, j = d, col
		}
	}

	return j, j >= 0
}

// Format writes the table with tab-aligned columns, three decimals per
// cell and "inf" for unreachable pairs.
func (t *Table) Format(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "\t")
	for _, id := range t.cols {
		fmt.Fprintf(tw, "%s\t", t.label(id))
	}
	fmt.Fprintln(tw)

	r, c := t.Dims()
	for i := 0; i < r; i++ {
		fmt.Fprintf(tw, "%s\t", t.label(t.rows[i]))
		for j := 0; j < c; j++ {
			fmt.Fprintf(tw, "%s\t", formatDistance(t.dist.At(i, j)))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// label names a node for display: its name, its label, or its id.
func (t *Table) label(id core.NodeID) string {
	n, _ := t.g.Node(id)
	switch {
	case n.Name != "":
		return n.Name
	case n.Label != "":
		return n.Label
	default:
		return fmt.Sprintf("#%d", id)
	}
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return fmt.Sprintf("%.3f", d)
}

func index(ids []core.NodeID, id core.NodeID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}

	return -1
}
