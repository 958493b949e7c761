package dijkstra_test

import (
	"strings"
	"testing"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/builder"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dijkstra"
)

// grid builds an n×n street lattice with a diagonal wall of roadblocks.
func grid(n int) *core.Graph {
	layout := make([]string, n)
	for y := range layout {
		row := []byte(strings.Repeat(".", n))
		if y > 0 && y < n-1 {
			row[y] = builder.CellRoadblock
		}
		layout[y] = string(row)
	}
	g, err := builder.Grid(layout, builder.Conn4)
	if err != nil {
		panic(err)
	}

	return g
}

func BenchmarkShortestPath_ReferenceMap(b *testing.B) {
	g := builder.DeliveryMap()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.ShortestPath(g, 0, 17)
	}
}

func BenchmarkFrom_Grid(b *testing.B) {
	const n = 100
	g := grid(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.From(g, 0)
	}
}
