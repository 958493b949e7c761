// Package dijkstra_test provides runnable examples for the shortest-path solver.
package dijkstra_test

import (
	"fmt"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/builder"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dijkstra"
)

// ExampleShortestPath routes from P1: Home to Pizza Palace on the reference
// map. The direct line would cross the roadblock at node 18.
func ExampleShortestPath() {
	g := builder.DeliveryMap()

	res := dijkstra.ShortestPath(g, builder.Home, builder.PizzaPalace)
	fmt.Println("path:", res.Path)
	fmt.Printf("distance: %.3f\n", res.Distance)

	// Output:
	// path: [2 4 8 13 9]
	// distance: 0.896
}

// ExampleFrom answers several queries from one restaurant with a single search.
func ExampleFrom() {
	g := builder.DeliveryMap()
	tree := dijkstra.From(g, builder.SaladStop)

	fmt.Println("to park:", tree.PathTo(builder.Park).Path)
	fmt.Printf("office: %.3f\n", tree.Distance(builder.Office))
	fmt.Printf("park: %.3f\n", tree.Distance(builder.Park))
	fmt.Println("roadblock reachable:", tree.Reachable(21))

	// Output:
	// to park: [11 6 5]
	// office: 0.206
	// park: 0.392
	// roadblock reachable: false
}
