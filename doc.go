// Package delivery is a routing engine for a small food-delivery city:
// a fixed planar street map, customers, restaurants and roadblocks, and the
// algorithms that move a courier between them.
//
// 🚀 What is in the box?
//
//	• core/:     immutable Graph, Node, Edge and Path types, Euclidean
//	             edge lengths and the obstacle-filtering neighbor resolver
//	• builder/:  the built-in reference city, JSON map files and text grids
//	• dijkstra/: shortest route by distance, single pair or whole tree
//	• dfs/:      bounded enumeration of simple alternative routes
//	• bfs/:      fewest-stops routes and hop counts
//	• spatial/:  R-tree lookup of the intersection nearest to a click
//	• table/:    restaurant × customer distance matrix
//	• geo/:      GeoJSON export of the map and of computed routes
//	• routing/:  Router facade tying the above into delivery plans
//	• api/:      HTTP/JSON surface (gin) for the map front-end
//
// Two binaries live under cmd/: routeserver serves the api package, and
// routectl answers the same questions from a terminal.
//
// Quick example:
//
//	g := builder.DeliveryMap()
//	res := dijkstra.ShortestPath(g, builder.Home, builder.PizzaPalace)
//	fmt.Println(res.Path, res.Distance) // [2 4 8 13 9] 0.896...
//
//	alts, _ := dfs.AllPaths(g, builder.Home, builder.PizzaPalace)
//	for i, p := range alts {
//		fmt.Println(i+1, p, len(p))
//	}
//
// Every traversal refuses to step on an Obstacle node, and every result is
// deterministic: neighbors are visited in edge declaration order and ties
// are broken by the lowest node id.
//
//	go get github.com/ArchieP27/Food-Delivery-Routing-algorithm
package delivery
