// Package routing is the single entry point the transports use: a Router
// bundles one immutable delivery map with its spatial index and answers
// every query the front-end issues.
//
//   - ShortestPath / FewestStops / Alternatives for a pair of nodes.
//   - Plan for the "place order" action: the shortest route from the
//     customer to the restaurant, its alternatives, and the courier route
//     from the restaurant back to the customer.
//   - Nearest to snap a map click to a node.
//   - DistanceTable for the restaurant × customer matrix, computed once.
//
// A Router never mutates its graph and is safe for concurrent use.
package routing
