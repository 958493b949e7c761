// Package spatial snaps free map coordinates to delivery-map nodes.
//
// An Index stores every traversable node of a core.Graph in an R-tree
// (github.com/dhconnelly/rtreego). Two queries are offered:
//
//   - Nearest(x, y): the traversable node closest to a point, so that a tap
//     on the map or a GPS fix can become a route endpoint.
//   - Within(minX, minY, maxX, maxY): the traversable nodes inside an
//     axis-aligned rectangle, ascending by id.
//
// Obstacles are never indexed, so neither query can return one.
//
// Candidate sets from the tree are refined with exact Euclidean distances
// (core.Distance semantics); equal distances resolve to the lower id.
//
// An Index is immutable after NewIndex and safe for concurrent queries.
package spatial
