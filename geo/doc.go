// Package geo renders the delivery map and computed routes as GeoJSON
// (RFC 7946) using github.com/paulmach/orb.
//
// Map coordinates are planar and unitless; they are written as-is into the
// [x, y] positions of the features, so any GeoJSON viewer with a planar
// projection (or the front-end's own canvas) can draw them.
//
// Feature kinds, told apart by the "kind" property:
//
//   - node:  a Point per node, with id, category and any label/name/emoji.
//   - edge:  a LineString per road segment, with u, v, length and
//     traversable=false when either endpoint is an obstacle.
//   - route: a LineString per route, with role "shortest" (distance) or
//     "alternative" (rank), plus stops, length and the node path.
//     A route of a single node is written as a Point.
package geo
