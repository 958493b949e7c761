// Package api exposes a routing.Router over HTTP with gin.
//
// Endpoints (all GET, all JSON unless noted):
//
//	/health                     readiness and map size
//	/api/graph                  the map in the builder JSON format
//	/api/graph.geojson          the map as a GeoJSON FeatureCollection
//	/api/route?from=&to=        shortest route and distance
//	/api/hops?from=&to=         fewest-stops route
//	/api/paths?from=&to=        alternative routes (maxPaths, maxDepth)
//	/api/plan?user=&restaurant= delivery plan (format=geojson for GeoJSON)
//	/api/nearest?x=&y=          closest traversable node to a point
//	/api/table                  restaurant × customer distances
//
// Missing or malformed parameters answer 400 with {"error": "..."}.
// An unreachable destination is not an error: the body carries
// "found": false and no distance.
package api
