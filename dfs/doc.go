// Package dfs enumerates alternative delivery routes on a core.Graph.
//
// What:
//
//   - AllPaths: depth-first enumeration of the simple routes between two
//     nodes. A node is never repeated within a route, but may appear in
//     many different routes. Obstacles are never entered.
//   - The result is sorted by node count (stable, so ties keep discovery
//     order along neighbor order) and truncated to the MaxPaths shortest.
//
// Why:
//
//   - Riders and customers want a handful of plausible detours, not only
//     the single shortest route. Counting stops rather than distance makes
//     the alternatives easy to read on a map.
//
// Resource bounds:
//
//   - The number of simple paths grows exponentially with graph size. The
//     hop cap (MaxDepth, default 20) bounds every branch; a branch that
//     would need more hops is abandoned, so routes have at most 21 nodes.
//   - WithContext lets callers bound wall time as well.
//
// Options:
//
//   - WithContext(ctx)    cancellation; the call returns ctx.Err().
//   - WithMaxDepth(d)     hop cap, d >= 0.
//   - WithMaxPaths(n)     result cap, n >= 0 (0 keeps every route).
//
// Errors:
//
//   - ErrOptionViolation  an option received a negative value.
//   - context.Canceled / context.DeadlineExceeded from the context.
//
// "No route" is not an error: AllPaths returns an empty slice.
//
// Concurrency:
//
//   - Each call owns its walker; concurrent calls on one Graph are safe.
package dfs
