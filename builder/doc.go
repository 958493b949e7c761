// Package builder assembles core.Graph values for the delivery router.
//
// It offers two sources of maps:
//
//   - DeliveryMap: the built-in 24-node reference city (houses, restaurants,
//     streets and roadblocks) together with named ids for its landmarks.
//   - Load / LoadFile / Save: a small JSON interchange format so that other
//     maps can be served without recompiling.
//
// JSON format:
//
//	{
//	  "nodes": [{"id":0,"x":0.05,"y":0.05,"type":"street"}, ...],
//	  "edges": [[0,1],[0,3], ...]
//	}
//
// "type" accepts the canonical category names (ordinary, origin,
// destination, obstacle) and the front-end tags (street, user, restaurant,
// black). Optional "label", "name" and "emoji" strings are carried through.
// Edge order is preserved, since it fixes neighbor order and with it the
// order of enumerated routes.
//
// Errors:
//
//   - ErrBadSpec wraps every decode and validation failure; core sentinels
//     (core.ErrNodeIDMismatch, core.ErrEdgeOutOfRange, ...) stay reachable
//     through errors.Is.
//
// All constructors are deterministic; none of them panic on bad input.
package builder
