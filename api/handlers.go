// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/builder"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dfs"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/geo"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/routing"
)

// server holds the dependencies shared by the handlers.
type server struct {
	rt   *routing.Router
	opts Options
}

// errBadParam marks client mistakes in query parameters.
var errBadParam = errors.New("bad parameter")

func (s *server) health(c *gin.Context) {
	g := s.rt.Graph()
	c.JSON(http.StatusOK, HealthJSON{Status: "ready", Nodes: g.NodeCount(), Edges: g.EdgeCount()})
}

func (s *server) graph(c *gin.Context) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Status(http.StatusOK)
	if err := builder.Save(c.Writer, s.rt.Graph()); err != nil {
		log.Printf("[WARN] Failed to write graph: %v", err)
	}
}

func (s *server) graphGeoJSON(c *gin.Context) {
	data, err := geo.Graph(s.rt.Graph()).MarshalJSON()
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

func (s *server) route(c *gin.Context) {
	from, to, ok := s.pair(c, "from", "to")
	if !ok {
		return
	}

	start := time.Now()
	res := s.rt.ShortestPath(from, to)
	out := routeJSON(from, to, res)
	out.TimeTakenMs = elapsedMs(start)

	log.Printf("[INFO] route %d→%d found=%t stops=%d", from, to, out.Found, out.Stops)
	c.JSON(http.StatusOK, out)
}

func (s *server) hops(c *gin.Context) {
	from, to, ok := s.pair(c, "from", "to")
	if !ok {
		return
	}

	start := time.Now()
	path, err := s.rt.FewestStops(c.Request.Context(), from, to)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	out := RouteJSON{From: int(from), To: int(to), Found: len(path) > 0, Path: path.Ints(), Stops: len(path)}
	if out.Found {
		out.Distance = finite(s.rt.Graph().PathLength(path))
	}
	out.TimeTakenMs = elapsedMs(start)

	c.JSON(http.StatusOK, out)
}

func (s *server) paths(c *gin.Context) {
	from, to, ok := s.pair(c, "from", "to")
	if !ok {
		return
	}
	var opts []dfs.Option
	if n, present, err := intParam(c, "maxPaths", 1, MaxPathsLimit); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	} else if present {
		opts = append(opts, dfs.WithMaxPaths(n))
	}
	if d, present, err := intParam(c, "maxDepth", 0, dfs.DefaultMaxDepth); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	} else if present {
		opts = append(opts, dfs.WithMaxDepth(d))
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.opts.Timeout)
	defer cancel()

	start := time.Now()
	paths, err := s.rt.Alternatives(ctx, from, to, opts...)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	out := PathsJSON{
		From:        int(from),
		To:          int(to),
		Count:       len(paths),
		Paths:       alternativesJSON(s.rt.Graph(), paths),
		TimeTakenMs: elapsedMs(start),
	}
	log.Printf("[INFO] paths %d→%d count=%d", from, to, out.Count)
	c.JSON(http.StatusOK, out)
}

func (s *server) plan(c *gin.Context) {
	user, restaurant, ok := s.pair(c, "user", "restaurant")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.opts.Timeout)
	defer cancel()

	plan, err := s.rt.Plan(ctx, user, restaurant)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	g := s.rt.Graph()
	log.Printf("[INFO] plan user=%d restaurant=%d found=%t", user, restaurant, plan.Shortest.Found())

	if c.Query("format") == "geojson" {
		data, err := geo.Routes(g, plan.Shortest, plan.Alternatives).MarshalJSON()
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		c.Data(http.StatusOK, "application/geo+json", data)
		return
	}

	u, _ := g.Node(user)
	r, _ := g.Node(restaurant)
	c.JSON(http.StatusOK, PlanJSON{
		User:         nodeJSON(u),
		Restaurant:   nodeJSON(r),
		Shortest:     routeJSON(user, restaurant, plan.Shortest),
		Alternatives: alternativesJSON(g, plan.Alternatives),
		Courier:      routeJSON(restaurant, user, plan.Courier),
	})
}

func (s *server) nearest(c *gin.Context) {
	x, err := floatParam(c, "x")
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	y, err := floatParam(c, "y")
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	id, ok := s.rt.Nearest(x, y)
	if !ok {
		s.fail(c, http.StatusNotFound, errors.New("no traversable node"))
		return
	}
	n, _ := s.rt.Graph().Node(id)
	q := core.Node{Pos: r2.Vec{X: x, Y: y}}
	c.JSON(http.StatusOK, NearestJSON{Node: nodeJSON(n), Distance: core.Distance(q, n)})
}

func (s *server) within(c *gin.Context) {
	var box [4]float64
	for i, key := range []string{"minX", "minY", "maxX", "maxY"} {
		f, err := floatParam(c, key)
		if err != nil {
			s.fail(c, http.StatusBadRequest, err)
			return
		}
		box[i] = f
	}
	if box[0] > box[2] || box[1] > box[3] {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: min corner exceeds max corner", errBadParam))
		return
	}

	g := s.rt.Graph()
	ids := s.rt.Within(box[0], box[1], box[2], box[3])
	out := WithinJSON{Count: len(ids), Nodes: make([]NodeJSON, 0, len(ids))}
	for _, id := range ids {
		n, _ := g.Node(id)
		out.Nodes = append(out.Nodes, nodeJSON(n))
	}

	c.JSON(http.StatusOK, out)
}

func (s *server) table(c *gin.Context) {
	tab, err := s.rt.DistanceTable()
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}

	g := s.rt.Graph()
	out := TableJSON{}
	for _, id := range tab.Rows() {
		n, _ := g.Node(id)
		out.Rows = append(out.Rows, nodeJSON(n))
	}
	for _, id := range tab.Cols() {
		n, _ := g.Node(id)
		out.Cols = append(out.Cols, nodeJSON(n))
	}
	r, cols := tab.Dims()
	out.Distances = make([][]*float64, r)
	for i := 0; i < r; i++ {
		out.Distances[i] = make([]*float64, cols)
		for j := 0; j < cols; j++ {
			out.Distances[i][j] = finite(tab.At(i, j))
		}
	}

	c.JSON(http.StatusOK, out)
}

// pair reads two node-id query parameters. It writes the 400 response
// itself and reports false on failure.
func (s *server) pair(c *gin.Context, a, b string) (core.NodeID, core.NodeID, bool) {
	u, err := s.nodeParam(c, a)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return 0, 0, false
	}
	v, err := s.nodeParam(c, b)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return 0, 0, false
	}

	return u, v, true
}

// nodeParam parses a required node id that must exist in the graph.
func (s *server) nodeParam(c *gin.Context, key string) (core.NodeID, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %q", errBadParam, key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q must be an integer node id", errBadParam, key)
	}
	if !s.rt.Graph().Has(core.NodeID(n)) {
		return 0, fmt.Errorf("%w: unknown node %d", errBadParam, n)
	}

	return core.NodeID(n), nil
}

// intParam parses an optional integer within [lo, hi].
func intParam(c *gin.Context, key string, lo, hi int) (int, bool, error) {
	raw, present := c.GetQuery(key)
	if !present {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, true, fmt.Errorf("%w: %q must be an integer in [%d, %d]", errBadParam, key, lo, hi)
	}

	return n, true, nil
}

// floatParam parses a required finite float.
func floatParam(c *gin.Context, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %q", errBadParam, key)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || finite(f) == nil {
		return 0, fmt.Errorf("%w: %q must be a finite number", errBadParam, key)
	}

	return f, nil
}

// statusFor maps library errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, routing.ErrNotCustomer), errors.Is(err, routing.ErrNotRestaurant),
		errors.Is(err, dfs.ErrOptionViolation):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Printf("[WARN] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
