// SPDX-License-Identifier: MIT

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/routing"
)

// Defaults for Options.
const (
	DefaultAllowOrigin = "*"
	DefaultTimeout     = 5 * time.Second
	MaxPathsLimit      = 100
)

// Options configures the HTTP layer.
type Options struct {
	// AllowOrigin is written to Access-Control-Allow-Origin.
	AllowOrigin string

	// Timeout bounds each route enumeration.
	Timeout time.Duration

	// Quiet disables the request logger (tests).
	Quiet bool
}

// Option mutates Options.
type Option func(*Options)

// WithAllowOrigin sets the CORS origin. An empty origin keeps the default.
func WithAllowOrigin(origin string) Option {
	return func(o *Options) {
		if origin != "" {
			o.AllowOrigin = origin
		}
	}
}

// WithTimeout bounds path enumeration per request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithoutRequestLog drops the per-request access log.
func WithoutRequestLog() Option {
	return func(o *Options) { o.Quiet = true }
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{AllowOrigin: DefaultAllowOrigin, Timeout: DefaultTimeout}
}

// NewRouter builds the gin engine serving rt.
func NewRouter(rt *routing.Router, opts ...Option) *gin.Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	router := gin.New()
	if !o.Quiet {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery(), CORSMiddleware(o.AllowOrigin))

	s := &server{rt: rt, opts: o}
	router.GET("/health", s.health)

	v1 := router.Group("/api")
	v1.GET("/graph", s.graph)
	v1.GET("/graph.geojson", s.graphGeoJSON)
	v1.GET("/route", s.route)
	v1.GET("/hops", s.hops)
	v1.GET("/paths", s.paths)
	v1.GET("/plan", s.plan)
	v1.GET("/nearest", s.nearest)
	v1.GET("/within", s.within)
	v1.GET("/table", s.table)

	return router
}

// CORSMiddleware handles Cross-Origin Resource Sharing for the front-end.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
