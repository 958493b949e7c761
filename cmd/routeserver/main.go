// SPDX-License-Identifier: MIT

// Command routeserver serves the delivery router over HTTP.
//
// Usage:
//
//	routeserver [-graph map.json] [-addr :8080] [-origin http://localhost:3000] [-timeout 5s]
//
// Without -graph the built-in reference city is served. The listen address
// defaults to ":$PORT", or ":8080" when PORT is unset.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/api"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/builder"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/routing"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	graphPath := flag.String("graph", "", "JSON map description (default: built-in reference map)")
	addr := flag.String("addr", ":"+port, "listen address")
	origin := flag.String("origin", api.DefaultAllowOrigin, "Access-Control-Allow-Origin value")
	timeout := flag.Duration("timeout", api.DefaultTimeout, "per-request bound on route enumeration")
	flag.Parse()

	g, source, err := loadGraph(*graphPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load map: %v", err)
	}
	log.Printf("[INFO] Loaded %s (%d nodes, %d edges)", source, g.NodeCount(), g.EdgeCount())

	rt, err := routing.NewRouter(g)
	if err != nil {
		log.Fatalf("[FATAL] Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.NewRouter(rt, api.WithAllowOrigin(*origin), api.WithTimeout(*timeout)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[INFO] Listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[INFO] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] Shutdown: %v", err)
	}
}

func loadGraph(path string) (*core.Graph, string, error) {
	if path == "" {
		return builder.DeliveryMap(), "reference map", nil
	}
	g, err := builder.LoadFile(path)

	return g, path, err
}
