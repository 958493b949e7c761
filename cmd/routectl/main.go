// SPDX-License-Identifier: MIT

// Command routectl answers one routing query on the command line.
//
// Usage:
//
//	routectl -mode route   -from 2 -to 9
//	routectl -mode paths   -from 2 -to 9 [-max-paths 5] [-max-depth 20]
//	routectl -mode hops    -from 3 -to 10
//	routectl -mode plan    -from 2 -to 9      (from = customer, to = restaurant)
//	routectl -mode table
//	routectl -mode geojson [-from 2 -to 9]
//	routectl -mode nearest -x 0.5 -y 0.5
//
// -graph selects a JSON map; the built-in reference city is the default.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/builder"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/core"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dfs"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/dijkstra"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/geo"
	"github.com/ArchieP27/Food-Delivery-Routing-algorithm/routing"
)

// errUsage marks command-line mistakes; main exits with status 2 for them.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "routectl:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type config struct {
	mode      string
	graph     string
	from, to  int
	x, y      float64
	maxPaths  int
	maxDepth  int
	hasTarget bool
}

func parse(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("routectl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.mode, "mode", "route", "route|paths|hops|plan|table|geojson|nearest")
	fs.StringVar(&cfg.graph, "graph", "", "JSON map description")
	fs.IntVar(&cfg.from, "from", -1, "start node (customer for plan)")
	fs.IntVar(&cfg.to, "to", -1, "end node (restaurant for plan)")
	fs.Float64Var(&cfg.x, "x", 0, "query x for nearest")
	fs.Float64Var(&cfg.y, "y", 0, "query y for nearest")
	fs.IntVar(&cfg.maxPaths, "max-paths", dfs.DefaultMaxPaths, "alternatives to list")
	fs.IntVar(&cfg.maxDepth, "max-depth", dfs.DefaultMaxDepth, "hop cap for alternatives")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg.hasTarget = cfg.from >= 0 && cfg.to >= 0

	return cfg, nil
}

func run(args []string, out io.Writer) error {
	cfg, err := parse(args)
	if err != nil {
		return err
	}

	g := builder.DeliveryMap()
	if cfg.graph != "" {
		if g, err = builder.LoadFile(cfg.graph); err != nil {
			return err
		}
	}
	rt, err := routing.NewRouter(g, routing.WithEnumeration(
		dfs.WithMaxPaths(cfg.maxPaths),
		dfs.WithMaxDepth(cfg.maxDepth),
	))
	if err != nil {
		return err
	}
	ctx := context.Background()
	from, to := core.NodeID(cfg.from), core.NodeID(cfg.to)

	needPair := map[string]bool{"route": true, "paths": true, "hops": true, "plan": true}
	if needPair[cfg.mode] && !cfg.hasTarget {
		return fmt.Errorf("%w: -mode %s needs -from and -to", errUsage, cfg.mode)
	}

	switch cfg.mode {
	case "route":
		printRoute(out, "route", rt.ShortestPath(from, to))

	case "paths":
		paths, err := rt.Alternatives(ctx, from, to)
		if err != nil {
			return err
		}
		printPaths(out, g, paths)

	case "hops":
		path, err := rt.FewestStops(ctx, from, to)
		if err != nil {
			return err
		}
		if len(path) == 0 {
			fmt.Fprintln(out, "no route")
			return nil
		}
		fmt.Fprintf(out, "route: %v\nhops: %d\n", path, len(path)-1)

	case "plan":
		plan, err := rt.Plan(ctx, from, to)
		if err != nil {
			return err
		}
		printRoute(out, "customer → restaurant", plan.Shortest)
		printRoute(out, "courier", plan.Courier)
		printPaths(out, g, plan.Alternatives)

	case "table":
		tab, err := rt.DistanceTable()
		if err != nil {
			return err
		}
		return tab.Format(out)

	case "geojson":
		fc := geo.Graph(g)
		if cfg.hasTarget {
			paths, err := rt.Alternatives(ctx, from, to)
			if err != nil {
				return err
			}
			fc = geo.Routes(g, rt.ShortestPath(from, to), paths)
		}
		data, err := fc.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))

	case "nearest":
		id, ok := rt.Nearest(cfg.x, cfg.y)
		if !ok {
			return errors.New("no traversable node")
		}
		fmt.Fprintf(out, "nearest: %d\n", id)

	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, cfg.mode)
	}

	return nil
}

func printRoute(out io.Writer, title string, res dijkstra.Result) {
	if !res.Found() {
		fmt.Fprintf(out, "%s: no route\n", title)
		return
	}
	fmt.Fprintf(out, "%s: %v\ndistance: %.3f\n", title, res.Path, res.Distance)
}

func printPaths(out io.Writer, g *core.Graph, paths []core.Path) {
	if len(paths) == 0 {
		fmt.Fprintln(out, "no alternatives")
		return
	}
	for i, p := range paths {
		fmt.Fprintf(out, "%d. %v (%d stops, %.3f)\n", i+1, p, len(p), g.PathLength(p))
	}
}
