// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: Route Reconstructor: the concrete road path behind every MST edge.
// Determinism:
//   - Each edge is reconstructed independently; results are stored by MST index.

package route

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/dijkstra"
)

// ErrBadWorkers indicates a non-positive worker count.
var ErrBadWorkers = errors.New("route: workers must be positive")

// Route is one MST edge materialized on the road graph.
type Route struct {
	From   string
	To     string
	Weight float64 // MST edge weight (terminal-pair distance)
	Path   dijkstra.Path
}

// Options configures Reconstruct.
type Options struct {
	Workers    int
	WeightAttr string
	Logger     *zap.Logger
}

// Option represents a functional option for Reconstruct.
type Option func(*Options)

// WithWorkers bounds the number of concurrent reconstructions. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) { o.Workers = n }
}

// WithWeightAttr selects the road-edge weight attribute; it must match the one
// used to build the terminal graph.
func WithWeightAttr(name string) Option {
	return func(o *Options) { o.WeightAttr = name }
}

// WithLogger attaches a structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Reconstruct recomputes the shortest road path for every MST edge (u, v) and
// returns one Route per edge in MST order. Paths are recomputed with
// dijkstra.ShortestPath under the same weight attribute, so every Route's
// Path.Length equals the MST edge weight.
//
// Errors: only those of dijkstra.ShortestPath, wrapped with the edge endpoints.
func Reconstruct(ctx context.Context, g *core.Graph, mst []core.Edge, opts ...Option) ([]Route, error) {
	cfg := Options{Workers: runtime.GOMAXPROCS(0), WeightAttr: core.AttrLength, Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	routes := make([]Route, len(mst))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i := range mst {
		i := i
		e := mst[i]
		eg.Go(func() error {
			p, err := dijkstra.ShortestPath(egctx, g, e.From, e.To, dijkstra.WithWeightAttr(cfg.WeightAttr))
			if err != nil {
				return fmt.Errorf("route: %s-%s: %w", e.From, e.To, err)
			}
			routes[i] = Route{From: e.From, To: e.To, Weight: e.Weight, Path: p}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("routes reconstructed", zap.Int("routes", len(routes)))

	return routes, nil
}

// TotalLength sums the road length of all routes.
func TotalLength(routes []Route) float64 {
	var total float64
	for _, r := range routes {
		total += r.Path.Length
	}

	return total
}

// EdgeIDs returns the distinct road edge IDs used by the routes, in first-seen order.
// Routes may share road segments; a renderer draws each one once.
func EdgeIDs(routes []Route) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range routes {
		for _, e := range r.Path.Edges {
			if _, ok := seen[e.ID]; ok {
				continue
			}
			seen[e.ID] = struct{}{}
			out = append(out, e.ID)
		}
	}

	return out
}
