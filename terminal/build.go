// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Terminal Graph Builder: one bounded-concurrency Dijkstra run per terminal,
//       merged into a complete weighted terminal graph.
// Determinism:
//   - Each search is deterministic (see package dijkstra), results are stored
//     by terminal index, and edges are inserted in lexicographic pair order,
//     so the output never depends on scheduling.

package terminal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/poinet/bfs"
	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/dijkstra"
)

// Build computes shortest paths between every pair of terminals in g and
// returns the complete terminal graph.
//
// For terminal i (in sorted order) a single Dijkstra search runs with the
// terminals j > i as targets and stops once all of them are settled. Searches
// run on an errgroup limited to Options.Workers; the first failure cancels the
// remaining searches through the shared context.
//
// Errors:
//   - ErrInsufficientTerminals: fewer than two distinct terminals.
//   - ErrTerminalNotFound: a terminal is not a vertex of g.
//   - dijkstra.ErrNoPath (wrapped with the pair): two terminals are disconnected.
//   - dijkstra validation/weight errors, ctx errors.
//
// Complexity: O(T · (V + E) log V) work over T terminals.
func Build(ctx context.Context, g *core.Graph, terminals []string, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}

	ids, err := Resolve(terminals)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrTerminalNotFound, id)
		}
	}

	// On an undirected graph one hop-count sweep from ids[0] decides
	// connectivity of the whole set before any weighted search starts.
	if !g.HasDirectedEdges() {
		missing, err := bfs.Unreachable(ctx, g, ids[0], ids[1:])
		if err != nil {
			return nil, fmt.Errorf("terminal: reachability: %w", err)
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("terminal: %s -> %s: %w", ids[0], missing[0], dijkstra.ErrNoPath)
		}
	}

	n := len(ids)
	// rows[i][k] is the path from ids[i] to ids[i+1+k].
	rows := make([][]dijkstra.Path, n)

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i := 0; i < n-1; i++ {
		i := i
		eg.Go(func() error {
			row, err := searchRow(egctx, g, ids, i, cfg)
			if err != nil {
				return err
			}
			rows[i] = row

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	tg := &Graph{
		Terminals: ids,
		Graph:     core.NewGraph(core.WithWeighted()),
		Paths:     make(map[Pair]dijkstra.Path, n*(n-1)/2),
	}
	for _, id := range ids {
		if err := tg.Graph.AddVertex(id); err != nil {
			return nil, fmt.Errorf("terminal: AddVertex(%s): %w", id, err)
		}
	}
	for i := 0; i < n-1; i++ {
		for k, p := range rows[i] {
			u, v := ids[i], ids[i+1+k]
			tg.Paths[Pair{U: u, V: v}] = p
			attrs := map[string]interface{}{
				core.AttrLength: p.Length,
				AttrHops:        len(p.Edges),
			}
			if _, err := tg.Graph.AddEdge(u, v, p.Length, core.WithEdgeAttrs(attrs)); err != nil {
				return nil, fmt.Errorf("terminal: AddEdge(%s-%s, w=%g): %w", u, v, p.Length, err)
			}
		}
	}
	cfg.Logger.Debug("terminal graph built",
		zap.Int("terminals", n),
		zap.Int("pairs", tg.Graph.EdgeCount()))

	return tg, nil
}

// searchRow runs one single-source search from ids[i] towards every later terminal.
func searchRow(ctx context.Context, g *core.Graph, ids []string, i int, cfg Options) ([]dijkstra.Path, error) {
	src := ids[i]
	targets := ids[i+1:]
	start := time.Now()

	_, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(src),
		dijkstra.WithTargets(targets...),
		dijkstra.WithReturnPath(),
		dijkstra.WithWeightAttr(cfg.WeightAttr),
		dijkstra.WithContext(ctx),
	)
	elapsed := time.Since(start)
	if cfg.OnSearch != nil {
		cfg.OnSearch(src, elapsed)
	}
	if err != nil {
		return nil, fmt.Errorf("terminal: search from %s: %w", src, err)
	}

	row := make([]dijkstra.Path, 0, len(targets))
	for _, dst := range targets {
		p, err := dijkstra.PathTo(g, prev, src, dst, cfg.WeightAttr)
		if err != nil {
			return nil, fmt.Errorf("terminal: %s ↔ %s: %w", src, dst, err)
		}
		row = append(row, p)
	}
	cfg.Logger.Debug("terminal search done",
		zap.String("source", src),
		zap.Int("targets", len(targets)),
		zap.Duration("elapsed", elapsed))

	return row, nil
}
