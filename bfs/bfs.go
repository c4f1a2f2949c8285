// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Hop-count breadth-first search and reachability checks.
// Determinism:
//   - core.Neighbors returns edges sorted by Edge.ID and they are enqueued in
//     that order, so Order and Parent are reproducible.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/poinet/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	pending map[string]struct{}
	res     *Result
}

// BFS explores g from start following traversable edges (outgoing ones for
// directed edges), ignoring weights.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx errors.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		pending: make(map[string]struct{}, len(o.Targets)),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	for _, t := range o.Targets {
		w.pending[t] = struct{}{}
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	delete(w.pending, id)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) done() bool {
	return len(w.opts.Targets) > 0 && len(w.pending) == 0
}

func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done() {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		edges, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, e := range edges {
			if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
				continue
			}
			nbr := e.Other(item.id)
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}

// Unreachable returns the ids that cannot be reached from start, in input order.
// The search stops as soon as every id has been found.
func Unreachable(ctx context.Context, g *core.Graph, start string, ids []string) ([]string, error) {
	res, err := BFS(g, start, WithContext(ctx), WithTargets(ids...))
	if err != nil {
		return nil, err
	}
	var out []string
	for _, id := range ids {
		if !res.Reached(id) {
			out = append(out, id)
		}
	}

	return out, nil
}
