// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Single-source shortest paths with a lazy decrease-key binary heap.
// Determinism:
//   - Heap order is (distance, vertex ID); relaxation is strict; neighbor edges
//     are scanned in Edge.ID order. The settled sequence is therefore a pure
//     function of the graph, and an early stop (WithTargets) only truncates it.

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/poinet/core"
)

// ctxCheckEvery is the number of heap pops between two context checks.
const ctxCheckEvery = 64

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable or not settled).
//   - prev: predecessor map if ReturnPath=true (nil otherwise). prev[v] == u means
//     the shortest path to v goes through u; "" for the source and unreachable v.
//   - err:  validation errors, weight errors, or the context error (wrapped).
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source and every target (ErrVertexNotFound).
//  5. Every edge weight must resolve and be non-negative (ErrBadWeightAttr, ErrNegativeWeight).
//
// Complexity: Time O((V + E) log V), Space O(V + E).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	pending := make(map[string]struct{}, len(cfg.Targets))
	for _, t := range cfg.Targets {
		if !g.HasVertex(t) {
			return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, t)
		}
		pending[t] = struct{}{}
	}

	// Pre-scan all edges: fail fast on unresolvable or negative weights.
	for _, e := range g.Edges() {
		if _, err := EdgeWeight(e, cfg.WeightAttr); err != nil {
			return nil, nil, err
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pending: pending,
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pending map[string]struct{} // targets not yet settled
	pq      nodePQ
}

// init sets dist[v]=+Inf for all v, dist[Source]=0 and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops vertices in (distance, ID) order and relaxes their edges until
// the heap drains, MaxDistance is exceeded, or every target is settled.
func (r *runner) process() error {
	ctx := r.options.Ctx
	checkTargets := len(r.pending) > 0
	pops := 0
	for r.pq.Len() > 0 {
		if pops%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("dijkstra: search from %q interrupted: %w", r.options.Source, err)
			}
		}
		pops++

		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist
		if r.visited[u] {
			continue // stale entry
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if checkTargets {
			delete(r.pending, u)
			if len(r.pending) == 0 {
				return nil
			}
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
// Parallel edges are all scanned in Edge.ID order; with strict "<" the winner is
// the minimum-weight edge with the lowest ID, matching SelectEdge.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Directed && e.From != u {
			continue
		}
		v := e.Other(u)
		if r.visited[v] {
			continue
		}

		w, err := EdgeWeight(e, r.options.WeightAttr)
		if err != nil {
			return err
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
