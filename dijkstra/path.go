// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path reconstruction on top of Dijkstra: ShortestPath, PathTo, SelectEdge, PathLength.
// Determinism:
//   - SelectEdge picks the minimum-weight parallel edge, ties broken by lowest Edge.ID.
//   - Lengths are accumulated from the source in path order, exactly as the search does,
//     so Path.Length equals the distance Dijkstra reports for the target.

package dijkstra

import (
	"context"
	"fmt"

	"github.com/katalvlaran/poinet/core"
)

// ShortestPath returns the shortest path from → to in g.
//
// The search stops as soon as to is settled. opts may add a weight attribute,
// thresholds, etc.; Source, targets, ReturnPath and the context are set here.
//
// Errors: everything Dijkstra returns, plus ErrNoPath when to is unreachable.
func ShortestPath(ctx context.Context, g *core.Graph, from, to string, opts ...Option) (Path, error) {
	all := make([]Option, 0, len(opts)+4)
	all = append(all, opts...)
	all = append(all, Source(from), WithTargets(to), WithReturnPath(), WithContext(ctx))

	_, prev, err := Dijkstra(g, all...)
	if err != nil {
		return Path{}, err
	}

	cfg := DefaultOptions(from)
	for _, opt := range opts {
		opt(&cfg)
	}

	return PathTo(g, prev, from, to, cfg.WeightAttr)
}

// PathTo walks a predecessor map produced by Dijkstra(..., WithReturnPath())
// from to back to from and materializes the Path, choosing each edge with
// SelectEdge under the same weight attribute.
//
// Errors: ErrNoPath when to has no predecessor chain back to from.
func PathTo(g *core.Graph, prev map[string]string, from, to, weightAttr string) (Path, error) {
	if from == to {
		return Path{Nodes: []string{from}}, nil
	}

	var rev []string
	seen := make(map[string]bool)
	for cur := to; cur != from; {
		if seen[cur] {
			return Path{}, fmt.Errorf("%w: %s → %s (cycle in predecessor map)", ErrNoPath, from, to)
		}
		seen[cur] = true
		rev = append(rev, cur)
		p, ok := prev[cur]
		if !ok || p == "" {
			return Path{}, fmt.Errorf("%w: %s → %s", ErrNoPath, from, to)
		}
		cur = p
	}
	rev = append(rev, from)

	nodes := make([]string, len(rev))
	for i, id := range rev {
		nodes[len(rev)-1-i] = id
	}

	return materialize(g, nodes, weightAttr)
}

// SelectEdge returns the edge Dijkstra relaxes between u and v together with its weight:
// the minimum-weight traversable edge u → v, ties broken by lowest Edge.ID.
//
// Errors: ErrNoPath if no edge u → v exists; weight errors from EdgeWeight.
func SelectEdge(g *core.Graph, u, v, weightAttr string) (*core.Edge, float64, error) {
	var best *core.Edge
	var bestW float64
	// EdgesBetween is sorted by ID, so strict "<" keeps the lowest ID on ties.
	for _, e := range g.EdgesBetween(u, v) {
		w, err := EdgeWeight(e, weightAttr)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || w < bestW {
			best, bestW = e, w
		}
	}
	if best == nil {
		return nil, 0, fmt.Errorf("%w: no edge %s → %s", ErrNoPath, u, v)
	}

	return best, bestW, nil
}

// PathLength recomputes the length of a node sequence, choosing each hop with SelectEdge.
func PathLength(g *core.Graph, nodes []string, weightAttr string) (float64, error) {
	p, err := materialize(g, nodes, weightAttr)
	if err != nil {
		return 0, err
	}

	return p.Length, nil
}

// materialize resolves the edges of a node sequence and sums their weights in order.
func materialize(g *core.Graph, nodes []string, weightAttr string) (Path, error) {
	p := Path{Nodes: nodes}
	if len(nodes) < 2 {
		return p, nil
	}
	p.Edges = make([]*core.Edge, 0, len(nodes)-1)
	for i := 0; i+1 < len(nodes); i++ {
		e, w, err := SelectEdge(g, nodes[i], nodes[i+1], weightAttr)
		if err != nil {
			return Path{}, err
		}
		p.Edges = append(p.Edges, e)
		p.Length += w
	}

	return p, nil
}
