// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (copying topology with altered properties).
// Determinism:
//   - Preserves vertex IDs, edge IDs, weights and attribute bags.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// ToUndirectedMultigraph returns the undirected multigraph view of g.
//
// Every vertex of g is copied with its metadata. Every edge of g becomes exactly
// one undirected edge of the result with the same ID, endpoints, weight and a
// shallow copy of its attribute bag. A pair of opposite directed edges u→v and
// v→u therefore yields two parallel undirected edges {u,v}. Self-loops survive.
// Graph-level attributes are copied. The input graph is never mutated.
//
// The result is always weighted, multi-edge and loop-permitting, so the copy is
// total regardless of the flags g was built with.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func ToUndirectedMultigraph(g *Graph) *Graph {
	out := NewGraph(WithDirected(false), WithWeighted(), WithMultiEdges(), WithLoops())

	g.muVert.RLock()
	for k, v := range g.attrs {
		out.attrs[k] = v
	}
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: copyAttrs(v.Metadata)}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, e := range sortedEdges(g.edges) {
		ne := &Edge{
			ID:     e.ID,
			From:   e.From,
			To:     e.To,
			Key:    len(out.adjacencyList[e.From][e.To]),
			Weight: e.Weight,
			Attrs:  copyAttrs(e.Attrs),
		}
		out.edges[ne.ID] = ne
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][ne.ID] = struct{}{}
		if ne.From != ne.To {
			ensureAdjacency(out, ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][ne.ID] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// sortedEdges returns the catalog values ordered by Edge.ID.
// Must be called under a muEdgeAdj lock.
func sortedEdges(m map[string]*Edge) []*Edge {
	out := make([]*Edge, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sortEdgesByID(out)

	return out
}
