// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgesBetween/EdgeCount.
//       Also: nextEdgeID().
// Determinism:
//   - Edges() and EdgesBetween() return edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge and returns its ID.
//
// Steps:
//  1. Validate IDs, weight (finite; zero on unweighted graphs), loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Build the Edge (generated or WithEdgeID identifier), apply opts.
//  5. Assign Key = current size of the (from,to) bucket.
//  6. Store in g.edges and link adjacency; mirror undirected non-loop edges.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed,
// ErrDuplicateEdgeID (WithEdgeID collided with an existing edge).
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	bucket := g.adjacencyList[from][to]
	if !g.allowMulti && len(bucket) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{From: from, To: to, Key: len(bucket), Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	if e.ID == "" {
		e.ID = nextEdgeID(g)
	} else if _, dup := g.edges[e.ID]; dup {
		return "", fmt.Errorf("%w: %q", ErrDuplicateEdgeID, e.ID)
	}

	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][e.ID] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][e.ID] = struct{}{}
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns every edge traversable from u to v, sorted by Edge.ID.
// For undirected graphs this is the full parallel-edge collection of {u,v}.
//
// Complexity: O(k log k) for k parallel edges.
func (g *Graph) EdgesBetween(u, v string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[u][v]
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		if e := g.edges[eid]; !e.IsNil() {
			out = append(out, e)
		}
	}
	sortEdgesByID(out)

	return out
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdgesByID(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether there exists at least one edge with Directed == true.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// sortEdgesByID orders edges by Edge.ID ascending in place.
func sortEdgesByID(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].ID < es[j].ID })
}

// IsNil reports whether the receiver is a nil *Edge.
func (e *Edge) IsNil() bool { return e == nil }

// nextEdgeID returns a new unique textual edge ID ("e" + decimal counter).
// Safe for concurrent callers; skips IDs already taken via WithEdgeID.
// Must be called under the muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	for {
		n := atomic.AddUint64(&g.nextEdgeID, 1)
		buf := make([]byte, 0, 1+20)
		buf = append(buf, edgeIDPrefix)
		buf = strconv.AppendUint(buf, n, 10)
		id := string(buf)
		if _, taken := g.edges[id]; !taken {
			return id
		}
	}
}
