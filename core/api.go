// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and
//       graph-level attributes.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether edges added to this graph are directed.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
//
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// SetAttribute stores a graph-level attribute (e.g. "crs", "network_type").
//
// Complexity: O(1). Concurrency: muVert write lock.
func (g *Graph) SetAttribute(key string, value interface{}) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.attrs[key] = value
}

// Attribute returns one graph-level attribute and whether it was present.
func (g *Graph) Attribute(key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.attrs[key]

	return v, ok
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and parallel pairs, then release.
//
// The two phases never hold both locks at once.
//
// Complexity: O(V+E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for from, toMap := range g.adjacencyList {
		for to, bucket := range toMap {
			// undirected buckets are mirrored; count each pair once
			if !g.directed && to < from {
				continue
			}
			if len(bucket) > 1 {
				stats.ParallelPairs++
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// GraphStats is an immutable-by-convention summary returned by Stats.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool

	VertexCount int
	EdgeCount   int

	// ParallelPairs counts node pairs joined by more than one edge.
	ParallelPairs int
}
