// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph with Kruskal's or Prim's algorithm.
//
// In poinet the input is the complete terminal graph: one vertex per POI
// terminal, one edge per terminal pair weighted by the shortest road distance.
// Its MST is the cheapest set of terminal-to-terminal connections that links
// every POI.
//
// Algorithms:
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Sort all edges, then merge components with union-find. O(E log E + α(V)·E).
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grow one tree from root with a min-heap of frontier edges. O(E log V).
//   - Compute(g, MSTOptions) dispatches by method name (Kruskal by default).
//
// Determinism:
//
//	Equal weights are resolved by (min endpoint, max endpoint, edge ID), a
//	total order over node pairs. For a simple graph the MST is therefore unique
//	and independent of edge insertion order, and Prim and Kruskal agree.
//
// Errors:
//
//	ErrInvalidGraph  - nil, directed or unweighted graph; unknown method.
//	ErrEmptyRoot     - Prim without root.
//	ErrDisconnected  - empty graph, or no spanning tree exists.
//	core.ErrVertexNotFound - Prim root missing.
package prim_kruskal
