// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices
// and graph attributes, muEdgeAdj for edges and adjacency), so graphs can be
// populated from several goroutines with minimal contention.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero or non-finite weight rejected by the graph policy.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
//	ErrDuplicateEdgeID     - explicit edge ID already in use.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph,
	// or a NaN/Inf weight provided to any graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDuplicateEdgeID indicates WithEdgeID named an edge that already exists.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")
)

// Well-known attribute keys shared by the graph source, the nearest-node
// lookup and the renderers. Everything else in an attribute bag is opaque.
const (
	// AttrX is the vertex longitude.
	AttrX = "x"

	// AttrY is the vertex latitude.
	AttrY = "y"

	// AttrLength is the edge length in meters, the primary routing weight.
	AttrLength = "length"
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data; the graph never interprets it.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data (positional keys AttrX/AttrY included).
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a parallel-edge Key, a real
// Weight, a Directed flag inherited from the graph, and an opaque attribute bag.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Key is the parallel-edge index of this edge within its (From, To) bucket
	// at insertion time; (From, To, Key) identifies the edge in a multigraph.
	Key int

	// Weight is the cost of the edge.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// Attrs stores arbitrary edge attributes carried through unchanged.
	Attrs map[string]interface{}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeAttrs attaches an attribute bag to the new edge. The map is
// shallow-copied so later mutation by the caller does not leak into the graph.
func WithEdgeAttrs(attrs map[string]interface{}) EdgeOption {
	return func(e *Edge) { e.Attrs = copyAttrs(attrs) }
}

// WithEdgeID forces the identifier of the new edge. Views use it to keep edge
// identity across graphs; AddEdge rejects a duplicate ID.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// VertexOption configures properties of a vertex when it is first added.
type VertexOption func(*Vertex)

// WithMetadata attaches a metadata bag to a new vertex (shallow-copied).
func WithMetadata(md map[string]interface{}) VertexOption {
	return func(v *Vertex) {
		for k, val := range md {
			v.Metadata[k] = val
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// It supports: directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops.
// muVert protects vertices and attrs; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, attrs
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // edge directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64                 // atomic edge ID generator
	vertices   map[string]*Vertex     // vertex ID → Vertex
	edges      map[string]*Edge       // edge ID → Edge
	attrs      map[string]interface{} // graph-level attributes

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		attrs:         make(map[string]interface{}),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// copyAttrs returns a shallow copy of m; nil stays nil.
func copyAttrs(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
