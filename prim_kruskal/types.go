// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, sentinel errors, the shared edge order and the Compute dispatcher.

package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/poinet/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, unweighted, or the method name is unknown.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: start vertex ID for Prim; ignored by Kruskal. Empty means
//	                the smallest vertex ID when dispatched through Compute.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, then applies opts.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
// For Prim with an empty Root the smallest vertex ID is used.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal, "":
		return Kruskal(graph)
	case MethodPrim:
		root := opts.Root
		if root == "" && graph != nil {
			if vs := graph.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}

		return Prim(graph, root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// TotalWeight sums the weights of an MST edge set.
func TotalWeight(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// edgeLess is the total order both algorithms use to pick among equal weights:
// (weight, min endpoint, max endpoint, edge ID).
func edgeLess(a, b *core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	aLo, aHi := endpoints(a)
	bLo, bHi := endpoints(b)
	if aLo != bLo {
		return aLo < bLo
	}
	if aHi != bHi {
		return aHi < bHi
	}

	return a.ID < b.ID
}

// endpoints returns the edge endpoints in ascending order.
func endpoints(e *core.Edge) (lo, hi string) {
	if e.To < e.From {
		return e.To, e.From
	}

	return e.From, e.To
}

// validate applies the common graph checks.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return ErrInvalidGraph
	}

	return nil
}
