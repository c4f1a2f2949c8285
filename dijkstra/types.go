// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Options and functional options for the Dijkstra engine.

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/poinet/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or a target vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadWeightAttr indicates that the selected weight attribute holds a non-numeric value.
	ErrBadWeightAttr = errors.New("dijkstra: weight attribute is not numeric")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative value or NaN.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// DefaultMissingWeight is the weight of an edge lacking the selected weight attribute.
const DefaultMissingWeight = 1.0

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – vertices farther than this are not explored. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ threshold are impassable. Default +Inf.
// WeightAttr       – edge attribute holding the weight; "" means Edge.Weight.
// Targets          – when non-empty, stop as soon as every target is settled.
// Ctx              – cancellation; checked while popping the heap.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	WeightAttr       string
	Targets          []string
	Ctx              context.Context
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as non-traversable.
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithWeightAttr selects the edge attribute used as weight (e.g. "length").
// An empty name falls back to Edge.Weight.
func WithWeightAttr(name string) Option {
	return func(o *Options) {
		o.WeightAttr = name
	}
}

// WithTargets stops the search once every listed vertex is settled.
// Distances and predecessors of settled vertices are identical to a full run.
func WithTargets(ids ...string) Option {
	return func(o *Options) {
		o.Targets = append(o.Targets[:0:0], ids...)
	}
}

// WithContext attaches a cancellation context to the run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns an Options struct initialized with defaults for source.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - WeightAttr:       "" (Edge.Weight).
//   - Ctx:              context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Ctx:              context.Background(),
	}
}

// EdgeWeight resolves the weight of e under the attribute name attr.
//
// attr == "" returns e.Weight. Otherwise the attribute is coerced with
// core.Numeric; a missing attribute weighs DefaultMissingWeight.
// Errors: ErrBadWeightAttr (non-numeric), ErrNegativeWeight.
func EdgeWeight(e *core.Edge, attr string) (float64, error) {
	w := e.Weight
	if attr != "" {
		raw, ok := e.Attr(attr)
		if !ok {
			w = DefaultMissingWeight
		} else if w, ok = core.Numeric(raw); !ok {
			return 0, fmt.Errorf("%w: edge %s attr %q=%v", ErrBadWeightAttr, e.ID, attr, raw)
		}
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: edge %s %s→%s weight=%g", ErrNegativeWeight, e.ID, e.From, e.To, w)
	}

	return w, nil
}

// Path is a concrete route through the graph.
//
// Nodes lists vertex IDs from source to target; Edges holds the edge chosen
// between each consecutive pair (len(Edges) == len(Nodes)-1); Length is the
// sum of their weights, accumulated in path order.
type Path struct {
	Nodes  []string
	Edges  []*core.Edge
	Length float64
}
