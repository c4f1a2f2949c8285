// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Pair, the terminal Graph result and Build options.

package terminal

import (
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/dijkstra"
)

var (
	// ErrInsufficientTerminals indicates that fewer than two distinct terminals remain.
	ErrInsufficientTerminals = errors.New("terminal: at least two distinct terminals are required")

	// ErrTerminalNotFound indicates a terminal that is not a vertex of the road graph.
	ErrTerminalNotFound = errors.New("terminal: terminal is not a graph vertex")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("terminal: workers must be positive")
)

// AttrHops is the terminal-graph edge attribute holding the number of road edges on the path.
const AttrHops = "hops"

// Pair is an unordered terminal pair stored with U < V.
type Pair struct {
	U, V string
}

// NewPair returns the canonical Pair for {a, b}.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}

// Graph is the complete terminal graph together with the road paths behind its edges.
//
// Graph holds one vertex per terminal and one undirected edge per unordered
// pair, weighted by the shortest-path length and inserted in lexicographic
// pair order. Paths[p] runs from p.U to p.V.
type Graph struct {
	Terminals []string
	Graph     *core.Graph
	Paths     map[Pair]dijkstra.Path
}

// Path returns the recorded road path from u to v (reversed when u > v).
func (tg *Graph) Path(u, v string) (dijkstra.Path, bool) {
	p, ok := tg.Paths[NewPair(u, v)]
	if !ok || u <= v {
		return p, ok
	}

	return reversePath(p), true
}

// Distance returns the shortest-path length between two terminals.
func (tg *Graph) Distance(u, v string) (float64, bool) {
	if u == v {
		return 0, true
	}
	p, ok := tg.Paths[NewPair(u, v)]

	return p.Length, ok
}

func reversePath(p dijkstra.Path) dijkstra.Path {
	out := dijkstra.Path{
		Nodes:  make([]string, len(p.Nodes)),
		Edges:  make([]*core.Edge, len(p.Edges)),
		Length: p.Length,
	}
	for i, n := range p.Nodes {
		out.Nodes[len(p.Nodes)-1-i] = n
	}
	for i, e := range p.Edges {
		out.Edges[len(p.Edges)-1-i] = e
	}

	return out
}

// Options configures Build.
type Options struct {
	Workers    int
	WeightAttr string
	Logger     *zap.Logger
	// OnSearch is called after every single-source search with its source and duration.
	OnSearch func(source string, elapsed time.Duration)
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithWorkers bounds the number of concurrent searches. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) { o.Workers = n }
}

// WithWeightAttr selects the road-edge attribute used as weight.
func WithWeightAttr(name string) Option {
	return func(o *Options) { o.WeightAttr = name }
}

// WithLogger attaches a structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSearchHook registers a callback invoked after every single-source search.
// It may be called concurrently.
func WithSearchHook(fn func(source string, elapsed time.Duration)) Option {
	return func(o *Options) { o.OnSearch = fn }
}

// DefaultOptions returns GOMAXPROCS workers, the "length" weight and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers:    runtime.GOMAXPROCS(0),
		WeightAttr: core.AttrLength,
		Logger:     zap.NewNop(),
	}
}
