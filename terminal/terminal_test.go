// SPDX-License-Identifier: MIT

package terminal_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/dijkstra"
	"github.com/katalvlaran/poinet/terminal"
)

// roadGraph builds an undirected street grid with "length" attributes:
//
//	A -1- B -1- C -1- D
//	|                 |
//	+-------10--------+
func roadGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for _, e := range []struct {
		u, v string
		l    float64
	}{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}, {"A", "D", 10},
	} {
		_, err := g.AddEdge(e.u, e.v, 0, core.WithEdgeAttrs(map[string]interface{}{core.AttrLength: e.l}))
		require.NoError(t, err)
	}

	return g
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name    string
		in      []string
		want    []string
		wantErr error
	}{
		{"sorted dedup", []string{"D", "A", "D", "", "B"}, []string{"A", "B", "D"}, nil},
		{"single terminal", []string{"A", "A"}, []string{"A"}, terminal.ErrInsufficientTerminals},
		{"empty", nil, []string{}, terminal.ErrInsufficientTerminals},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := terminal.Resolve(tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuild_CompleteGraph(t *testing.T) {
	g := roadGraph(t)
	tg, err := terminal.Build(context.Background(), g, []string{"D", "A", "B"},
		terminal.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D"}, tg.Terminals)
	assert.Equal(t, 3, tg.Graph.VertexCount())
	assert.Equal(t, 3, tg.Graph.EdgeCount())

	// lexicographic pair order: (A,B), (A,D), (B,D)
	edges := tg.Graph.Edges()
	got := make([]string, 0, len(edges))
	for _, e := range edges {
		got = append(got, fmt.Sprintf("%s-%s:%g", e.From, e.To, e.Weight))
	}
	assert.Equal(t, []string{"A-B:1", "A-D:3", "B-D:2"}, got)

	d, ok := tg.Distance("D", "A")
	require.True(t, ok)
	assert.Equal(t, 3.0, d)

	p, ok := tg.Path("A", "D")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Nodes)

	rev, ok := tg.Path("D", "A")
	require.True(t, ok)
	assert.Equal(t, []string{"D", "C", "B", "A"}, rev.Nodes)
	assert.Equal(t, p.Length, rev.Length)
	assert.Equal(t, p.Edges[0].ID, rev.Edges[2].ID)

	assert.Equal(t, 4, g.EdgeCount(), "road graph untouched")
}

func TestBuild_PathsMatchShortestPath(t *testing.T) {
	g := roadGraph(t)
	tg, err := terminal.Build(context.Background(), g, []string{"A", "B", "C", "D"})
	require.NoError(t, err)

	for pair, p := range tg.Paths {
		sp, err := dijkstra.ShortestPath(context.Background(), g, pair.U, pair.V, dijkstra.WithWeightAttr(core.AttrLength))
		require.NoError(t, err)
		assert.Equal(t, sp.Nodes, p.Nodes, "pair %v", pair)
		assert.Equal(t, sp.Length, p.Length, "pair %v", pair)
		between := tg.Graph.EdgesBetween(pair.U, pair.V)
		require.Len(t, between, 1)
		assert.Equal(t, sp.Length, between[0].Weight)
	}
}

func TestBuild_WorkerCountDoesNotChangeResult(t *testing.T) {
	g := roadGraph(t)
	var searches int64
	hook := func(string, time.Duration) { atomic.AddInt64(&searches, 1) }

	one, err := terminal.Build(context.Background(), g, []string{"A", "B", "C", "D"},
		terminal.WithWorkers(1), terminal.WithSearchHook(hook))
	require.NoError(t, err)
	many, err := terminal.Build(context.Background(), g, []string{"A", "B", "C", "D"},
		terminal.WithWorkers(8), terminal.WithSearchHook(hook))
	require.NoError(t, err)

	assert.Equal(t, int64(6), atomic.LoadInt64(&searches), "n-1 searches per build")
	for pair, p := range one.Paths {
		q := many.Paths[pair]
		assert.Equal(t, p.Nodes, q.Nodes)
		assert.Equal(t, p.Length, q.Length)
	}
	assert.Panics(t, func() { terminal.WithWorkers(0) })
}

func TestBuild_Errors(t *testing.T) {
	g := roadGraph(t)
	_ = g.AddVertex("Island")

	_, err := terminal.Build(context.Background(), g, []string{"A", "Island"})
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, err = terminal.Build(context.Background(), g, []string{"A", "Nowhere"})
	assert.ErrorIs(t, err, terminal.ErrTerminalNotFound)

	_, err = terminal.Build(context.Background(), g, []string{"A"})
	assert.ErrorIs(t, err, terminal.ErrInsufficientTerminals)

	_, err = terminal.Build(context.Background(), nil, []string{"A", "B"})
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = terminal.Build(ctx, g, []string{"A", "B", "C"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_DisconnectedSkipsSearches(t *testing.T) {
	g := roadGraph(t)
	_, err := g.AddEdge("X", "Y", 0, core.WithEdgeAttrs(map[string]interface{}{core.AttrLength: 1.0}))
	require.NoError(t, err)

	var searches int64
	hook := func(string, time.Duration) { atomic.AddInt64(&searches, 1) }
	_, err = terminal.Build(context.Background(), g, []string{"A", "C", "X"}, terminal.WithSearchHook(hook))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.Contains(t, err.Error(), "A -> X")
	assert.Zero(t, atomic.LoadInt64(&searches))
}

func TestNewPair(t *testing.T) {
	assert.Equal(t, terminal.Pair{U: "a", V: "b"}, terminal.NewPair("b", "a"))
	assert.Equal(t, terminal.Pair{U: "a", V: "b"}, terminal.NewPair("a", "b"))
}
