// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/prim_kruskal"
)

// buildTriangle constructs A-B (1), B-C (2), A-C (3); its MST weighs 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildCompleteGraph creates a complete graph over n terminals "T00".."Tnn"
// with integral weights in [1..9] drawn from a fixed seed.
func buildCompleteGraph(n int, seed int64) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("T%02d", i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, _ = g.AddEdge(fmt.Sprintf("T%02d", i), fmt.Sprintf("T%02d", j), float64(1+r.Intn(9)))
		}
	}

	return g
}

// pairKeys renders an edge set as sorted "lo|hi" keys.
func pairKeys(edges []core.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		lo, hi := e.From, e.To
		if hi < lo {
			lo, hi = hi, lo
		}
		out = append(out, lo+"|"+hi)
	}
	sort.Strings(out)

	return out
}

// isSpanningTree reports whether edges connect all vertices without a cycle.
func isSpanningTree(vertices []string, edges []core.Edge) bool {
	if len(edges) != len(vertices)-1 {
		return false
	}
	parent := make(map[string]string, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	var find func(string) string
	find = func(x string) string {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	for _, e := range edges {
		a, b := find(e.From), find(e.To)
		if a == b {
			return false
		}
		parent[a] = b
	}
	root := find(vertices[0])
	for _, v := range vertices {
		if find(v) != root {
			return false
		}
	}

	return true
}

// bruteForceMST enumerates every (n-1)-edge subset and returns the lightest spanning tree weight.
func bruteForceMST(g *core.Graph) float64 {
	vertices := g.Vertices()
	all := g.Edges()
	k := len(vertices) - 1
	best := math.Inf(1)
	chosen := make([]core.Edge, 0, k)
	var pick func(start int, acc float64)
	pick = func(start int, acc float64) {
		if len(chosen) == k {
			if acc < best && isSpanningTree(vertices, chosen) {
				best = acc
			}
			return
		}
		for i := start; i < len(all); i++ {
			chosen = append(chosen, *all[i])
			pick(i+1, acc+all[i].Weight)
			chosen = chosen[:len(chosen)-1]
		}
	}
	pick(0, 0)

	return best
}

func TestKruskal_Triangle(t *testing.T) {
	edges, total, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, []string{"A|B", "B|C"}, pairKeys(edges))
}

func TestPrim_Triangle(t *testing.T) {
	edges, total, err := prim_kruskal.Prim(buildTriangle(), "C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, []string{"A|B", "B|C"}, pairKeys(edges))
}

func TestMST_InvalidInputs(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph, "unweighted")

	_, _, err = prim_kruskal.Kruskal(core.NewGraph(core.WithDirected(true), core.WithWeighted()))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph, "directed")

	_, _, err = prim_kruskal.Kruskal(core.NewGraph(core.WithWeighted()))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected, "empty")

	_, _, err = prim_kruskal.Prim(buildTriangle(), "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, _, err = prim_kruskal.Prim(buildTriangle(), "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = prim_kruskal.Compute(buildTriangle(), prim_kruskal.DefaultOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestMST_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1)

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestMST_SingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("A")

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	edges, _, err = prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestMST_TieBreakIndependentOfInsertionOrder(t *testing.T) {
	// a square with all sides equal plus equal diagonals
	pairs := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"B", "D"}}

	forward := core.NewGraph(core.WithWeighted())
	for _, p := range pairs {
		_, _ = forward.AddEdge(p[0], p[1], 5)
	}
	backward := core.NewGraph(core.WithWeighted())
	for i := len(pairs) - 1; i >= 0; i-- {
		_, _ = backward.AddEdge(pairs[i][1], pairs[i][0], 5)
	}

	fe, _, err := prim_kruskal.Kruskal(forward)
	require.NoError(t, err)
	be, _, err := prim_kruskal.Kruskal(backward)
	require.NoError(t, err)
	assert.Equal(t, pairKeys(fe), pairKeys(be))
	assert.Equal(t, []string{"A|B", "A|C", "A|D"}, pairKeys(fe))

	pe, _, err := prim_kruskal.Prim(backward, "C")
	require.NoError(t, err)
	assert.Equal(t, pairKeys(fe), pairKeys(pe))
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildCompleteGraph(6, 7)

	ke, kt, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	pe, pt, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim)))
	require.NoError(t, err)

	assert.Equal(t, kt, pt)
	assert.Equal(t, pairKeys(ke), pairKeys(pe))
	assert.Equal(t, kt, prim_kruskal.TotalWeight(ke))
}

func TestMST_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Kruskal weight is minimal over all spanning trees", prop.ForAll(
		func(n int, seed int64) bool {
			g := buildCompleteGraph(n, seed)
			_, total, err := prim_kruskal.Kruskal(g)

			return err == nil && total == bruteForceMST(g)
		},
		gen.IntRange(2, 5),
		gen.Int64(),
	))

	properties.Property("MST has n-1 edges and is a spanning tree", prop.ForAll(
		func(n int, seed int64) bool {
			g := buildCompleteGraph(n, seed)
			edges, _, err := prim_kruskal.Kruskal(g)

			return err == nil && isSpanningTree(g.Vertices(), edges)
		},
		gen.IntRange(2, 12),
		gen.Int64(),
	))

	properties.Property("Prim and Kruskal agree", prop.ForAll(
		func(n int, seed int64) bool {
			g := buildCompleteGraph(n, seed)
			ke, kt, err1 := prim_kruskal.Kruskal(g)
			pe, pt, err2 := prim_kruskal.Prim(g, "T00")
			if err1 != nil || err2 != nil || kt != pt {
				return false
			}

			return fmt.Sprint(pairKeys(ke)) == fmt.Sprint(pairKeys(pe))
		},
		gen.IntRange(2, 12),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
