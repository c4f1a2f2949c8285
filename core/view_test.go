// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poinet/core"
)

// directedRoads builds a tiny directed road net: a two-way street A<->B and a one-way B->C.
func directedRoads(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	g.SetAttribute("crs", "epsg:4326")
	require.NoError(t, g.AddVertex("A", core.WithMetadata(map[string]interface{}{core.AttrX: 0.0, core.AttrY: 0.0})))
	for _, e := range []struct {
		from, to string
		w        float64
		name     string
	}{
		{"A", "B", 10, "two-way"},
		{"B", "A", 10, "two-way"},
		{"B", "C", 4, "one-way"},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w, core.WithEdgeAttrs(map[string]interface{}{
			core.AttrLength: e.w,
			"name":          e.name,
		}))
		require.NoError(t, err)
	}

	return g
}

func TestToUndirectedMultigraph_CountsAndIdentity(t *testing.T) {
	g := directedRoads(t)
	u := core.ToUndirectedMultigraph(g)

	assert.False(t, u.Directed())
	assert.True(t, u.Multigraph())
	assert.Equal(t, g.VertexCount(), u.VertexCount())
	assert.Equal(t, g.EdgeCount(), u.EdgeCount())

	// opposite directed edges become two parallel undirected edges
	ab := u.EdgesBetween("A", "B")
	require.Len(t, ab, 2)
	assert.Equal(t, "e1", ab[0].ID)
	assert.Equal(t, "e2", ab[1].ID)
	assert.Equal(t, 0, ab[0].Key)
	assert.Equal(t, 1, ab[1].Key)

	// the one-way street is traversable both ways once undirected
	assert.True(t, u.HasEdge("C", "B"))
	cb := u.EdgesBetween("C", "B")
	require.Len(t, cb, 1)
	assert.Equal(t, "one-way", cb[0].Attrs["name"])
	assert.Equal(t, 4.0, cb[0].Attrs[core.AttrLength])

	crs, ok := u.Attribute("crs")
	require.True(t, ok)
	assert.Equal(t, "epsg:4326", crs)

	v, err := u.Vertex("A")
	require.NoError(t, err)
	_, _, ok = v.Coordinates()
	assert.True(t, ok)
}

func TestToUndirectedMultigraph_DoesNotMutateInput(t *testing.T) {
	g := directedRoads(t)
	before := g.Stats()

	u := core.ToUndirectedMultigraph(g)
	e, err := u.GetEdge("e3")
	require.NoError(t, err)
	e.Attrs["name"] = "renamed"
	_, err = u.AddEdge("C", "D", 1)
	require.NoError(t, err)

	assert.Equal(t, before, g.Stats())
	assert.False(t, g.HasEdge("C", "B"))
	orig, err := g.GetEdge("e3")
	require.NoError(t, err)
	assert.Equal(t, "one-way", orig.Attrs["name"])
	assert.True(t, orig.Directed)
}

func TestToUndirectedMultigraph_EmptyGraph(t *testing.T) {
	u := core.ToUndirectedMultigraph(core.NewGraph(core.WithDirected(true)))
	assert.Equal(t, 0, u.VertexCount())
	assert.Equal(t, 0, u.EdgeCount())
}
