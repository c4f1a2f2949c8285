// SPDX-License-Identifier: MIT

package nearest_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/nearest"
	"github.com/katalvlaran/poinet/osmgraph"
)

func located(t *testing.T, coords map[string]orb.Point) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for id, p := range coords {
		require.NoError(t, g.AddVertex(id, core.WithMetadata(map[string]interface{}{
			core.AttrX: p[0],
			core.AttrY: p[1],
		})))
	}

	return g
}

func TestIndex_Nearest(t *testing.T) {
	g := located(t, map[string]orb.Point{
		"a": {0, 0},
		"b": {0.01, 0},
		"c": {0.01, 0.01},
		"d": {-0.02, 0.005},
	})
	require.NoError(t, g.AddVertex("floating"))

	ix, err := nearest.NewIndex(g)
	require.NoError(t, err)
	assert.Equal(t, 4, ix.Len())

	cases := []struct {
		pt   orb.Point
		want string
	}{
		{orb.Point{0.001, 0.001}, "a"},
		{orb.Point{0.009, -0.002}, "b"},
		{orb.Point{0.02, 0.02}, "c"},
		{orb.Point{-1, 0}, "d"},
	}
	for _, tc := range cases {
		id, dist, err := ix.Nearest(tc.pt)
		require.NoError(t, err)
		assert.Equal(t, tc.want, id, "%v", tc.pt)
		assert.GreaterOrEqual(t, dist, 0.0)
	}

	id, dist, err := ix.Nearest(orb.Point{0.01, 0.01})
	require.NoError(t, err)
	assert.Equal(t, "c", id)
	assert.Zero(t, dist)
}

func TestIndex_TieGoesToLowestID(t *testing.T) {
	g := located(t, map[string]orb.Point{"y": {0.001, 0}, "x": {-0.001, 0}})
	ix, err := nearest.NewIndex(g)
	require.NoError(t, err)

	id, _, err := ix.Nearest(orb.Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, "x", id)
}

func TestIndex_CoincidentVerticesPickLowestID(t *testing.T) {
	coords := map[string]orb.Point{"far": {1, 1}}
	for i := 0; i < 3*nearest.Candidates; i++ {
		coords[fmt.Sprintf("v%02d", i)] = orb.Point{0.5, 0.5}
	}
	g := located(t, coords)

	for run := 0; run < 10; run++ {
		ix, err := nearest.NewIndex(g)
		require.NoError(t, err)
		assert.Equal(t, 2, ix.Len(), "coincident vertices share one entry")

		id, dist, err := ix.Nearest(orb.Point{0.5, 0.5001})
		require.NoError(t, err)
		assert.Equal(t, "v00", id)
		assert.Greater(t, dist, 0.0)
	}
}

func TestIndex_SingleVertex(t *testing.T) {
	ix, err := nearest.NewIndex(located(t, map[string]orb.Point{"only": {13.4, 52.5}}))
	require.NoError(t, err)

	ids, err := ix.NearestAll([]orb.Point{{13.5, 52.6}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []string{"only", "only"}, ids)
}

func TestIndex_Errors(t *testing.T) {
	_, err := nearest.NewIndex(core.NewGraph())
	assert.ErrorIs(t, err, nearest.ErrEmptyIndex)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("bare"))
	_, err = nearest.NewIndex(g)
	assert.ErrorIs(t, err, nearest.ErrNoCoordinates)

	var ix *nearest.Index
	_, _, err = ix.Nearest(orb.Point{0, 0})
	assert.ErrorIs(t, err, nearest.ErrEmptyIndex)
}

func TestIndex_TownSchools(t *testing.T) {
	g, err := osmgraph.LoadFile(context.Background(), "../osmgraph/testdata/town.osm")
	require.NoError(t, err)
	ix, err := nearest.NewIndex(g)
	require.NoError(t, err)

	ids, err := ix.NearestAll([]orb.Point{{0, 0.0001}, {0.0021, 0.0009}, {0.002, 0}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "3"}, ids)
}
