// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/dijkstra"
	"github.com/katalvlaran/poinet/pipeline"
	"github.com/katalvlaran/poinet/poi"
	"github.com/katalvlaran/poinet/route"
	"github.com/katalvlaran/poinet/terminal"
)

const townOSM = "../osmgraph/testdata/town.osm"

// step is the haversine length of 0.001 degrees along the equator.
var step = geo.DistanceHaversine(orb.Point{0, 0}, orb.Point{0.001, 0})

func townConfig() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.Place = "Fixture Town"
	cfg.Source.OSM = townOSM
	cfg.Workers = 2

	return cfg
}

func TestRunner_Town(t *testing.T) {
	r, err := pipeline.NewRunner(townConfig(), pipeline.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.False(t, res.Graph.Directed())
	assert.Equal(t, "amenity=school", res.POIs.Category.String(), "no library in town, schools are the fallback")
	assert.Equal(t, []string{"1", "4", "3"}, res.Snapped)
	assert.Equal(t, []string{"1", "3", "4"}, res.Terminals)

	require.Len(t, res.MST, 2)
	assert.InDelta(t, 3*step, res.TotalLength, 1e-6)
	assert.InDelta(t, res.TotalLength, route.TotalLength(res.Routes), 1e-9)

	require.Len(t, res.Routes, 2)
	assert.Equal(t, "3", res.Routes[0].From)
	assert.Equal(t, "4", res.Routes[0].To)
	assert.Equal(t, "1", res.Routes[1].From)
	assert.Equal(t, "3", res.Routes[1].To)
	for i, rt := range res.Routes {
		assert.Equal(t, rt.From, rt.Path.Nodes[0], "route %d", i)
		assert.Equal(t, rt.To, rt.Path.Nodes[len(rt.Path.Nodes)-1], "route %d", i)
		assert.InDelta(t, rt.Weight, rt.Path.Length, 1e-9, "route %d", i)
	}

	var report bytes.Buffer
	require.NoError(t, res.WriteReport(&report, "km"))
	assert.Equal(t, "Total MST length between selected POIs: 0.33 km\n", report.String())
	report.Reset()
	require.NoError(t, res.WriteReport(&report, "m"))
	assert.Equal(t, "Total MST length between selected POIs: 333.96 m\n", report.String())

	m := r.Metrics()
	assert.Equal(t, 3.0, testutil.ToFloat64(m.POIsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.TerminalsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ShortestPathRuns), "one search per terminal but the last")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("success")))
	assert.Equal(t, 7, testutil.CollectAndCount(m.PhaseDuration))
	assert.InDelta(t, res.TotalLength, testutil.ToFloat64(m.MSTWeight.WithLabelValues("length")), 1e-9)
}

func TestRunner_PrimMatchesKruskal(t *testing.T) {
	cfg := townConfig()
	kr, err := pipeline.NewRunner(cfg)
	require.NoError(t, err)
	kres, err := kr.Run(context.Background())
	require.NoError(t, err)

	cfg.MSTMethod = "prim"
	pr, err := pipeline.NewRunner(cfg)
	require.NoError(t, err)
	pres, err := pr.Run(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, kres.TotalLength, pres.TotalLength, 1e-9)
	assert.ElementsMatch(t, route.EdgeIDs(kres.Routes), route.EdgeIDs(pres.Routes))
}

func TestResult_GeoJSON(t *testing.T) {
	r, err := pipeline.NewRunner(townConfig())
	require.NoError(t, err)
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	fc := res.GeoJSON()
	kinds := map[string]int{}
	for _, f := range fc.Features {
		kinds[f.Properties.MustString("kind")]++
	}
	assert.Equal(t, map[string]int{pipeline.KindRoute: 2, pipeline.KindTerminal: 3, pipeline.KindPOI: 3}, kinds)

	mainStreet, ok := fc.Features[1].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{0, 0}, {0.001, 0}, {0.002, 0}}, mainStreet)
	assert.Equal(t, "1", fc.Features[1].Properties.MustString("from"))

	var buf bytes.Buffer
	require.NoError(t, res.WriteGeoJSON(&buf))
	back, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, back.Features, len(fc.Features))
}

// twoIslands has two components: a-b and c-d.
func twoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	coords := map[string]orb.Point{"a": {0, 0}, "b": {0.001, 0}, "c": {1, 1}, "d": {1.001, 1}}
	for id, p := range coords {
		require.NoError(t, g.AddVertex(id, core.WithMetadata(map[string]interface{}{core.AttrX: p[0], core.AttrY: p[1]})))
	}
	for _, e := range [][2]string{{"a", "b"}, {"c", "d"}} {
		_, err := g.AddEdge(e[0], e[1], step, core.WithEdgeAttrs(map[string]interface{}{core.AttrLength: step}))
		require.NoError(t, err)
	}

	return g
}

var school = poi.Category{Key: "amenity", Value: "school"}

func TestRunner_SolveErrors(t *testing.T) {
	r, err := pipeline.NewRunner(townConfig())
	require.NoError(t, err)
	g := twoIslands(t)

	cases := []struct {
		name string
		src  poi.Source
		want error
	}{
		{"no pois", poi.StaticSource{}, poi.ErrNoPOIsFound},
		{"single terminal", poi.StaticSource{school: {
			{ID: "s1", Geometry: poi.Point{0, 0.0001}},
			{ID: "s2", Geometry: poi.Point{0.0001, 0}},
		}}, terminal.ErrInsufficientTerminals},
		{"disconnected", poi.StaticSource{school: {
			{ID: "s1", Geometry: poi.Point{0, 0}},
			{ID: "s2", Geometry: poi.Point{1, 1}},
		}}, dijkstra.ErrNoPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Solve(context.Background(), g, tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRunner_SolveCanceled(t *testing.T) {
	r, err := pipeline.NewRunner(townConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Solve(ctx, twoIslands(t), poi.StaticSource{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_GeoJSONSource(t *testing.T) {
	cfg := townConfig()
	cfg.Source.POIs = "testdata/pois.geojson"
	cfg.Categories = []string{"amenity=library"}
	r, err := pipeline.NewRunner(cfg)
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, res.Terminals)
	assert.InDelta(t, 3*step, res.TotalLength, 1e-6)
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	_, err := pipeline.NewRunner(pipeline.DefaultConfig())
	assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)
}
