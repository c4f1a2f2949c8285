// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Road graph construction from a decoded Extract.
//
// Algorithm:
//   - Keep ways accepted by the network filter; split each at nodes missing from
//     the extract so every run has coordinates.
//   - Count node references over all runs; run ends count once more. A node
//     referenced more than once is an intersection or a run end.
//   - Simplified: emit one edge per stretch between consecutive such nodes, with
//     the interior nodes kept as the edge geometry. Otherwise one edge per node pair.
//   - Each stretch becomes u→v and, unless one-way, v→u marked reversed.
// Determinism:
//   - Ways are visited in ID order, so edge IDs are stable for a given extract.

package osmgraph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/poinet/core"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// CRS is the coordinate reference system of every graph built here.
const CRS = "epsg:4326"

// CreatedWith tags graphs built by this package.
const CreatedWith = "poinet"

// wayRun is a maximal stretch of a way whose nodes all have coordinates.
type wayRun struct {
	way   *osm.Way
	tags  map[string]string
	nodes []*osm.Node
}

// Graph builds the directed road multigraph of the extract.
// Vertex IDs are decimal OSM node IDs; edges carry length in meters.
//
// Errors: ErrUnknownNetworkType, ErrEmptyGraph.
func (x *Extract) Graph(opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := ParseNetworkType(string(cfg.Network)); err != nil {
		return nil, err
	}

	runs := x.runs(cfg.Network)
	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: network %s", ErrEmptyGraph, cfg.Network)
	}

	refs := make(map[osm.NodeID]int)
	for _, r := range runs {
		for _, n := range r.nodes {
			refs[n.ID]++
		}
		refs[r.nodes[0].ID]++
		refs[r.nodes[len(r.nodes)-1].ID]++
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	g.SetAttribute(GraphAttrCRS, CRS)
	g.SetAttribute(GraphAttrNetworkType, string(cfg.Network))
	g.SetAttribute(GraphAttrCreatedWith, CreatedWith)
	g.SetAttribute(GraphAttrSimplified, cfg.Simplify)

	for _, r := range runs {
		dir := cfg.Network.travel(r.tags)
		last := 0
		for i := 1; i < len(r.nodes); i++ {
			if cfg.Simplify && refs[r.nodes[i].ID] < 2 {
				continue
			}
			if err := addStretch(g, r, r.nodes[last:i+1], dir, cfg.Simplify); err != nil {
				return nil, err
			}
			last = i
		}
	}

	cfg.Logger.Debug("osm road graph built",
		zap.String("network", string(cfg.Network)),
		zap.Bool("simplified", cfg.Simplify),
		zap.Int("ways", len(x.Ways)),
		zap.Int("runs", len(runs)),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

// runs returns the accepted ways split at nodes without coordinates.
// Runs shorter than two nodes are dropped.
func (x *Extract) runs(nt NetworkType) []wayRun {
	var out []wayRun
	for _, w := range x.Ways {
		tags := w.TagMap()
		if !nt.accepts(tags) {
			continue
		}
		var cur []*osm.Node
		flush := func() {
			if len(cur) > 1 {
				out = append(out, wayRun{way: w, tags: tags, nodes: cur})
			}
			cur = nil
		}
		for _, id := range w.Nodes.NodeIDs() {
			n, ok := x.Nodes[id]
			if !ok {
				flush()
				continue
			}
			cur = append(cur, n)
		}
		flush()
	}

	return out
}

// addStretch inserts the edge(s) for one stretch of a run.
func addStretch(g *core.Graph, r wayRun, nodes []*osm.Node, dir direction, simplified bool) error {
	line := make(orb.LineString, len(nodes))
	for i, n := range nodes {
		line[i] = orb.Point{n.Lon, n.Lat}
	}
	for _, n := range []*osm.Node{nodes[0], nodes[len(nodes)-1]} {
		if err := g.AddVertex(nodeID(n.ID), core.WithMetadata(nodeAttrs(n))); err != nil {
			return err
		}
	}
	var length float64
	for i := 1; i < len(line); i++ {
		length += geo.DistanceHaversine(line[i-1], line[i])
	}

	u, v := nodeID(nodes[0].ID), nodeID(nodes[len(nodes)-1].ID)
	if dir != backwardOnly {
		if _, err := g.AddEdge(u, v, length, core.WithEdgeAttrs(edgeAttrs(r, line, length, dir, false, simplified))); err != nil {
			return err
		}
	}
	if dir != forwardOnly {
		rev := make(orb.LineString, len(line))
		for i, p := range line {
			rev[len(line)-1-i] = p
		}
		if _, err := g.AddEdge(v, u, length, core.WithEdgeAttrs(edgeAttrs(r, rev, length, dir, true, simplified))); err != nil {
			return err
		}
	}

	return nil
}

func nodeID(id osm.NodeID) string {
	return strconv.FormatInt(int64(id), 10)
}

func nodeAttrs(n *osm.Node) map[string]interface{} {
	md := map[string]interface{}{
		core.AttrX: n.Lon,
		core.AttrY: n.Lat,
		AttrOSMID:  int64(n.ID),
	}
	if h := n.Tags.Find("highway"); h != "" {
		md[AttrHighway] = h
	}

	return md
}

func edgeAttrs(r wayRun, line orb.LineString, length float64, dir direction, reversed, simplified bool) map[string]interface{} {
	attrs := map[string]interface{}{
		core.AttrLength: length,
		AttrOSMID:       int64(r.way.ID),
		AttrHighway:     r.tags["highway"],
		AttrOneway:      dir != bothWays,
		AttrReversed:    reversed,
	}
	if name := r.tags["name"]; name != "" {
		attrs[AttrName] = name
	}
	if ms := r.tags["maxspeed"]; ms != "" {
		attrs[AttrMaxSpeed] = ms
	}
	if simplified {
		attrs[AttrGeometry] = line
	}

	return attrs
}
