// SPDX-License-Identifier: MIT
//
// File: osm.go
// Role: POI source backed by a decoded OSM extract.

package poi

import (
	"context"
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"

	"github.com/katalvlaran/poinet/osmgraph"
)

// OSMSource answers category queries from the nodes, ways and area relations
// of an extract. Tagged nodes become Points and closed tagged ways become
// Polygons. Multipolygon relations are assembled from their member ways into a
// Polygon or MultiPolygon. Open ways, shapes referencing nodes outside the
// extract and relations without a closed outer ring become Invalid.
type OSMSource struct {
	x *osmgraph.Extract
}

// NewOSMSource wraps an extract. The extract must not be modified afterwards.
func NewOSMSource(x *osmgraph.Extract) *OSMSource {
	return &OSMSource{x: x}
}

// Features returns matching nodes, then ways, then relations, each by ID.
func (s *OSMSource) Features(ctx context.Context, c Category) ([]Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var nodes []*osm.Node
	for _, n := range s.x.Nodes {
		if n.Tags.Find(c.Key) == c.Value {
			nodes = append(nodes, n)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	out := make([]Feature, 0, len(nodes))
	for _, n := range nodes {
		tags := n.TagMap()
		out = append(out, Feature{
			ID:       fmt.Sprintf("node/%d", n.ID),
			Name:     tags["name"],
			Tags:     tags,
			Geometry: Point{n.Lon, n.Lat},
		})
	}

	for _, w := range s.x.Ways {
		tags := w.TagMap()
		if !c.Matches(tags) {
			continue
		}
		out = append(out, Feature{
			ID:       fmt.Sprintf("way/%d", w.ID),
			Name:     tags["name"],
			Tags:     tags,
			Geometry: s.wayGeometry(w),
		})
	}

	for _, r := range s.x.Relations {
		tags := r.TagMap()
		if !c.Matches(tags) {
			continue
		}
		out = append(out, Feature{
			ID:       fmt.Sprintf("relation/%d", r.ID),
			Name:     tags["name"],
			Tags:     tags,
			Geometry: s.relationGeometry(r),
		})
	}

	return out, nil
}

func (s *OSMSource) wayGeometry(w *osm.Way) Geometry {
	ids := w.Nodes.NodeIDs()
	if len(ids) < 4 || ids[0] != ids[len(ids)-1] {
		return Invalid{Reason: fmt.Sprintf("way %d is not closed", w.ID)}
	}
	ring := make(orb.Ring, 0, len(ids))
	for _, id := range ids {
		n, ok := s.x.Nodes[id]
		if !ok {
			return Invalid{Reason: fmt.Sprintf("way %d references missing node %d", w.ID, id)}
		}
		ring = append(ring, orb.Point{n.Lon, n.Lat})
	}

	return Polygon{ring}
}

// relationGeometry joins the outer and inner member ways of r into rings.
func (s *OSMSource) relationGeometry(r *osm.Relation) Geometry {
	o := &osm.OSM{Relations: osm.Relations{r}}
	seen := make(map[osm.NodeID]struct{})
	for _, m := range r.Members {
		if m.Type != osm.TypeWay {
			continue
		}
		w := s.x.Way(osm.WayID(m.Ref))
		if w == nil {
			return Invalid{Reason: fmt.Sprintf("relation %d references missing way %d", r.ID, m.Ref)}
		}
		o.Ways = append(o.Ways, w)
		for _, id := range w.Nodes.NodeIDs() {
			n, ok := s.x.Nodes[id]
			if !ok {
				return Invalid{Reason: fmt.Sprintf("relation %d references missing node %d", r.ID, id)}
			}
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				o.Nodes = append(o.Nodes, n)
			}
		}
	}

	fc, err := osmgeojson.Convert(o, osmgeojson.NoMeta(true), osmgeojson.NoRelationMembership(true))
	if err != nil {
		return Invalid{Reason: fmt.Sprintf("relation %d: %v", r.ID, err)}
	}
	id := fmt.Sprintf("relation/%d", r.ID)
	for _, f := range fc.Features {
		if f.ID == id {
			return fromOrb(f.Geometry)
		}
	}

	return Invalid{Reason: fmt.Sprintf("relation %d has no closed outer ring", r.ID)}
}
