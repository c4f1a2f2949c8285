// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Text and GeoJSON renderings of a Result.

package pipeline

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/poinet/core"
	"github.com/katalvlaran/poinet/osmgraph"
)

// Feature kinds set in the "kind" property of GeoJSON output.
const (
	KindRoute    = "route"
	KindTerminal = "terminal"
	KindPOI      = "poi"
)

// unitFactor returns meters per unit; anything but km reports meters.
func unitFactor(unit string) float64 {
	if unit == "km" {
		return 1000
	}

	return 1
}

// WriteReport prints the MST total with two decimals, e.g.
// "Total MST length between selected POIs: 12.34 km".
func (res *Result) WriteReport(w io.Writer, unit string) error {
	if unit != "km" {
		unit = "m"
	}
	_, err := fmt.Fprintf(w, "Total MST length between selected POIs: %.2f %s\n", res.TotalLength/unitFactor(unit), unit)

	return err
}

// GeoJSON renders routes as LineStrings, terminals as Points and POIs as their
// representative Points, in that order.
func (res *Result) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, rt := range res.Routes {
		f := geojson.NewFeature(routeLine(res.Graph, rt.Path.Nodes, rt.Path.Edges))
		f.Properties["kind"] = KindRoute
		f.Properties["index"] = i
		f.Properties["from"] = rt.From
		f.Properties["to"] = rt.To
		f.Properties["length"] = rt.Path.Length
		f.Properties["road_edges"] = len(rt.Path.Edges)
		fc.Append(f)
	}

	for _, id := range res.Terminals {
		pt, ok := vertexPoint(res.Graph, id)
		if !ok {
			continue
		}
		f := geojson.NewFeature(pt)
		f.Properties["kind"] = KindTerminal
		f.Properties["id"] = id
		fc.Append(f)
	}

	if res.POIs != nil {
		for i, feat := range res.POIs.Features {
			f := geojson.NewFeature(res.POIs.Points[i])
			f.Properties["kind"] = KindPOI
			f.Properties["id"] = feat.ID
			f.Properties["category"] = res.POIs.Category.String()
			if feat.Name != "" {
				f.Properties["name"] = feat.Name
			}
			if i < len(res.Snapped) {
				f.Properties["terminal"] = res.Snapped[i]
			}
			fc.Append(f)
		}
	}

	return fc
}

// WriteGeoJSON writes GeoJSON() to w.
func (res *Result) WriteGeoJSON(w io.Writer) error {
	data, err := res.GeoJSON().MarshalJSON()
	if err != nil {
		return fmt.Errorf("pipeline: encode geojson: %w", err)
	}
	_, err = w.Write(data)

	return err
}

// routeLine stitches the geometry of a path. Edges with a stored geometry
// contribute it in travel direction; others contribute their end vertices.
func routeLine(g *core.Graph, nodes []string, edges []*core.Edge) orb.LineString {
	var line orb.LineString
	push := func(p orb.Point) {
		if n := len(line); n > 0 && line[n-1] == p {
			return
		}
		line = append(line, p)
	}

	for i, e := range edges {
		if geom, ok := e.Attrs[osmgraph.AttrGeometry].(orb.LineString); ok && len(geom) > 1 {
			if nodes[i] == e.From {
				for _, p := range geom {
					push(p)
				}
			} else {
				for j := len(geom) - 1; j >= 0; j-- {
					push(geom[j])
				}
			}
			continue
		}
		for _, id := range []string{nodes[i], nodes[i+1]} {
			if p, ok := vertexPoint(g, id); ok {
				push(p)
			}
		}
	}
	if len(line) == 0 && len(nodes) > 0 {
		if p, ok := vertexPoint(g, nodes[0]); ok {
			line = append(line, p)
		}
	}

	return line
}

func vertexPoint(g *core.Graph, id string) (orb.Point, bool) {
	v, err := g.Vertex(id)
	if err != nil {
		return orb.Point{}, false
	}
	lon, lat, ok := v.Coordinates()

	return orb.Point{lon, lat}, ok
}
