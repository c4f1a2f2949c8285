// SPDX-License-Identifier: MIT
//
// File: geojson.go
// Role: POI sources held in memory: GeoJSON feature collections and static lists.

package poi

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSONSource answers category queries from a GeoJSON FeatureCollection.
// A feature matches when its string property named by the category key equals
// the category value.
type GeoJSONSource struct {
	fc *geojson.FeatureCollection
}

// NewGeoJSONSource wraps an already decoded collection.
func NewGeoJSONSource(fc *geojson.FeatureCollection) *GeoJSONSource {
	return &GeoJSONSource{fc: fc}
}

// ReadGeoJSON decodes a FeatureCollection from r.
func ReadGeoJSON(r io.Reader) (*GeoJSONSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("poi: read geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("poi: decode geojson: %w", err)
	}

	return NewGeoJSONSource(fc), nil
}

// ReadGeoJSONFile decodes the FeatureCollection stored at path.
func ReadGeoJSONFile(path string) (*GeoJSONSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("poi: open geojson: %w", err)
	}
	defer f.Close()

	return ReadGeoJSON(f)
}

// Features returns matching features in collection order.
func (s *GeoJSONSource) Features(ctx context.Context, c Category) ([]Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Feature
	for i, f := range s.fc.Features {
		tags := stringProps(f.Properties)
		if !c.Matches(tags) {
			continue
		}
		id := fmt.Sprintf("feature/%d", i)
		if f.ID != nil {
			id = fmt.Sprint(f.ID)
		}
		out = append(out, Feature{ID: id, Name: tags["name"], Tags: tags, Geometry: fromOrb(f.Geometry)})
	}

	return out, nil
}

func stringProps(props geojson.Properties) map[string]string {
	tags := make(map[string]string, len(props))
	for k, v := range props {
		if s, ok := v.(string); ok {
			tags[k] = s
		}
	}

	return tags
}

// fromOrb maps an orb geometry onto the POI geometry variants.
func fromOrb(g orb.Geometry) Geometry {
	switch v := g.(type) {
	case orb.Point:
		return Point(v)
	case orb.Polygon:
		return Polygon(v)
	case orb.MultiPolygon:
		return MultiPolygon(v)
	case nil:
		return Invalid{Reason: "missing geometry"}
	default:
		return Invalid{Reason: "unsupported geometry " + g.GeoJSONType()}
	}
}

// StaticSource serves fixed features per category.
type StaticSource map[Category][]Feature

// Features returns a copy of the features registered for c.
func (s StaticSource) Features(ctx context.Context, c Category) ([]Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]Feature(nil), s[c]...), nil
}
