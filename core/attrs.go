// SPDX-License-Identifier: MIT
//
// File: attrs.go
// Role: Typed accessors over the opaque attribute bags of vertices and edges.
// Policy:
//   - Only numeric coercion lives here; unknown keys are never interpreted.

package core

import (
	"encoding/json"
	"math"
)

// Numeric coerces an attribute value to float64.
// Accepted: float64, float32, int, int32, int64, uint32, uint64, json.Number.
// The boolean is false for any other type or for NaN.
func Numeric(v interface{}) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

// Attr returns the raw attribute stored under key and whether it exists.
func (e *Edge) Attr(key string) (interface{}, bool) {
	if e == nil || e.Attrs == nil {
		return nil, false
	}
	v, ok := e.Attrs[key]

	return v, ok
}

// Other returns the endpoint of e opposite to id. For a self-loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Coordinates returns the (longitude, latitude) stored under AttrX/AttrY.
// ok is false if either key is missing or non-numeric.
func (v *Vertex) Coordinates() (lon, lat float64, ok bool) {
	if v == nil || v.Metadata == nil {
		return 0, 0, false
	}
	lon, okX := Numeric(v.Metadata[AttrX])
	lat, okY := Numeric(v.Metadata[AttrY])
	if !okX || !okY {
		return 0, 0, false
	}

	return lon, lat, true
}
