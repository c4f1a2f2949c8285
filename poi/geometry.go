// SPDX-License-Identifier: MIT
//
// File: geometry.go
// Role: Geometry capability and its variants.

package poi

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Geometry is any POI shape that can be reduced to one point.
type Geometry interface {
	Representative() (orb.Point, error)
}

// Point is a POI located at a single coordinate; it represents itself.
type Point orb.Point

// Representative returns the point. NaN or infinite coordinates are invalid.
func (p Point) Representative() (orb.Point, error) {
	if !finite(p[0]) || !finite(p[1]) {
		return orb.Point{}, fmt.Errorf("%w: non-finite point", ErrInvalidGeometry)
	}

	return orb.Point(p), nil
}

// Polygon is an area POI represented by its planar centroid.
type Polygon orb.Polygon

// Representative returns the area-weighted centroid of the polygon.
// An empty polygon, an outer ring that is not closed or has fewer than four
// points, or a zero-area outer ring is invalid.
func (p Polygon) Representative() (orb.Point, error) {
	if len(p) == 0 {
		return orb.Point{}, fmt.Errorf("%w: empty polygon", ErrInvalidGeometry)
	}
	outer := p[0]
	if len(outer) < 4 || outer[0] != outer[len(outer)-1] {
		return orb.Point{}, fmt.Errorf("%w: outer ring not closed", ErrInvalidGeometry)
	}
	c, area := planar.CentroidArea(orb.Polygon(p))
	if area == 0 || math.IsNaN(area) {
		return orb.Point{}, fmt.Errorf("%w: zero-area polygon", ErrInvalidGeometry)
	}
	if !finite(c[0]) || !finite(c[1]) {
		return orb.Point{}, fmt.Errorf("%w: non-finite centroid", ErrInvalidGeometry)
	}

	return c, nil
}

// MultiPolygon is an area POI made of several parts, such as an OSM
// multipolygon relation. It is represented by the area-weighted centroid of
// all parts.
type MultiPolygon orb.MultiPolygon

// Representative returns the centroid of the union of the parts. Every part
// must satisfy the Polygon rules.
func (mp MultiPolygon) Representative() (orb.Point, error) {
	if len(mp) == 0 {
		return orb.Point{}, fmt.Errorf("%w: empty multipolygon", ErrInvalidGeometry)
	}
	for i, p := range mp {
		if _, err := Polygon(p).Representative(); err != nil {
			return orb.Point{}, fmt.Errorf("part %d: %w", i, err)
		}
	}
	c, area := planar.CentroidArea(orb.MultiPolygon(mp))
	if area == 0 || math.IsNaN(area) || !finite(c[0]) || !finite(c[1]) {
		return orb.Point{}, fmt.Errorf("%w: degenerate multipolygon", ErrInvalidGeometry)
	}

	return c, nil
}

// Invalid stands for a shape the source could not turn into a point or an area.
type Invalid struct {
	Reason string
}

// Representative always fails with ErrInvalidGeometry.
func (g Invalid) Representative() (orb.Point, error) {
	return orb.Point{}, fmt.Errorf("%w: %s", ErrInvalidGeometry, g.Reason)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
