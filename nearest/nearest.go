// SPDX-License-Identifier: MIT
//
// File: nearest.go
// Role: Snap arbitrary coordinates to the closest graph vertex.
// Determinism:
//   - Vertices are inserted in ID order and coincident vertices collapse onto
//     the lowest ID, so the quadtree shape is fixed for a given graph.
//   - Candidates are ranked by haversine distance, ties by vertex ID.
// Concurrency:
//   - An Index is immutable after NewIndex; queries may run in parallel.

package nearest

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/quadtree"

	"github.com/katalvlaran/poinet/core"
)

var (
	// ErrEmptyIndex indicates a lookup against a graph without vertices.
	ErrEmptyIndex = errors.New("nearest: index is empty")

	// ErrNoCoordinates indicates that no vertex carries numeric x/y attributes.
	ErrNoCoordinates = errors.New("nearest: no vertex has coordinates")
)

// Candidates is the number of planar nearest vertices re-ranked by haversine distance.
const Candidates = 8

// boundPad widens the quadtree bound so a single-vertex graph still has area.
const boundPad = 1e-6

type vertexPoint struct {
	id string
	p  orb.Point
}

func (v vertexPoint) Point() orb.Point { return v.p }

// Index answers nearest-vertex queries over the vertices of one graph.
type Index struct {
	tree *quadtree.Quadtree
	size int
}

// NewIndex indexes every vertex of g that has coordinates (core.AttrX, core.AttrY).
// Vertices without coordinates are left out. Of several vertices sharing one
// coordinate only the lowest ID is indexed, since it wins every tie there.
func NewIndex(g *core.Graph) (*Index, error) {
	vs := g.VerticesMap()
	if len(vs) == 0 {
		return nil, ErrEmptyIndex
	}

	points := make([]vertexPoint, 0, len(vs))
	mp := make(orb.MultiPoint, 0, len(vs))
	taken := make(map[orb.Point]struct{}, len(vs))
	for _, id := range g.Vertices() {
		lon, lat, ok := vs[id].Coordinates()
		if !ok {
			continue
		}
		p := orb.Point{lon, lat}
		if _, dup := taken[p]; dup {
			continue
		}
		taken[p] = struct{}{}
		points = append(points, vertexPoint{id: id, p: p})
		mp = append(mp, p)
	}
	if len(points) == 0 {
		return nil, ErrNoCoordinates
	}

	tree := quadtree.New(mp.Bound().Pad(boundPad))
	for _, vp := range points {
		if err := tree.Add(vp); err != nil {
			return nil, fmt.Errorf("nearest: index vertex %s: %w", vp.id, err)
		}
	}

	return &Index{tree: tree, size: len(points)}, nil
}

// Len returns the number of indexed vertices (distinct locations).
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}

	return ix.size
}

// Nearest returns the ID of the vertex closest to pt and its distance in meters.
func (ix *Index) Nearest(pt orb.Point) (string, float64, error) {
	if ix.Len() == 0 {
		return "", 0, ErrEmptyIndex
	}

	found := ix.tree.KNearest(nil, pt, Candidates)
	best, bestDist := "", 0.0
	for _, c := range found {
		vp := c.(vertexPoint)
		d := geo.DistanceHaversine(pt, vp.p)
		if best == "" || d < bestDist || (d == bestDist && vp.id < best) {
			best, bestDist = vp.id, d
		}
	}

	return best, bestDist, nil
}

// NearestAll snaps each point; the result is aligned with pts.
func (ix *Index) NearestAll(pts []orb.Point) ([]string, error) {
	out := make([]string, len(pts))
	for i, pt := range pts {
		id, _, err := ix.Nearest(pt)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}

	return out, nil
}
