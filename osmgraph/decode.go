// SPDX-License-Identifier: MIT
//
// File: decode.go
// Role: Single-pass decoding of an OSM extract into an in-memory Extract.
// Determinism:
//   - Ways and relations are kept sorted by ID regardless of scanner order.

package osmgraph

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"github.com/katalvlaran/poinet/core"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

// Extract holds the nodes, ways and area relations of an OSM extract. It is the
// shared input of the road graph and of the OSM-backed POI source.
type Extract struct {
	// Nodes maps every decoded node by ID.
	Nodes map[osm.NodeID]*osm.Node

	// Ways lists every decoded way, sorted by ID.
	Ways []*osm.Way

	// Relations lists the multipolygon and boundary relations, sorted by ID.
	// Other relation types are dropped while decoding.
	Relations []*osm.Relation
}

// Way returns the way with the given ID, or nil.
func (x *Extract) Way(id osm.WayID) *osm.Way {
	i := sort.Search(len(x.Ways), func(i int) bool { return x.Ways[i].ID >= id })
	if i < len(x.Ways) && x.Ways[i].ID == id {
		return x.Ways[i]
	}

	return nil
}

// areaRelation reports whether r describes an area (type=multipolygon or boundary).
func areaRelation(r *osm.Relation) bool {
	switch r.Tags.Find("type") {
	case "multipolygon", "boundary":
		return true
	default:
		return false
	}
}

// objectScanner is the method set shared by the osmxml and osmpbf scanners.
type objectScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

// Decode reads an extract of the given format from r.
// Cancellation of ctx stops the scanner and is returned as the error.
func Decode(ctx context.Context, r io.Reader, format Format) (*Extract, error) {
	var sc objectScanner
	switch format {
	case FormatXML:
		sc = osmxml.New(ctx, r)
	case FormatPBF:
		sc = osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	defer sc.Close()

	x := &Extract{Nodes: make(map[osm.NodeID]*osm.Node)}
	for sc.Scan() {
		switch object := sc.Object().(type) {
		case *osm.Node:
			x.Nodes[object.ID] = object
		case *osm.Way:
			x.Ways = append(x.Ways, object)
		case *osm.Relation:
			if areaRelation(object) {
				x.Relations = append(x.Relations, object)
			}
		default:
			continue
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("osmgraph: decode %s: %w", format, err)
	}
	sort.Slice(x.Ways, func(i, j int) bool { return x.Ways[i].ID < x.Ways[j].ID })
	sort.Slice(x.Relations, func(i, j int) bool { return x.Relations[i].ID < x.Relations[j].ID })

	return x, nil
}

// DecodeFile opens path and decodes it with the format implied by its extension.
func DecodeFile(ctx context.Context, path string) (*Extract, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osmgraph: open extract: %w", err)
	}
	defer f.Close()

	return Decode(ctx, f, format)
}

// Load decodes r and builds the road graph in one step.
func Load(ctx context.Context, r io.Reader, format Format, opts ...Option) (*core.Graph, error) {
	x, err := Decode(ctx, r, format)
	if err != nil {
		return nil, err
	}

	return x.Graph(opts...)
}

// LoadFile is Load over a file whose format is implied by its extension.
func LoadFile(ctx context.Context, path string, opts ...Option) (*core.Graph, error) {
	x, err := DecodeFile(ctx, path)
	if err != nil {
		return nil, err
	}

	return x.Graph(opts...)
}
