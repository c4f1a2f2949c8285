// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Formats, network types, options, attribute keys and sentinel errors
//       of the OSM graph source.

package osmgraph

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors returned by the graph source.
var (
	// ErrUnknownFormat indicates a file extension or Format value that is neither XML nor PBF.
	ErrUnknownFormat = errors.New("osmgraph: unknown extract format")

	// ErrUnknownNetworkType indicates a network type outside drive/walk/bike/all.
	ErrUnknownNetworkType = errors.New("osmgraph: unknown network type")

	// ErrEmptyGraph indicates that no way of the extract passed the network filter.
	ErrEmptyGraph = errors.New("osmgraph: no routable ways in extract")
)

// Edge and vertex attribute keys set by the graph source, next to core.AttrX,
// core.AttrY and core.AttrLength.
const (
	AttrOSMID    = "osmid"
	AttrHighway  = "highway"
	AttrName     = "name"
	AttrMaxSpeed = "maxspeed"
	AttrOneway   = "oneway"
	AttrReversed = "reversed"
	AttrGeometry = "geometry"
)

// Graph-level attribute keys.
const (
	GraphAttrCRS         = "crs"
	GraphAttrNetworkType = "network_type"
	GraphAttrCreatedWith = "created_with"
	GraphAttrSimplified  = "simplified"
)

// Format identifies the encoding of an OSM extract.
type Format int

const (
	// FormatXML is the plain .osm XML encoding.
	FormatXML Format = iota + 1
	// FormatPBF is the protocol-buffer .osm.pbf encoding.
	FormatPBF
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatPBF:
		return "pbf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath derives the Format from a file name.
// Recognized: .osm and .xml (XML), .pbf (PBF, including .osm.pbf).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".osm", ".xml":
		return FormatXML, nil
	case ".pbf":
		return FormatPBF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// NetworkType selects which ways become graph edges.
type NetworkType string

const (
	NetworkDrive NetworkType = "drive"
	NetworkWalk  NetworkType = "walk"
	NetworkBike  NetworkType = "bike"
	NetworkAll   NetworkType = "all"
)

// ParseNetworkType validates s as a NetworkType.
func ParseNetworkType(s string) (NetworkType, error) {
	switch nt := NetworkType(strings.ToLower(strings.TrimSpace(s))); nt {
	case NetworkDrive, NetworkWalk, NetworkBike, NetworkAll:
		return nt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNetworkType, s)
	}
}

// Options configures graph construction from an extract.
type Options struct {
	// Network selects the way filter and one-way handling. Default: drive.
	Network NetworkType

	// Simplify keeps only intersections and way ends as vertices and stores the
	// dropped interior nodes as the edge geometry. Default: true.
	Simplify bool

	// Logger receives build statistics. Default: zap.NewNop().
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithNetwork sets the network type.
func WithNetwork(nt NetworkType) Option {
	return func(o *Options) { o.Network = nt }
}

// WithSimplify toggles topological simplification.
func WithSimplify(on bool) Option {
	return func(o *Options) { o.Simplify = on }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the drive network, simplified, silent.
func DefaultOptions() Options {
	return Options{
		Network:  NetworkDrive,
		Simplify: true,
		Logger:   zap.NewNop(),
	}
}
