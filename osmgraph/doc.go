// SPDX-License-Identifier: MIT

// Package osmgraph turns an OpenStreetMap extract into the road graph that the
// rest of poinet works on.
//
// Decode reads a .osm (XML) or .osm.pbf extract once into an Extract. The
// Extract then yields a directed, weighted multigraph for a network type:
//
//	x, err := osmgraph.DecodeFile(ctx, "city.osm.pbf")
//	g, err := x.Graph(osmgraph.WithNetwork(osmgraph.NetworkDrive))
//
// Vertices are OSM nodes keyed by their decimal ID, with longitude and latitude
// under core.AttrX and core.AttrY. Every edge carries its haversine length in
// meters under core.AttrLength (also used as Edge.Weight), the way ID, highway
// class and name. Two-way streets produce one edge per direction; the
// backward copy is marked reversed. With simplification on (the default), only
// intersections and dead ends remain vertices and the interior shape of each
// street segment is stored as an orb.LineString under AttrGeometry.
package osmgraph
