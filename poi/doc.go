// SPDX-License-Identifier: MIT

// Package poi supplies the points of interest that become MST terminals.
//
// A Source answers one Category at a time (amenity=library, amenity=school...).
// Collect walks an ordered list of categories and keeps the first one that
// yields at least one usable point, so a city without libraries falls back to
// schools. Each Feature carries a Geometry: a Point stands for itself, a
// Polygon or MultiPolygon for its area-weighted centroid, and anything else is
// Invalid and gets skipped.
//
// Three sources ship with the package: OSMSource over a decoded osmgraph
// Extract (nodes, closed ways and multipolygon relations), GeoJSONSource over a FeatureCollection, and StaticSource for fixed
// lists.
package poi
