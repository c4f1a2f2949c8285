// SPDX-License-Identifier: MIT

// Package nearest snaps coordinates to graph vertices.
//
// NewIndex loads every vertex with longitude/latitude attributes into a
// quadtree. Nearest takes the few planar-closest vertices from the tree and
// ranks them by great-circle distance, so results match a haversine lookup for
// city-scale extracts.
package nearest
