// Package route reconstructs the road paths behind the edges of a terminal
// MST. Every MST edge is an abstract terminal pair; Reconstruct turns it back
// into the sequence of road vertices and edges a renderer can draw.
package route
