// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, ignoring edge
// weights: hop depths, parent links, visit order and reachability.
//
// The terminal graph builder uses Unreachable to reject a disconnected
// terminal set in linear time before any shortest-path search starts.
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	path, err := res.PathTo("C")
package bfs
