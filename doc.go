// SPDX-License-Identifier: MIT

// Package poinet connects points of interest over a road network with a
// minimum spanning tree of shortest road paths.
//
// A run reads an OpenStreetMap extract (XML or PBF) into a directed road
// graph (osmgraph), normalizes it to an undirected multigraph (core),
// collects POIs of the first category that yields any (poi), snaps each POI
// to its nearest road vertex (nearest), computes shortest paths between all
// distinct snapped vertices (terminal, dijkstra), takes the MST of that
// complete terminal graph (prim_kruskal) and expands every MST edge back into
// its road path (route). Package pipeline wires the phases together with
// configuration, zap logging and Prometheus metrics; cmd/poinet is the CLI.
//
//	cfg, _ := pipeline.LoadConfig("poinet.yaml")
//	r, _ := pipeline.NewRunner(cfg)
//	res, err := r.Run(ctx)
//	_ = res.WriteReport(os.Stdout, cfg.Unit)
package poinet
