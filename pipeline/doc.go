// SPDX-License-Identifier: MIT

// Package pipeline wires the poinet phases into one run.
//
// A Runner loads an OSM extract, normalizes the road graph to an undirected
// multigraph, collects POIs with category fallback, snaps them to their
// nearest vertices, builds the complete terminal graph, extracts its minimum
// spanning tree and reconstructs the road route behind every tree edge.
//
//	cfg, err := pipeline.LoadConfig("poinet.yaml")
//	r, err := pipeline.NewRunner(cfg, pipeline.WithLogger(logger))
//	res, err := r.Run(ctx)
//	res.WriteReport(os.Stdout, cfg.Unit)
//
// Configuration is YAML with POINET_* environment overrides. Phase timings,
// search counts and result sizes are kept in a private Prometheus registry
// (Runner.Metrics) that can be dumped in the textfile format.
package pipeline
