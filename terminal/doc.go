// Package terminal resolves POI terminals and builds the complete terminal
// graph: one vertex per terminal, one edge per unordered terminal pair
// weighted by the shortest road distance between them.
//
// Resolve deduplicates and sorts the node IDs POIs were snapped to. Build runs
// one single-source Dijkstra search per terminal (targets: all later
// terminals) on a bounded errgroup and keeps every pair's road path, so the
// MST edges can later be rendered without guessing which parallel edges were
// used. On an undirected graph a bfs sweep first rejects disconnected
// terminal sets, so no search is wasted on them.
//
// Errors:
//
//	ErrInsufficientTerminals - fewer than two distinct terminals.
//	ErrTerminalNotFound      - terminal is not a graph vertex.
//	dijkstra.ErrNoPath       - some pair is disconnected (no partial terminal graph).
package terminal
