// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface. It is the road-network and terminal-graph
// container shared by every other package of poinet.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multigraphs (WithMultiEdges), each edge carrying a Key
//   - Self-loops (WithLoops)
//   - Opaque attribute bags on the graph, on vertices (Metadata) and on edges (Attrs)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...), or caller IDs via WithEdgeID
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges(), Neighbors(), NeighborIDs() and
// EdgesBetween() all return sorted results, so every algorithm built on top of
// core is reproducible run to run.
//
// Normalization:
//
//	ToUndirectedMultigraph(g) (*Graph)
//	    Copies g into an undirected multigraph. Each directed edge becomes one
//	    undirected edge with the same ID, weight and attributes; opposite
//	    directed edges become parallel undirected edges. g is not mutated.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error   // O(1)
//	HasVertex(id string) bool                          // O(1)
//	Vertex(id string) (*Vertex, error)                 // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) // O(1) amortized
//	HasEdge(from, to string) bool                      // O(1)
//	GetEdge(edgeID string) (*Edge, error)              // O(1)
//	EdgesBetween(u, v string) []*Edge                  // O(k log k)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Vertices() []string
//	Edges() []*Edge
//	Stats() *GraphStats
//
// Numeric attributes are read through Numeric, which accepts every Go numeric
// kind a decoder may produce and rejects NaN.
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex ID
//	ErrVertexNotFound      - missing vertex
//	ErrEdgeNotFound        - missing edge
//	ErrBadWeight           - NaN/Inf weight, or non-zero weight on unweighted graph
//	ErrLoopNotAllowed      - self-loop when loops disabled
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges disabled
//	ErrDuplicateEdgeID     - WithEdgeID collided with an existing edge
package core
