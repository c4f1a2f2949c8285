// Package dijkstra is the pairwise path engine: Dijkstra's shortest-path
// algorithm on weighted core.Graph instances with non-negative edge weights,
// plus the helpers that turn its predecessor map into concrete paths.
//
// Overview:
//
//   - Dijkstra computes minimum-cost distances from a single source to every
//     reachable vertex in O((V + E) log V) with a lazy decrease-key min-heap.
//   - Weights come from Edge.Weight, or from an edge attribute selected with
//     WithWeightAttr ("length" for road networks). Missing attributes weigh 1.
//   - WithTargets stops the search as soon as the listed vertices are settled;
//     the terminal-graph builder uses it to run one search per terminal.
//   - WithContext makes long searches cancellable.
//
// Determinism:
//
//	The heap is ordered by (distance, vertex ID), relaxation is strict and
//	neighbors are scanned in Edge.ID order. Between parallel edges the search
//	and the reconstruction (SelectEdge) both take the minimum weight, ties by
//	lowest Edge.ID, so a path returned by ShortestPath is the same path a
//	multi-target run records, and its Length equals the reported distance.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound:
//     invalid input.
//   - ErrNegativeWeight, ErrBadWeightAttr: detected by an O(E) pre-scan.
//   - ErrNoPath: the target is unreachable.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from option constructors.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func ShortestPath(ctx context.Context, g *core.Graph, from, to string, opts ...Option) (Path, error)
//	func PathTo(g *core.Graph, prev map[string]string, from, to, weightAttr string) (Path, error)
//	func SelectEdge(g *core.Graph, u, v, weightAttr string) (*core.Edge, float64, error)
//	func PathLength(g *core.Graph, nodes []string, weightAttr string) (float64, error)
package dijkstra
