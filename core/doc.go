// Package core defines the central Graph and Edge types used by the
// spanning-tree and shortest-path algorithms of lvtree.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are dense integer identifiers 0..n-1, fixed at NewGraph.
//   - Every vertex owns a contiguous slice of outgoing edges (adjacency
//     list); Neighbors(v) returns a copy of it in insertion order.
//   - Edges are directed and carry a non-negative int64 weight.
//     AddUndirectedEdge stores both directions atomically.
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges) are
//     rejected unless enabled.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()       allow from == to.
//	– WithMultiEdges()  allow several from→to edges.
//
// Serialization:
//
//	Decode/Encode/LoadFile read and write the YAML graph document
//	described in decode.go.
//
// Concurrency:
//
//	Graph guards its adjacency with a sync.RWMutex, so independent readers
//	(for example two traversals holding their own records) may share one
//	Graph while writers are serialized.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrVertexOutOfRange    - vertex id outside [0, n).
//	ErrNegativeWeight      - edge construction with weight < 0.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrBadDocument         - a YAML document that does not build a Graph.
package core
