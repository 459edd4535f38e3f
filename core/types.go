// File: types.go
// Role: Edge, Graph, sentinel errors and graph options.

package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// NoVertex is the sentinel vertex id meaning "none" (no predecessor,
// unreachable, unset).
const NoVertex = -1

// Infinity is the priority/distance assigned to vertices not yet connected.
const Infinity int64 = math.MaxInt64

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: vertex count is negative")

	// ErrVertexOutOfRange indicates a vertex id outside [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an attempt to build an edge with a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a weighted connection From→To.
//
// The same shape is reused by the algorithms for their output trees:
// Prim stores (child, parent, weight), Dijkstra stores
// (vertex, predecessor, cumulative distance).
type Edge struct {
	// From is the source vertex id.
	From int `yaml:"from"`

	// To is the destination vertex id.
	To int `yaml:"to"`

	// Weight is the non-negative cost of the edge.
	Weight int64 `yaml:"weight"`
}

// NewEdge validates weight and returns the edge From→To.
// A negative weight is rejected with ErrNegativeWeight; it is never clamped.
//
// Complexity: O(1).
func NewEdge(from, to int, weight int64) (Edge, error) {
	if weight < 0 {
		return Edge{}, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}

	return Edge{From: from, To: to, Weight: weight}, nil
}

// String renders the edge as "(from,to,weight)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d,%d)", e.From, e.To, e.Weight)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a weighted adjacency-list graph over vertices 0..n-1.
//
// adjacency[v] is owned by the graph; readers receive copies.
// mu guards adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	adjacency [][]Edge // vertex id → outgoing edges
	edgeCount int      // number of stored directed edges
}

// NewGraph creates a Graph with n isolated vertices.
// By default self-loops and parallel edges are rejected.
//
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}
	g := &Graph{
		adjacency: make([][]Edge, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
