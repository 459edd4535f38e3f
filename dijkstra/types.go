// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrInvalidSource indicates a source vertex outside [0, NumVertices()).
	ErrInvalidSource = errors.New("dijkstra: source vertex out of range")

	// ErrNilTree indicates path reconstruction on a nil *DistanceTree.
	ErrNilTree = errors.New("dijkstra: distance tree is nil")

	// ErrVertexOutOfRange indicates a path endpoint outside the distance tree.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrUnreachable indicates that no path exists from source to target.
	// It is an expected outcome, distinct from an empty path (target == source).
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// Logger receives per-extraction debug events and a final records dump.
	Logger *zap.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithLogger routes debug events to log. A nil logger keeps the default (no-op).
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// DistanceTree is Dijkstra's output, indexed by vertex id.
//
// Entry v is (v, pred(v), dist(v)). The source holds (source, source, 0).
// A vertex unreachable from the source holds (v, core.NoVertex, core.Infinity).
type DistanceTree struct {
	source  int
	entries []core.Edge
}

// NewDistanceTree builds a tree from raw entries, for example one decoded
// from storage. entries[v].From must equal v; the call copies entries.
func NewDistanceTree(source int, entries []core.Edge) *DistanceTree {
	return &DistanceTree{
		source:  source,
		entries: append([]core.Edge(nil), entries...),
	}
}

// Source returns the vertex the tree was grown from.
func (t *DistanceTree) Source() int { return t.source }

// Len returns the number of vertices covered by the tree.
func (t *DistanceTree) Len() int { return len(t.entries) }

// Entry returns (v, pred(v), dist(v)); ok is false if v is out of range.
func (t *DistanceTree) Entry(v int) (e core.Edge, ok bool) {
	if v < 0 || v >= len(t.entries) {
		return core.Edge{}, false
	}

	return t.entries[v], true
}

// Reachable reports whether v has a finite distance from the source.
func (t *DistanceTree) Reachable(v int) bool {
	e, ok := t.Entry(v)

	return ok && e.To != core.NoVertex
}

// Distance returns the shortest distance from the source to v.
// ok is false if v is out of range or unreachable.
func (t *DistanceTree) Distance(v int) (d int64, ok bool) {
	if !t.Reachable(v) {
		return core.Infinity, false
	}

	return t.entries[v].Weight, true
}

// Predecessor returns pred(v), or core.NoVertex if v is out of range or
// unreachable. The source is its own predecessor.
func (t *DistanceTree) Predecessor(v int) int {
	if !t.Reachable(v) {
		return core.NoVertex
	}

	return t.entries[v].To
}

// Distances returns dist(v) for every vertex; unreachable vertices hold core.Infinity.
func (t *DistanceTree) Distances() []int64 {
	out := make([]int64, len(t.entries))
	for v, e := range t.entries {
		out[v] = e.Weight
	}

	return out
}

// Entries returns a copy of the vertex-indexed entries.
func (t *DistanceTree) Entries() []core.Edge {
	return append([]core.Edge(nil), t.entries...)
}

// Path is one reconstructed shortest path.
type Path struct {
	// Target is the vertex the path ends at.
	Target int

	// Edges are the hops from the source to Target, each (from, to, weight).
	// Empty for the source itself, nil when Reachable is false.
	Edges []core.Edge

	// Reachable is false when no path from the source exists.
	Reachable bool
}

// Weight returns the sum of the path's edge weights.
func (p Path) Weight() int64 {
	var w int64
	for _, e := range p.Edges {
		w += e.Weight
	}

	return w
}
