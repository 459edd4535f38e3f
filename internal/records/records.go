// Package records holds the per-run bookkeeping shared by the Prim and
// Dijkstra traversals: the indexed heap, the finished flags, the
// predecessor links and the output tree buffer.
//
// A Records value is created for exactly one traversal and is never shared.
package records

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/minheap"
)

// ErrInvariantViolation signals an internal inconsistency (heap/map desync,
// out-of-range tree index). It indicates a defect, not bad input.
var ErrInvariantViolation = errors.New("records: invariant violation")

// Records is the mutable state of one traversal.
type Records struct {
	numVertices int
	heap        *minheap.IndexedMinHeap
	finished    []bool
	pred        []int
	tree        []core.Edge
	numTree     int // valid edges in tree, used by AppendTreeEdge
}

// New prepares records for a traversal of g from source: every vertex is
// queued with priority core.Infinity except source at 0, nothing is
// finished, every predecessor is core.NoVertex.
//
// The caller validates source; New returns ErrInvariantViolation if the
// heap rejects an insertion.
func New(g *core.Graph, source int) (*Records, error) {
	n := g.NumVertices()
	h, err := minheap.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	for v := 0; v < n; v++ {
		p := core.Infinity
		if v == source {
			p = 0
		}
		if err = h.Insert(p, v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
	}

	pred := make([]int, n)
	for v := range pred {
		pred[v] = core.NoVertex
	}

	return &Records{
		numVertices: n,
		heap:        h,
		finished:    make([]bool, n),
		pred:        pred,
		tree:        make([]core.Edge, n),
	}, nil
}

// Heap exposes the priority queue driving the traversal.
func (r *Records) Heap() *minheap.IndexedMinHeap { return r.heap }

// NumVertices returns the vertex count the records were sized for.
func (r *Records) NumVertices() int { return r.numVertices }

// Finish marks v finalized. It is irreversible for the run.
func (r *Records) Finish(v int) { r.finished[v] = true }

// Finished reports whether v has been finalized.
func (r *Records) Finished(v int) bool { return r.finished[v] }

// Predecessor returns the current predecessor of v, or core.NoVertex.
func (r *Records) Predecessor(v int) int { return r.pred[v] }

// SetPredecessor records u as the predecessor of v.
func (r *Records) SetPredecessor(v, u int) { r.pred[v] = u }

// Relax lowers v's priority to p and, on success, sets its predecessor to u.
// Finished vertices are never relaxed.
func (r *Records) Relax(v, u int, p int64) bool {
	if r.finished[v] || !r.heap.DecreasePriority(v, p) {
		return false
	}
	r.pred[v] = u

	return true
}

// AppendTreeEdge stores (from, to, weight) at the next free tree slot.
// It returns false, storing nothing, once the buffer already holds
// NumVertices edges.
func (r *Records) AppendTreeEdge(from, to int, weight int64) bool {
	if !r.PlaceTreeEdge(r.numTree, from, to, weight) {
		return false
	}
	r.numTree++

	return true
}

// PlaceTreeEdge stores (from, to, weight) at tree index idx.
// An idx outside [0, NumVertices) is a no-op returning false.
func (r *Records) PlaceTreeEdge(idx, from, to int, weight int64) bool {
	if idx < 0 || idx >= r.numVertices {
		return false
	}
	r.tree[idx] = core.Edge{From: from, To: to, Weight: weight}

	return true
}

// TreeEdges returns the first NumTreeEdges appended edges.
// Trailing buffer slots are never exposed.
func (r *Records) TreeEdges() []core.Edge {
	return r.tree[:r.numTree:r.numTree]
}

// NumTreeEdges returns how many edges AppendTreeEdge has stored.
func (r *Records) NumTreeEdges() int { return r.numTree }

// Tree returns the whole vertex-indexed buffer, as filled by PlaceTreeEdge.
func (r *Records) Tree() []core.Edge { return r.tree }

// LogState writes the heap, the per-vertex flags and the raw tree buffer
// to log at debug level.
func (r *Records) LogState(log *zap.Logger) {
	if ce := log.Check(zap.DebugLevel, "records state"); ce != nil {
		ce.Write(
			zap.Int("vertices", r.numVertices),
			zap.Int("heap_size", r.heap.Len()),
			zap.Any("heap", r.heap.Entries()),
			zap.Bools("finished", r.finished),
			zap.Ints("predecessors", r.pred),
			zap.Int("tree_edges", r.numTree),
			zap.Any("tree_buffer", r.tree),
		)
	}
}
