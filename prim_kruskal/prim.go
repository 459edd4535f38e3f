// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex using an indexed min-heap with decrease-key.
package prim_kruskal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/internal/records"
)

// Prim computes a minimum spanning tree of the component containing root.
//
// Every vertex starts in the heap with priority core.Infinity, the root
// with 0. Each extraction finalizes one vertex u; if u has a predecessor,
// (u, pred(u), priority) is appended to the tree. Each edge u→v to an
// unfinished v whose raw weight beats v's current priority lowers that
// priority and makes u the predecessor of v.
//
// Returns:
//
//   - edges: tree edges in extraction order, each (child, parent, weight).
//     len(edges) is the edge count; it is NumVertices()-1 when every vertex
//     is reachable from root, fewer otherwise.
//   - total: sum of edge weights.
//   - err:   ErrNilGraph, ErrEmptyGraph, ErrInvalidRoot, or a wrapped
//     records.ErrInvariantViolation.
//
// Vertices unreachable from root never acquire a predecessor and are left
// out of the result.
//
// Complexity: O(E log V) time, O(V) memory beyond the graph.
func Prim(graph *core.Graph, root int, opts ...Option) ([]core.Edge, int64, error) {
	// 1. Validate input before any allocation.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	n := graph.NumVertices()
	if n == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: %d (n=%d)", ErrInvalidRoot, root, n)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	// 2. Per-run records: heap with root at 0, everything else at infinity.
	rec, err := records.New(graph, root)
	if err != nil {
		return nil, 0, err
	}

	// 3. Main loop: exactly n extractions.
	var total int64
	h := rec.Heap()
	for !h.IsEmpty() {
		u, _ := h.ExtractMin()
		rec.Finish(u.ID)

		if parent := rec.Predecessor(u.ID); parent != core.NoVertex {
			if !rec.AppendTreeEdge(u.ID, parent, u.Priority) {
				return nil, 0, fmt.Errorf("%w: tree buffer full at vertex %d", records.ErrInvariantViolation, u.ID)
			}
			total += u.Priority
			log.Debug("prim: tree edge",
				zap.Int("vertex", u.ID), zap.Int("parent", parent), zap.Int64("weight", u.Priority))
		} else if u.ID != root {
			log.Debug("prim: unreachable vertex", zap.Int("vertex", u.ID))
			continue
		}

		neighbors, err := graph.Neighbors(u.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: neighbors of %d: %w", u.ID, err)
		}
		for _, e := range neighbors {
			// raw edge weight against the tentative connection cost
			rec.Relax(e.To, u.ID, e.Weight)
		}
	}

	rec.LogState(log)

	// 4. Only the valid prefix escapes; its length is the edge count.
	return rec.TreeEdges(), total, nil
}
