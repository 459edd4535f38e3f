// Notes on implementation choices:
//
//   - Every vertex is queued up front (source at 0, the rest at core.Infinity)
//     and relaxed in place with decrease-key; no stale heap entries exist.
//   - Negative weights cannot reach this package: core.NewEdge rejects them.
//   - A vertex extracted at core.Infinity is unreachable; it is recorded with
//     predecessor core.NoVertex and its edges are not relaxed.
//   - Relaxations whose sum would overflow int64 are treated as no improvement.

package dijkstra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/internal/records"
)

// Dijkstra computes the shortest-path tree of g rooted at source.
//
// Returns:
//
//   - tree: vertex-indexed DistanceTree; entry v is (v, pred(v), dist(v)).
//   - err:  ErrNilGraph, ErrEmptyGraph, ErrInvalidSource, or a wrapped
//     records.ErrInvariantViolation.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrEmptyGraph).
//  3. source must be in [0, NumVertices()) (ErrInvalidSource).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*DistanceTree, error) {
	// 1) Validate input before any allocation.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrInvalidSource, source, n)
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Per-run records, then the main loop.
	rec, err := records.New(g, source)
	if err != nil {
		return nil, err
	}
	r := &runner{
		g:      g,
		source: source,
		rec:    rec,
		log:    cfg.Logger,
	}
	if err = r.process(); err != nil {
		return nil, err
	}
	rec.LogState(r.log)

	return &DistanceTree{source: source, entries: rec.Tree()}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g      *core.Graph      // read-only input
	source int              // root of the tree
	rec    *records.Records // heap, finished flags, predecessors, tree
	log    *zap.Logger      // debug sink
}

// process extracts every vertex once, records its tree entry and relaxes
// its outgoing edges.
func (r *runner) process() error {
	h := r.rec.Heap()
	for !h.IsEmpty() {
		u, _ := h.ExtractMin()
		r.rec.Finish(u.ID)

		// 1) Record the vertex-indexed tree entry.
		from, pred, dist := u.ID, r.rec.Predecessor(u.ID), u.Priority
		switch {
		case u.ID == r.source:
			pred, dist = r.source, 0
		case u.Priority == core.Infinity:
			// never connected: flag rather than fabricate a path
			pred = core.NoVertex
		}
		if !r.rec.PlaceTreeEdge(u.ID, from, pred, dist) {
			return fmt.Errorf("%w: tree index %d", records.ErrInvariantViolation, u.ID)
		}

		if pred == core.NoVertex {
			r.log.Debug("dijkstra: unreachable vertex", zap.Int("vertex", u.ID))
			continue
		}
		r.log.Debug("dijkstra: settled",
			zap.Int("vertex", u.ID), zap.Int("predecessor", pred), zap.Int64("distance", dist))

		// 2) Relax outgoing edges by cumulative distance.
		if err := r.relax(u.ID, dist); err != nil {
			return err
		}
	}

	return nil
}

// relax offers dist(u)+w to every unfinished neighbor v of u.
func (r *runner) relax(u int, distU int64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	for _, e := range neighbors {
		if e.Weight > core.Infinity-distU {
			// sum overflows: cannot beat any finite distance
			continue
		}
		r.rec.Relax(e.To, u, distU+e.Weight)
	}

	return nil
}
