// Package prim_kruskal computes minimum spanning trees over a *core.Graph
// with Prim's algorithm (the primary entry point) and Kruskal's algorithm
// (a global cross-check).
//
// What & Why
//
//   - An MST of a connected weighted graph is an edge subset connecting
//     every vertex with minimum total weight. Used for network design,
//     clustering (cut the heaviest tree edges) and as a subroutine of
//     approximation algorithms.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, root int, opts ...Option) ([]core.Edge, int64, error)
//
//   - Strategy: every vertex sits in an indexed min-heap from the start
//     (root at 0, the rest at core.Infinity). Extracting u finalizes it
//     and records (u, pred(u), weight); each edge u→v to an unfinished v
//     lowers v's priority to the raw edge weight when that is strictly
//     better. Priorities are relaxed in place (decrease-key), never pushed
//     twice, so the heap never exceeds V entries.
//
//   - Output: edges in extraction order, (child, parent, weight). The
//     slice length is the edge count. Vertices unreachable from root are
//     silently left out, so the result spans only root's component.
//
//   - Complexity: O(E log V) time, O(V) extra memory.
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort all edges by weight, union-find over dense ids.
//
//   - Output: requires the whole graph to be connected (ErrDisconnected
//     otherwise), edges read as undirected.
//
//   - Complexity: O(E log E + α(V)·E).
//
// Error Conditions
//
//   - ErrNilGraph      – graph is nil.
//   - ErrEmptyGraph    – graph has no vertices.
//   - ErrInvalidRoot   – root outside [0, NumVertices()) (Prim only).
//   - ErrDisconnected  – Kruskal only.
//   - ErrUnknownMethod – Compute with an unsupported Method.
//
// Options
//
//   - WithLogger(*zap.Logger): debug events per tree edge / unreachable
//     vertex and a final dump of the run's records. Default is a no-op logger.
//
// Determinism: neighbors are relaxed in insertion order and heap ties are
// broken by slot position, so repeated runs on an unmodified graph return
// identical trees.
package prim_kruskal
