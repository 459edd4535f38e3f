// Package dijkstra provides Dijkstra's single-source shortest-path tree on
// graphs with non-negative edge weights, plus reconstruction of concrete
// paths from that tree.
//
// Overview:
//
//   - Dijkstra(g, source) queues every vertex in an indexed min-heap
//     (source at 0, others at core.Infinity), extracts them in distance
//     order and relaxes outgoing edges with decrease-key. Relaxation
//     compares the cumulative distance dist(u)+w, not the raw weight.
//   - The result is a DistanceTree indexed by vertex id: entry v holds
//     (v, pred(v), dist(v)), the source holds (source, source, 0) and an
//     unreachable vertex holds (v, core.NoVertex, core.Infinity).
//   - ReconstructPath(tree, source, target) walks predecessor links back
//     from target and returns the hops in source→target order, recovering
//     each hop's weight as the difference of consecutive distances.
//   - ReconstructAllPaths(tree, source) does the same for every vertex.
//
// Performance and complexity:
//
//   - Dijkstra: O((V + E) log V) time, O(V) space. The heap never holds
//     more than V entries.
//   - ReconstructPath: O(1) per hop, at most V hops.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyGraph, ErrInvalidSource: rejected before any work.
//   - ErrNilTree, ErrVertexOutOfRange: bad reconstruction input.
//   - ErrUnreachable: no path exists; an expected outcome, not a failure of
//     the algorithm.
//
// Options:
//
//   - WithLogger(*zap.Logger): debug events per settled and unreachable
//     vertex and a final dump of the run's records.
//
// Thread safety:
//
//   - Each call owns its records; several calls may read the same
//     *core.Graph concurrently as long as nobody mutates it.
package dijkstra
