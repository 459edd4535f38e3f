// Package lvtree is an in-memory toolkit for growing trees out of weighted
// graphs: minimum spanning trees (Prim, Kruskal) and single-source
// shortest-path trees (Dijkstra), plus recovery of concrete paths.
//
// 🚀 What is in the box?
//
//	• Core primitives: dense-id Graph with owned adjacency slices, YAML I/O
//	• Indexed min-heap with O(log n) decrease-key, no stale entries
//	• Minimum spanning trees: Prim (root component), Kruskal (cross-check)
//	• Shortest paths: Dijkstra distance trees, O(1)-per-hop path recovery
//	• Planner: cached distance trees per source, safe for concurrent use
//	• Fixture generators and the lvtree command line tool
//
// Under the hood, everything is organized in subpackages:
//
//	core/             — Graph, Edge, sentinel errors, YAML documents
//	minheap/          — IndexedMinHeap keyed by dense vertex id
//	internal/records/ — per-traversal heap, finished flags, predecessors, tree buffer
//	prim_kruskal/     — Prim, Kruskal, Compute
//	dijkstra/         — Dijkstra, DistanceTree, ReconstructPath, ReconstructAllPaths
//	planner/          — query facade with an LRU tree cache
//	builder/          — deterministic path/cycle/grid/random graph generators
//	cmd/lvtree/       — CLI: mst, spt, path, paths, gen, version
//
// Quick ASCII example:
//
//	    0──4──1
//	    │1   ╱│1
//	    │  2  │
//	    2──5──3
//
//	the shortest path 0→3 runs 0→2→1→3 with weight 4, and the MST from 0
//	is {2—0, 1—2, 3—1}, also of weight 4.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
