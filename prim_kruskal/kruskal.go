// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It treats every stored edge as undirected and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvtree/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of a graph whose edges
// are read as undirected. It uses a disjoint-set (union-find) data
// structure with path compression and union by rank.
//
// Unlike Prim, Kruskal insists on a spanning tree of the whole graph and
// reports ErrDisconnected otherwise; it serves as a cross-check of Prim's
// total weight on connected graphs.
//
// Error Conditions:
//   - ErrNilGraph     : if graph is nil.
//   - ErrEmptyGraph   : if |V| == 0.
//   - ErrDisconnected : if |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate graph and vertex count; |V| == 1 → trivial empty MST.
//  2. Collect all edges via graph.Edges(), skip self-loops.
//  3. Stable-sort by ascending weight (ties keep graph.Edges() order).
//  4. Union-find over dense ids; accept an edge iff it joins two components.
//  5. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	numVerts := graph.NumVertices()
	if numVerts == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if numVerts == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect candidate edges, skipping self-loops.
	allEdges := graph.Edges()
	edges := make([]core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort by weight; stability keeps the result deterministic.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint-set over dense ids.
	parent := make([]int, numVerts)
	rank := make([]int, numVerts)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v and reports whether they were disjoint.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 5. Build the MST.
	mst := make([]core.Edge, 0, numVerts-1)
	var totalWeight int64
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
