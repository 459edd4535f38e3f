package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// ReconstructPath returns the hops from source to target recorded in tree.
//
// Starting at target it follows predecessor links, emitting one edge
// (pred, v, dist(v)-dist(pred)) per hop; since dist(v) = dist(pred)+w on a
// shortest-path tree, the subtraction recovers the original edge weight.
// Each hop is O(1) because tree is indexed by vertex. The edges are
// returned in source→target order.
//
// source need not be the tree's root: any ancestor of target works.
//
// Returns:
//   - an empty, non-nil slice when target == source.
//   - ErrUnreachable (wrapped) when the chain from target never reaches
//     source within tree.Len() hops, which covers unreachable vertices and
//     corrupted trees alike.
//   - ErrNilTree, ErrVertexOutOfRange for bad input.
//
// Complexity: O(path length), bounded by O(V).
func ReconstructPath(tree *DistanceTree, source, target int) ([]core.Edge, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	n := tree.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d (n=%d)", ErrVertexOutOfRange, source, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d (n=%d)", ErrVertexOutOfRange, target, n)
	}
	if target == source {
		return []core.Edge{}, nil
	}

	// Walk target → source; the hop bound stops cycles in malformed trees.
	var reversed []core.Edge
	v := target
	for hops := 0; v != source; hops++ {
		if hops >= n {
			return nil, fmt.Errorf("%w: %d→%d exceeds %d hops", ErrUnreachable, source, target, n)
		}
		cur := tree.entries[v]
		pred := cur.To
		if pred == core.NoVertex || pred == v || pred < 0 || pred >= n {
			// unreachable vertex, or a root other than source
			return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, target)
		}
		prev := tree.entries[pred]
		w := cur.Weight - prev.Weight
		if w < 0 || prev.To == core.NoVertex {
			return nil, fmt.Errorf("%w: %d→%d (inconsistent distances at %d)", ErrUnreachable, source, target, v)
		}
		reversed = append(reversed, core.Edge{From: pred, To: v, Weight: w})
		v = pred
	}

	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return reversed, nil
}

// ReconstructAllPaths returns one Path per vertex of tree, indexed by
// vertex id. The source's Path is reachable with no edges; vertices with
// no path from source have Reachable == false and nil Edges.
//
// Complexity: O(V²) worst case (a path graph), O(V·depth) in general.
func ReconstructAllPaths(tree *DistanceTree, source int) ([]Path, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	n := tree.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d (n=%d)", ErrVertexOutOfRange, source, n)
	}

	paths := make([]Path, n)
	for v := 0; v < n; v++ {
		edges, err := ReconstructPath(tree, source, v)
		if err != nil {
			// only ErrUnreachable can surface here: source and v are in range
			paths[v] = Path{Target: v}
			continue
		}
		paths[v] = Path{Target: v, Edges: edges, Reachable: true}
	}

	return paths, nil
}
