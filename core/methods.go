// File: methods.go
// Role: Edge insertion and read-only queries over the dense adjacency list.
// Determinism:
//   - Neighbors(v) returns edges in insertion order.
//   - Edges() returns edges grouped by source vertex ascending, then insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// NumVertices returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of stored directed edges.
// An undirected edge added with AddUndirectedEdge counts twice.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasVertex reports whether v is a valid vertex id.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.adjacency)
}

// AddEdge inserts the directed edge from→to with the given weight.
//
// Errors:
//   - ErrVertexOutOfRange if either endpoint is not in [0, n).
//   - ErrNegativeWeight if weight < 0 (via NewEdge).
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if from→to already exists and multi-edges are disabled.
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	e, err := NewEdge(from, to, weight)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(e)
}

// AddUndirectedEdge inserts both a→b and b→a with the same weight.
// Either both edges are stored or neither is.
//
// Complexity: same as two AddEdge calls.
func (g *Graph) AddUndirectedEdge(a, b int, weight int64) error {
	ab, err := NewEdge(a, b, weight)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err = g.checkEdgeLocked(ab); err != nil {
		return err
	}
	if a == b {
		// a single loop edge stands for both directions
		g.storeLocked(ab)
		return nil
	}
	ba := Edge{From: b, To: a, Weight: weight}
	if err = g.checkEdgeLocked(ba); err != nil {
		return err
	}
	g.storeLocked(ab)
	g.storeLocked(ba)

	return nil
}

// Neighbors returns a copy of the outgoing edges of v.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adjacency) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Edges returns every stored directed edge, grouped by source vertex.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, adj := range g.adjacency {
		out = append(out, adj...)
	}

	return out
}

// Clone returns a deep copy of the graph: flags, vertices and edges.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		adjacency:  make([][]Edge, len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	for v, adj := range g.adjacency {
		if len(adj) == 0 {
			continue
		}
		clone.adjacency[v] = append([]Edge(nil), adj...)
	}

	return clone
}

// addEdgeLocked validates and stores e. Caller holds mu.
func (g *Graph) addEdgeLocked(e Edge) error {
	if err := g.checkEdgeLocked(e); err != nil {
		return err
	}
	g.storeLocked(e)

	return nil
}

// checkEdgeLocked applies range, loop and multi-edge policy to e. Caller holds mu.
func (g *Graph) checkEdgeLocked(e Edge) error {
	n := len(g.adjacency)
	if e.From < 0 || e.From >= n {
		return fmt.Errorf("%w: from=%d (n=%d)", ErrVertexOutOfRange, e.From, n)
	}
	if e.To < 0 || e.To >= n {
		return fmt.Errorf("%w: to=%d (n=%d)", ErrVertexOutOfRange, e.To, n)
	}
	if e.From == e.To && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti {
		for _, existing := range g.adjacency[e.From] {
			if existing.To == e.To {
				return fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, e.From, e.To)
			}
		}
	}

	return nil
}

// storeLocked appends e to its source's adjacency. Caller holds mu.
func (g *Graph) storeLocked(e Edge) {
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
	g.edgeCount++
}
