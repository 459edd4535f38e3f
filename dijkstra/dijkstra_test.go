// Package dijkstra_test contains unit tests for the Dijkstra implementation
// and path reconstruction: validation, small known graphs, directed and
// unreachable vertices, and a cross-check against Bellman-Ford relaxation
// on random graphs.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/dijkstra"
)

// buildDiamond builds 0—1 (4), 0—2 (1), 2—1 (2), 1—3 (1), 2—3 (5),
// every edge stored in both directions.
func buildDiamond(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range []core.Edge{{From: 0, To: 1, Weight: 4}, {From: 0, To: 2, Weight: 1}, {From: 2, To: 1, Weight: 2}, {From: 1, To: 3, Weight: 1}, {From: 2, To: 3, Weight: 5}} {
		require.NoError(t, g.AddUndirectedEdge(e.From, e.To, e.Weight))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	_, err = dijkstra.Dijkstra(empty, 0)
	assert.ErrorIs(t, err, dijkstra.ErrEmptyGraph)

	g := buildDiamond(t)
	for _, src := range []int{-1, 4} {
		tree, err := dijkstra.Dijkstra(g, src)
		assert.ErrorIs(t, err, dijkstra.ErrInvalidSource)
		assert.Nil(t, tree)
	}
}

// ------------------------------------------------------------------------
// 2. Known graphs
// ------------------------------------------------------------------------

func TestDijkstra_Diamond(t *testing.T) {
	tree, err := dijkstra.Dijkstra(buildDiamond(t), 0)
	require.NoError(t, err)

	assert.Equal(t, 0, tree.Source())
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, []int64{0, 3, 1, 4}, tree.Distances())
	assert.Equal(t, []core.Edge{{From: 0, To: 0, Weight: 0}, {From: 1, To: 2, Weight: 3}, {From: 2, To: 0, Weight: 1}, {From: 3, To: 1, Weight: 4}}, tree.Entries())

	d, ok := tree.Distance(1)
	assert.True(t, ok)
	assert.Equal(t, int64(3), d) // 0→2→1 beats the direct 4
	assert.Equal(t, 2, tree.Predecessor(1))
	assert.Equal(t, 0, tree.Predecessor(0), "source is its own predecessor")
}

func TestDijkstra_DirectedAndUnreachable(t *testing.T) {
	// 0→1 (2), 0→2 (1), 2→1 (1), 1→3 (3), 2→3 (5); 4 has only an outgoing edge.
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(1, 3, 3))
	require.NoError(t, g.AddEdge(2, 3, 5))
	require.NoError(t, g.AddEdge(4, 0, 1))

	tree, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 2, 1, 5, core.Infinity}, tree.Distances())
	assert.False(t, tree.Reachable(4))
	_, ok := tree.Distance(4)
	assert.False(t, ok)
	assert.Equal(t, core.NoVertex, tree.Predecessor(4))
	e, ok := tree.Entry(4)
	require.True(t, ok)
	assert.Equal(t, core.Edge{From: 4, To: core.NoVertex, Weight: core.Infinity}, e)

	_, ok = tree.Entry(5)
	assert.False(t, ok)

	// from 4 everything is reachable
	tree4, err := dijkstra.Dijkstra(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2, 6, 0}, tree4.Distances())
}

func TestDijkstra_ZeroWeightsAndSingleVertex(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 0))
	require.NoError(t, g.AddUndirectedEdge(1, 2, 0))

	tree, err := dijkstra.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, tree.Distances())
	for v := 0; v < 3; v++ {
		assert.True(t, tree.Reachable(v))
	}

	one, err := core.NewGraph(1)
	require.NoError(t, err)
	tree, err = dijkstra.Dijkstra(one, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 0, Weight: 0}}, tree.Entries())
}

func TestDijkstra_HugeWeightsDoNotOverflow(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, core.Infinity-1))
	require.NoError(t, g.AddEdge(1, 2, 10))

	tree, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	d, ok := tree.Distance(1)
	assert.True(t, ok)
	assert.Equal(t, core.Infinity-1, d)
	assert.False(t, tree.Reachable(2), "distance would overflow")
}

func TestDijkstra_Idempotent(t *testing.T) {
	g := randomGraph(t, 80, 300, 7)
	a, err := dijkstra.Dijkstra(g, 3)
	require.NoError(t, err)
	b, err := dijkstra.Dijkstra(g, 3)
	require.NoError(t, err)
	assert.Equal(t, a.Entries(), b.Entries())
}

func TestDijkstra_Logger(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("dijkstra: settled").Len())
	assert.Equal(t, 1, logs.FilterMessage("dijkstra: unreachable vertex").Len())
	assert.Equal(t, 1, logs.FilterMessage("records state").Len())
}

// ------------------------------------------------------------------------
// 3. Cross-check against Bellman-Ford on random graphs
// ------------------------------------------------------------------------

// randomGraph builds a directed graph with n vertices and up to m random
// edges, weights in [0, 50], seeded for reproducibility.
func randomGraph(t testing.TB, n, m int, seed int64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		_ = g.AddEdge(u, v, r.Int63n(51)) // loops and duplicates are rejected; fine
	}

	return g
}

// bellmanFord is a reference O(V·E) single-source distance computation.
func bellmanFord(g *core.Graph, source int) []int64 {
	n := g.NumVertices()
	dist := make([]int64, n)
	for v := range dist {
		dist[v] = core.Infinity
	}
	dist[source] = 0
	edges := g.Edges()
	for i := 0; i < n-1; i++ {
		changed := false
		for _, e := range edges {
			if dist[e.From] == core.Infinity {
				continue
			}
			if nd := dist[e.From] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, 60, 180, seed)
		for _, src := range []int{0, 17, 59} {
			tree, err := dijkstra.Dijkstra(g, src)
			require.NoError(t, err)
			assert.Equal(t, bellmanFord(g, src), tree.Distances(), "seed %d source %d", seed, src)

			// every reconstructed path is made of real graph edges and sums to dist(v)
			paths, err := dijkstra.ReconstructAllPaths(tree, src)
			require.NoError(t, err)
			for v, p := range paths {
				d, ok := tree.Distance(v)
				require.Equal(t, ok, p.Reachable)
				if !ok {
					continue
				}
				assert.Equal(t, d, p.Weight())
				for _, e := range p.Edges {
					assert.True(t, hasEdge(t, g, e), "edge %v not in graph", e)
				}
			}
		}
	}
}

// hasEdge reports whether g stores an edge matching e exactly.
func hasEdge(t testing.TB, g *core.Graph, e core.Edge) bool {
	t.Helper()
	nbrs, err := g.Neighbors(e.From)
	require.NoError(t, err)
	for _, x := range nbrs {
		if x == e {
			return true
		}
	}

	return false
}

func TestDijkstra_GridManhattan(t *testing.T) {
	const rows, cols = 6, 9
	g, err := builder.BuildGraph(rows*cols, nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	tree, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d, ok := tree.Distance(r*cols + c)
			require.True(t, ok)
			assert.Equal(t, int64(r+c), d)
		}
	}
}
