// Package core_test verifies Graph construction, edge policy and cloning.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/core"
)

func TestNewEdge_RejectsNegativeWeight(t *testing.T) {
	e, err := core.NewEdge(0, 1, -1)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Equal(t, core.Edge{}, e) // no partially built edge escapes

	e, err = core.NewEdge(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: 0, To: 1, Weight: 0}, e)
}

func TestNewGraph_NegativeCount(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestGraph_EdgePolicy(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	assert.NoError(t, g.AddEdge(0, 1, 5))
	assert.ErrorIs(t, g.AddEdge(0, 1, 7), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 2, -4), core.ErrNegativeWeight)
	assert.Equal(t, 1, g.EdgeCount())

	mg, err := core.NewGraph(2, core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, err)
	assert.NoError(t, mg.AddEdge(0, 1, 5))
	assert.NoError(t, mg.AddEdge(0, 1, 2))
	assert.NoError(t, mg.AddEdge(1, 1, 0))
	assert.Equal(t, 3, mg.EdgeCount())
}

func TestGraph_AddUndirectedEdge(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddUndirectedEdge(0, 2, 9))
	assert.Equal(t, 2, g.EdgeCount())

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 2, Weight: 9}}, n0)

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 2, To: 0, Weight: 9}}, n2)

	// 2→0 already exists, so neither direction of the retry is stored
	require.NoError(t, g.AddEdge(1, 0, 1))
	assert.ErrorIs(t, g.AddUndirectedEdge(0, 1, 3), core.ErrMultiEdgeNotAllowed)
	n0, _ = g.Neighbors(0)
	assert.Len(t, n0, 1)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_NeighborsIsCopy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))

	n, err := g.Neighbors(0)
	require.NoError(t, err)
	n[0].Weight = 100

	again, _ := g.Neighbors(0)
	assert.Equal(t, int64(3), again[0].Weight)

	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestGraph_EdgesAndClone(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 0, 1))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))

	want := []core.Edge{{0, 1, 2}, {0, 2, 3}, {2, 0, 1}}
	assert.Equal(t, want, g.Edges())

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2, 4))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, c.EdgeCount())
	assert.Equal(t, g.NumVertices(), c.NumVertices())
	assert.False(t, g.HasVertex(3))
	assert.True(t, c.HasVertex(2))
}

func TestGraph_ConcurrentReaders(t *testing.T) {
	g, err := core.NewGraph(50)
	require.NoError(t, err)
	for v := 1; v < 50; v++ {
		require.NoError(t, g.AddUndirectedEdge(v-1, v, int64(v)))
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := 0; v < g.NumVertices(); v++ {
				_, _ = g.Neighbors(v)
			}
			_ = g.Edges()
		}()
	}
	wg.Wait()
	assert.Equal(t, 98, g.EdgeCount())
}
