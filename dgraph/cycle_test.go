package dgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/dgraph"
)

func TestHasCycle_Empty(t *testing.T) {
	assert.False(t, dgraph.New().HasCycle())
}

func TestHasCycle_TwoWayEdgeIsACycle(t *testing.T) {
	// unlike the undirected case, 0→1 plus 1→0 is a genuine directed cycle
	g, err := dgraph.NewFromEdges([]dgraph.Edge{
		{Src: 0, Dst: 1, Weight: 1},
		{Src: 1, Dst: 0, Weight: 1},
	})
	require.NoError(t, err)
	assert.True(t, g.HasCycle())
}

func TestHasCycle_DAG(t *testing.T) {
	// diamond 0→1, 0→2, 1→3, 2→3 is acyclic despite converging paths
	g, err := dgraph.NewFromEdges([]dgraph.Edge{
		{Src: 0, Dst: 1, Weight: 1},
		{Src: 0, Dst: 2, Weight: 1},
		{Src: 1, Dst: 3, Weight: 1},
		{Src: 2, Dst: 3, Weight: 1},
	})
	require.NoError(t, err)
	assert.False(t, g.HasCycle())

	// closing the diamond back to the root flips it
	require.NoError(t, g.AddEdge(3, 0, 1))
	assert.True(t, g.HasCycle())
}

func TestHasCycle_EdgeChurn(t *testing.T) {
	g := wheelGraph(t) // overlapping cycles: 1→4→3→1, 0→1→4→0, 1→4→3→2→1
	assert.True(t, g.HasCycle())

	require.NoError(t, g.RemoveEdge(3, 1))
	assert.True(t, g.HasCycle(), "0→1→4→0 still closes a loop")
	require.NoError(t, g.RemoveEdge(4, 0))
	assert.True(t, g.HasCycle(), "1→4→3→2→1 still closes a loop")
	require.NoError(t, g.RemoveEdge(3, 2))
	assert.False(t, g.HasCycle(), "last loop broken, graph is a DAG")

	require.NoError(t, g.AddEdge(4, 0, 12))
	assert.True(t, g.HasCycle())
}

func TestHasCycle_ChainIsAcyclic(t *testing.T) {
	g, err := dgraph.NewFromEdges([]dgraph.Edge{
		{Src: 0, Dst: 1, Weight: 1},
		{Src: 1, Dst: 2, Weight: 1},
		{Src: 2, Dst: 3, Weight: 1},
	})
	require.NoError(t, err)
	assert.False(t, g.HasCycle())
}
