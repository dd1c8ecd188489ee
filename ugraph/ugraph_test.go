package ugraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/ugraph"
)

func TestAddVertex(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	// duplicate insert must signal explicitly
	err := g.AddVertex("A")
	assert.ErrorIs(t, err, ugraph.ErrVertexExists)
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_ImplicitVertices(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "adjacency must be symmetric")
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := ugraph.New[string]()
	err := g.AddEdge("A", "A")
	assert.ErrorIs(t, err, ugraph.ErrSelfLoop)
	// no partial mutation: the endpoint must not have been created
	assert.False(t, g.HasVertex("A"))
}

func TestAddEdge_DuplicateIsNoop(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveEdge_RestoresEdgeSet(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	before := g.Edges()

	require.NoError(t, g.AddEdge("A", "C"))
	g.RemoveEdge("A", "C")

	assert.Equal(t, before, g.Edges(), "add+remove of the same pair must restore the edge set")
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("C"), "removing an edge leaves both vertices in place")
}

func TestRemoveEdge_AbsentIsNoop(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	g.RemoveEdge("A", "C") // C absent
	g.RemoveEdge("X", "Y") // both absent
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveVertex_StripsIncidentEdges(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))

	g.RemoveVertex("B")

	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("C", "B"))
	assert.True(t, g.HasEdge("A", "C"))
	assert.Equal(t, []string{"A", "C"}, g.Vertices())

	// removing an absent vertex is tolerated
	g.RemoveVertex("Z")
	assert.Equal(t, 2, g.VertexCount())
}

func TestVerticesAndEdges_Deterministic(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddEdge("D", "C"))
	require.NoError(t, g.AddEdge("B", "A"))
	require.NoError(t, g.AddEdge("C", "B"))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, []ugraph.Edge[string]{
		{U: "A", V: "B"},
		{U: "B", V: "C"},
		{U: "C", V: "D"},
	}, g.Edges(), "edges are normalized unordered pairs in ascending order")
}

func TestNeighbors(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("B", "A"))

	nbrs, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nbrs)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, ugraph.ErrVertexNotFound)
}

func TestIsValidPath(t *testing.T) {
	g, err := ugraph.NewFromPairs([][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"},
	})
	require.NoError(t, err)

	assert.True(t, g.IsValidPath(nil), "empty path is trivially valid")
	assert.True(t, g.IsValidPath([]string{"A"}))
	assert.False(t, g.IsValidPath([]string{"Z"}), "single-vertex path requires the vertex to exist")
	assert.True(t, g.IsValidPath([]string{"A", "B", "C", "B", "A"}))
	assert.False(t, g.IsValidPath([]string{"A", "C"}))
	assert.False(t, g.IsValidPath([]string{"A", "B", "Z"}))
}

func TestNewFromPairs_SelfLoop(t *testing.T) {
	_, err := ugraph.NewFromPairs([][2]string{{"A", "B"}, {"C", "C"}})
	assert.ErrorIs(t, err, ugraph.ErrSelfLoop)
}

func TestString(t *testing.T) {
	g := ugraph.New[string]()
	require.NoError(t, g.AddEdge("B", "A"))
	require.NoError(t, g.AddEdge("B", "C"))
	assert.Equal(t, "GRAPH: {A: [B], B: [A C], C: [B]}", g.String())

	assert.Equal(t, "GRAPH: {}", ugraph.New[string]().String())
}

func TestIntegerLabels(t *testing.T) {
	// labels are generic over any ordered type
	g := ugraph.New[int]()
	require.NoError(t, g.AddEdge(2, 1))
	require.NoError(t, g.AddEdge(2, 3))
	assert.Equal(t, []int{1, 2, 3}, g.Vertices())

	order, err := g.BFS(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)
}
