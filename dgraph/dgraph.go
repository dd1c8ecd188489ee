package dgraph

import (
	"fmt"
	"strings"
)

// Graph is a directed, positively-weighted graph over a dense square
// adjacency matrix. Vertex identity is the row/column index; indices are
// assigned sequentially and compacted on removal. The zero value is
// usable and equivalent to New().
type Graph struct {
	matrix [][]int64
}

// New creates an empty directed graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{}
}

// NewFromEdges creates a graph pre-populated with the given edges. The
// vertex count grows to cover the highest index referenced, then each
// edge is added with full validation.
// Complexity: O(V² + len(edges))
func NewFromEdges(edges []Edge) (*Graph, error) {
	g := New()
	maxIdx := -1
	for _, e := range edges {
		maxIdx = max(maxIdx, e.Src, e.Dst)
	}
	for i := 0; i <= maxIdx; i++ {
		g.AddVertex()
	}
	for _, e := range edges {
		if err := g.AddEdge(e.Src, e.Dst, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddVertex appends a new vertex and returns its assigned index. The
// matrix grows by one row and one column, initialized to "no edge".
// Complexity: O(V)
func (g *Graph) AddVertex() int {
	n := len(g.matrix)
	for i := range g.matrix {
		g.matrix[i] = append(g.matrix[i], noEdge)
	}
	g.matrix = append(g.matrix, make([]int64, n+1))

	return n
}

// RemoveVertex deletes the vertex at idx along with every incident edge.
// All vertices with higher indices shift downward by one, preserving the
// relative edge structure. Returns ErrIndexOutOfRange for invalid idx.
// Complexity: O(V²)
func (g *Graph) RemoveVertex(idx int) error {
	if !g.inRange(idx) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	g.matrix = append(g.matrix[:idx], g.matrix[idx+1:]...)
	for i := range g.matrix {
		g.matrix[i] = append(g.matrix[i][:idx], g.matrix[i][idx+1:]...)
	}

	return nil
}

// AddEdge sets the weight of the edge src→dst. Validation order: weight
// first (ErrBadWeight when < 1), then indices (ErrIndexOutOfRange), then
// endpoints (ErrSelfLoop when src == dst). No mutation occurs on failure;
// re-adding an existing edge overwrites its weight.
// Complexity: O(1)
func (g *Graph) AddEdge(src, dst int, weight int64) error {
	if weight < 1 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	if !g.inRange(src) || !g.inRange(dst) {
		return fmt.Errorf("%w: %d→%d", ErrIndexOutOfRange, src, dst)
	}
	if src == dst {
		return fmt.Errorf("%w: %d", ErrSelfLoop, src)
	}
	g.matrix[src][dst] = weight

	return nil
}

// RemoveEdge clears the edge src→dst. Clearing an absent edge is a
// no-op; invalid indices return ErrIndexOutOfRange.
// Complexity: O(1)
func (g *Graph) RemoveEdge(src, dst int) error {
	if !g.inRange(src) || !g.inRange(dst) {
		return fmt.Errorf("%w: %d→%d", ErrIndexOutOfRange, src, dst)
	}
	g.matrix[src][dst] = noEdge

	return nil
}

// inRange reports whether idx is a valid vertex index.
func (g *Graph) inRange(idx int) bool {
	return idx >= 0 && idx < len(g.matrix)
}

// HasEdge reports whether the edge src→dst exists.
// Complexity: O(1)
func (g *Graph) HasEdge(src, dst int) bool {
	return g.inRange(src) && g.inRange(dst) && g.matrix[src][dst] != noEdge
}

// Weight returns the weight of the edge src→dst, or 0 with no error when
// the edge is absent. Invalid indices return ErrIndexOutOfRange.
// Complexity: O(1)
func (g *Graph) Weight(src, dst int) (int64, error) {
	if !g.inRange(src) || !g.inRange(dst) {
		return 0, fmt.Errorf("%w: %d→%d", ErrIndexOutOfRange, src, dst)
	}

	return g.matrix[src][dst], nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.matrix) }

// EdgeCount returns the number of edges.
// Complexity: O(V²)
func (g *Graph) EdgeCount() int {
	count := 0
	for i := range g.matrix {
		for j := range g.matrix[i] {
			if g.matrix[i][j] != noEdge {
				count++
			}
		}
	}

	return count
}

// Vertices returns the valid indices [0..VertexCount()) in order.
// Complexity: O(V)
func (g *Graph) Vertices() []int {
	verts := make([]int, len(g.matrix))
	for i := range verts {
		verts[i] = i
	}

	return verts
}

// Edges returns every edge as a (Src, Dst, Weight) triple in row-major
// matrix order.
// Complexity: O(V²)
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for i := range g.matrix {
		for j, w := range g.matrix[i] {
			if w != noEdge {
				edges = append(edges, Edge{Src: i, Dst: j, Weight: w})
			}
		}
	}

	return edges
}

// IsValidPath reports whether every consecutive pair (u,v) in path is
// joined by a directed edge u→v. The empty path is trivially valid; a
// single-index path is valid iff the index is in range.
// Complexity: O(len(path))
func (g *Graph) IsValidPath(path []int) bool {
	if len(path) == 0 {
		return true
	}
	if !g.inRange(path[0]) {
		return false
	}
	for i := 1; i < len(path); i++ {
		if !g.inRange(path[i]) || g.matrix[path[i-1]][path[i]] == noEdge {
			return false
		}
	}

	return true
}

// String renders the adjacency matrix as an aligned table with row and
// column indices; empty graphs render as "EMPTY GRAPH".
func (g *Graph) String() string {
	n := len(g.matrix)
	if n == 0 {
		return "EMPTY GRAPH"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "GRAPH (%d vertices):\n   |", n)
	for j := 0; j < n; j++ {
		fmt.Fprintf(&b, "%3d", j)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 4+3*n))
	b.WriteString("\n")
	for i, row := range g.matrix {
		fmt.Fprintf(&b, "%2d |", i)
		for _, w := range row {
			fmt.Fprintf(&b, "%3d", w)
		}
		b.WriteString("\n")
	}

	return b.String()
}
