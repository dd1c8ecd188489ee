package ugraph

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Graph is an undirected, unweighted graph over vertex labels of type V.
// Adjacency is stored as a map of neighbor sets; symmetry is maintained
// by every mutation. The zero value is not usable; construct with New.
type Graph[V cmp.Ordered] struct {
	adj map[V]map[V]struct{}
}

// New creates an empty undirected graph.
// Complexity: O(1)
func New[V cmp.Ordered]() *Graph[V] {
	return &Graph[V]{adj: make(map[V]map[V]struct{})}
}

// NewFromPairs creates a graph pre-populated with the given edges,
// creating vertices implicitly. Returns ErrSelfLoop if any pair has
// identical endpoints; duplicate pairs are tolerated.
// Complexity: O(len(pairs))
func NewFromPairs[V cmp.Ordered](pairs [][2]V) (*Graph[V], error) {
	g := New[V]()
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddVertex inserts a new vertex with no incident edges.
// Returns ErrVertexExists if the label is already present.
// Complexity: O(1)
func (g *Graph[V]) AddVertex(v V) error {
	if _, ok := g.adj[v]; ok {
		return fmt.Errorf("%w: %v", ErrVertexExists, v)
	}
	g.adj[v] = make(map[V]struct{})

	return nil
}

// AddEdge records the symmetric edge u—v, creating either endpoint if
// absent. Re-adding an existing edge is a no-op. Returns ErrSelfLoop
// when u == v; the graph is left untouched on failure.
// Complexity: O(1)
func (g *Graph[V]) AddEdge(u, v V) error {
	if u == v {
		return fmt.Errorf("%w: %v", ErrSelfLoop, u)
	}
	g.ensure(u)
	g.ensure(v)
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}

	return nil
}

// ensure creates the vertex if it does not yet exist.
func (g *Graph[V]) ensure(v V) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[V]struct{})
	}
}

// RemoveVertex deletes v and strips it from every neighbor's adjacency
// set. Removing an absent vertex is a no-op.
// Complexity: O(deg(v))
func (g *Graph[V]) RemoveVertex(v V) {
	nbrs, ok := g.adj[v]
	if !ok {
		return
	}
	for u := range nbrs {
		delete(g.adj[u], v)
	}
	delete(g.adj, v)
}

// RemoveEdge deletes the symmetric edge u—v if present; otherwise a no-op.
// Complexity: O(1)
func (g *Graph[V]) RemoveEdge(u, v V) {
	if _, ok := g.adj[u]; !ok {
		return
	}
	if _, ok := g.adj[v]; !ok {
		return
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
}

// HasVertex reports whether v is present.
// Complexity: O(1)
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether the edge u—v is present.
// Complexity: O(1)
func (g *Graph[V]) HasEdge(u, v V) bool {
	nbrs, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph[V]) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of unique undirected edges.
// Complexity: O(V)
func (g *Graph[V]) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	// each undirected edge is mirrored once
	return total / 2
}

// Vertices returns all vertex labels in ascending order.
// Complexity: O(V·log V)
func (g *Graph[V]) Vertices() []V {
	verts := make([]V, 0, len(g.adj))
	for v := range g.adj {
		verts = append(verts, v)
	}
	slices.Sort(verts)

	return verts
}

// Edges returns every unique undirected edge as a normalized (U ≤ V)
// pair, sorted ascending by U then V.
// Complexity: O(V·log V + E·log E)
func (g *Graph[V]) Edges() []Edge[V] {
	edges := make([]Edge[V], 0, g.EdgeCount())
	for _, u := range g.Vertices() {
		for v := range g.adj[u] {
			if u < v {
				edges = append(edges, Edge[V]{U: u, V: v})
			}
		}
	}
	slices.SortFunc(edges, func(a, b Edge[V]) int {
		if a.U != b.U {
			if a.U < b.U {
				return -1
			}

			return 1
		}
		switch {
		case a.V < b.V:
			return -1
		case a.V > b.V:
			return 1
		default:
			return 0
		}
	})

	return edges
}

// Neighbors returns the labels adjacent to v in ascending order.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(deg(v)·log deg(v))
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]V, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	slices.Sort(out)

	return out, nil
}

// IsValidPath reports whether every consecutive pair in path is joined by
// an edge and every label exists. The empty path is trivially valid; a
// single-vertex path is valid iff that vertex exists.
// Complexity: O(len(path))
func (g *Graph[V]) IsValidPath(path []V) bool {
	if len(path) == 0 {
		return true
	}
	if !g.HasVertex(path[0]) {
		return false
	}
	for i := 1; i < len(path); i++ {
		if !g.HasEdge(path[i-1], path[i]) {
			return false
		}
	}

	return true
}

// String renders the adjacency structure in a compact, deterministic
// human-readable form, one vertex per entry with sorted neighbors.
func (g *Graph[V]) String() string {
	var b strings.Builder
	b.WriteString("GRAPH: {")
	for i, v := range g.Vertices() {
		if i > 0 {
			b.WriteString(", ")
		}
		nbrs, _ := g.Neighbors(v)
		fmt.Fprintf(&b, "%v: %v", v, nbrs)
	}
	b.WriteString("}")

	return b.String()
}
