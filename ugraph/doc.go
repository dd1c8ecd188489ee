// Package ugraph implements an undirected, unweighted graph backed by an
// adjacency list, generic over any ordered vertex label type.
//
// What:
//
//   - Graph[V] stores per-vertex neighbor sets; edges are symmetric.
//   - Vertices may be added explicitly or implicitly through AddEdge.
//   - DFS and BFS visit neighbors in ascending label order, optionally
//     stopping early at a target vertex.
//   - ConnectedComponents counts maximal connected regions.
//   - HasCycle detects any cycle via parent-tracking DFS, ignoring the
//     trivial two-step walk back across the edge just traversed.
//
// Invariants:
//
//   - Symmetry: v ∈ adj[u] ⇔ u ∈ adj[v].
//   - No self-loops (AddEdge(v, v) → ErrSelfLoop) and no duplicate edges
//     (re-adding an existing edge is a no-op).
//   - Deterministic iteration: Vertices, Edges, Neighbors, and traversal
//     orders are always ascending.
//
// Complexity:
//
//   - Mutations: O(1) except RemoveVertex, which is O(deg(v)).
//   - DFS / BFS / ConnectedComponents / HasCycle: O((V+E)·log V)
//     including the per-vertex neighbor sort.
//
// Errors:
//
//   - ErrVertexExists:   AddVertex with an already-present label.
//   - ErrVertexNotFound: traversal or Neighbors from an absent label.
//   - ErrSelfLoop:       AddEdge with identical endpoints.
//
// Structural no-ops (removing an absent vertex or edge) never fail.
// A Graph is not safe for concurrent mutation.
package ugraph
