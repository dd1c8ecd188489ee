// Package dgraph implements a directed, positively-weighted graph backed
// by a dense adjacency matrix with sequential integer vertex indices.
//
// What:
//
//   - Graph stores an n×n matrix of int64 weights; cell (i,j) holds the
//     weight of edge i→j, or 0 meaning "no edge" (valid weights are ≥ 1).
//   - AddVertex grows the matrix by one row and column and returns the
//     new index; RemoveVertex shrinks it and reindexes all higher
//     vertices downward by one, preserving relative edge structure.
//   - DFS and BFS follow directed edges, visiting successor indices in
//     ascending order, with optional early-stop targets.
//   - HasCycle detects directed cycles with three-color DFS marking.
//   - Dijkstra computes single-source shortest paths over a min-heap
//     priority queue with lazy decrease-key; unreachable vertices report
//     the Unreachable sentinel distance.
//
// Invariants:
//
//   - The matrix stays square at all times; indices are always the
//     contiguous range [0, VertexCount()).
//   - No self-loops (AddEdge(i, i, w) → ErrSelfLoop); weights < 1 are
//     rejected with ErrBadWeight before any mutation.
//
// Complexity:
//
//   - AddVertex: O(V); RemoveVertex: O(V²); edge ops: O(1).
//   - DFS / BFS / HasCycle: O(V²) (row scans on the dense matrix).
//   - Dijkstra: O(V² log V) with the heap-backed queue.
//
// The dense representation matches the intended small-to-medium scale;
// callers needing very high vertex counts should prefer a sparse
// map-of-maps layout instead.
//
// Errors:
//
//   - ErrIndexOutOfRange: an index outside [0, VertexCount()).
//   - ErrSelfLoop:        AddEdge with src == dst.
//   - ErrBadWeight:       AddEdge with weight < 1.
//
// Structural no-ops (removing an absent edge) never fail.
// A Graph is not safe for concurrent mutation.
package dgraph
