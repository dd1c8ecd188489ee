// Package lvlgraph bundles two small, self-contained graph representations:
//
//	ugraph/ — undirected, unweighted graphs over an adjacency list,
//	          with generic ordered vertex labels
//	dgraph/ — directed, positively-weighted graphs over a dense
//	          adjacency matrix, with sequential integer vertices
//
// The two packages are independent: pick the one matching your edge model.
// Both guarantee deterministic iteration (vertices, edges, and traversal
// neighbors are always produced in ascending order), so results are
// reproducible run to run.
//
// What each package offers:
//
//   - Mutation: vertex/edge add and remove, with strict validation errors
//     for malformed requests and silent tolerance of structural no-ops
//   - Traversal: DFS and BFS with optional early-stop targets and
//     per-visit hooks
//   - Analysis: path validation, cycle detection, connected-component
//     counting (ugraph), and Dijkstra shortest paths (dgraph)
//
// Neither package is safe for concurrent mutation; each graph instance is
// meant to be owned and driven by a single goroutine.
//
//	go get github.com/katalvlaran/lvlgraph
package lvlgraph
