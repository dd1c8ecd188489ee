package ugraph

// HasCycle reports whether the graph contains any cycle. Detection runs a
// DFS from every unvisited vertex, tracking each vertex's traversal
// parent: an edge leading back to an already-visited vertex other than
// the immediate parent is a back-edge, and a back-edge closes a cycle.
// The two-step walk back across the edge just traversed is not a cycle.
//
// Time: O(V+E), Memory: O(V)
func (g *Graph[V]) HasCycle() bool {
	seen := make(map[V]bool, len(g.adj))
	for v := range g.adj {
		if !seen[v] && g.cycleFrom(v, v, false, seen) {
			return true
		}
	}

	return false
}

// cycleFrom recursively explores v's component. parent is the vertex this
// call arrived from; hasParent is false only at the component root.
func (g *Graph[V]) cycleFrom(v, parent V, hasParent bool, seen map[V]bool) bool {
	seen[v] = true
	for nbr := range g.adj[v] {
		if !seen[nbr] {
			if g.cycleFrom(nbr, v, true, seen) {
				return true
			}
			continue
		}
		// back-edge to a non-parent vertex
		if !hasParent || nbr != parent {
			return true
		}
	}

	return false
}
