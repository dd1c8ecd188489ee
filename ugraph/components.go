package ugraph

// ConnectedComponents counts the maximal connected regions of the graph.
// Every unvisited vertex seeds a breadth-first sweep that marks its whole
// component; each sweep accounts for exactly one component. A graph with
// no edges therefore reports one component per vertex.
//
// Time: O(V+E), Memory: O(V)
func (g *Graph[V]) ConnectedComponents() int {
	seen := make(map[V]bool, len(g.adj))
	count := 0

	for v := range g.adj {
		if seen[v] {
			continue
		}
		count++
		// sweep the component containing v
		queue := []V{v}
		seen[v] = true
		for qi := 0; qi < len(queue); qi++ {
			for nbr := range g.adj[queue[qi]] {
				if !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
	}

	return count
}
