package dgraph

// vertexState is the three-color DFS visitation state of a vertex.
type vertexState uint8

const (
	white vertexState = iota // not yet visited
	gray                     // on the current exploration path
	black                    // fully explored
)

// HasCycle reports whether the graph contains any directed cycle.
// Detection runs a three-color DFS from every white vertex: an edge into
// a gray vertex points back to an ancestor on the current exploration
// path and therefore closes a cycle; edges into black vertices are
// harmless cross- or forward-edges.
//
// Time: O(V²) on the dense matrix, Memory: O(V)
func (g *Graph) HasCycle() bool {
	state := make([]vertexState, len(g.matrix))
	for v := range g.matrix {
		if state[v] == white && g.cycleFrom(v, state) {
			return true
		}
	}

	return false
}

// cycleFrom recursively explores v's successors, coloring v gray while it
// sits on the exploration path and black once exhausted.
func (g *Graph) cycleFrom(v int, state []vertexState) bool {
	state[v] = gray
	for j, w := range g.matrix[v] {
		if w == noEdge {
			continue
		}
		switch state[j] {
		case gray:
			return true
		case white:
			if g.cycleFrom(j, state) {
				return true
			}
		}
	}
	state[v] = black

	return false
}
