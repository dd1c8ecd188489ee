package dgraph

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes the shortest-path distance from start to every vertex.
// Vertices are finalized in order of increasing distance via a min-heap
// priority queue using the lazy-decrease-key pattern: improved distances
// push fresh heap entries and stale ones are skipped when popped.
// Weights are constrained to ≥ 1 by AddEdge, so no negative-cycle
// handling is needed.
//
// Returns a map from vertex index to its shortest distance; unreachable
// vertices report Unreachable, and dist[start] is always 0. Returns
// ErrIndexOutOfRange if start is not a valid index.
//
// Time: O(V²·log V) on the dense matrix, Memory: O(V + E)
func (g *Graph) Dijkstra(start int) (map[int]int64, error) {
	if !g.inRange(start) {
		return nil, fmt.Errorf("%w: start %d", ErrIndexOutOfRange, start)
	}

	n := len(g.matrix)
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[start] = 0

	visited := make([]bool, n)
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{index: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.index
		if visited[u] {
			continue // stale lazy-decrease-key entry
		}
		visited[u] = true

		// Relax every outgoing edge of u.
		for v, w := range g.matrix[u] {
			if w == noEdge || visited[v] {
				continue
			}
			next := dist[u] + w
			if next >= dist[v] {
				continue
			}
			dist[v] = next
			heap.Push(&pq, &nodeItem{index: v, dist: next})
		}
	}

	result := make(map[int]int64, n)
	for i, d := range dist {
		result[i] = d
	}

	return result, nil
}

// nodeItem pairs a vertex index with its tentative distance from the
// source; it is the unit stored in the priority queue.
type nodeItem struct {
	index int
	dist  int64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
