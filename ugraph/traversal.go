package ugraph

import (
	"cmp"
	"fmt"
)

// DFS performs a depth-first traversal from start, visiting neighbors in
// ascending label order, and returns the vertices in visit order.
// With WithEnd, the traversal stops as soon as the target is visited and
// the order-so-far is returned. Returns ErrVertexNotFound if start is
// absent, or any error produced by a WithOnVisit hook.
// Complexity: O((V+E)·log V)
func (g *Graph[V]) DFS(start V, opts ...Option[V]) ([]V, error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}

	w := newWalker(g, o)
	w.stack = append(w.stack, start)
	for len(w.stack) > 0 {
		v := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.seen[v] {
			continue
		}
		done, err := w.visit(v)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		// Push sorted neighbors in descending order so the smallest
		// label sits on top of the stack and is explored first.
		nbrs, _ := g.Neighbors(v)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !w.seen[nbrs[i]] {
				w.stack = append(w.stack, nbrs[i])
			}
		}
	}

	return w.order, nil
}

// BFS performs a breadth-first traversal from start, processing neighbors
// in ascending label order within each frontier. The end-target and hook
// contracts match DFS.
// Complexity: O((V+E)·log V)
func (g *Graph[V]) BFS(start V, opts ...Option[V]) ([]V, error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}

	w := newWalker(g, o)
	queue := []V{start}
	w.seen[start] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		done, err := w.visitSeen(v)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		nbrs, _ := g.Neighbors(v)
		for _, nbr := range nbrs {
			if !w.seen[nbr] {
				w.seen[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return w.order, nil
}

// walker carries shared traversal state for DFS and BFS.
type walker[V cmp.Ordered] struct {
	opts  Options[V]
	stack []V
	seen  map[V]bool
	order []V
}

func newWalker[V cmp.Ordered](g *Graph[V], o Options[V]) *walker[V] {
	return &walker[V]{
		opts:  o,
		seen:  make(map[V]bool, len(g.adj)),
		order: make([]V, 0, len(g.adj)),
	}
}

// visit marks v seen, records it, runs the hook, and reports whether the
// traversal reached its end target.
func (w *walker[V]) visit(v V) (bool, error) {
	w.seen[v] = true

	return w.visitSeen(v)
}

// visitSeen records an already-marked vertex; used by BFS, which marks
// vertices at enqueue time.
func (w *walker[V]) visitSeen(v V) (bool, error) {
	w.order = append(w.order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return false, fmt.Errorf("ugraph: OnVisit hook for %v: %w", v, err)
		}
	}

	return w.opts.HasEnd && v == w.opts.End, nil
}
