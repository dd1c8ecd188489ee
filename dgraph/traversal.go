package dgraph

import "fmt"

// DFS performs a depth-first traversal from start, following directed
// edges only and visiting successor indices in ascending order. With
// WithEnd, the traversal stops as soon as the target is visited and the
// order-so-far is returned. Returns ErrIndexOutOfRange if start is
// invalid, or any error produced by a WithOnVisit hook.
// Complexity: O(V²) on the dense matrix
func (g *Graph) DFS(start int, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.inRange(start) {
		return nil, fmt.Errorf("%w: start %d", ErrIndexOutOfRange, start)
	}

	w := newWalker(g, o)
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.seen[v] {
			continue
		}
		w.seen[v] = true
		done, err := w.visit(v)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		// Push successors in descending index order so the lowest
		// index sits on top of the stack and is explored first.
		row := g.matrix[v]
		for j := len(row) - 1; j >= 0; j-- {
			if row[j] != noEdge && !w.seen[j] {
				stack = append(stack, j)
			}
		}
	}

	return w.order, nil
}

// BFS performs a breadth-first traversal from start, processing successor
// indices in ascending order within each frontier. The end-target and
// hook contracts match DFS.
// Complexity: O(V²) on the dense matrix
func (g *Graph) BFS(start int, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.inRange(start) {
		return nil, fmt.Errorf("%w: start %d", ErrIndexOutOfRange, start)
	}

	w := newWalker(g, o)
	queue := []int{start}
	w.seen[start] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		done, err := w.visit(v)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		for j, wgt := range g.matrix[v] {
			if wgt != noEdge && !w.seen[j] {
				w.seen[j] = true
				queue = append(queue, j)
			}
		}
	}

	return w.order, nil
}

// walker carries shared traversal state for DFS and BFS.
type walker struct {
	opts  Options
	seen  []bool
	order []int
}

func newWalker(g *Graph, o Options) *walker {
	return &walker{
		opts:  o,
		seen:  make([]bool, len(g.matrix)),
		order: make([]int, 0, len(g.matrix)),
	}
}

// visit records v in the order, runs the hook, and reports whether the
// traversal reached its end target.
func (w *walker) visit(v int) (bool, error) {
	w.order = append(w.order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return false, fmt.Errorf("dgraph: OnVisit hook for %d: %w", v, err)
		}
	}

	return w.opts.HasEnd && v == w.opts.End, nil
}
