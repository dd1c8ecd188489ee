// Package ugraph defines the Edge type, sentinel errors, and traversal
// options for the undirected graph implementation.
package ugraph

import (
	"cmp"
	"errors"
)

// Sentinel errors for ugraph operations.
var (
	// ErrVertexExists indicates AddVertex was called with a label already in the graph.
	ErrVertexExists = errors.New("ugraph: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("ugraph: vertex not found")

	// ErrSelfLoop indicates an edge with identical endpoints was attempted.
	ErrSelfLoop = errors.New("ugraph: self-loops not allowed")
)

// Edge is an unordered vertex pair. Edges returned by Graph.Edges are
// normalized so that U ≤ V, making each undirected edge appear exactly once.
type Edge[V cmp.Ordered] struct {
	U, V V
}

// Option configures optional behavior of DFS and BFS traversals.
type Option[V cmp.Ordered] func(*Options[V])

// Options holds configurable traversal parameters.
type Options[V cmp.Ordered] struct {
	// End, when set via WithEnd, stops the traversal as soon as that
	// vertex has been visited; the order-so-far is returned.
	End V

	// HasEnd records whether End carries a target.
	HasEnd bool

	// OnVisit, if non-nil, is invoked as each vertex is visited.
	// Returning an error aborts the traversal with that error.
	OnVisit func(v V) error
}

// DefaultOptions returns Options with no end target and no hooks.
func DefaultOptions[V cmp.Ordered]() Options[V] {
	return Options[V]{}
}

// WithEnd stops the traversal once end has been visited. The returned
// order includes end as its final element when end is reachable.
func WithEnd[V cmp.Ordered](end V) Option[V] {
	return func(o *Options[V]) {
		o.End = end
		o.HasEnd = true
	}
}

// WithOnVisit registers fn to run on every visited vertex, in visit order.
// An error from fn aborts the traversal.
func WithOnVisit[V cmp.Ordered](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
