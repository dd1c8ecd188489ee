// Package dgraph defines the Edge type, distance sentinels, sentinel
// errors, and traversal options for the directed graph implementation.
package dgraph

import (
	"errors"
	"math"
)

// noEdge is the matrix cell value meaning "no edge". Valid weights are ≥ 1,
// so zero is unambiguous.
const noEdge int64 = 0

// Unreachable is the distance reported by Dijkstra for vertices with no
// path from the source. It exceeds any real distance.
const Unreachable int64 = math.MaxInt64

// Sentinel errors for dgraph operations.
var (
	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("dgraph: vertex index out of range")

	// ErrSelfLoop indicates an edge with identical endpoints was attempted.
	ErrSelfLoop = errors.New("dgraph: self-loops not allowed")

	// ErrBadWeight indicates an edge weight below the positive minimum of 1.
	ErrBadWeight = errors.New("dgraph: edge weight must be positive")
)

// Edge is a weighted directed edge Src→Dst.
type Edge struct {
	Src    int
	Dst    int
	Weight int64
}

// Option configures optional behavior of DFS and BFS traversals.
type Option func(*Options)

// Options holds configurable traversal parameters.
type Options struct {
	// End, when set via WithEnd, stops the traversal as soon as that
	// index has been visited; the order-so-far is returned.
	End int

	// HasEnd records whether End carries a target.
	HasEnd bool

	// OnVisit, if non-nil, is invoked as each vertex is visited.
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns Options with no end target and no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithEnd stops the traversal once end has been visited. The returned
// order includes end as its final element when end is reachable.
func WithEnd(end int) Option {
	return func(o *Options) {
		o.End = end
		o.HasEnd = true
	}
}

// WithOnVisit registers fn to run on every visited vertex, in visit order.
// An error from fn aborts the traversal.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
