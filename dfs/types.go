// Package dfs defines the sentinel errors, options and vertex states shared by
// the component, cycle-enumeration and cycle-extraction traversals.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrCycleLimit is returned by SimpleCycles when more distinct cycles exist
	// than the limit installed with WithMaxCycles.
	ErrCycleLimit = errors.New("dfs: cycle limit exceeded")

	// ErrStartOutOfRange indicates that a start vertex is not a valid index
	// into the adjacency structure.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")

	// ErrOptionViolation indicates an option received a meaningless value.
	ErrOptionViolation = errors.New("dfs: invalid option value")
)

// Option configures optional behavior of SimpleCycles.
type Option func(*CycleOptions)

// CycleOptions holds configurable guards for the exhaustive cycle search.
type CycleOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is polled once per pushed frame.
	Ctx context.Context

	// MaxCycles, if positive, caps the number of distinct cycles recorded.
	// Discovering one more than MaxCycles aborts with ErrCycleLimit.
	// Zero means unlimited.
	MaxCycles int
}

// DefaultOptions returns CycleOptions with a background context and no cycle cap.
func DefaultOptions() CycleOptions {
	return CycleOptions{
		Ctx:       context.Background(),
		MaxCycles: 0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *CycleOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCycles returns an Option that caps the number of distinct cycles.
// Panics on negative limits; zero disables the cap.
func WithMaxCycles(limit int) Option {
	if limit < 0 {
		panic(fmt.Sprintf("dfs: WithMaxCycles(%d): %v", limit, ErrOptionViolation))
	}
	return func(o *CycleOptions) {
		o.MaxCycles = limit
	}
}

// frame is one level of an explicit DFS stack: the vertex being expanded and
// the index of the next neighbor to examine.
type frame struct {
	node int
	next int
}
