// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator for fresh graphs: BuildGraph(n, gopts, bopts, cons...).
//   - One orchestrator for existing graphs: Apply(g, bopts, cons...).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//   - Every constructor inserts symmetric edges through core.Graph.AddUndirectedEdge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/giantgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Insert edges only between valid node indices of g.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new n-node core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - core.ErrInvalidArgument for n < 0.
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Create the fixed node set first; constructors only add edges.
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply resolves bopts and runs cons against an existing graph in order.
// Edges inserted before a failing constructor stay in g.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}

	// Resolve deterministic builder configuration from functional options (O(len(bopts))).
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. Node arguments are indices into
// the target graph; an index outside [0, N) surfaces core.ErrNodeOutOfRange.

// Cycle joins nodes[i]—nodes[i+1] and closes nodes[k-1]—nodes[0] (k ≥ 3).
//func Cycle(nodes ...int) Constructor

// Path joins consecutive nodes (k ≥ 2).
//func Path(nodes ...int) Constructor

// Star joins center to every leaf (≥ 1 leaf).
//func Star(center int, leaves ...int) Constructor

// Wheel is Cycle(rim...) plus Star(center, rim...) (rim ≥ 3).
//func Wheel(center int, rim ...int) Constructor

// Complete joins every unordered pair of nodes (k ≥ 1).
//func Complete(nodes ...int) Constructor

// Grid builds a rows×cols 4-neighborhood lattice over nodes r*cols+c.
//func Grid(rows, cols int) Constructor

// RandomSparse samples G(N, p) over all pairs i<j of the graph.
//func RandomSparse(p float64) Constructor

// RandomEdges adds m random distinct non-loop edges not already present.
//func RandomEdges(m int) Constructor
