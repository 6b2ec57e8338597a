// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// impl_cycle.go - implementation of Cycle(nodes...) constructor.
//
// Contract:
//   • len(nodes) ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order nodes[i]—nodes[(i+1)%k] for i=0..k-1.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(k) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/giantgraph/core"
)

// Cycle returns a Constructor that closes the given nodes into a ring.
func Cycle(nodes ...int) Constructor {
	// Copy the argument so later caller mutations cannot change the closure.
	ring := append([]int(nil), nodes...)

	return func(g *core.Graph, _ builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(MethodCycle, len(ring), MinCycleNodes); err != nil {
			return err
		}

		// Emit edges in ascending i; for i==k-1, connect to nodes[0] to close the ring.
		k := len(ring)
		for i := 0; i < k; i++ {
			if err := link(MethodCycle, g, ring[i], ring[(i+1)%k]); err != nil {
				return err
			}
		}

		return nil
	}
}
