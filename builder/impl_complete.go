// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// impl_complete.go - implementation of Complete(nodes...) constructor.
//
// Contract:
//   • len(nodes) ≥ 1 (else ErrTooFewVertices).
//   • Emits every unordered pair {nodes[i], nodes[j]} with i<j,
//     i ascending then j ascending.
//
// Complexity:
//   • Time: O(k²) edges. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/giantgraph/core"
)

// Complete returns a Constructor that builds K_k over the given nodes.
func Complete(nodes ...int) Constructor {
	clique := append([]int(nil), nodes...)

	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, len(clique), MinCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < len(clique); i++ {
			for j := i + 1; j < len(clique); j++ {
				if err := link(MethodComplete, g, clique[i], clique[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
