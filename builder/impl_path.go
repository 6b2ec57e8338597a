// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// impl_path.go - implementation of Path(nodes...) constructor.
//
// Contract:
//   • len(nodes) ≥ 2 (else ErrTooFewVertices).
//   • Emits edges nodes[i]—nodes[i+1] for i=0..k-2.
//
// Complexity:
//   • Time: O(k). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/giantgraph/core"
)

// Path returns a Constructor that chains the given nodes.
func Path(nodes ...int) Constructor {
	chain := append([]int(nil), nodes...)

	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, len(chain), MinPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < len(chain); i++ {
			if err := link(MethodPath, g, chain[i], chain[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
