// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// impl_star.go - implementation of Star(center, leaves...) constructor.
//
// Contract:
//   • len(leaves) ≥ 1 (else ErrTooFewVertices).
//   • Emits edges center—leaves[i] in argument order.
//
// Complexity:
//   • Time: O(k). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/giantgraph/core"
)

// Star returns a Constructor that joins center to every leaf.
func Star(center int, leaves ...int) Constructor {
	spokes := append([]int(nil), leaves...)

	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, len(spokes), MinStarLeaves); err != nil {
			return err
		}
		for _, leaf := range spokes {
			if err := link(MethodStar, g, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
