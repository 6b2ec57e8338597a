// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// impl_wheel.go - implementation of Wheel(center, rim...) constructor.
//
// Canonical model:
//   • W = C(rim) + spokes from center to every rim node.
//   • A wheel on k rim nodes has 2k edges over k+1 vertices, so it is a single
//     multicyclic component with k independent cycles.
//
// Contract:
//   • len(rim) ≥ 3 (else ErrTooFewVertices).
//   • Emits the rim cycle first (as Cycle), then spokes in rim order.
//
// Complexity:
//   • Time: O(k). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/giantgraph/core"
)

// Wheel returns a Constructor that builds a wheel around center.
func Wheel(center int, rim ...int) Constructor {
	outer := append([]int(nil), rim...)

	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate the rim size.
		if err := validateMin(MethodWheel, len(outer), MinWheelRim); err != nil {
			return err
		}

		// 2) Rim cycle.
		if err := Cycle(outer...)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim: %w", MethodWheel, err)
		}

		// 3) Spokes.
		if err := Star(center, outer...)(g, cfg); err != nil {
			return fmt.Errorf("%s: spokes: %w", MethodWheel, err)
		}

		return nil
	}
}
