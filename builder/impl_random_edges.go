// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// impl_random_edges.go - implementation of RandomEdges(m) constructor.
//
// Canonical model:
//   • Rejection sampling of uniformly random pairs i≠j; a pair already connected
//     (in either stored direction) is redrawn.
//
// Contract:
//   • m ≥ 0 (else ErrTooFewVertices); m == 0 is a no-op.
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • At most m*cfg.attemptRatio draws; if the graph cannot take m more edges
//     within that budget, ErrConstructFailed (edges added so far stay).
//
// Complexity:
//   • Time: O(m·attemptRatio·deg) worst case. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/giantgraph/core"
)

// RandomEdges returns a Constructor that adds m new random edges.
func RandomEdges(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters in priority order.
		if err := validateMin(MethodRandomEdges, m, 0); err != nil {
			return err
		}
		if m == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomEdges, ErrNeedRandSource)
		}
		n := g.NodeCount()
		if n < MinPathNodes {
			return fmt.Errorf("%s: %d nodes cannot hold an edge: %w", MethodRandomEdges, n, ErrConstructFailed)
		}

		// 2) Draw until m edges are placed or the budget runs out.
		budget := m * cfg.attemptRatio
		added := 0
		for draw := 0; draw < budget && added < m; draw++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if err := link(MethodRandomEdges, g, u, v); err != nil {
				return err
			}
			added++
		}
		if added < m {
			return fmt.Errorf("%s: placed %d of %d edges in %d draws: %w",
				MethodRandomEdges, added, m, budget, ErrConstructFailed)
		}

		return nil
	}
}
