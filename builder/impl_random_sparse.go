// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) constructor.
//
// Canonical model:
//   • Erdős–Rényi G(N, p): include each unordered pair {i,j}, i<j, independently
//     with probability p. N is the node count of the target graph.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//   • Never emits self-loops; emits a pair at most once per call.
//
// Complexity:
//   • Time: O(N²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   • Stable trial order: i asc, then j asc (j>i), one rng.Float64() per trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/giantgraph/core"
)

// RandomSparse returns a Constructor that samples G(N, p) into the graph.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate probability.
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}

		// 2) RNG is only required for true stochastic sampling.
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if p == MinProbability {
			return nil
		}

		// 3) Sample unordered pairs with a stable order.
		n := g.NodeCount()
		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// Bernoulli trial; p == 1 keeps every pair without drawing.
				if p < MaxProbability && rng.Float64() >= p {
					continue
				}
				if err := link(MethodRandomSparse, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
