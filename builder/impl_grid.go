// SPDX-License-Identifier: MIT
// Package: giantgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r,c) is node r*cols + c (row-major), so the grid occupies nodes
//     [0, rows*cols) of the target graph.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • rows*cols ≤ N (else core.ErrNodeOutOfRange from the first bad edge).
//
// Complexity:
//   • Time: O(rows*cols). Space: O(1) extra.
//
// Determinism:
//   • Stable edge order: for each (r,c) row-major, emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/giantgraph/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// 2) Emit edges: for each (r,c), connect to Right and Bottom neighbors if they exist.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c

				// 2a) Right neighbor (r, c+1).
				if c+1 < cols {
					if err := link(MethodGrid, g, u, u+1); err != nil {
						return err
					}
				}
				// 2b) Bottom neighbor (r+1, c).
				if r+1 < rows {
					if err := link(MethodGrid, g, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
