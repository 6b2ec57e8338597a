// Package dfs implements exhaustive simple-cycle enumeration for an
// undirected graph stored as a symmetric adjacency structure.
//
// SimpleCycles restarts a depth-first search from every vertex s in ascending
// order, only descends into neighbors greater than s, and tests path membership
// against the current path. A cycle is recorded whenever the path tail sees s
// again with at least three vertices on the path. Each cycle is deduplicated
// by its canonical key (minimum-first rotation of the forward or reversed order,
// whichever stringifies smaller), so a cycle is reported once no matter how
// many directions or rotations the search walks it in.
//
// The search runs on an explicit frame stack rather than recursion, so path
// length is bounded by memory and not by the goroutine stack.
//
// Complexity:
//
//   - Time:   exponential in the worst case (exhaustive simple-path search)
//   - Memory: O(V + C·L)   (V=#vertices, C=#cycles, L=avg cycle length)
package dfs

import (
	"fmt"
)

// SimpleCycles enumerates every distinct simple cycle of length ≥ 3 in adj.
// adj[u] lists the neighbors of u; every neighbor must be a valid index.
// Cycles are returned in order of first discovery, each one starting at its
// minimum vertex. The result is never nil.
//
// Errors:
//   - ErrCycleLimit if WithMaxCycles is set and more cycles exist.
//   - the context error if the context installed with WithContext is done.
func SimpleCycles(adj [][]int, opts ...Option) ([][]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(adj)
	cycles := make([][]int, 0)
	seen := make(map[string]struct{})
	onPath := make([]bool, n) // mirrors path membership
	path := make([]int, 0, n)
	stack := make([]frame, 0, n)

	for s := 0; s < n; s++ {
		// 1) Seed the path and the frame stack with the start vertex.
		path = append(path[:0], s)
		onPath[s] = true
		stack = append(stack[:0], frame{node: s})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := adj[top.node]

			// 2) Exhausted frame: backtrack.
			if top.next >= len(nbrs) {
				onPath[top.node] = false
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}

			nbr := nbrs[top.next]
			top.next++

			// 3) Closing edge back to the start vertex.
			if nbr == s && len(path) >= 3 {
				cycle := append([]int(nil), path...)
				key := CanonicalKey(cycle)
				if _, dup := seen[key]; dup {
					continue
				}
				if o.MaxCycles > 0 && len(cycles) >= o.MaxCycles {
					return nil, fmt.Errorf("dfs: SimpleCycles: more than %d cycles: %w", o.MaxCycles, ErrCycleLimit)
				}
				seen[key] = struct{}{}
				cycles = append(cycles, cycle)
				continue
			}

			// 4) Extend the path with a higher-numbered vertex not already on it.
			if nbr > s && !onPath[nbr] {
				if err := o.Ctx.Err(); err != nil {
					return nil, fmt.Errorf("dfs: SimpleCycles: %w", err)
				}
				onPath[nbr] = true
				path = append(path, nbr)
				stack = append(stack, frame{node: nbr})
			}
		}
	}

	return cycles, nil
}
