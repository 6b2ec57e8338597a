package dfs

import "fmt"

// CyclePath runs a single depth-first search from start and returns the first
// cycle it closes, or nil if the search finishes without closing one.
//
// The search keeps a parent pointer per vertex and never walks straight back
// along the edge it arrived by (every parallel copy of that edge is skipped).
// It stops the instant it meets a vertex that is still on the DFS stack (Gray):
// that vertex and the current vertex are the two ends of the cycle, which is
// rebuilt by following parent pointers from the current vertex back up.
// Finished (Black) vertices are not revisits, so a duplicated tree edge never
// produces a spurious cycle. Self-loops are skipped.
//
// On a unicyclic component this finds its unique cycle in O(component size);
// on components with more cycles it returns one of them.
//
// Returns ErrStartOutOfRange if start is not a valid index.
func CyclePath(adj [][]int, start int) ([]int, error) {
	n := len(adj)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("dfs: CyclePath(%d) with %d vertices: %w", start, n, ErrStartOutOfRange)
	}

	state := make([]int, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	state[start] = Gray
	stack := []frame{{node: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		u := top.node
		if top.next >= len(adj[u]) {
			state[u] = Black
			stack = stack[:len(stack)-1]
			continue
		}

		w := adj[u][top.next]
		top.next++

		// Do not retrace the edge we arrived by; self-loops are not cycles.
		if w == parent[u] || w == u {
			continue
		}

		switch state[w] {
		case White:
			parent[w] = u
			state[w] = Gray
			stack = append(stack, frame{node: w})
		case Gray:
			// Back edge u→w closes the cycle w … u.
			cycle := []int{w}
			for cur := u; cur != w; cur = parent[cur] {
				cycle = append(cycle, cur)
			}
			return cycle, nil
		}
	}

	return nil, nil
}
