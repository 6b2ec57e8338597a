package dfs

// Components partitions the vertices of adj into connected components,
// treating every stored edge as undirected: in-neighbors are followed as well
// as out-neighbors, so an asymmetric adjacency still yields maximal components.
//
// Starts are taken in ascending index order and each component lists its
// vertices in DFS discovery order. For a symmetric adjacency the order is the
// same as a recursive DFS over out-neighbors only.
//
// Time:   O(V + E).
// Memory: O(V + E) for the reverse adjacency, visited flags and output.
func Components(adj [][]int) [][]int {
	n := len(adj)
	rev := reverseAdjacency(adj)
	visited := make([]bool, n)
	comps := make([][]int, 0)
	stack := make([]frame, 0, n)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		comp := []int{start}
		stack = append(stack[:0], frame{node: start})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			u := top.node
			out := adj[u]
			if top.next >= len(out)+len(rev[u]) {
				stack = stack[:len(stack)-1]
				continue
			}

			// out-neighbors first, then in-neighbors
			var w int
			if top.next < len(out) {
				w = out[top.next]
			} else {
				w = rev[u][top.next-len(out)]
			}
			top.next++

			if !visited[w] {
				visited[w] = true
				comp = append(comp, w)
				stack = append(stack, frame{node: w})
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// reverseAdjacency returns in-neighbor lists: rev[v] holds every u with v in adj[u],
// in ascending u order.
func reverseAdjacency(adj [][]int) [][]int {
	rev := make([][]int, len(adj))
	for u, nbrs := range adj {
		for _, v := range nbrs {
			rev[v] = append(rev[v], u)
		}
	}

	return rev
}
