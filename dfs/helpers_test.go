package dfs_test

// undirected builds a symmetric adjacency over n vertices, appending both
// directions of every edge in the given order.
func undirected(n int, edges ...[2]int) [][]int {
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = []int{}
	}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	return adj
}

// complete returns the edge list of K_n in ascending (i,j) order.
func complete(n int) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return edges
}
