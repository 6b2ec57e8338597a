// Package core_test contains fixtures shared by the core engine tests.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/giantgraph/core"
)

// newGraph builds an n-node graph and inserts every pair as an undirected edge.
func newGraph(t testing.TB, n int, edges [][2]int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddUndirectedEdge(e[0], e[1]))
	}

	return g
}

// completeEdges lists K_n in ascending (i,j) order.
func completeEdges(n int) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return edges
}

// addDistinctRandomEdges inserts m new undirected edges between distinct,
// previously unconnected node pairs.
func addDistinctRandomEdges(t testing.TB, g *core.Graph, rng *rand.Rand, m int) {
	t.Helper()
	n := g.NodeCount()
	for added := 0; added < m; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || g.HasEdge(u, v) {
			continue
		}
		require.NoError(t, g.AddUndirectedEdge(u, v))
		added++
	}
}

var (
	triangle = [][2]int{{0, 1}, {1, 2}, {2, 0}}
	square   = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
)
