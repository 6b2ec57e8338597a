package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/giantgraph/dfs"
)

// sparseRandom builds a symmetric G(n, m) adjacency with m random edges.
func sparseRandom(n, m int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	edges := make([][2]int, 0, m)
	for len(edges) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u != v {
			edges = append(edges, [2]int{u, v})
		}
	}

	return undirected(n, edges...)
}

// BenchmarkComponents_Sparse100 measures decomposition of a 100-vertex graph near criticality.
func BenchmarkComponents_Sparse100(b *testing.B) {
	adj := sparseRandom(100, 50, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.Components(adj)
	}
}

// BenchmarkSimpleCycles_Sparse100 measures exhaustive enumeration on a sparse graph
// slightly above the giant-component threshold (average degree ≈ 1.2).
func BenchmarkSimpleCycles_Sparse100(b *testing.B) {
	adj := sparseRandom(100, 60, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.SimpleCycles(adj)
	}
}

// BenchmarkCyclePath_Ring1000 measures single-cycle extraction on a 1000-vertex ring.
func BenchmarkCyclePath_Ring1000(b *testing.B) {
	const n = 1000
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}
	adj := undirected(n, edges...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.CyclePath(adj, 0)
	}
}
