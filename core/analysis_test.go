package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/giantgraph/core"
)

// TestAnalysis_EmptyGraph: five isolated nodes, no edges.
func TestAnalysis_EmptyGraph(t *testing.T) {
	g := newGraph(t, 5, nil)

	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}, {4}}, g.Components())
	recs := g.ComponentAnalysis()
	require.Len(t, recs, 5)
	for i, r := range recs {
		assert.Equal(t, i, r.ComponentID)
		assert.True(t, r.IsIsolated)
		assert.Equal(t, core.KindIsolated, r.Kind())
		assert.Equal(t, 0, r.CycleCount)
	}
	assert.Equal(t, core.TypeCounts{Isolated: 5}, g.ComponentTypeCounts())
	assert.Equal(t, 0, g.TotalCycleCount())
	assert.Equal(t, 0.0, g.EdgeProbability())
}

// TestAnalysis_TriangleAndTree classifies a unicyclic triangle next to a two-node tree.
func TestAnalysis_TriangleAndTree(t *testing.T) {
	g := newGraph(t, 5, append(append([][2]int{}, triangle...), [2]int{3, 4}))

	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, g.Components())
	assert.Equal(t, []core.ComponentAnalysis{
		{ComponentID: 0, Members: []int{0, 1, 2}, VertexCount: 3, EdgeCount: 3, CycleCount: 1, IsUnicyclic: true},
		{ComponentID: 1, Members: []int{3, 4}, VertexCount: 2, EdgeCount: 1, CycleCount: 0, IsTree: true},
	}, g.ComponentAnalysis())
	assert.Equal(t, core.TypeCounts{Tree: 1, Unicyclic: 1}, g.ComponentTypeCounts())
}

// TestAnalysis_Square: one unicyclic component of four vertices and four edges.
func TestAnalysis_Square(t *testing.T) {
	g := newGraph(t, 4, square)

	recs := g.ComponentAnalysis()
	require.Len(t, recs, 1)
	assert.Equal(t, 4, recs[0].VertexCount)
	assert.Equal(t, 4, recs[0].EdgeCount)
	assert.Equal(t, 1, recs[0].CycleCount)
	assert.Equal(t, core.KindUnicyclic, recs[0].Kind())
	assert.Equal(t, 1, g.TotalCycleCount())
}

// TestAnalysis_Multicyclic: K4 has 6 edges, 4 vertices, so 3 independent cycles.
func TestAnalysis_Multicyclic(t *testing.T) {
	g := newGraph(t, 4, completeEdges(4))

	recs := g.ComponentAnalysis()
	require.Len(t, recs, 1)
	assert.Equal(t, 3, recs[0].CycleCount)
	assert.True(t, recs[0].IsMulticyclic)
	assert.Equal(t, "multicyclic", recs[0].Kind().String())
}

// TestAnalysis_DuplicateEdges counts canonical edges only, so parallel edges add no cycle.
func TestAnalysis_DuplicateEdges(t *testing.T) {
	g := newGraph(t, 2, [][2]int{{0, 1}, {1, 0}, {0, 1}})

	recs := g.ComponentAnalysis()
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].EdgeCount)
	assert.True(t, recs[0].IsTree)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAnalysis_SelfLoopOnSingleton keeps exactly one classification per record.
func TestAnalysis_SelfLoopOnSingleton(t *testing.T) {
	g := newGraph(t, 1, [][2]int{{0, 0}})

	recs := g.ComponentAnalysis()
	require.Len(t, recs, 1)
	assert.Zero(t, recs[0].EdgeCount)
	assert.Zero(t, recs[0].CycleCount)
	assert.True(t, recs[0].IsIsolated)
	assert.False(t, recs[0].IsUnicyclic)
	assert.Equal(t, core.TypeCounts{Isolated: 1}, g.ComponentTypeCounts())
}

// TestAnalysis_SelfLoopOnPath ignores a loop hanging off a tree.
func TestAnalysis_SelfLoopOnPath(t *testing.T) {
	g := newGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 2}})

	recs := g.ComponentAnalysis()
	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].EdgeCount)
	assert.Zero(t, recs[0].CycleCount)
	assert.True(t, recs[0].IsTree)
	assert.False(t, recs[0].IsUnicyclic)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Zero(t, g.TotalCycleCount())

	cycles, err := g.FindCycles()
	require.NoError(t, err)
	assert.Empty(t, cycles)
	cycle, ok := g.FindCycleToHighlight()
	assert.False(t, ok)
	assert.Nil(t, cycle)
}

// TestAnalysis_RankOrder sorts by size descending and keeps discovery order on ties.
func TestAnalysis_RankOrder(t *testing.T) {
	g := newGraph(t, 5, [][2]int{{3, 4}, {1, 2}})

	assert.Equal(t, [][]int{{0}, {1, 2}, {3, 4}}, g.Components())
	recs := g.ComponentAnalysis()
	require.Len(t, recs, 3)
	assert.Equal(t, []int{1, 2}, recs[0].Members)
	assert.Equal(t, []int{3, 4}, recs[1].Members)
	assert.Equal(t, []int{0}, recs[2].Members)
	for i, r := range recs {
		assert.Equal(t, i, r.ComponentID)
	}
}

// TestAnalysis_AsymmetricEdge treats a one-direction edge as connecting both ends.
func TestAnalysis_AsymmetricEdge(t *testing.T) {
	g := newGraph(t, 3, nil)
	g.AddEdge(2, 0)

	assert.Equal(t, [][]int{{0, 2}, {1}}, g.Components())
	recs := g.ComponentAnalysis()
	require.Len(t, recs, 2)
	assert.True(t, recs[0].IsTree)
	assert.Equal(t, 1, recs[0].EdgeCount)
}

// TestAnalysis_PartitionInvariant: members of all components partition [0, N).
func TestAnalysis_PartitionInvariant(t *testing.T) {
	g := newGraph(t, 8, [][2]int{{0, 5}, {5, 7}, {2, 3}, {3, 2}, {6, 6}})

	seen := make(map[int]int)
	for _, c := range g.Components() {
		for _, v := range c {
			seen[v]++
		}
	}
	require.Len(t, seen, 8)
	for v, cnt := range seen {
		assert.Equal(t, 1, cnt, "node %d appears %d times", v, cnt)
	}

	total := 0
	for _, r := range g.ComponentAnalysis() {
		total += r.VertexCount
		assert.Equal(t, r.VertexCount, len(r.Members))
		assert.GreaterOrEqual(t, r.CycleCount, 0)
	}
	assert.Equal(t, 8, total)
}

// TestAnalysis_CacheIdempotentAndInvalidated covers memoisation and deep copies.
func TestAnalysis_CacheIdempotentAndInvalidated(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}})

	first := g.ComponentAnalysis()
	second := g.ComponentAnalysis()
	assert.Equal(t, first, second)

	// Mutating a returned snapshot must not leak into the cache.
	first[0].Members[0] = 99
	first[0].VertexCount = 0
	comps := g.Components()
	comps[0][0] = 42
	assert.Equal(t, second, g.ComponentAnalysis())
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, g.Components())

	// A mutation invalidates every derived view.
	require.NoError(t, g.AddUndirectedEdge(2, 0))
	after := g.ComponentAnalysis()
	require.Len(t, after, 2)
	assert.True(t, after[0].IsUnicyclic)
	assert.Equal(t, 1, g.TotalCycleCount())
}

// TestComponentKind_String covers the fallback formatting.
func TestComponentKind_String(t *testing.T) {
	assert.Equal(t, "isolated", core.KindIsolated.String())
	assert.Equal(t, "tree", core.KindTree.String())
	assert.Equal(t, "unicyclic", core.KindUnicyclic.String())
	assert.Equal(t, "ComponentKind(9)", core.ComponentKind(9).String())

	txt, err := core.KindTree.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "tree", string(txt))

	var k core.ComponentKind
	require.NoError(t, k.UnmarshalText([]byte("multicyclic")))
	assert.Equal(t, core.KindMulticyclic, k)
	assert.ErrorIs(t, k.UnmarshalText([]byte("forest")), core.ErrInvalidArgument)
}
