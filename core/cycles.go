package core

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/giantgraph/dfs"
)

// FindCycles enumerates every distinct simple cycle of length ≥ 3.
//
// Each cycle appears exactly once regardless of rotation or direction and
// starts at its smallest vertex; cycles are ordered by that start vertex.
// Not cached: every call re-enumerates. The count is exponential in the worst
// case, so graphs configured WithCycleLimit fail with dfs.ErrCycleLimit once
// the limit is exceeded.
func (g *Graph) FindCycles() ([][]int, error) {
	return g.FindCyclesContext(context.Background())
}

// FindCyclesContext is FindCycles with cancellation. The enumeration runs on an
// adjacency snapshot, so the graph lock is not held while it runs.
func (g *Graph) FindCyclesContext(ctx context.Context) ([][]int, error) {
	g.mu.Lock()
	adj := g.adjacencySnapshot()
	limit := g.cycleLimit
	g.mu.Unlock()

	cycles, err := dfs.SimpleCycles(adj, dfs.WithContext(ctx), dfs.WithMaxCycles(limit))
	if err != nil {
		return nil, fmt.Errorf("core: FindCycles: %w", err)
	}

	return cycles, nil
}

// FindCycleToHighlight picks one unicyclic component uniformly at random and
// returns its unique cycle, starting from the component's first-discovered
// vertex and walking parent pointers. Returns (nil, false) when no unicyclic
// component exists. Multicyclic components are never chosen.
//
// The walk follows stored directions only, so it assumes the symmetric
// adjacency AddUndirectedEdge builds. A component assembled from one-way
// AddEdge calls can be unicyclic yet yield (nil, false).
func (g *Graph) FindCycleToHighlight() ([]int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var unicyclic []ComponentAnalysis
	for _, rec := range g.analysisLocked() {
		if rec.IsUnicyclic {
			unicyclic = append(unicyclic, rec)
		}
	}
	if len(unicyclic) == 0 {
		return nil, false
	}

	pick := unicyclic[g.intn(len(unicyclic))]
	cycle, err := dfs.CyclePath(g.adj, pick.Members[0])
	if err != nil || len(cycle) == 0 {
		return nil, false
	}

	return cycle, true
}

// intn draws from the configured source or the process-wide one. Callers hold g.mu.
func (g *Graph) intn(n int) int {
	if g.rng != nil {
		return g.rng.Intn(n)
	}

	return rand.Intn(n)
}
