package core

import (
	"sort"

	"github.com/katalvlaran/giantgraph/dfs"
)

// edgeKey is the canonical form of an undirected edge: {min, max}.
type edgeKey [2]int

func canonical(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey{u, v}
}

// Components returns the connected components (edge direction ignored) in
// ascending-start DFS discovery order, each listing its members in discovery
// order. The returned slices are a fresh copy; mutating them does not affect
// the graph. Cached until the next mutation.
// Complexity: O(V+E) on a cache miss, O(V) for the copy on a hit.
func (g *Graph) Components() [][]int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return cloneComponents(g.componentsLocked())
}

// ComponentAnalysis returns one record per connected component, sorted by
// VertexCount descending (ties keep discovery order), with ComponentID set to
// the record's rank in that order. The result is a deep copy. Cached until the
// next mutation.
// Complexity: O(V+E) on a cache miss.
func (g *Graph) ComponentAnalysis() []ComponentAnalysis {
	g.mu.Lock()
	defer g.mu.Unlock()

	return cloneAnalysis(g.analysisLocked())
}

// componentsLocked returns the cached component list. Callers hold g.mu.
func (g *Graph) componentsLocked() [][]int {
	return g.components.get(g.version, func() [][]int {
		return dfs.Components(g.adj)
	})
}

// analysisLocked returns the cached analysis records. Callers hold g.mu.
func (g *Graph) analysisLocked() []ComponentAnalysis {
	return g.analysis.get(g.version, g.analyze)
}

// analyze classifies every component. Callers hold g.mu.
//
// Steps:
//  1. Label each vertex with the index of its component.
//  2. Collect the canonical edge set of the whole graph once; every edge lies
//     inside exactly one component, so it is charged to its endpoint's label.
//     Self-loops are skipped: counts describe the underlying simple graph.
//  3. Derive cycle count and flags per component.
//  4. Stable sort by size descending and assign ranks.
func (g *Graph) analyze() []ComponentAnalysis {
	comps := g.componentsLocked()

	// 1) Vertex → component label
	label := make([]int, len(g.adj))
	for ci, members := range comps {
		for _, v := range members {
			label[v] = ci
		}
	}

	// 2) Canonical edges per component
	seen := make(map[edgeKey]struct{})
	edges := make([]int, len(comps))
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u == v {
				continue
			}
			k := canonical(u, v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			edges[label[u]]++
		}
	}

	// 3) Records
	records := make([]ComponentAnalysis, len(comps))
	for ci, members := range comps {
		vc := len(members)
		ec := edges[ci]
		cc := ec - vc + 1
		if cc < 0 {
			cc = 0
		}
		isolated := vc == 1
		records[ci] = ComponentAnalysis{
			Members:       append([]int(nil), members...),
			VertexCount:   vc,
			EdgeCount:     ec,
			CycleCount:    cc,
			IsIsolated:    isolated,
			IsTree:        cc == 0 && vc > 1,
			IsUnicyclic:   cc == 1 && !isolated,
			IsMulticyclic: cc > 1 && !isolated,
		}
	}

	// 4) Rank
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].VertexCount > records[j].VertexCount
	})
	for rank := range records {
		records[rank].ComponentID = rank
	}

	return records
}

func cloneComponents(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, c := range src {
		out[i] = append([]int(nil), c...)
	}

	return out
}

func cloneAnalysis(src []ComponentAnalysis) []ComponentAnalysis {
	out := make([]ComponentAnalysis, len(src))
	for i, r := range src {
		out[i] = r
		out[i].Members = append([]int(nil), r.Members...)
	}

	return out
}
