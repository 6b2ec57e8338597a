package core

import (
	"math"
	"sort"
)

// giantIterations is the number of fixed-point steps used to approximate the
// giant-component fraction θ = 1 - exp(-c·θ).
const giantIterations = 10

// giantSeed is the starting point of the fixed-point iteration.
const giantSeed = 0.5

// EdgeCount returns the number of canonical (unordered, deduplicated) edges.
// Self-loops are not counted. Complexity: O(V+E).
func (g *Graph) EdgeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.edgeCountLocked()
}

// MaxEdgeCount returns N(N-1)/2.
func (g *Graph) MaxEdgeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return maxEdges(len(g.adj))
}

// EdgeProbability returns EdgeCount / MaxEdgeCount, or 0 when N ≤ 1.
func (g *Graph) EdgeProbability() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return edgeProbability(g.edgeCountLocked(), len(g.adj))
}

// CriticalThreshold returns the Erdős–Rényi threshold 1/N, or 0 when N ≤ 1.
func (g *Graph) CriticalThreshold() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return criticalThreshold(len(g.adj))
}

// IsAboveGiantComponentThreshold reports EdgeProbability ≥ CriticalThreshold.
// Always false when N ≤ 1.
func (g *Graph) IsAboveGiantComponentThreshold() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	return aboveThreshold(edgeProbability(g.edgeCountLocked(), n), n)
}

// ExpectedGiantComponentSize approximates the asymptotic giant-component size
// round(θ·N), θ solving θ = 1 - exp(-c·θ) with c = p·(N-1). Returns 0 when the
// graph is not above the threshold.
func (g *Graph) ExpectedGiantComponentSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	return expectedGiant(edgeProbability(g.edgeCountLocked(), n), n)
}

// GiantComponentSize returns the largest VertexCount, or 0 with no components.
func (g *Graph) GiantComponentSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return giantSize(g.analysisLocked())
}

// TotalCycleCount sums CycleCount over all components.
func (g *Graph) TotalCycleCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return totalCycles(g.analysisLocked())
}

// ComponentSizeEntropy returns the base-2 Shannon entropy of the component
// size distribution, or 0 with no components.
func (g *Graph) ComponentSizeEntropy() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return sizeEntropy(g.analysisLocked())
}

// ComponentTypeCounts tallies analysis records per classification.
func (g *Graph) ComponentTypeCounts() TypeCounts {
	g.mu.Lock()
	defer g.mu.Unlock()

	return typeCounts(g.analysisLocked())
}

// ComponentSizeDistribution maps each component size to the number of
// components of that size. The map is freshly allocated.
func (g *Graph) ComponentSizeDistribution() map[int]int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return sizeDistribution(g.analysisLocked())
}

// Stats returns every aggregate statistic computed under one lock, so the
// values are mutually consistent at the reported Version.
func (g *Graph) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	records := g.analysisLocked()
	ec := g.edgeCountLocked()
	p := edgeProbability(ec, n)

	return Stats{
		Version:                    g.version,
		NodeCount:                  n,
		EdgeCount:                  ec,
		MaxEdgeCount:               maxEdges(n),
		EdgeProbability:            p,
		CriticalThreshold:          criticalThreshold(n),
		AboveThreshold:             aboveThreshold(p, n),
		ExpectedGiantComponentSize: expectedGiant(p, n),
		GiantComponentSize:         giantSize(records),
		ComponentCount:             len(records),
		TotalCycleCount:            totalCycles(records),
		ComponentSizeEntropy:       sizeEntropy(records),
		TypeCounts:                 typeCounts(records),
	}
}

// edgeCountLocked sums the per-component canonical edge counts. Callers hold g.mu.
func (g *Graph) edgeCountLocked() int {
	total := 0
	for _, rec := range g.analysisLocked() {
		total += rec.EdgeCount
	}

	return total
}

func maxEdges(n int) int {
	if n <= 1 {
		return 0
	}

	return n * (n - 1) / 2
}

func edgeProbability(edges, n int) float64 {
	m := maxEdges(n)
	if m == 0 {
		return 0
	}

	return float64(edges) / float64(m)
}

func criticalThreshold(n int) float64 {
	if n <= 1 {
		return 0
	}

	return 1 / float64(n)
}

func aboveThreshold(p float64, n int) bool {
	if n <= 1 {
		return false
	}

	return p >= criticalThreshold(n)
}

func expectedGiant(p float64, n int) int {
	if !aboveThreshold(p, n) {
		return 0
	}
	c := p * float64(n-1)
	theta := giantSeed
	for i := 0; i < giantIterations; i++ {
		theta = 1 - math.Exp(-c*theta)
	}

	return int(math.Round(theta * float64(n)))
}

func giantSize(records []ComponentAnalysis) int {
	best := 0
	for _, r := range records {
		if r.VertexCount > best {
			best = r.VertexCount
		}
	}

	return best
}

func totalCycles(records []ComponentAnalysis) int {
	total := 0
	for _, r := range records {
		total += r.CycleCount
	}

	return total
}

func typeCounts(records []ComponentAnalysis) TypeCounts {
	var tc TypeCounts
	for _, r := range records {
		switch r.Kind() {
		case KindIsolated:
			tc.Isolated++
		case KindTree:
			tc.Tree++
		case KindUnicyclic:
			tc.Unicyclic++
		case KindMulticyclic:
			tc.Multicyclic++
		}
	}

	return tc
}

func sizeDistribution(records []ComponentAnalysis) map[int]int {
	dist := make(map[int]int)
	for _, r := range records {
		dist[r.VertexCount]++
	}

	return dist
}

// sizeEntropy sums over sizes in ascending order so the float result is
// identical between calls.
func sizeEntropy(records []ComponentAnalysis) float64 {
	if len(records) == 0 {
		return 0
	}
	dist := sizeDistribution(records)
	sizes := make([]int, 0, len(dist))
	for s := range dist {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)

	total := float64(len(records))
	h := 0.0
	for _, s := range sizes {
		p := float64(dist[s]) / total
		h -= p * math.Log2(p)
	}

	return h
}
