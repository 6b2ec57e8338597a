package core_test

import (
	"fmt"

	"github.com/katalvlaran/giantgraph/core"
)

// ExampleGraph demonstrates incremental construction and the analytical views.
func ExampleGraph() {
	// 1) Six isolated nodes.
	g, _ := core.NewGraph(6)

	// 2) A triangle and a separate edge.
	_ = g.AddUndirectedEdge(0, 1)
	_ = g.AddUndirectedEdge(1, 2)
	_ = g.AddUndirectedEdge(2, 0)
	_ = g.AddUndirectedEdge(3, 4)

	// 3) Inspect components and their classification.
	fmt.Println("components:", g.Components())
	for _, c := range g.ComponentAnalysis() {
		fmt.Printf("#%d %v %s\n", c.ComponentID, c.Members, c.Kind())
	}
	cycles, _ := g.FindCycles()
	fmt.Println("cycles:", cycles)
	// Output:
	// components: [[0 1 2] [3 4] [5]]
	// #0 [0 1 2] unicyclic
	// #1 [3 4] tree
	// #2 [5] isolated
	// cycles: [[0 1 2]]
}

// ExampleGraph_Stats shows the aggregate statistics of a small graph.
func ExampleGraph_Stats() {
	g, _ := core.NewGraph(5)
	_ = g.AddUndirectedEdge(0, 1)
	_ = g.AddUndirectedEdge(1, 2)
	_ = g.AddUndirectedEdge(2, 0)
	_ = g.AddUndirectedEdge(3, 4)

	s := g.Stats()
	fmt.Printf("edges=%d/%d p=%.2f threshold=%.2f above=%t\n",
		s.EdgeCount, s.MaxEdgeCount, s.EdgeProbability, s.CriticalThreshold, s.AboveThreshold)
	fmt.Printf("giant=%d expected=%d entropy=%.2f\n",
		s.GiantComponentSize, s.ExpectedGiantComponentSize, s.ComponentSizeEntropy)
	// Output:
	// edges=4/10 p=0.40 threshold=0.20 above=true
	// giant=3 expected=3 entropy=1.00
}

// ExampleGraph_FindCycleToHighlight extracts the cycle of a unicyclic component.
func ExampleGraph_FindCycleToHighlight() {
	g, _ := core.NewGraph(4, core.WithSeed(1))
	_ = g.AddUndirectedEdge(0, 1)
	_ = g.AddUndirectedEdge(1, 2)
	_ = g.AddUndirectedEdge(2, 3)
	_ = g.AddUndirectedEdge(3, 0)

	cycle, ok := g.FindCycleToHighlight()
	fmt.Println(cycle, ok)
	// Output: [0 3 2 1] true
}
