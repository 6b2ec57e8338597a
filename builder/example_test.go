package builder_test

import (
	"fmt"

	"github.com/katalvlaran/giantgraph/builder"
)

// ExampleBuildGraph composes fixtures into one graph and reports its structure.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(10, nil, nil,
		builder.Cycle(0, 1, 2),
		builder.Wheel(3, 4, 5, 6, 7),
		builder.Path(8, 9),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range g.ComponentAnalysis() {
		fmt.Printf("%d vertices, %d edges, %s\n", c.VertexCount, c.EdgeCount, c.Kind())
	}
	// Output:
	// 5 vertices, 8 edges, multicyclic
	// 3 vertices, 3 edges, unicyclic
	// 2 vertices, 1 edges, tree
}
