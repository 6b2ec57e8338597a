package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/giantgraph/dfs"
)

// ExampleSimpleCycles enumerates the seven simple cycles of the complete graph K4.
func ExampleSimpleCycles() {
	adj := [][]int{
		{1, 2, 3},
		{0, 2, 3},
		{0, 1, 3},
		{0, 1, 2},
	}

	cycles, err := dfs.SimpleCycles(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(cycles), cycles)
	// Output:
	// 7 [[0 1 2] [0 1 2 3] [0 1 3] [0 1 3 2] [0 2 1 3] [0 2 3] [1 2 3]]
}

// ExampleComponents splits six vertices into a path, an isolated vertex and an edge.
func ExampleComponents() {
	adj := [][]int{
		{1},    // 0
		{0, 2}, // 1
		{1},    // 2
		{},     // 3
		{5},    // 4
		{4},    // 5
	}

	fmt.Println(dfs.Components(adj))
	// Output:
	// [[0 1 2] [3] [4 5]]
}

// ExampleCyclePath extracts the unique cycle of a triangle with a tail 3-0.
func ExampleCyclePath() {
	adj := [][]int{
		{1, 2, 3}, // 0
		{0, 2},    // 1
		{1, 0},    // 2
		{0},       // 3
	}

	cycle, _ := dfs.CyclePath(adj, 3)
	fmt.Println(cycle)
	// Output:
	// [0 2 1]
}
