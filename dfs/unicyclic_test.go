package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/giantgraph/dfs"
)

// TestCyclePath_Square walks a 4-cycle back through parent pointers.
func TestCyclePath_Square(t *testing.T) {
	adj := undirected(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	cycle, err := dfs.CyclePath(adj, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2, 1}, cycle)
}

// TestCyclePath_Tree verifies that acyclic components yield nil.
func TestCyclePath_Tree(t *testing.T) {
	adj := undirected(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{3, 4})

	cycle, err := dfs.CyclePath(adj, 2)
	require.NoError(t, err)
	assert.Nil(t, cycle)
}

// TestCyclePath_TailAndDuplicateEdge covers a triangle with a pendant vertex
// whose edge was inserted twice; the finished pendant must not be taken for a cycle.
func TestCyclePath_TailAndDuplicateEdge(t *testing.T) {
	adj := undirected(4,
		[2]int{0, 3}, [2]int{0, 3},
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
	)

	cycle, err := dfs.CyclePath(adj, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, cycle)

	// Starting on the tail still finds the same cycle.
	cycle, err = dfs.CyclePath(adj, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, cycle)
}

// TestCyclePath_OutOfRange verifies the start-vertex precondition.
func TestCyclePath_OutOfRange(t *testing.T) {
	_, err := dfs.CyclePath(undirected(2), 2)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)

	_, err = dfs.CyclePath(undirected(2), -1)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)
}

// TestCyclePath_SelfLoop skips loops on both acyclic and cyclic components.
func TestCyclePath_SelfLoop(t *testing.T) {
	cycle, err := dfs.CyclePath(undirected(3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 2}), 0)
	require.NoError(t, err)
	assert.Nil(t, cycle)

	cycle, err = dfs.CyclePath(undirected(3, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}), 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, cycle)
}
