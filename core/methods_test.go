// SPDX-License-Identifier: MIT
// Package core_test verifies construction and mutation contracts of core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/giantgraph/core"
)

// TestNewGraph_Validation rejects negative sizes and accepts the empty graph.
func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Empty(t, g.Components())
	assert.Empty(t, g.ComponentAnalysis())
}

// TestAddEdge_OneDirection stores exactly one direction and bumps the version.
func TestAddEdge_OneDirection(t *testing.T) {
	g := newGraph(t, 3, nil)
	require.Equal(t, uint64(0), g.Version())

	g.AddEdge(0, 1)
	assert.Equal(t, uint64(1), g.Version())

	out, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, out)
	in, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, in)

	// HasEdge looks at both stored directions.
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 2))
}

// TestAddEdge_PanicsOutOfRange treats invalid indices as programming errors.
func TestAddEdge_PanicsOutOfRange(t *testing.T) {
	g := newGraph(t, 2, nil)
	assert.Panics(t, func() { g.AddEdge(0, 2) })
	assert.Panics(t, func() { g.AddEdge(-1, 0) })
	assert.Equal(t, uint64(0), g.Version(), "failed insertions must not bump the version")
}

// TestAddUndirectedEdge stores both directions under one version bump and keeps duplicates.
func TestAddUndirectedEdge(t *testing.T) {
	g := newGraph(t, 3, nil)
	require.NoError(t, g.AddUndirectedEdge(0, 1))
	require.NoError(t, g.AddUndirectedEdge(0, 1))
	assert.Equal(t, uint64(2), g.Version())

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, nbrs)
	nbrs, err = g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, nbrs)

	err = g.AddUndirectedEdge(0, 3)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
	assert.Equal(t, uint64(2), g.Version())
}

// TestNeighbors_Copy ensures callers cannot mutate internal adjacency.
func TestNeighbors_Copy(t *testing.T) {
	g := newGraph(t, 3, [][2]int{{0, 1}, {0, 2}})
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	nbrs[0] = 99

	again, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, again)

	_, err = g.Neighbors(3)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
	assert.False(t, g.HasEdge(-1, 0))
}

// TestOptions_Panic checks that meaningless option values panic at construction.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { core.WithCycleLimit(-1) })
	assert.Panics(t, func() { core.WithRand(nil) })
	assert.NotPanics(t, func() { core.WithCycleLimit(0) })
}
