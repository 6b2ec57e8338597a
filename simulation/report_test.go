package simulation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/giantgraph/core"
	"github.com/katalvlaran/giantgraph/simulation"
)

func TestReport_Content(t *testing.T) {
	s := newSim(t, 10)
	// path of five, one pair, three isolated nodes
	attach(t, s, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{5, 6})

	rep := s.Report()
	assert.Equal(t, s.ID(), rep.SessionID)
	assert.Equal(t, 5, rep.Stats.EdgeCount)

	assert.Equal(t, []simulation.DistributionRow{
		{Size: 1, Count: 3, PercentOfNodes: 30, Class: simulation.ClassIsolated},
		{Size: 2, Count: 1, PercentOfNodes: 20, Class: simulation.ClassSmall},
		{Size: 5, Count: 1, PercentOfNodes: 50, Class: simulation.ClassGiant},
	}, rep.Distribution)

	require.Len(t, rep.TopComponents, 5)
	assert.Equal(t, simulation.ComponentSummary{
		Rank: 0, Vertices: 5, Edges: 4, Cycles: 0, Kind: core.KindTree, Giant: true,
	}, rep.TopComponents[0])
	assert.False(t, rep.TopComponents[1].Giant)

	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 1, 2, 3, 4}, rep.Assignment)
	assert.InDelta(t, float64(rep.Stats.ExpectedGiantComponentSize)*10, rep.ExpectedGiantPercent, 1e-9)
	assert.Empty(t, rep.CycleText)
}

// TestReport_TopLimit truncates to the configured number of components.
func TestReport_TopLimit(t *testing.T) {
	s, err := simulation.New(simulation.Config{Nodes: 8, TopComponents: 2}, simulation.WithSeed(3))
	require.NoError(t, err)
	assert.Len(t, s.Report().TopComponents, 2)

	s, err = simulation.New(simulation.Config{Nodes: 8}, simulation.WithSeed(3))
	require.NoError(t, err)
	assert.Empty(t, s.Report().TopComponents)
}

// TestReport_SmallGiant: the largest component is not flagged giant at three vertices.
func TestReport_SmallGiant(t *testing.T) {
	s := newSim(t, 5)
	attach(t, s, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})

	rep := s.Report()
	assert.Equal(t, core.KindUnicyclic, rep.TopComponents[0].Kind)
	assert.False(t, rep.TopComponents[0].Giant)
	assert.Equal(t, simulation.ClassSmall, rep.Distribution[len(rep.Distribution)-1].Class)
}

func TestReport_Encodings(t *testing.T) {
	s := newSim(t, 4)
	attach(t, s, [2]int{0, 1})

	js, err := json.Marshal(s.Report())
	require.NoError(t, err)
	assert.Contains(t, string(js), `"kind":"tree"`)
	assert.Contains(t, string(js), `"sessionId":"`+s.ID().String()+`"`)

	ys, err := yaml.Marshal(s.Report())
	require.NoError(t, err)
	assert.Contains(t, string(ys), "kind: tree")
	assert.Contains(t, string(ys), "sessionId: "+s.ID().String())
}

func TestFormatCycle(t *testing.T) {
	assert.Equal(t, "", simulation.FormatCycle(nil))
	assert.Equal(t, "7 → 7", simulation.FormatCycle([]int{7}))
	assert.Equal(t, "0 → 3 → 2 → 1 → 0", simulation.FormatCycle([]int{0, 3, 2, 1}))
}
