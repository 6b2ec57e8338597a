package simulation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/giantgraph/core"
)

// giantDisplayMin is the smallest component size shown as "giant".
const giantDisplayMin = 3

// Size classes of a distribution row.
const (
	ClassIsolated = "isolated"
	ClassSmall    = "small"
	ClassGiant    = "giant"
)

// Report is a complete, serialisable picture of a session at one version.
type Report struct {
	SessionID uuid.UUID  `json:"sessionId" yaml:"sessionId"`
	Stats     core.Stats `json:"stats" yaml:"stats"`
	// ExpectedGiantPercent is ExpectedGiantComponentSize as a share of N, in percent.
	ExpectedGiantPercent float64            `json:"expectedGiantPercent" yaml:"expectedGiantPercent"`
	Distribution         []DistributionRow  `json:"distribution" yaml:"distribution"`
	TopComponents        []ComponentSummary `json:"topComponents" yaml:"topComponents"`
	// Assignment maps each node index to the ComponentID of its component.
	Assignment       []int  `json:"assignment" yaml:"assignment"`
	HighlightedCycle []int  `json:"highlightedCycle,omitempty" yaml:"highlightedCycle,omitempty"`
	CycleText        string `json:"cycleText,omitempty" yaml:"cycleText,omitempty"`
}

// DistributionRow is one bar of the component size distribution.
type DistributionRow struct {
	Size  int `json:"size" yaml:"size"`
	Count int `json:"count" yaml:"count"`
	// PercentOfNodes is size*count/N*100.
	PercentOfNodes float64 `json:"percentOfNodes" yaml:"percentOfNodes"`
	Class          string  `json:"class" yaml:"class"`
}

// ComponentSummary is one row of the largest-components table.
type ComponentSummary struct {
	Rank     int                `json:"rank" yaml:"rank"`
	Vertices int                `json:"vertices" yaml:"vertices"`
	Edges    int                `json:"edges" yaml:"edges"`
	Cycles   int                `json:"cycles" yaml:"cycles"`
	Kind     core.ComponentKind `json:"kind" yaml:"kind"`
	// Giant marks the largest component once it has more than three vertices.
	Giant bool `json:"giant" yaml:"giant"`
}

// Report builds a snapshot of the current session.
func (s *Simulation) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reportLocked()
}

// reportLocked builds the report. Callers hold s.mu.
func (s *Simulation) reportLocked() Report {
	stats := s.graph.Stats()
	analysis := s.graph.ComponentAnalysis()
	n := stats.NodeCount

	rep := Report{
		SessionID:        s.id,
		Stats:            stats,
		Distribution:     distributionRows(analysis, n),
		TopComponents:    topComponents(analysis, stats.GiantComponentSize, s.cfg.TopComponents),
		Assignment:       assignment(analysis, n),
		HighlightedCycle: append([]int(nil), s.highlighted...),
		CycleText:        FormatCycle(s.highlighted),
	}
	if n > 0 {
		rep.ExpectedGiantPercent = float64(stats.ExpectedGiantComponentSize) / float64(n) * 100
	}

	return rep
}

// distributionRows lists sizes ascending with their counts and node share.
func distributionRows(analysis []core.ComponentAnalysis, n int) []DistributionRow {
	counts := make(map[int]int)
	for _, c := range analysis {
		counts[c.VertexCount]++
	}
	sizes := make([]int, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	rows := make([]DistributionRow, 0, len(sizes))
	for _, size := range sizes {
		row := DistributionRow{Size: size, Count: counts[size], Class: sizeClass(size)}
		if n > 0 {
			row.PercentOfNodes = float64(size*counts[size]) / float64(n) * 100
		}
		rows = append(rows, row)
	}

	return rows
}

func sizeClass(size int) string {
	switch {
	case size > giantDisplayMin:
		return ClassGiant
	case size > 1:
		return ClassSmall
	default:
		return ClassIsolated
	}
}

// topComponents summarises the k largest components in rank order.
func topComponents(analysis []core.ComponentAnalysis, giant, k int) []ComponentSummary {
	if k > len(analysis) {
		k = len(analysis)
	}
	out := make([]ComponentSummary, 0, k)
	for _, c := range analysis[:k] {
		out = append(out, ComponentSummary{
			Rank:     c.ComponentID,
			Vertices: c.VertexCount,
			Edges:    c.EdgeCount,
			Cycles:   c.CycleCount,
			Kind:     c.Kind(),
			Giant:    c.VertexCount == giant && c.VertexCount > giantDisplayMin,
		})
	}

	return out
}

// assignment maps node → component rank; -1 never survives for valid analyses.
func assignment(analysis []core.ComponentAnalysis, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	for _, c := range analysis {
		for _, v := range c.Members {
			out[v] = c.ComponentID
		}
	}

	return out
}

// FormatCycle renders a cycle as "a → b → c → a". An empty cycle renders as "".
func FormatCycle(cycle []int) string {
	if len(cycle) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, v := range cycle {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(" → ")
	}
	sb.WriteString(strconv.Itoa(cycle[0]))

	return sb.String()
}
