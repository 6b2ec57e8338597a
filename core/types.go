// Package core defines the Graph engine type, its analysis records, options
// and sentinel errors.
//
// This file declares Graph, ComponentAnalysis, ComponentKind, TypeCounts,
// Stats, GraphOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidArgument  - negative node count at construction.
//	ErrNodeOutOfRange   - node index outside [0, NodeCount()).
//	ErrOptionViolation  - meaningless option value (option constructors panic).
package core

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a construction parameter outside its domain.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrOptionViolation indicates a GraphOption constructor received a meaningless value.
	ErrOptionViolation = errors.New("core: invalid option value")
)

// ComponentKind classifies a connected component by its cyclic structure.
type ComponentKind int

const (
	// KindIsolated is a single vertex.
	KindIsolated ComponentKind = iota
	// KindTree is a connected acyclic component with at least two vertices.
	KindTree
	// KindUnicyclic has exactly one independent cycle.
	KindUnicyclic
	// KindMulticyclic has two or more independent cycles.
	KindMulticyclic
)

// String returns the lower-case name of the kind.
func (k ComponentKind) String() string {
	switch k {
	case KindIsolated:
		return "isolated"
	case KindTree:
		return "tree"
	case KindUnicyclic:
		return "unicyclic"
	case KindMulticyclic:
		return "multicyclic"
	default:
		return fmt.Sprintf("ComponentKind(%d)", int(k))
	}
}

// MarshalText renders the kind by name for JSON and YAML encoders.
func (k ComponentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a name produced by MarshalText.
func (k *ComponentKind) UnmarshalText(text []byte) error {
	for _, c := range []ComponentKind{KindIsolated, KindTree, KindUnicyclic, KindMulticyclic} {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}

	return fmt.Errorf("core: unknown component kind %q: %w", text, ErrInvalidArgument)
}

// ComponentAnalysis is the read-only structural summary of one connected component.
//
// ComponentID is the rank of the component after sorting by VertexCount
// (descending, ties in discovery order): 0 is the largest. It is recomputed on
// every analysis and is NOT a stable identity across edge insertions; track
// components by their member set when identity matters.
type ComponentAnalysis struct {
	ComponentID int   `json:"componentId" yaml:"componentId"`
	Members     []int `json:"members" yaml:"members"`
	VertexCount int   `json:"vertexCount" yaml:"vertexCount"`
	// EdgeCount counts canonical (unordered, deduplicated) intra-component edges.
	EdgeCount int `json:"edgeCount" yaml:"edgeCount"`
	// CycleCount is the first Betti number max(0, edges - vertices + 1).
	CycleCount    int  `json:"cycleCount" yaml:"cycleCount"`
	IsIsolated    bool `json:"isIsolated" yaml:"isIsolated"`
	IsTree        bool `json:"isTree" yaml:"isTree"`
	IsUnicyclic   bool `json:"isUnicyclic" yaml:"isUnicyclic"`
	IsMulticyclic bool `json:"isMulticyclic" yaml:"isMulticyclic"`
}

// Kind returns the single classification carried by the record's flags.
func (c ComponentAnalysis) Kind() ComponentKind {
	switch {
	case c.IsIsolated:
		return KindIsolated
	case c.IsTree:
		return KindTree
	case c.IsUnicyclic:
		return KindUnicyclic
	default:
		return KindMulticyclic
	}
}

// TypeCounts counts analysis records per classification.
type TypeCounts struct {
	Isolated    int `json:"isolated" yaml:"isolated"`
	Tree        int `json:"tree" yaml:"tree"`
	Unicyclic   int `json:"unicyclic" yaml:"unicyclic"`
	Multicyclic int `json:"multicyclic" yaml:"multicyclic"`
}

// Stats is a consistent snapshot of every aggregate statistic, taken at Version.
type Stats struct {
	Version                    uint64     `json:"version" yaml:"version"`
	NodeCount                  int        `json:"nodeCount" yaml:"nodeCount"`
	EdgeCount                  int        `json:"edgeCount" yaml:"edgeCount"`
	MaxEdgeCount               int        `json:"maxEdgeCount" yaml:"maxEdgeCount"`
	EdgeProbability            float64    `json:"edgeProbability" yaml:"edgeProbability"`
	CriticalThreshold          float64    `json:"criticalThreshold" yaml:"criticalThreshold"`
	AboveThreshold             bool       `json:"aboveThreshold" yaml:"aboveThreshold"`
	ExpectedGiantComponentSize int        `json:"expectedGiantComponentSize" yaml:"expectedGiantComponentSize"`
	GiantComponentSize         int        `json:"giantComponentSize" yaml:"giantComponentSize"`
	ComponentCount             int        `json:"componentCount" yaml:"componentCount"`
	TotalCycleCount            int        `json:"totalCycleCount" yaml:"totalCycleCount"`
	ComponentSizeEntropy       float64    `json:"componentSizeEntropy" yaml:"componentSizeEntropy"`
	TypeCounts                 TypeCounts `json:"typeCounts" yaml:"typeCounts"`
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCycleLimit caps the number of distinct cycles FindCycles may report;
// exceeding it returns dfs.ErrCycleLimit. Zero means unlimited. Panics on negative.
func WithCycleLimit(limit int) GraphOption {
	if limit < 0 {
		panic(fmt.Sprintf("core: WithCycleLimit(%d): %v", limit, ErrOptionViolation))
	}
	return func(g *Graph) { g.cycleLimit = limit }
}

// WithRand installs the random source used by FindCycleToHighlight. Panics on nil.
func WithRand(r *rand.Rand) GraphOption {
	if r == nil {
		panic("core: WithRand(nil)")
	}
	return func(g *Graph) { g.rng = r }
}

// WithSeed installs a deterministic random source seeded with seed.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) { g.rng = rand.New(rand.NewSource(seed)) }
}

// Graph is the in-memory graph engine over a fixed set of N node indices.
//
// adj[u] is the ordered neighbor sequence of u. The graph is logically
// undirected: AddUndirectedEdge inserts both directions, AddEdge only one.
// Derived views (components, component analysis) are memoised against a
// version counter bumped by every mutation.
// mu guards adj, version and both memo slots; one critical section covers
// read-and-maybe-recompute.
type Graph struct {
	mu sync.Mutex

	// Configuration
	cycleLimit int        // 0 = unlimited
	rng        *rand.Rand // nil = process-wide source

	// Storage
	adj     [][]int
	version uint64

	// Derived views
	components memo[[][]int]
	analysis   memo[[]ComponentAnalysis]
}

// NewGraph creates a graph with nodeCount isolated nodes and no edges.
// Returns ErrInvalidArgument if nodeCount < 0.
// Complexity: O(N).
func NewGraph(nodeCount int, opts ...GraphOption) (*Graph, error) {
	if nodeCount < 0 {
		return nil, fmt.Errorf("core: NewGraph(%d): node count must be ≥ 0: %w", nodeCount, ErrInvalidArgument)
	}
	g := &Graph{adj: make([][]int, nodeCount)}
	for i := range g.adj {
		g.adj[i] = []int{}
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
