// Package giantgraph watches the giant component of a random graph emerge.
//
// A graph on N nodes grows one undirected edge at a time. After every edge the
// engine re-derives its connected components, classifies each one by cyclic
// structure and reports the statistics of the Erdős–Rényi phase transition:
// edge density against the critical threshold 1/N, the expected and observed
// giant-component size, and the entropy of the component-size distribution.
//
// Packages:
//
//	core/       - the Graph engine: adjacency, version-cached components and analysis, statistics
//	dfs/        - component decomposition, simple-cycle enumeration, single-cycle extraction
//	builder/    - deterministic and random constructors (Cycle, Path, Star, Wheel, Grid, G(n,p))
//	simulation/ - one session: springs, random steps, auto-run, threshold hook, reports
//	metrics/    - Prometheus collector mirroring the engine statistics
//	config/     - YAML configuration and zap logger setup
//	server/     - HTTP control surface for a session
//	cmd/giantgraph - the CLI (simulate, cycles, serve)
//
// Quick ASCII example:
//
//	    0───1   4
//	    │   │
//	    3───2   5───6
//
//	one unicyclic component, one tree and one isolated node.
//
//	go install github.com/katalvlaran/giantgraph/cmd/giantgraph@latest
package giantgraph
