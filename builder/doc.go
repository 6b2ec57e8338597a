// Package builder provides reusable “functional‐options”‐style constructors
// that populate a core.Graph with deterministic fixtures and random graphs.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildGraph(n, gopts, bopts, cons...): fresh n-node graph + constructors.
//     – Apply(g, bopts, cons...):            constructors on an existing graph.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithAttemptRatio.
//     – builderConfig: resolved RNG and retry budget, passed by value.
//   - Deterministic topologies over explicit node indices:
//     – Cycle(nodes...), Path(nodes...), Star(center, leaves...),
//     Wheel(center, rim...), Complete(nodes...), Grid(rows, cols).
//   - Random graphs:
//     – RandomSparse(p): Erdős–Rényi G(N, p) over every pair of the graph.
//     – RandomEdges(m):  m new random edges between unconnected distinct nodes.
//   - Validation helpers:
//     – validateMin, validateProbability.
//
// Guarantees:
//
//   - Every edge is inserted with core.Graph.AddUndirectedEdge, so fixtures are
//     always symmetric.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors never panic; they return errors wrapping ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed or
//     core.ErrNodeOutOfRange.
//   - Same seed and constructor order ⇒ identical graph.
package builder
