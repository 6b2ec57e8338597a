// Package core provides the in-memory graph analysis engine: an undirected
// graph over a fixed set of N integer nodes, grown one edge at a time, with
// memoised structural views and aggregate statistics.
//
// The Graph supports:
//
//   - Incremental edge insertion (AddEdge one direction, AddUndirectedEdge both)
//   - Connected-component decomposition in DFS discovery order (Components)
//   - Per-component classification as isolated, tree, unicyclic or
//     multicyclic via the first Betti number E - V + 1 (ComponentAnalysis)
//   - Enumeration of every distinct simple cycle (FindCycles)
//   - Random selection of one unicyclic component's cycle (FindCycleToHighlight)
//   - Edge density, the Erdős–Rényi threshold 1/N, the fixed-point estimate of
//     the giant-component size, and the entropy of the component-size
//     distribution (Stats and the individual accessors)
//
// Caching:
//
//	Components and ComponentAnalysis are computed lazily and cached against a
//	version counter. Every mutation bumps the counter, so the next read after
//	an insertion recomputes and later reads are served from the cache. Callers
//	always receive deep copies.
//
// Configuration Options (GraphOption):
//
//	– WithCycleLimit(n)
//	    FindCycles fails with dfs.ErrCycleLimit after n distinct cycles.
//	– WithRand(r) / WithSeed(seed)
//	    Random source for FindCycleToHighlight.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)   // O(N)
//	AddEdge(u, v int)                                      // O(1)†, panics out of range
//	AddUndirectedEdge(u, v int) error                      // O(1)†
//	Neighbors(u int) ([]int, error)                        // O(deg u)
//	HasEdge(u, v int) bool                                 // O(deg u + deg v)
//	Components() [][]int                                   // O(V+E) on miss
//	ComponentAnalysis() []ComponentAnalysis                // O(V+E) on miss
//	FindCycles() ([][]int, error)                          // exponential worst case
//	FindCycleToHighlight() ([]int, bool)                   // O(V+E)
//	Stats() Stats                                          // O(V+E) on miss
//
// † amortized.
//
// Thread-safety:
//
//	A single mutex guards the adjacency, the version and the caches. Every
//	method is safe for concurrent use; FindCycles enumerates on a snapshot so
//	long enumerations do not block writers.
//
// Errors:
//
//	ErrInvalidArgument  - NewGraph with a negative node count.
//	ErrNodeOutOfRange   - endpoint outside [0, N); AddEdge panics with it.
//	ErrOptionViolation  - option constructors panic with it.
package core
