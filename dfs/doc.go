// Package dfs implements the depth-first traversals behind the graph engine,
// operating directly on an integer adjacency structure ([][]int, where adj[u]
// lists the neighbors of vertex u).
//
// What:
//
//   - Components: partitions vertices into connected components, ignoring
//     edge direction, in ascending-start DFS discovery order.
//   - SimpleCycles: enumerates every distinct simple cycle (length ≥ 3) with
//     the "only descend into neighbors greater than the start" restriction and
//     canonical-key deduplication of rotations and reflections.
//   - CyclePath: extracts one cycle with a single parent-pointer DFS; the cheap
//     path for components known to contain exactly one cycle.
//
// Why:
//   - Classify components of an evolving random graph (trees, unicyclic,
//     multicyclic) and show concrete cycles to a user.
//   - Keep the engine free of recursion limits: every traversal runs on an
//     explicit frame stack.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers used by CyclePath
//   - Option / CycleOptions: WithContext, WithMaxCycles guards for SimpleCycles
//
// Complexity:
//
//   - Components:   Time O(V+E), Memory O(V+E)
//   - SimpleCycles: Time exponential in the worst case, Memory O(V + C·L)
//   - CyclePath:    Time O(V+E) of the reached component, Memory O(V)
//
// Errors:
//
//   - ErrCycleLimit        more cycles than WithMaxCycles allows
//   - ErrStartOutOfRange   CyclePath start is not a valid index
//   - ErrOptionViolation   meaningless option value (option constructors panic)
//   - context errors       SimpleCycles cancelled via WithContext
//
// Preconditions: every neighbor index stored in adj must lie in [0, len(adj)).
// Violations are programming errors and panic with an index-out-of-range.
package dfs
