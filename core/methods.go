// Package core: Graph mutation and adjacency queries
//
// This file provides the mutating operations (AddEdge, AddUndirectedEdge) and
// the plain adjacency queries (NodeCount, Version, Neighbors, HasEdge).
// Every mutation appends to the neighbor sequences and bumps the version
// counter under g.mu, which is what invalidates the memoised derived views.

package core

import "fmt"

// AddEdge appends v to the neighbor sequence of u (one direction only).
//
// Duplicates and self-loops are accepted and stored verbatim; analysis and
// statistics ignore self-loops and count duplicates once. The graph is
// logically undirected, so callers building an undirected structure insert
// both directions (or use AddUndirectedEdge).
//
// Panics with ErrNodeOutOfRange if u or v is outside [0, NodeCount());
// an out-of-range index is a programming error, never a recoverable state.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair("AddEdge", u, v); err != nil {
		panic(err)
	}
	g.adj[u] = append(g.adj[u], v)
	g.version++
}

// AddUndirectedEdge inserts u→v and v→u as a single mutation (one version bump).
// A self-loop u == u is stored once per direction, i.e. twice in adj[u].
// Returns ErrNodeOutOfRange if u or v is outside [0, NodeCount()).
// Complexity: O(1) amortized.
func (g *Graph) AddUndirectedEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair("AddUndirectedEdge", u, v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.version++

	return nil
}

// NodeCount returns N, fixed at construction. O(1).
func (g *Graph) NodeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.adj)
}

// Version returns the mutation counter. It starts at 0 and increases by one on
// every successful AddEdge or AddUndirectedEdge.
func (g *Graph) Version() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.version
}

// Neighbors returns a copy of u's neighbor sequence in insertion order.
// Returns ErrNodeOutOfRange for an invalid index.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 0 || u >= len(g.adj) {
		return nil, fmt.Errorf("core: Neighbors(%d) with %d nodes: %w", u, len(g.adj), ErrNodeOutOfRange)
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// HasEdge reports whether v appears among u's neighbors or u among v's,
// i.e. whether u and v are connected in either stored direction.
// Out-of-range indices are reported as absent.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return false
	}

	return contains(g.adj[u], v) || contains(g.adj[v], u)
}

// adjacencySnapshot deep-copies the adjacency. Callers hold g.mu.
func (g *Graph) adjacencySnapshot() [][]int {
	out := make([][]int, len(g.adj))
	for u, nbrs := range g.adj {
		out[u] = make([]int, len(nbrs))
		copy(out[u], nbrs)
	}

	return out
}

// checkPair validates both endpoints of an edge. Callers hold g.mu.
func (g *Graph) checkPair(method string, u, v int) error {
	n := len(g.adj)
	if u < 0 || u >= n {
		return fmt.Errorf("core: %s(%d, %d) with %d nodes: %w", method, u, v, n, ErrNodeOutOfRange)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("core: %s(%d, %d) with %d nodes: %w", method, u, v, n, ErrNodeOutOfRange)
	}

	return nil
}

func contains(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}

	return false
}
