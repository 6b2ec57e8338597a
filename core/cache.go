package core

// memo holds one derived view together with the graph version it was computed at.
// A slot is fresh only while its version equals the graph's current version, so
// a single counter invalidates every view at once.
type memo[T any] struct {
	value   T
	version uint64
	valid   bool
}

// get returns the cached value for version, recomputing it first if the slot
// is empty or stale. Callers hold Graph.mu.
func (m *memo[T]) get(version uint64, compute func() T) T {
	if !m.valid || m.version != version {
		m.value = compute()
		m.version = version
		m.valid = true
	}

	return m.value
}

// fresh reports whether the slot holds a value for version. Only the cache
// tests call it, to observe hits and misses.
func (m *memo[T]) fresh(version uint64) bool {
	return m.valid && m.version == version
}
