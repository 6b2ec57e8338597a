// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentInsertAndRead mixes writers with readers of every cached view
// and checks the final state once all goroutines have finished.
func TestConcurrentInsertAndRead(t *testing.T) {
	const n = 200
	g := newGraph(t, n, nil)

	var wg sync.WaitGroup
	errs := make(chan error, n-1)
	for i := 1; i < n; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			// star around node 0
			errs <- g.AddUndirectedEdge(0, v)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Stats()
			_ = g.ComponentAnalysis()
			_, _ = g.FindCycleToHighlight()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	s := g.Stats()
	assert.Equal(t, uint64(n-1), s.Version)
	assert.Equal(t, n-1, s.EdgeCount)
	assert.Equal(t, 1, s.ComponentCount)
	assert.Equal(t, 1, s.TypeCounts.Tree)
}
