// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exhibit/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls keep both mirror
// directions and every neighbor visible.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	hub := mk("X", 0)
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(hub, mk(fmt.Sprintf("V%03d", id), 0), float64(id))
			_, _ = g.Weight(fmt.Sprintf("V%03d", id), "X")
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	for _, n := range nbs {
		w, ok := g.Weight(n.Item.ID, "X")
		require.True(t, ok)
		require.Equal(t, n.Weight, w)
	}
}
