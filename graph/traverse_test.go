// Package graph_test: reachability and connected-component labeling.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlgoLab/cppp/graph"
)

// path builds 0-1-2-...-k as a single chain inside a larger graph.
func path(t *testing.T, g *graph.Undirected, vs ...int) {
	t.Helper()
	for i := 1; i < len(vs); i++ {
		require.NoError(t, g.AddEdge(vs[i-1], vs[i]))
	}
}

func TestReachable(t *testing.T) {
	t.Parallel()

	g := graph.New(7)
	path(t, g, 0, 1, 2)
	path(t, g, 4, 5)
	// 3 and 6 isolated

	mask, err := g.Reachable(1)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true, false, false, false, false}, mask)

	mask, err = g.Reachable(3)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, false, true, false, false, false}, mask)

	_, err = g.Reachable(7)
	require.ErrorIs(t, err, graph.ErrVertexRange)
}

func TestComponents_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	g := graph.New(7)
	path(t, g, 0, 1, 2)
	path(t, g, 4, 5)

	// ids are dense and assigned in first-seen vertex order:
	// {0,1,2}=0, {3}=1, {4,5}=2, {6}=3
	require.Equal(t, []int{0, 0, 0, 1, 2, 2, 3}, g.Components())
}

func TestComponents_AllIsolated(t *testing.T) {
	t.Parallel()

	g := graph.New(3)
	require.Equal(t, []int{0, 1, 2}, g.Components())
}

func TestComponents_SingleComponent(t *testing.T) {
	t.Parallel()

	g := graph.New(5)
	path(t, g, 3, 0, 4, 1, 2)
	require.Equal(t, []int{0, 0, 0, 0, 0}, g.Components())
}

func TestComponents_EmptyGraph(t *testing.T) {
	t.Parallel()

	require.Empty(t, graph.New(0).Components())
}
