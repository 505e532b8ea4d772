// Package search_test: decision-tree traversal end to end.
package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlgoLab/cppp/phylo"
	"github.com/AlgoLab/cppp/search"
)

// run builds an engine over the instance text and runs it to completion.
func run(t *testing.T, text string, opts ...search.Option) *search.Result {
	t.Helper()
	eng, err := search.New(load(t, text), search.Alphabetic, opts...)
	require.NoError(t, err)
	res, err := eng.Run()
	require.NoError(t, err)

	return res
}

// replay applies a witness to a fresh copy of the initial state, requiring
// every realization to be feasible at the moment it is chosen, and the
// final state to be empty.
func replay(t *testing.T, initial *phylo.State, seq []int) {
	t.Helper()
	cur := phylo.NewBlankState(initial.Instance())
	require.NoError(t, cur.CopyFrom(initial))
	next := phylo.NewBlankState(initial.Instance())
	for i, c := range seq {
		phylo.Cleanup(cur)
		phylo.UpdateComponents(cur)
		require.True(t, phylo.ChooseCurrentComponent(cur), "step %d: nothing left to solve", i)
		require.NoError(t, phylo.Realize(next, cur, c), "step %d: realization of %d", i, c)
		cur, next = next, cur
	}
	require.Equal(t, 0, cur.AliveSpecies, "witness does not empty the instance")
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := search.New(nil, search.Alphabetic)
	require.ErrorIs(t, err, search.ErrNilState)

	_, err = search.New(load(t, "1 1\n1\n"), nil)
	require.ErrorIs(t, err, search.ErrNilStrategy)
}

func TestRun_SingleOne(t *testing.T) {
	t.Parallel()

	res := run(t, "1 1\n1\n")
	require.True(t, res.Found)
	require.Equal(t, []int{0}, res.Sequence)
}

func TestRun_SingleZero(t *testing.T) {
	t.Parallel()

	// the initial cleanup empties the instance: solved with no realizations
	res := run(t, "1 1\n0\n")
	require.True(t, res.Found)
	require.Empty(t, res.Sequence)
}

func TestRun_TwoComponents(t *testing.T) {
	t.Parallel()

	text := `5 5
0 0 0 1 0
0 1 0 0 0
1 0 1 0 0
1 1 0 0 0
0 0 0 0 0
`
	res := run(t, text, search.WithIntegrityChecks())
	require.True(t, res.Found)
	inst := load(t, text).Instance()
	require.LessOrEqual(t, len(res.Sequence), inst.NumSpecies()+2*inst.NumCharacters())
	replay(t, load(t, text), res.Sequence)
}

func TestRun_ConflictTriangle(t *testing.T) {
	t.Parallel()

	text := `3 3
1 1 0
1 0 1
0 1 1
`
	res := run(t, text, search.WithIntegrityChecks())
	require.True(t, res.Found)
	replay(t, load(t, text), res.Sequence)
}

func TestRun_ConflictCycleUnsolvable(t *testing.T) {
	t.Parallel()

	// four characters whose conflicts form a four-cycle: no realization
	// order empties the instance
	res := run(t, `4 4
0 0 1 1
0 1 0 1
1 0 1 0
1 1 0 0
`, search.WithIntegrityChecks())
	require.False(t, res.Found)
	require.Empty(t, res.Sequence)
}

func TestRun_CompleteConflictsUnsolvable(t *testing.T) {
	t.Parallel()

	res := run(t, `6 3
0 0 1
0 1 0
0 1 1
1 0 0
1 0 1
1 1 0
`)
	require.False(t, res.Found)
}

func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	text := `5 5
0 0 0 1 0
0 1 0 0 0
1 0 1 0 0
1 1 0 0 0
0 0 0 0 0
`
	a := run(t, text)
	b := run(t, text)
	require.Equal(t, a.Found, b.Found)
	require.Equal(t, a.Sequence, b.Sequence)
}

func TestRun_Cancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	eng, err := search.New(load(t, "1 1\n1\n"), search.Alphabetic, search.WithContext(ctx))
	require.NoError(t, err)
	_, err = eng.Run()
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_LargerSolvable(t *testing.T) {
	t.Parallel()

	// a chain-structured instance: directed perfect phylogeny exists even
	// without persistence, so the search should succeed quickly
	text := `4 3
1 0 0
1 1 0
1 1 1
0 0 0
`
	res := run(t, text, search.WithIntegrityChecks())
	require.True(t, res.Found)
	replay(t, load(t, text), res.Sequence)
}
