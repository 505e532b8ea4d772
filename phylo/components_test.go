// Package phylo_test: component labeling and selection policy.
package phylo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlgoLab/cppp/phylo"
)

func TestChooseCurrentComponent_FewestCharacters(t *testing.T) {
	t.Parallel()

	// two components: {s0, c0} and {s1, s2, c1, c2}
	st := load(t, `3 3
1 0 0
0 1 1
0 1 0
`)
	require.True(t, phylo.ChooseCurrentComponent(st))

	cv := st.CharacterVertex
	require.True(t, st.CurrentComponent[0])
	require.True(t, st.CurrentComponent[cv(0)])
	for _, v := range []int{1, 2, cv(1), cv(2)} {
		require.False(t, st.CurrentComponent[v], "vertex %d", v)
	}
}

func TestChooseCurrentComponent_TieSmallestID(t *testing.T) {
	t.Parallel()

	// two 1-character components; ids follow first-seen vertex order, so
	// the component of s0 wins the tie
	st := load(t, `2 2
1 0
0 1
`)
	require.True(t, phylo.ChooseCurrentComponent(st))
	require.True(t, st.CurrentComponent[0])
	require.True(t, st.CurrentComponent[st.CharacterVertex(0)])
	require.False(t, st.CurrentComponent[1])
	require.False(t, st.CurrentComponent[st.CharacterVertex(1)])
}

func TestChooseCurrentComponent_NoneQualifies(t *testing.T) {
	t.Parallel()

	// the all-zero instance has only isolated vertices
	st := load(t, "1 1\n0\n")
	phylo.Cleanup(st)
	phylo.UpdateComponents(st)
	require.False(t, phylo.ChooseCurrentComponent(st))
	require.Equal(t, 0, st.AliveSpecies)
	for _, in := range st.CurrentComponent {
		require.False(t, in)
	}
}

func TestCleanup_CountsAndColors(t *testing.T) {
	t.Parallel()

	st := load(t, `2 2
1 0
1 0
`)
	// c1 is all-zero, hence isolated from the start
	phylo.Cleanup(st)
	require.False(t, st.CharacterAlive[1])
	require.Equal(t, 1, st.AliveCharacters)
	require.Equal(t, 2, st.AliveSpecies)
	require.Equal(t, phylo.Black, st.Colors[0])
}

func TestUpdateComponents_AfterEdit(t *testing.T) {
	t.Parallel()

	st := load(t, `2 1
1
1
`)
	require.NoError(t, st.RedBlack.DelEdge(0, st.CharacterVertex(0)))
	phylo.UpdateComponents(st)
	// s0 now isolated: components are {s0}, {s1, c0}
	require.NotEqual(t, st.Components[0], st.Components[1])
	require.Equal(t, st.Components[1], st.Components[st.CharacterVertex(0)])
}
