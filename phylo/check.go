package phylo

import (
	"fmt"

	"github.com/AlgoLab/cppp/graph"
)

// IntegrityError describes a broken state invariant. It signals a
// programmer bug, never an input condition: the caller is expected to
// abort, not recover.
type IntegrityError struct {
	Invariant string
	Detail    string
}

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("phylo: integrity violation [%s]: %s", e.Invariant, e.Detail)
}

// Check verifies the state invariants that can be validated without the
// realization history: alive counters against the alive arrays, absence of
// edges at dead vertices, bipartiteness by vertex kind, the component
// labeling, and the conflict graph definition. It performs no mutation.
//
// Check is meant for debug runs; a non-nil result is an *IntegrityError.
func (st *State) Check() error {
	n, m := st.inst.NumSpecies(), st.inst.NumCharacters()

	countS := 0
	for _, a := range st.SpeciesAlive {
		if a {
			countS++
		}
	}
	if countS != st.AliveSpecies {
		return &IntegrityError{"alive-count", fmt.Sprintf("species: counted %d, recorded %d", countS, st.AliveSpecies)}
	}
	countC := 0
	for _, a := range st.CharacterAlive {
		if a {
			countC++
		}
	}
	if countC != st.AliveCharacters {
		return &IntegrityError{"alive-count", fmt.Sprintf("characters: counted %d, recorded %d", countC, st.AliveCharacters)}
	}

	for s := 0; s < n; s++ {
		if !st.SpeciesAlive[s] && st.RedBlack.Degree(s) != 0 {
			return &IntegrityError{"dead-edges", fmt.Sprintf("dead species %d has degree %d", s, st.RedBlack.Degree(s))}
		}
	}
	for c := 0; c < m; c++ {
		if !st.CharacterAlive[c] && st.RedBlack.Degree(st.CharacterVertex(c)) != 0 {
			return &IntegrityError{"dead-edges", fmt.Sprintf("dead character %d has degree %d", c, st.RedBlack.Degree(st.CharacterVertex(c)))}
		}
	}

	// red-black edges run between species and characters only
	for s := 0; s < n; s++ {
		for s2 := s + 1; s2 < n; s2++ {
			if st.RedBlack.HasEdge(s, s2) {
				return &IntegrityError{"bipartite", fmt.Sprintf("species-species edge (%d,%d)", s, s2)}
			}
		}
	}
	for c := 0; c < m; c++ {
		for c2 := c + 1; c2 < m; c2++ {
			if st.RedBlack.HasEdge(st.CharacterVertex(c), st.CharacterVertex(c2)) {
				return &IntegrityError{"bipartite", fmt.Sprintf("character-character edge (%d,%d)", c, c2)}
			}
		}
	}

	fresh := st.RedBlack.Components()
	for v, id := range fresh {
		if st.Components[v] != id {
			return &IntegrityError{"components", fmt.Sprintf("vertex %d labeled %d, expected %d", v, st.Components[v], id)}
		}
	}

	want := graph.New(m)
	for c1 := 0; c1 < m; c1++ {
		if !st.CharacterAlive[c1] {
			continue
		}
		for c2 := c1 + 1; c2 < m; c2++ {
			if st.CharacterAlive[c2] && fourGametes(st, c1, c2) {
				_ = want.AddEdge(c1, c2)
			}
		}
	}
	if !graph.Equal(st.Conflict, want) {
		return &IntegrityError{"conflict", "conflict graph disagrees with four-gamete recomputation"}
	}

	return nil
}
