package phylo

// UpdateComponents relabels every red-black vertex with its connected
// component id (dense, first-seen order).
func UpdateComponents(st *State) {
	copy(st.Components, st.RedBlack.Components())
}

// ChooseCurrentComponent selects the component the solver branches on next:
// among the components holding at least one alive species and at least one
// alive character, the one with the fewest characters wins, ties broken by
// the smallest component id. The CurrentComponent mask is rewritten to the
// chosen component's vertices.
//
// Returns false, with the mask cleared, when no component qualifies — after
// a cleanup that means the instance is solved.
func ChooseCurrentComponent(st *State) bool {
	n, m := st.inst.NumSpecies(), st.inst.NumCharacters()

	speciesIn := map[int]bool{}
	charsIn := map[int]int{}
	for s := 0; s < n; s++ {
		if st.SpeciesAlive[s] {
			speciesIn[st.Components[s]] = true
		}
	}
	for c := 0; c < m; c++ {
		if st.CharacterAlive[c] {
			charsIn[st.Components[st.CharacterVertex(c)]]++
		}
	}

	chosen, best := -1, 0
	for id, cnt := range charsIn {
		if !speciesIn[id] {
			continue
		}
		if chosen == -1 || cnt < best || (cnt == best && id < chosen) {
			chosen, best = id, cnt
		}
	}

	if chosen == -1 {
		clear(st.CurrentComponent)
		return false
	}
	for v := range st.CurrentComponent {
		st.CurrentComponent[v] = st.Components[v] == chosen
	}

	return true
}
