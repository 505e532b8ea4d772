package phylo

// rebuildConflict recomputes the conflict graph from scratch: two alive
// characters are adjacent iff the alive species exhibit all four 0/1
// combinations on them. Dead characters keep no conflict edges.
//
// A realization invalidates arbitrary portions of the graph, so the rebuild
// scans every alive pair; an incremental update would be an optimization,
// not a behavioral change.
func rebuildConflict(st *State) {
	m := st.inst.NumCharacters()
	st.Conflict.NukeEdges()
	for c1 := 0; c1 < m; c1++ {
		if !st.CharacterAlive[c1] {
			continue
		}
		for c2 := c1 + 1; c2 < m; c2++ {
			if !st.CharacterAlive[c2] {
				continue
			}
			if fourGametes(st, c1, c2) {
				_ = st.Conflict.AddEdge(c1, c2)
			}
		}
	}
}

// fourGametes reports whether alive species realize all of (0,0), (0,1),
// (1,0), (1,1) on the character pair. Scanning stops as soon as the fourth
// combination appears.
func fourGametes(st *State, c1, c2 int) bool {
	var seen [2][2]bool
	found := 0
	for s := 0; s < st.inst.NumSpecies(); s++ {
		if !st.SpeciesAlive[s] {
			continue
		}
		v1, v2 := st.inst.Value(s, c1), st.inst.Value(s, c2)
		if !seen[v1][v2] {
			seen[v1][v2] = true
			if found++; found == 4 {
				return true
			}
		}
	}

	return false
}
