package phylo

// Cleanup marks every alive species and character with red-black degree
// zero as dead and adjusts the alive counts. Colors of surviving characters
// are untouched, and component analysis is the caller's job.
//
// Duplicate-row and duplicate-column elimination is deliberately not
// performed here; see DESIGN.md.
func Cleanup(st *State) {
	for s := 0; s < st.inst.NumSpecies(); s++ {
		if st.SpeciesAlive[s] && st.RedBlack.Degree(s) == 0 {
			st.SpeciesAlive[s] = false
			st.AliveSpecies--
		}
	}
	for c := 0; c < st.inst.NumCharacters(); c++ {
		if st.CharacterAlive[c] && st.RedBlack.Degree(st.CharacterVertex(c)) == 0 {
			st.CharacterAlive[c] = false
			st.AliveCharacters--
		}
	}
}
