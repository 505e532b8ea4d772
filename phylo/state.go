package phylo

import "github.com/AlgoLab/cppp/graph"

// State is the complete working set of one decision-tree node: the two
// graphs, the status arrays, the derived component labeling, and the
// per-level search bookkeeping. A state owns everything but the instance,
// which is shared read-only across the whole search.
//
// Vertex ids of the red-black graph: [0, NumSpecies()) are species,
// [NumSpecies(), NumSpecies()+NumCharacters()) are characters.
type State struct {
	inst *Instance

	// RedBlack is the species/character graph; edge colors are carried
	// per character in Colors.
	RedBlack *graph.Undirected

	// Conflict is the four-gamete graph on character vertices.
	Conflict *graph.Undirected

	// SpeciesAlive and CharacterAlive flag the rows/columns still in play.
	SpeciesAlive   []bool
	CharacterAlive []bool

	// Colors holds the realization color per character; meaningful only
	// while the character is alive.
	Colors []Color

	// AliveSpecies and AliveCharacters count the true entries of the alive
	// arrays.
	AliveSpecies    int
	AliveCharacters int

	// Components labels every red-black vertex with its component id;
	// CurrentComponent masks the component selected for branching.
	Components       []int
	CurrentComponent []bool

	// Realized and Outcome start as NoCharacter and OpNone on a blank slot.
	// Realize sets them on the state it produces to the character realized
	// and the result; once the engine picks a character at this level, it
	// overwrites them with that pick and the result of that attempt.
	Realized int
	Outcome  OpOutcome

	// Tried and Queue are the characters already attempted and still to try
	// at this level, in strategy order.
	Tried []int
	Queue []int

	// BacktrackLevel is the level the engine jumps back to when this level
	// is exhausted; -1 means "below root".
	BacktrackLevel int
}

// NewState builds the initial state of an instance: every species and
// character alive, every character black, red-black edges exactly at the
// 1-entries, conflict graph from the four-gamete test, components labeled.
// No component is selected yet; that is the engine's per-level step.
func NewState(inst *Instance) *State {
	st := NewBlankState(inst)
	n, m := inst.NumSpecies(), inst.NumCharacters()
	for s := 0; s < n; s++ {
		st.SpeciesAlive[s] = true
	}
	for c := 0; c < m; c++ {
		st.CharacterAlive[c] = true
		st.Colors[c] = Black
	}
	st.AliveSpecies, st.AliveCharacters = n, m
	for s := 0; s < n; s++ {
		for c := 0; c < m; c++ {
			if inst.Value(s, c) == 1 {
				// species and character vertices never collide, so the
				// simple-graph constraints cannot trip here
				_ = st.RedBlack.AddEdge(s, st.CharacterVertex(c))
			}
		}
	}
	rebuildConflict(st)
	UpdateComponents(st)

	return st
}

// NewBlankState allocates a state slot shaped for inst, with every species
// and character dead and both graphs empty. Slots are filled via CopyFrom;
// the engine preallocates one per search level.
func NewBlankState(inst *Instance) *State {
	n, m := inst.NumSpecies(), inst.NumCharacters()

	return &State{
		inst:             inst,
		RedBlack:         graph.New(n + m),
		Conflict:         graph.New(m),
		SpeciesAlive:     make([]bool, n),
		CharacterAlive:   make([]bool, m),
		Colors:           make([]Color, m),
		Components:       make([]int, n+m),
		CurrentComponent: make([]bool, n+m),
		Realized:         NoCharacter,
		Outcome:          OpNone,
		Tried:            make([]int, 0, m),
		Queue:            make([]int, 0, m),
		BacktrackLevel:   -1,
	}
}

// Instance returns the shared read-only matrix.
func (st *State) Instance() *Instance { return st.inst }

// CharacterVertex maps a character index to its red-black vertex id.
func (st *State) CharacterVertex(c int) int { return st.inst.NumSpecies() + c }

// CopyFrom overwrites st with a deep copy of src: graphs, status arrays,
// counts, and derived fields. Search bookkeeping is reset instead of
// copied — Queue and Tried become empty and BacktrackLevel is left for the
// engine to set. Returns ErrStateMismatch when the two states were built
// for different instances.
func (st *State) CopyFrom(src *State) error {
	if st.inst != src.inst {
		return ErrStateMismatch
	}
	if err := st.RedBlack.CopyFrom(src.RedBlack); err != nil {
		return err
	}
	if err := st.Conflict.CopyFrom(src.Conflict); err != nil {
		return err
	}
	copy(st.SpeciesAlive, src.SpeciesAlive)
	copy(st.CharacterAlive, src.CharacterAlive)
	copy(st.Colors, src.Colors)
	st.AliveSpecies = src.AliveSpecies
	st.AliveCharacters = src.AliveCharacters
	copy(st.Components, src.Components)
	copy(st.CurrentComponent, src.CurrentComponent)
	st.Realized = src.Realized
	st.Outcome = src.Outcome
	st.Queue = st.Queue[:0]
	st.Tried = st.Tried[:0]

	return nil
}

// StateEqual reports whether a and b agree on everything except the
// per-level search bookkeeping (Realized, Outcome, Tried, Queue,
// BacktrackLevel). The instance matrices are compared by content, so a state
// restored from a snapshot can equal the state it was dumped from. It is the
// checkpoint the engine's copy discipline is tested against, not a
// user-visible contract.
func StateEqual(a, b *State) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.inst != b.inst {
		ai, bi := a.inst, b.inst
		if ai.numSpecies != bi.numSpecies || ai.numCharacters != bi.numCharacters || len(ai.cells) != len(bi.cells) {
			return false
		}
		for i := range ai.cells {
			if ai.cells[i] != bi.cells[i] {
				return false
			}
		}
	}
	if a.AliveSpecies != b.AliveSpecies || a.AliveCharacters != b.AliveCharacters {
		return false
	}
	if !graph.Equal(a.RedBlack, b.RedBlack) || !graph.Equal(a.Conflict, b.Conflict) {
		return false
	}
	for i := range a.SpeciesAlive {
		if a.SpeciesAlive[i] != b.SpeciesAlive[i] {
			return false
		}
	}
	for i := range a.CharacterAlive {
		if a.CharacterAlive[i] != b.CharacterAlive[i] {
			return false
		}
		if a.CharacterAlive[i] && a.Colors[i] != b.Colors[i] {
			return false
		}
	}
	for i := range a.Components {
		if a.Components[i] != b.Components[i] || a.CurrentComponent[i] != b.CurrentComponent[i] {
			return false
		}
	}

	return true
}
