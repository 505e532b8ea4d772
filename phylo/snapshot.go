package phylo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// snapshotFile is the on-disk JSON shape of a state. The two graphs live in
// separate DOT files referenced by name, so they stay readable by standard
// graph tooling.
type snapshotFile struct {
	NumSpeciesOrig    int     `json:"num_species_orig"`
	NumCharactersOrig int     `json:"num_characters_orig"`
	Matrix            []uint8 `json:"matrix"`
	SpeciesAlive      []bool  `json:"species_alive"`
	CharacterAlive    []bool  `json:"character_alive"`
	Colors            []uint8 `json:"colors"`
	AliveSpecies      int     `json:"alive_species"`
	AliveCharacters   int     `json:"alive_characters"`
	Components        []int   `json:"components"`
	CurrentComponent  []bool  `json:"current_component"`
	Realized          int     `json:"realized"`
	Outcome           uint8   `json:"outcome"`
	RedBlackFile      string  `json:"red_black_file"`
	ConflictFile      string  `json:"conflict_file"`
}

// WriteSnapshot dumps st into dir as <id>.json plus <id>.redblack.dot and
// <id>.conflict.dot, where <id> is a fresh UUID. It returns the path of the
// JSON file. Snapshots exist for regression tests; the solve path never
// writes one.
func WriteSnapshot(st *State, dir string) (string, error) {
	id := uuid.NewString()
	rbName := id + ".redblack.dot"
	cfName := id + ".conflict.dot"

	if err := os.WriteFile(filepath.Join(dir, rbName), writeDOT(st.RedBlack, "redblack"), 0o644); err != nil {
		return "", fmt.Errorf("phylo: writing red-black dump: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, cfName), writeDOT(st.Conflict, "conflict"), 0o644); err != nil {
		return "", fmt.Errorf("phylo: writing conflict dump: %w", err)
	}

	n, m := st.inst.NumSpecies(), st.inst.NumCharacters()
	snap := snapshotFile{
		NumSpeciesOrig:    n,
		NumCharactersOrig: m,
		Matrix:            make([]uint8, 0, n*m),
		SpeciesAlive:      st.SpeciesAlive,
		CharacterAlive:    st.CharacterAlive,
		Colors:            make([]uint8, m),
		AliveSpecies:      st.AliveSpecies,
		AliveCharacters:   st.AliveCharacters,
		Components:        st.Components,
		CurrentComponent:  st.CurrentComponent,
		Realized:          st.Realized,
		Outcome:           uint8(st.Outcome),
		RedBlackFile:      rbName,
		ConflictFile:      cfName,
	}
	for s := 0; s < n; s++ {
		for c := 0; c < m; c++ {
			snap.Matrix = append(snap.Matrix, st.inst.Value(s, c))
		}
	}
	for c := 0; c < m; c++ {
		snap.Colors[c] = uint8(st.Colors[c])
	}

	data, err := json.MarshalIndent(&snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("phylo: encoding snapshot: %w", err)
	}
	path := filepath.Join(dir, id+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("phylo: writing snapshot: %w", err)
	}

	return path, nil
}

// ReadSnapshot reconstructs a state from a snapshot JSON file. The DOT
// dumps are resolved relative to the JSON file's directory. The restored
// state compares StateEqual to the dumped one.
func ReadSnapshot(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("phylo: reading snapshot: %w", err)
	}
	var snap snapshotFile
	if err = json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("phylo: decoding snapshot: %w", err)
	}
	n, m := snap.NumSpeciesOrig, snap.NumCharactersOrig
	if len(snap.Matrix) != n*m || len(snap.SpeciesAlive) != n || len(snap.CharacterAlive) != m ||
		len(snap.Colors) != m || len(snap.Components) != n+m || len(snap.CurrentComponent) != n+m {
		return nil, fmt.Errorf("phylo: decoding snapshot: %w", ErrStateMismatch)
	}

	st := NewBlankState(NewInstance(n, m, snap.Matrix))
	copy(st.SpeciesAlive, snap.SpeciesAlive)
	copy(st.CharacterAlive, snap.CharacterAlive)
	for c := 0; c < m; c++ {
		st.Colors[c] = Color(snap.Colors[c])
	}
	st.AliveSpecies = snap.AliveSpecies
	st.AliveCharacters = snap.AliveCharacters
	copy(st.Components, snap.Components)
	copy(st.CurrentComponent, snap.CurrentComponent)
	st.Realized = snap.Realized
	st.Outcome = OpOutcome(snap.Outcome)

	dir := filepath.Dir(path)
	if err = readDOTFile(filepath.Join(dir, snap.RedBlackFile), st.RedBlack); err != nil {
		return nil, err
	}
	if err = readDOTFile(filepath.Join(dir, snap.ConflictFile), st.Conflict); err != nil {
		return nil, err
	}

	return st, nil
}
