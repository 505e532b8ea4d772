// Package phylo models instances of the constrained persistent perfect
// phylogeny problem and the operations a solver applies to them.
//
// An instance is a binary species-by-character matrix. A working State views
// the instance through two graphs:
//
//   - the red-black graph, on species and character vertices, whose edges
//     initially encode the 1-entries of the matrix and whose per-character
//     color (black = inactive, red = active) tracks realization history;
//   - the conflict graph, on characters, where two characters are adjacent
//     iff the alive species exhibit all four 0/1 combinations on them
//     (the four-gamete condition).
//
// The package provides:
//
//   - Loader: parses one or more instances from a whitespace-separated
//     text stream into initial states.
//   - Realize: the character-realization operator. Activating a black
//     character toggles its edges inside the current component; freeing a
//     red character removes it when all component species agree, and fails
//     otherwise (ErrInfeasible).
//   - Cleanup: removes species and characters isolated in the red-black
//     graph.
//   - UpdateComponents / ChooseCurrentComponent: connected-component
//     analysis and selection of the component the solver branches on next.
//   - State.CopyFrom / StateEqual: deep copies into preallocated slots and
//     the equality checkpoint that the copy discipline is tested against.
//   - WriteSnapshot / ReadSnapshot: JSON + DOT state dumps for regression
//     tests.
//
// States own their graphs and arrays exclusively; only the instance matrix
// is shared, read-only, among all states of one search.
package phylo
