package phylo

import "fmt"

// Realize applies the realization of character c to src and writes the
// resulting state into dst. src is never mutated; dst must be a blank or
// reusable slot shaped for the same instance.
//
// A black character is activated: its edges toward the species of the
// current component are toggled (present edges deleted, missing ones
// added) and it turns red. A red character is freed: if every species of
// the current component is adjacent to it, all those edges are deleted and
// the character is expected to fall to cleanup; otherwise the realization
// is infeasible and ErrInfeasible is returned with dst unspecified.
//
// On success dst has been cleaned up, its components relabeled, and its
// conflict graph rebuilt; dst.Outcome is OpActivated or OpFreed and
// dst.Realized is c. dst's queue and tried lists start empty, and its
// backtrack level is left for the engine.
func Realize(dst, src *State, c int) error {
	if c < 0 || c >= src.inst.NumCharacters() || !src.CharacterAlive[c] {
		return fmt.Errorf("%w: character %d", ErrDeadCharacter, c)
	}
	cv := src.CharacterVertex(c)
	if !src.CurrentComponent[cv] {
		return fmt.Errorf("%w: character %d", ErrOutsideComponent, c)
	}

	// Feasibility of freeing is decided on src before dst is touched.
	if src.Colors[c] == Red {
		for v := 0; v < src.inst.NumSpecies(); v++ {
			if src.CurrentComponent[v] && !src.RedBlack.HasEdge(cv, v) {
				return fmt.Errorf("%w: species %d not adjacent to character %d", ErrInfeasible, v, c)
			}
		}
	}

	if err := dst.CopyFrom(src); err != nil {
		return err
	}

	switch src.Colors[c] {
	case Black:
		for v := 0; v < src.inst.NumSpecies(); v++ {
			if !src.CurrentComponent[v] {
				continue
			}
			if src.RedBlack.HasEdge(cv, v) {
				if err := dst.RedBlack.DelEdge(cv, v); err != nil {
					return err
				}
			} else if err := dst.RedBlack.AddEdge(cv, v); err != nil {
				return err
			}
		}
		dst.Colors[c] = Red
		dst.Outcome = OpActivated
	case Red:
		for v := 0; v < src.inst.NumSpecies(); v++ {
			if src.CurrentComponent[v] && src.RedBlack.HasEdge(cv, v) {
				if err := dst.RedBlack.DelEdge(cv, v); err != nil {
					return err
				}
			}
		}
		dst.Outcome = OpFreed
	}
	dst.Realized = c

	Cleanup(dst)
	UpdateComponents(dst)
	rebuildConflict(dst)

	return nil
}
