// Package search drives the decision-tree traversal over character
// realizations that decides whether an instance admits a constrained
// persistent perfect phylogeny.
//
// What:
//
//   - Engine: a backtracking search over a preallocated stack of state
//     slots, one per level. Each step pops the next candidate character of
//     the current level, realizes it into the next slot, and descends;
//     infeasible realizations stay on the level and try the next candidate.
//   - Strategy: a caller-supplied closure producing the candidate order for
//     a level. The engine restricts the order to the current component and
//     moves the highest-degree character to the front. Alphabetic is the
//     reference strategy: red characters first, then black, each ascending.
//   - Backjumping: when a level is exhausted the engine jumps to its
//     recorded backtrack level rather than always to the parent. Freed
//     (negative) realizations are forced by graph structure, so exhaustion
//     jumps past them as a block; and when a subtree has completely solved
//     one connected component, exhaustion jumps below the level that
//     selected it.
//
// The search is single-threaded and deterministic for a deterministic
// strategy. Cancellation is honored between steps via the context option.
//
// A successful run reports the realization sequence (the witness); an
// exhausted tree reports not-found. Neither outcome is an error.
package search
