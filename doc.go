// Package cppp decides whether a binary species-by-character matrix admits
// a constrained persistent perfect phylogeny and, when it does, produces a
// witness: the sequence of character realizations that reduces the
// instance to the empty one.
//
// The module is organized into four packages plus a CLI:
//
//	graph/   — dense undirected graph: O(1) edge tests and degrees, BFS
//	           reachability, connected components, cheap deep copies
//	phylo/   — the state model: instance matrix, red-black and conflict
//	           graphs, the realization operator, cleanup, component
//	           tracking, and JSON+DOT state snapshots
//	search/  — the backtracking decision-tree engine with strategy
//	           callback and component-aware backjumping
//	driver/  — the per-instance loop tying loader, engine, and output
//	           together
//	cmd/cppp — the command-line binary
//
// A quick run:
//
//	$ cat matrix.txt
//	1 1
//	1
//	$ cppp matrix.txt
//	0
//
// The input format is one or more concatenated instances, each "n m"
// followed by n·m 0/1 cells; the output is one line per instance — the
// realized characters, or "Not found".
package cppp
