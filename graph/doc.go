// Package graph implements a simple undirected graph over a fixed set of
// integer vertices 0..n-1, tuned for the access pattern of a backtracking
// solver: constant-time edge tests and degrees, cheap whole-graph copies,
// and breadth-first reachability over dense vertex ranges.
//
// What:
//
//   - Undirected: adjacency kept as one bitset row per vertex plus a degree
//     array; the two are private to this package and always consistent.
//   - Reachable: BFS from a vertex, returning a boolean membership mask.
//   - Components: connected components with dense ids assigned in
//     first-seen vertex order; isolated vertices form singleton components.
//   - CopyFrom / Equal: deep copy into a preallocated graph of the same
//     order, and structural equality.
//
// Why:
//
//   - A branch-and-backtrack search copies its working graph at every node;
//     copying two flat slices beats rebuilding map-based adjacency.
//   - Component analysis after each mutation drives the solver's pruning.
//
// Errors:
//
//   - ErrVertexRange    vertex id outside 0..n-1
//   - ErrSelfLoop       u == v on AddEdge
//   - ErrEdgeExists     AddEdge on an existing edge
//   - ErrEdgeNotFound   DelEdge on a missing edge
//   - ErrOrderMismatch  CopyFrom between graphs of different order
//
// Complexity:
//
//   - HasEdge, Degree:  O(1)
//   - AddEdge, DelEdge: O(1)
//   - Neighbors:        O(n/64 + deg)
//   - Reachable:        O(n + n²/64) worst case (bitset row scans)
//   - Components:       O(n + n²/64)
//   - CopyFrom, Equal:  O(n²/64)
package graph
