package graph

import "math/bits"

// AddEdge inserts the undirected edge (u,v).
// Returns ErrVertexRange, ErrSelfLoop, or ErrEdgeExists on violation.
// Complexity: O(1).
func (g *Undirected) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.bit(u, v) {
		return ErrEdgeExists
	}
	g.setBit(u, v)
	g.setBit(v, u)
	g.degree[u]++
	g.degree[v]++
	g.edges++

	return nil
}

// DelEdge removes the undirected edge (u,v).
// Returns ErrVertexRange or ErrEdgeNotFound on violation.
// Complexity: O(1).
func (g *Undirected) DelEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if u == v || !g.bit(u, v) {
		return ErrEdgeNotFound
	}
	g.clearBit(u, v)
	g.clearBit(v, u)
	g.degree[u]--
	g.degree[v]--
	g.edges--

	return nil
}

// HasEdge reports whether the edge (u,v) is present.
// Out-of-range vertices simply report false.
// Complexity: O(1).
func (g *Undirected) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) || u == v {
		return false
	}

	return g.bit(u, v)
}

// Degree returns the number of edges incident to v (0 for out-of-range ids).
// Complexity: O(1).
func (g *Undirected) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return g.degree[v]
}

// Neighbors returns the vertices adjacent to v in ascending order.
// Complexity: O(n/64 + deg(v)).
func (g *Undirected) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	out := make([]int, 0, g.degree[v])
	row := g.adj[v*g.words : (v+1)*g.words]
	for wi, w := range row {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+b)
			w &= w - 1
		}
	}

	return out
}

// NukeEdges removes every edge, leaving the vertex set intact.
// Complexity: O(n²/64).
func (g *Undirected) NukeEdges() {
	clear(g.adj)
	clear(g.degree)
	g.edges = 0
}

// CopyFrom overwrites g with the content of src. The two graphs must have
// the same order; g becomes an independent equal copy.
// Complexity: O(n²/64).
func (g *Undirected) CopyFrom(src *Undirected) error {
	if g.n != src.n {
		return ErrOrderMismatch
	}
	copy(g.adj, src.adj)
	copy(g.degree, src.degree)
	g.edges = src.edges

	return nil
}

// Clone returns an independent deep copy of g.
// Complexity: O(n²/64).
func (g *Undirected) Clone() *Undirected {
	c := New(g.n)
	_ = c.CopyFrom(g)

	return c
}

// Equal reports whether a and b have the same order and the same edge set.
func Equal(a, b *Undirected) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n || a.edges != b.edges {
		return false
	}
	for i := range a.adj {
		if a.adj[i] != b.adj[i] {
			return false
		}
	}

	return true
}
