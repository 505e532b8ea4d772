package phylo

// Instance is an immutable species-by-character 0/1 matrix. It is shared
// read-only by every state of a search; only the loader constructs one.
type Instance struct {
	numSpecies    int
	numCharacters int
	cells         []uint8 // row-major, numSpecies*numCharacters
}

// NewInstance builds an instance from row-major cells. The slice is copied.
// Cells must already be 0/1; the loader enforces that on parse.
func NewInstance(numSpecies, numCharacters int, cells []uint8) *Instance {
	in := &Instance{
		numSpecies:    numSpecies,
		numCharacters: numCharacters,
		cells:         make([]uint8, len(cells)),
	}
	copy(in.cells, cells)

	return in
}

// NumSpecies returns the number of rows of the original matrix.
func (in *Instance) NumSpecies() int { return in.numSpecies }

// NumCharacters returns the number of columns of the original matrix.
func (in *Instance) NumCharacters() int { return in.numCharacters }

// Value returns matrix[s][c].
func (in *Instance) Value(s, c int) uint8 {
	return in.cells[s*in.numCharacters+c]
}
