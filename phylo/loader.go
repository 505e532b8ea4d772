package phylo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Loader parses a stream of concatenated instances. Each instance is two
// non-negative integers "n m" followed by n·m space-separated 0/1 cells in
// row-major order. Blank lines and comments are not recognized; tokens are
// split on any whitespace.
type Loader struct {
	sc *bufio.Scanner
}

// NewLoader wraps r in a word-splitting scanner.
func NewLoader(r io.Reader) *Loader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Loader{sc: sc}
}

// Next parses the next instance and returns its initial state. At a clean
// end of input it returns (nil, io.EOF). A header that fails to parse
// yields ErrBadHeader, a non-binary cell ErrBadCell, and an EOF inside an
// instance ErrTruncatedInput.
func (l *Loader) Next() (*State, error) {
	tok, ok := l.token()
	if !ok {
		return nil, io.EOF
	}
	numSpecies, err := parseDim(tok)
	if err != nil {
		return nil, err
	}
	tok, ok = l.token()
	if !ok {
		return nil, fmt.Errorf("%w: missing character count", ErrTruncatedInput)
	}
	numCharacters, err := parseDim(tok)
	if err != nil {
		return nil, err
	}

	cells := make([]uint8, numSpecies*numCharacters)
	for i := range cells {
		tok, ok = l.token()
		if !ok {
			return nil, fmt.Errorf("%w: got %d of %d cells", ErrTruncatedInput, i, len(cells))
		}
		switch tok {
		case "0":
			cells[i] = 0
		case "1":
			cells[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at cell %d", ErrBadCell, tok, i)
		}
	}

	return NewState(NewInstance(numSpecies, numCharacters, cells)), nil
}

// token returns the next whitespace-separated token, or false at EOF.
func (l *Loader) token() (string, bool) {
	if !l.sc.Scan() {
		return "", false
	}

	return l.sc.Text(), true
}

func parseDim(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadHeader, tok)
	}

	return v, nil
}
