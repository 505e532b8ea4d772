// Package search: strategy, options, and result types.
package search

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/AlgoLab/cppp/phylo"
)

// Sentinel errors for engine construction and execution.
var (
	// ErrNilState is returned when New receives a nil initial state.
	ErrNilState = errors.New("search: initial state is nil")

	// ErrNilStrategy is returned when New receives a nil strategy.
	ErrNilStrategy = errors.New("search: strategy is nil")

	// ErrDepthExceeded indicates the traversal attempted to descend past the
	// n+2m depth bound; it signals a bug, not an input condition.
	ErrDepthExceeded = errors.New("search: depth bound exceeded")
)

// Strategy produces the candidate characters to try at a decision node, in
// preference order. It must be deterministic, must read the state without
// mutating it, and must never return a dead character. The engine further
// restricts the returned order to the current component.
type Strategy func(st *phylo.State) []int

// Alphabetic is the reference strategy: every alive character, red ones
// first, then black ones, ascending index within each color.
func Alphabetic(st *phylo.State) []int {
	m := st.Instance().NumCharacters()
	out := make([]int, 0, st.AliveCharacters)
	for c := 0; c < m; c++ {
		if st.CharacterAlive[c] && st.Colors[c] == phylo.Red {
			out = append(out, c)
		}
	}
	for c := 0; c < m; c++ {
		if st.CharacterAlive[c] && st.Colors[c] == phylo.Black {
			out = append(out, c)
		}
	}

	return out
}

// Option configures an Engine via functional arguments.
type Option func(*engineOptions)

type engineOptions struct {
	ctx   context.Context
	log   zerolog.Logger
	check bool
}

func defaultOptions() engineOptions {
	return engineOptions{
		ctx: context.Background(),
		log: zerolog.Nop(),
	}
}

// WithContext sets a context checked between search steps; cancellation
// aborts the run with the context's error.
func WithContext(ctx context.Context) Option {
	return func(o *engineOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger attaches a logger for per-step debug output. The default
// discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *engineOptions) { o.log = log }
}

// WithIntegrityChecks verifies the state invariants after every successful
// realization. A violation panics with the *phylo.IntegrityError: it is a
// programmer bug and the process must not continue on a corrupt state.
func WithIntegrityChecks() Option {
	return func(o *engineOptions) { o.check = true }
}

// Result is the outcome of a run: whether a solution exists and, when it
// does, the witness — the realized characters in order of realization.
type Result struct {
	Found    bool
	Sequence []int
}
