package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AlgoLab/cppp/phylo"
	"github.com/AlgoLab/cppp/search"
)

// ErrWrite wraps a failure to emit a result line.
var ErrWrite = errors.New("driver: writing output")

// Options configures a Run.
type Options struct {
	// Input carries one or more concatenated instances.
	Input io.Reader

	// Output receives one line per instance.
	Output io.Writer

	// Logger is threaded into the engine; zerolog.Nop() silences it.
	Logger zerolog.Logger

	// Debug enables the engine's per-step integrity checks.
	Debug bool
}

// Run solves every instance on the input in order. It stops at the first
// malformed instance, write failure, or context cancellation; a clean EOF
// returns nil.
func Run(ctx context.Context, opts Options) error {
	loader := phylo.NewLoader(opts.Input)
	for i := 0; ; i++ {
		st, err := loader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			opts.Logger.Error().Err(err).Int("instance", i).Msg("load failed")

			return err
		}
		opts.Logger.Info().
			Int("instance", i).
			Int("species", st.Instance().NumSpecies()).
			Int("characters", st.Instance().NumCharacters()).
			Msg("instance loaded")

		engOpts := []search.Option{
			search.WithContext(ctx),
			search.WithLogger(opts.Logger),
		}
		if opts.Debug {
			engOpts = append(engOpts, search.WithIntegrityChecks())
		}
		eng, err := search.New(st, search.Alphabetic, engOpts...)
		if err != nil {
			return err
		}
		res, err := eng.Run()
		if err != nil {
			return err
		}
		if err = emit(opts.Output, res); err != nil {
			return err
		}
	}
}

// emit writes the result line: the witness characters space-separated, or
// the literal "Not found".
func emit(w io.Writer, res *search.Result) error {
	var line string
	if res.Found {
		parts := make([]string, len(res.Sequence))
		for i, c := range res.Sequence {
			parts[i] = strconv.Itoa(c)
		}
		line = strings.Join(parts, " ")
	} else {
		line = "Not found"
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
