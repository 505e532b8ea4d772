// Command cppp decides, for each 0/1 matrix in its input file, whether a
// constrained persistent perfect phylogeny exists, printing the witness
// realization sequence or "Not found".
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AlgoLab/cppp/driver"
	"github.com/AlgoLab/cppp/phylo"
)

// Exit codes of the cppp binary.
const (
	exitOK        = 0
	exitBadHeader = 1
	exitBadCell   = 2
	exitTruncated = 3
	exitUsage     = 4
	exitNoInput   = 5
	exitBadOutput = 6
)

// cliConfig collects flag values before they are resolved against the
// optional config file.
type cliConfig struct {
	output     string
	logPath    string
	configPath string
	quiet      bool
	verbose    bool
	debug      bool
}

// fileConfig is the optional YAML config file: defaults that explicit
// flags override.
type fileConfig struct {
	LogLevel string `yaml:"log_level"`
	Output   string `yaml:"output"`
}

// exitError carries the process exit code alongside the cause.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := &cliConfig{}
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cppp:", err)

		return codeFor(err)
	}

	return exitOK
}

func newRootCmd(cfg *cliConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cppp INPUT",
		Short:         "Constrained persistent perfect phylogeny solver",
		Long:          `cppp reads one or more species-by-character 0/1 matrices and, for each, searches for a sequence of character realizations reducing the instance to the empty one.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, cfg, args[0])
		},
	}
	cmd.Flags().StringVar(&cfg.output, "output", "", "write solutions here (default: stdout)")
	cmd.Flags().StringVar(&cfg.logPath, "log", "", "redirect logs here (default: stderr)")
	cmd.Flags().StringVar(&cfg.configPath, "config", "", "optional YAML config with defaults")
	cmd.Flags().BoolVar(&cfg.quiet, "quiet", false, "suppress non-fatal logs")
	cmd.Flags().BoolVar(&cfg.verbose, "verbose", false, "enable info-level logs")
	cmd.Flags().BoolVar(&cfg.debug, "debug", false, "enable debug-level logs and integrity checks")

	return cmd
}

func solve(cmd *cobra.Command, cfg *cliConfig, inputPath string) error {
	fileCfg, err := loadFileConfig(cfg.configPath)
	if err != nil {
		return &exitError{exitUsage, err}
	}
	if fileCfg.Output != "" && !cmd.Flags().Changed("output") {
		cfg.output = fileCfg.Output
	}

	logger, closeLog, err := buildLogger(cfg, fileCfg)
	if err != nil {
		return &exitError{exitBadOutput, err}
	}
	defer closeLog()

	in, err := os.Open(inputPath)
	if err != nil {
		return &exitError{exitNoInput, fmt.Errorf("opening input: %w", err)}
	}
	defer in.Close()

	out := os.Stdout
	if cfg.output != "" {
		if out, err = os.Create(cfg.output); err != nil {
			return &exitError{exitBadOutput, fmt.Errorf("opening output: %w", err)}
		}
		defer out.Close()
	}

	return driver.Run(cmd.Context(), driver.Options{
		Input:  in,
		Output: out,
		Logger: logger,
		Debug:  cfg.debug,
	})
}

// buildLogger resolves the log sink and level: flags beat the config file,
// and the CPPP_LOG_LEVEL environment variable beats both.
func buildLogger(cfg *cliConfig, fileCfg fileConfig) (zerolog.Logger, func(), error) {
	sink := os.Stderr
	closeLog := func() {}
	if cfg.logPath != "" {
		f, err := os.Create(cfg.logPath)
		if err != nil {
			return zerolog.Nop(), closeLog, fmt.Errorf("opening log file: %w", err)
		}
		sink = f
		closeLog = func() { f.Close() }
	}

	level := zerolog.WarnLevel
	if fileCfg.LogLevel != "" {
		if l, err := zerolog.ParseLevel(fileCfg.LogLevel); err == nil {
			level = l
		}
	}
	switch {
	case cfg.debug:
		level = zerolog.DebugLevel
	case cfg.verbose:
		level = zerolog.InfoLevel
	case cfg.quiet:
		level = zerolog.Disabled
	}
	if env := os.Getenv("CPPP_LOG_LEVEL"); env != "" {
		if l, err := zerolog.ParseLevel(env); err == nil {
			level = l
		}
	}

	logger := zerolog.New(sink).With().Timestamp().Logger().Level(level)

	return logger, closeLog, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading config: %w", err)
	}
	if err = yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parsing config: %w", err)
	}

	return fc, nil
}

// codeFor maps an error to the process exit code.
func codeFor(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	switch {
	case errors.Is(err, phylo.ErrBadHeader):
		return exitBadHeader
	case errors.Is(err, phylo.ErrBadCell):
		return exitBadCell
	case errors.Is(err, phylo.ErrTruncatedInput):
		return exitTruncated
	case errors.Is(err, driver.ErrWrite):
		return exitBadOutput
	default:
		return exitUsage
	}
}
