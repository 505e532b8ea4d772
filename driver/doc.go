// Package driver runs the solver over a stream of instances: load, search,
// and emit one result line per instance — the realized characters separated
// by spaces, or "Not found" when the decision tree is exhausted.
//
// The driver owns the logger and passes it down to the engine; the state
// and graph packages never observe logging. Malformed input aborts the run
// with the loader's error, which the CLI maps to its exit codes.
package driver
