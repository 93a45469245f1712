// Package report renders benchmark results: one colored status line per
// benchmark on the terminal, and an optional machine-readable YAML file.
package report
