// Package config defines the format-agnostic benchmark suite model, along with
// the Loader interface for reading suites from various sources.
//
// The `config.Suite` is the single source of truth for the `bench` runner.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
