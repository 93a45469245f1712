package config

import "context"

// Loader is the interface for a format-specific suite loader.
type Loader interface {
	// Load reads every suite file found under the given paths and merges them
	// into a single, validated Suite.
	Load(ctx context.Context, paths ...string) (*Suite, error)
}
