package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAlgorithm is returned when a name has no registered algorithm.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Module is the interface that all algorithm modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered algorithms for a single application instance.
type Registry struct {
	AlgorithmRegistry map[string]*RegisteredAlgorithm
}

// New creates a new Registry and registers every given module into it.
func New(modules ...Module) *Registry {
	r := &Registry{
		AlgorithmRegistry: make(map[string]*RegisteredAlgorithm),
	}
	for _, mod := range modules {
		mod.Register(r)
	}
	return r
}

// Lookup returns the algorithm registered under name.
func (r *Registry) Lookup(name string) (*RegisteredAlgorithm, error) {
	alg, ok := r.AlgorithmRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w '%s' (available: %v)", ErrUnknownAlgorithm, name, r.Names())
	}
	return alg, nil
}

// Names returns the registered algorithm names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.AlgorithmRegistry))
	for name := range r.AlgorithmRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
