package registry

import (
	"fmt"
	"log/slog"
)

// AlgorithmFunc computes the n-th Fibonacci term with fib(0) = fib(1) = 1.
type AlgorithmFunc func(n int) uint64

// RegisteredAlgorithm holds the compiled Go parts of an algorithm.
type RegisteredAlgorithm struct {
	Name        string
	Description string
	Fn          AlgorithmFunc
}

// RegisterAlgorithm registers a Go function under the given name.
func (r *Registry) RegisterAlgorithm(name string, alg *RegisteredAlgorithm) {
	if _, exists := r.AlgorithmRegistry[name]; exists {
		panic(fmt.Sprintf("algorithm with name '%s' already registered", name))
	}
	if alg == nil || alg.Fn == nil {
		panic(fmt.Sprintf("algorithm '%s' registered without a function", name))
	}
	slog.Debug("Registering algorithm.", "name", name)
	alg.Name = name
	r.AlgorithmRegistry[name] = alg
}
