// Package iterative registers the loop based Fibonacci algorithm.
package iterative

import (
	"github.com/specialistvlad/fibbench/internal/registry"
)

// Name is the identifier suites use to select this algorithm.
const Name = "iterative"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Fib advances the pair (a, b) n times starting from (0, 1) and returns b.
func Fib(n int) uint64 {
	var a, b uint64 = 0, 1
	for it := n; it > 0; it-- {
		a, b = b, a+b
	}
	return b
}

// Register registers the algorithm with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAlgorithm(Name, &registry.RegisteredAlgorithm{
		Description: "while loop over two running values",
		Fn:          Fib,
	})
}
