// Package naive registers the naive recursive Fibonacci algorithm.
package naive

import (
	"github.com/specialistvlad/fibbench/internal/registry"
)

// Name is the identifier suites use to select this algorithm.
const Name = "naive"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Fib computes the n-th Fibonacci term by plain double recursion.
// fib(0) and fib(1) are both 1. The running time grows exponentially with n.
func Fib(n int) uint64 {
	if n < 2 {
		return 1
	}
	return Fib(n-1) + Fib(n-2)
}

// Register registers the algorithm with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAlgorithm(Name, &registry.RegisteredAlgorithm{
		Description: "naive double recursion, exponential time",
		Fn:          Fib,
	})
}
