// Package accumulator registers the linear recursive Fibonacci algorithm that
// carries the last two terms through its arguments.
package accumulator

import (
	"github.com/specialistvlad/fibbench/internal/registry"
)

// Name is the identifier suites use to select this algorithm.
const Name = "accumulator"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Accumulate returns b once it drops below 1, otherwise it recurses with the
// pair shifted one term forward.
func Accumulate(a, b uint64, it int) uint64 {
	if it < 1 {
		return b
	}
	return Accumulate(b, a+b, it-1)
}

// Fib returns the n-th term using the same indexing as naive.Fib.
func Fib(n int) uint64 {
	if n < 1 {
		return 1
	}
	return Accumulate(1, 1, n-1)
}

// Register registers the algorithm with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAlgorithm(Name, &registry.RegisteredAlgorithm{
		Description: "linear recursion with accumulator arguments",
		Fn:          Fib,
	})
}
