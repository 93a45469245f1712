package app

import (
	"github.com/specialistvlad/fibbench/internal/registry"
	"github.com/specialistvlad/fibbench/modules/accumulator"
	"github.com/specialistvlad/fibbench/modules/iterative"
	"github.com/specialistvlad/fibbench/modules/naive"
)

// coreModules is the definitive list of all algorithms that are compiled into
// the fibbench binary.
var coreModules = []registry.Module{
	&naive.Module{},
	&accumulator.Module{},
	&iterative.Module{},
}

// AlgorithmNames returns the sorted names of the compiled-in algorithms.
func AlgorithmNames() []string {
	return registry.New(coreModules...).Names()
}
