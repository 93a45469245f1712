package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/ctxlog"
)

// ValidateSuite checks that every benchmark in the suite refers to a
// registered algorithm. All problems are reported together.
func (r *Registry) ValidateSuite(ctx context.Context, suite *config.Suite) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, b := range suite.Benchmarks {
		if _, ok := r.AlgorithmRegistry[b.Algorithm]; !ok {
			errs = append(errs, fmt.Sprintf("benchmark '%s': algorithm '%s' is not registered", b.Name, b.Algorithm))
			continue
		}
		logger.Debug("Benchmark algorithm resolved.", "benchmark", b.Name, "algorithm", b.Algorithm)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: suite validation failed:\n- %s", ErrUnknownAlgorithm, strings.Join(errs, "\n- "))
	}

	return nil
}
