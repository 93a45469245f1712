package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/ctxlog"
)

// translateBenchmark converts the HCL-specific benchmark schema into the agnostic model.
func (l *Loader) translateBenchmark(ctx context.Context, s *benchmarkBlock, evalCtx *hcl.EvalContext) (*config.Benchmark, error) {
	logger := ctxlog.FromContext(ctx).With("algorithm", s.Algorithm, "benchmark", s.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Debug("Translating HCL benchmark to internal config model.")

	b := &config.Benchmark{
		Name:      s.Name,
		Algorithm: s.Algorithm,
	}

	for _, req := range []struct {
		name string
		expr hcl.Expression
	}{{"n", s.N}, {"expect", s.Expect}} {
		if !isExprDefined(req.expr) {
			return nil, fmt.Errorf("failed to decode benchmark '%s': missing required argument '%s'", s.Name, req.name)
		}
	}

	if err := decodeExpr(ctx, s.N, evalCtx, &b.N); err != nil {
		return nil, fmt.Errorf("benchmark '%s', attribute 'n': %w", s.Name, err)
	}
	if err := decodeExpr(ctx, s.Expect, evalCtx, &b.Expect); err != nil {
		return nil, fmt.Errorf("benchmark '%s', attribute 'expect': %w", s.Name, err)
	}

	if isExprDefined(s.Unit) {
		var unit string
		if err := decodeExpr(ctx, s.Unit, evalCtx, &unit); err != nil {
			return nil, fmt.Errorf("benchmark '%s', attribute 'unit': %w", s.Name, err)
		}
		b.Unit = config.Unit(unit)
	}

	if isExprDefined(s.Repeat) {
		if err := decodeExpr(ctx, s.Repeat, evalCtx, &b.Repeat); err != nil {
			return nil, fmt.Errorf("benchmark '%s', attribute 'repeat': %w", s.Name, err)
		}
		if b.Repeat < 1 {
			return nil, fmt.Errorf("%w: benchmark '%s' needs repeat >= 1, got %d", config.ErrInvalidBenchmark, s.Name, b.Repeat)
		}
	}

	return b, nil
}
