package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/cputime"
	"github.com/specialistvlad/fibbench/internal/ctxlog"
	"github.com/specialistvlad/fibbench/internal/registry"
	"golang.org/x/sync/errgroup"
)

// Options configures a Runner.
type Options struct {
	Clock   cputime.Kind
	Workers int
}

// Runner executes suites against a registry of algorithms.
type Runner struct {
	registry *registry.Registry
	clock    cputime.Kind
	workers  int
}

// New creates a Runner. A worker count below one is treated as one.
func New(reg *registry.Registry, opts Options) *Runner {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	clock := opts.Clock
	if clock == "" {
		clock = cputime.Process
	}
	return &Runner{registry: reg, clock: clock, workers: workers}
}

// effectiveClock returns the clock actually used for a suite of the given size.
func (r *Runner) effectiveClock(ctx context.Context, suiteSize int) cputime.Kind {
	if r.clock == cputime.Process && r.workers > 1 && suiteSize > 1 {
		ctxlog.FromContext(ctx).Warn("Process CPU time is shared by all workers; measuring per-thread CPU time instead.", "workers", r.workers)
		return cputime.Thread
	}
	return r.clock
}

// Run executes every benchmark of the suite and returns the results in suite
// order. The returned error is non-nil only when the suite cannot run at all;
// per-benchmark failures are recorded on each Result.
func (r *Runner) Run(ctx context.Context, suite *config.Suite) ([]*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := r.registry.ValidateSuite(ctx, suite); err != nil {
		return nil, err
	}

	clockKind := r.effectiveClock(ctx, len(suite.Benchmarks))
	results := make([]*Result, len(suite.Benchmarks))

	logger.Debug("Starting benchmark suite.", "benchmarks", len(suite.Benchmarks), "workers", r.workers, "clock", clockKind)

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, b := range suite.Benchmarks {
		g.Go(func() error {
			results[i] = r.runOne(ctx, b, clockKind)
			return nil
		})
	}
	// Closures record failures on their Result and always return nil, so
	// errgroup only bounds concurrency here.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Benchmark suite finished.", "all_passed", AllPassed(results))
	return results, nil
}

// RunOne executes a single benchmark on the runner's configured clock.
func (r *Runner) RunOne(ctx context.Context, b *config.Benchmark) *Result {
	return r.runOne(ctx, b, r.clock)
}

func (r *Runner) runOne(ctx context.Context, b *config.Benchmark, clockKind cputime.Kind) *Result {
	logger := ctxlog.FromContext(ctx).With("benchmark", b.Name, "algorithm", b.Algorithm, "n", b.N)
	res := newResult(b, clockKind)

	if err := ctx.Err(); err != nil {
		logger.Warn("Benchmark skipped.", "error", err)
		res.Err = fmt.Errorf("benchmark '%s' not started: %w", b.Name, err)
		return res
	}
	if b.N < 0 || b.N > config.MaxN {
		res.Err = fmt.Errorf("benchmark '%s': n %d outside [0, %d]: %w", b.Name, b.N, config.MaxN, config.ErrOverflow)
		return res
	}

	alg, err := r.registry.Lookup(b.Algorithm)
	if err != nil {
		res.Err = fmt.Errorf("benchmark '%s': %w", b.Name, err)
		return res
	}

	clock, err := cputime.New(clockKind)
	if err != nil {
		res.Err = err
		return res
	}

	runs := b.Repeat
	if runs < 1 {
		runs = 1
	}

	logger.Debug("Benchmark started.", "runs", runs, "clock", clockKind)
	var total time.Duration
	for i := 0; i < runs; i++ {
		if i > 0 {
			if err := ctx.Err(); err != nil {
				res.Err = fmt.Errorf("benchmark '%s' interrupted after %d runs: %w", b.Name, i, err)
				break
			}
		}

		var got uint64
		elapsed, err := cputime.Measure(clock, func() { got = alg.Fn(b.N) })
		if err != nil {
			res.Err = fmt.Errorf("benchmark '%s': %w", b.Name, err)
			return res
		}

		if i == 0 {
			res.Got = got
			res.Elapsed = elapsed
			res.Min = elapsed
		} else if got != res.Got {
			// A deterministic algorithm must not change its answer between runs.
			res.Err = fmt.Errorf("benchmark '%s': run %d returned %d, first run returned %d", b.Name, i+1, got, res.Got)
		}
		if elapsed < res.Min {
			res.Min = elapsed
		}
		total += elapsed
		res.Runs++
	}

	if res.Runs > 0 {
		res.Mean = total / time.Duration(res.Runs)
	}
	res.Passed = res.Err == nil && res.Got == res.Expect

	if res.Passed {
		logger.Info("Benchmark passed.", "elapsed", res.Elapsed, "runs", res.Runs)
	} else {
		logger.Warn("Benchmark failed.", "got", res.Got, "expect", res.Expect, "error", res.Err)
	}
	return res
}
