package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/fibbench/internal/bench"
	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/report"
)

// ErrBenchmarkFailed is returned by Run when any benchmark produced the wrong
// value or could not complete.
var ErrBenchmarkFailed = errors.New("benchmark failed")

// Run resolves the suite, executes it, prints one status line per benchmark
// and writes the YAML report when configured.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	suite, err := a.resolveSuite(ctx)
	if err != nil {
		return fmt.Errorf("failed to load suite: %w", err)
	}
	if len(suite.Benchmarks) == 0 {
		return fmt.Errorf("failed to load suite: %w", config.ErrEmptySuite)
	}
	a.logger.Info("Suite loaded.", "benchmarks", len(suite.Benchmarks))

	runner := bench.New(a.registry, bench.Options{Clock: a.config.Clock, Workers: a.config.Workers})
	a.logger.Info("🚀 Running benchmarks...", "workers", a.config.Workers, "clock", a.config.Clock)
	results, err := runner.Run(ctx, suite)
	if err != nil {
		return fmt.Errorf("failed to run suite: %w", err)
	}
	a.logger.Info("🏁 Benchmarks finished.")

	if err := report.NewPrinter(a.outW, a.config.Color).Print(results); err != nil {
		return fmt.Errorf("failed to print results: %w", err)
	}

	if a.config.ReportPath != "" {
		if err := report.WriteYAMLFile(a.config.ReportPath, results); err != nil {
			return err
		}
		a.logger.Info("Report written.", "path", a.config.ReportPath)
	}

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	a.logger.Debug("App.Run method finished.", "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d benchmarks did not match their expected value", ErrBenchmarkFailed, failed, len(results))
	}
	return nil
}

// resolveSuite picks the ad-hoc benchmark, the configured suite files, or the
// built-in suite, in that order.
func (a *App) resolveSuite(ctx context.Context) (*config.Suite, error) {
	switch {
	case a.config.AdHoc != nil:
		a.logger.Debug("Using ad-hoc benchmark from flags.", "benchmark", a.config.AdHoc.Name)
		return &config.Suite{Benchmarks: []*config.Benchmark{a.config.AdHoc}}, nil
	case len(a.config.SuitePaths) > 0:
		if a.loader == nil {
			return nil, errors.New("suite paths configured but no loader available")
		}
		return a.loader.Load(ctx, a.config.SuitePaths...)
	default:
		a.logger.Debug("No suite paths given, using built-in suite.")
		return config.DefaultSuite(), nil
	}
}
