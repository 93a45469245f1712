package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/specialistvlad/fibbench/internal/app"
	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/cputime"
	"github.com/specialistvlad/fibbench/internal/report"
	"github.com/specialistvlad/fibbench/modules/iterative"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("fibbench", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
fibbench - Times Fibonacci algorithms and checks their results.

Usage:
  fibbench [options] [SUITE_PATH...]

Arguments:
  SUITE_PATH
    Path to a single .hcl file or a directory containing .hcl files.
    Without any path the built-in suite runs.

Exit codes:
  0  every benchmark matched its expected value
  1  a benchmark mismatched or failed
  2  invalid usage

Options:
`)
		flagSet.PrintDefaults()
	}

	suiteFlag := flagSet.String("suite", "", "Path to the suite file or directory.")
	sFlag := flagSet.String("s", "", "Path to the suite file or directory (shorthand).")
	algorithmFlag := flagSet.String("algorithm", "", "Run a single ad-hoc benchmark with this algorithm: 'naive', 'accumulator' or 'iterative'.")
	nFlag := flagSet.Int("n", 39, "Input of the ad-hoc benchmark.")
	expectFlag := flagSet.Uint64("expect", 0, "Expected result of the ad-hoc benchmark. Defaults to the iterative algorithm's answer.")
	unitFlag := flagSet.String("unit", "ms", "Time unit of the ad-hoc benchmark: 'ns', 'us', 'ms' or 's'.")
	repeatFlag := flagSet.Int("repeat", 1, "Number of timed runs of the ad-hoc benchmark.")
	clockFlag := flagSet.String("clock", "process", "Clock to measure with. Options: 'process', 'thread' or 'wall'.")
	workersFlag := flagSet.Int("workers", 1, "Number of benchmarks to run concurrently.")
	colorFlag := flagSet.String("color", "auto", "Colorize status lines. Options: 'auto', 'always' or 'never'.")
	reportFlag := flagSet.String("report", "", "Write a YAML report of all results to this path.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var paths []string
	if *suiteFlag != "" {
		paths = append(paths, *suiteFlag)
	}
	if *sFlag != "" {
		paths = append(paths, *sFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Suite paths determined.", "paths", paths)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	clock, err := cputime.ParseKind(strings.ToLower(*clockFlag))
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}
	color, err := report.ParseColorMode(*colorFlag)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	var adHoc *config.Benchmark
	if *algorithmFlag != "" {
		adHoc, err = adHocBenchmark(*algorithmFlag, *nFlag, *expectFlag, set["expect"], *unitFlag, *repeatFlag)
		if err != nil {
			return nil, false, usageError("%s", err.Error())
		}
	} else {
		for _, name := range []string{"n", "expect", "unit", "repeat"} {
			if set[name] {
				return nil, false, usageError("-%s requires -algorithm", name)
			}
		}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		SuitePaths: paths,
		AdHoc:      adHoc,
		Clock:      clock,
		Workers:    *workersFlag,
		Color:      color,
		ReportPath: *reportFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// adHocBenchmark builds the single benchmark described by the ad-hoc flags.
func adHocBenchmark(algorithm string, n int, expect uint64, expectSet bool, unit string, repeat int) (*config.Benchmark, error) {
	if !slices.Contains(app.AlgorithmNames(), algorithm) {
		return nil, fmt.Errorf("unknown algorithm '%s': must be one of %v", algorithm, app.AlgorithmNames())
	}
	u, err := config.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	b := &config.Benchmark{
		Name:      fmt.Sprintf("%s(%d)", algorithm, n),
		Algorithm: algorithm,
		N:         n,
		Expect:    expect,
		Unit:      u,
		Repeat:    repeat,
	}
	if repeat < 1 {
		return nil, fmt.Errorf("repeat must be at least 1, got %d", repeat)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !expectSet {
		b.Expect = iterative.Fib(n)
	}
	return b, nil
}
