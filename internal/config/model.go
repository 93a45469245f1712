package config

import (
	"errors"
	"fmt"
	"time"
)

// MaxN is the largest input whose Fibonacci term fits in a uint64.
const MaxN = 92

var (
	// ErrOverflow is returned for inputs whose result does not fit in a uint64.
	ErrOverflow = errors.New("fibonacci term overflows uint64")
	// ErrInvalidBenchmark is returned when a benchmark definition is malformed.
	ErrInvalidBenchmark = errors.New("invalid benchmark")
	// ErrEmptySuite is returned when a suite defines no benchmarks at all.
	ErrEmptySuite = errors.New("suite contains no benchmarks")
)

// Unit is the time unit a benchmark reports its measurement in.
type Unit string

const (
	Nanoseconds  Unit = "ns"
	Microseconds Unit = "us"
	Milliseconds Unit = "ms"
	Seconds      Unit = "s"
)

// DefaultUnit is used when a benchmark does not name one.
const DefaultUnit = Milliseconds

// ParseUnit validates a unit string. An empty string yields DefaultUnit.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case "":
		return DefaultUnit, nil
	case Nanoseconds, Microseconds, Milliseconds, Seconds:
		return u, nil
	default:
		return "", fmt.Errorf("%w: unit must be one of 'ns', 'us', 'ms', 's', got '%s'", ErrInvalidBenchmark, s)
	}
}

// Scale converts d into this unit as a float.
func (u Unit) Scale(d time.Duration) float64 {
	switch u {
	case Nanoseconds:
		return float64(d.Nanoseconds())
	case Microseconds:
		return float64(d.Nanoseconds()) / 1e3
	case Seconds:
		return d.Seconds()
	default:
		return float64(d.Nanoseconds()) / 1e6
	}
}

// Format renders d in this unit, e.g. "12.345ms" or "5.000 microseconds".
func (u Unit) Format(d time.Duration) string {
	v := u.Scale(d)
	switch u {
	case Nanoseconds:
		return fmt.Sprintf("%.0f nanoseconds", v)
	case Microseconds:
		return fmt.Sprintf("%.3f microseconds", v)
	case Seconds:
		return fmt.Sprintf("%.3fs", v)
	default:
		return fmt.Sprintf("%.3fms", v)
	}
}

// Suite is the unified, format-agnostic representation of a set of benchmarks.
type Suite struct {
	Benchmarks []*Benchmark
}

// Benchmark is a single timed computation checked against an expected value.
type Benchmark struct {
	Name      string
	Algorithm string
	N         int
	Expect    uint64
	Unit      Unit
	Repeat    int
}

// Validate checks the benchmark's fields and fills in defaults.
func (b *Benchmark) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidBenchmark)
	}
	if b.Algorithm == "" {
		return fmt.Errorf("%w: benchmark '%s' has no algorithm", ErrInvalidBenchmark, b.Name)
	}
	if b.N < 0 {
		return fmt.Errorf("%w: benchmark '%s' has negative n %d", ErrInvalidBenchmark, b.Name, b.N)
	}
	if b.N > MaxN {
		return fmt.Errorf("benchmark '%s': n %d exceeds %d: %w", b.Name, b.N, MaxN, ErrOverflow)
	}
	unit, err := ParseUnit(string(b.Unit))
	if err != nil {
		return fmt.Errorf("benchmark '%s': %w", b.Name, err)
	}
	b.Unit = unit
	if b.Repeat == 0 {
		b.Repeat = 1
	}
	if b.Repeat < 0 {
		return fmt.Errorf("%w: benchmark '%s' has negative repeat %d", ErrInvalidBenchmark, b.Name, b.Repeat)
	}
	return nil
}

// Validate validates every benchmark and rejects duplicate names.
func (s *Suite) Validate() error {
	seen := make(map[string]struct{}, len(s.Benchmarks))
	for _, b := range s.Benchmarks {
		if err := b.Validate(); err != nil {
			return err
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("%w: duplicate benchmark name '%s'", ErrInvalidBenchmark, b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}

// DefaultSuite reproduces the stand-alone benchmark scripts the tool replaces.
// The expected values use the fib(0) = fib(1) = 1 convention.
func DefaultSuite() *Suite {
	return &Suite{Benchmarks: []*Benchmark{
		{Name: "fib", Algorithm: "naive", N: 39, Expect: 102334155, Unit: Milliseconds, Repeat: 1},
		{Name: "faster_fib", Algorithm: "accumulator", N: 39, Expect: 102334155, Unit: Microseconds, Repeat: 1},
		{Name: "iter_fib", Algorithm: "iterative", N: 39, Expect: 102334155, Unit: Microseconds, Repeat: 1},
		{Name: "python3_fib", Algorithm: "naive", N: 29, Expect: 832040, Unit: Milliseconds, Repeat: 1},
		{Name: "python3_faster_fib", Algorithm: "accumulator", N: 39, Expect: 102334155, Unit: Microseconds, Repeat: 1},
	}}
}
