package bench

import (
	"time"

	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/cputime"
)

// Result holds the outcome of a single benchmark.
type Result struct {
	Name      string
	Algorithm string
	N         int
	Expect    uint64
	Got       uint64
	Unit      config.Unit
	Clock     cputime.Kind

	// Elapsed is the first run. Min and Mean cover all Runs.
	Elapsed time.Duration
	Min     time.Duration
	Mean    time.Duration
	Runs    int

	Passed bool
	Err    error
}

// Failed reports whether the benchmark errored or produced the wrong value.
func (r *Result) Failed() bool {
	return r.Err != nil || !r.Passed
}

// AllPassed reports whether every result passed.
func AllPassed(results []*Result) bool {
	for _, r := range results {
		if r.Failed() {
			return false
		}
	}
	return true
}

func newResult(b *config.Benchmark, clock cputime.Kind) *Result {
	return &Result{
		Name:      b.Name,
		Algorithm: b.Algorithm,
		N:         b.N,
		Expect:    b.Expect,
		Unit:      b.Unit,
		Clock:     clock,
	}
}
