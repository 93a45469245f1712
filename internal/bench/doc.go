// Package bench runs the benchmarks of a suite and checks their results.
//
// Each benchmark resolves its algorithm through the registry, times one call
// per repetition on the configured clock and compares the computed term with
// the expected literal. Benchmarks run on a bounded pool of goroutines; when
// more than one runs at a time the process clock would also count the other
// workers, so the runner falls back to the per-thread clock.
package bench
