// Package cputime measures how long a call takes on one of several clocks.
//
// The process clock matches what interpreted benchmark scripts usually report
// (CPU time consumed by the whole process, idle time excluded). The thread
// clock restricts that to the OS thread running the call, which keeps
// measurements honest when several benchmarks run at once. The wall clock is
// the monotonic clock from the time package.
package cputime
