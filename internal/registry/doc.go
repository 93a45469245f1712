// Package registry provides the central "glue" for the algorithm modules.
//
// The Registry stores the mapping between the string identifiers used in
// suite files (e.g., "iterative") and the compiled Go functions that compute
// the Fibonacci term. Every module under modules/ registers itself through the
// Module interface when the application starts.
//
// Before a suite runs, the registry validates that every benchmark names an
// algorithm that was actually compiled in, so a typo in a suite file fails the
// run up front instead of halfway through.
package registry
