package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Locals     []*localsBlock    `hcl:"locals,block"`
	Benchmarks []*benchmarkBlock `hcl:"benchmark,block"`
}

// localsBlock holds named values that benchmark attributes can reference as
// `local.<name>`.
type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// benchmarkBlock represents a `benchmark` block from a suite file.
//
//	benchmark "iterative" "iter_fib" {
//	  n      = 39
//	  expect = 102334155
//	  unit   = "us"
//	}
type benchmarkBlock struct {
	Algorithm string         `hcl:"algorithm,label"`
	Name      string         `hcl:"name,label"`
	N         hcl.Expression `hcl:"n"`
	Expect    hcl.Expression `hcl:"expect"`
	Unit      hcl.Expression `hcl:"unit,optional"`
	Repeat    hcl.Expression `hcl:"repeat,optional"`
}
