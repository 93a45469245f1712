package hcl

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestLoad_HappyPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteFiles(t, map[string]string{
		"a_suite.hcl": `
			locals {
				depth = 39
			}

			benchmark "naive" "fib" {
				n      = 29
				expect = 832040
			}

			benchmark "iterative" "iter_fib" {
				n      = local.depth
				expect = 102334155
				unit   = "us"
				repeat = 3
			}
		`,
		"nested/b_suite.hcl": `
			benchmark "accumulator" "biggest" {
				n      = 92
				expect = "12200160415121876738"
				unit   = "ns"
			}
		`,
	})

	// --- Act ---
	suite, err := NewLoader().Load(testutil.Context(t), root)

	// --- Assert ---
	require.NoError(t, err)
	want := []*config.Benchmark{
		{Name: "fib", Algorithm: "naive", N: 29, Expect: 832040, Unit: config.Milliseconds, Repeat: 1},
		{Name: "iter_fib", Algorithm: "iterative", N: 39, Expect: 102334155, Unit: config.Microseconds, Repeat: 3},
		{Name: "biggest", Algorithm: "accumulator", N: 92, Expect: 12200160415121876738, Unit: config.Nanoseconds, Repeat: 1},
	}
	if diff := cmp.Diff(want, suite.Benchmarks); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"one.hcl": `benchmark "iterative" "x" {
			n      = 0
			expect = 1
		}`,
		"ignored.hcl": `benchmark "iterative" "y" {
			n      = 1
			expect = 1
		}`,
	})

	suite, err := NewLoader().Load(testutil.Context(t), filepath.Join(root, "one.hcl"))
	require.NoError(t, err)
	require.Len(t, suite.Benchmarks, 1)
	require.Equal(t, "x", suite.Benchmarks[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		content     string
		errContains string
		errIs       error
	}{
		{
			name: "syntax error",
			content: `
				benchmark "naive" "A" {
					n = 1
			`,
			errContains: "failed to parse",
		},
		{
			name:        "unknown block",
			content:     `step "print" "A" {}`,
			errContains: "failed to decode",
		},
		{
			name:        "missing expect",
			content:     `benchmark "naive" "A" { n = 1 }`,
			errContains: "missing required argument 'expect'",
		},
		{
			name:        "missing n",
			content:     `benchmark "naive" "A" { expect = 1 }`,
			errContains: "missing required argument 'n'",
		},
		{
			name: "fractional expect",
			content: `benchmark "naive" "A" {
				n      = 1
				expect = 1.5
			}`,
			errContains: "attribute 'expect'",
		},
		{
			name:    "locals only",
			content: `locals { n = 39 }`,
			errIs:   config.ErrEmptySuite,
		},
		{
			name: "fractional n",
			content: `benchmark "naive" "A" {
				n      = 1.5
				expect = 1
			}`,
			errContains: "attribute 'n'",
		},
		{
			name: "negative expect",
			content: `benchmark "naive" "A" {
				n      = 1
				expect = -1
			}`,
			errContains: "attribute 'expect'",
		},
		{
			name: "overflowing n",
			content: `benchmark "iterative" "A" {
				n      = 93
				expect = 1
			}`,
			errIs: config.ErrOverflow,
		},
		{
			name: "bad unit",
			content: `benchmark "iterative" "A" {
				n      = 3
				expect = 3
				unit   = "weeks"
			}`,
			errIs: config.ErrInvalidBenchmark,
		},
		{
			name: "zero repeat",
			content: `benchmark "iterative" "A" {
				n      = 3
				expect = 3
				repeat = 0
			}`,
			errIs: config.ErrInvalidBenchmark,
		},
		{
			name: "duplicate names",
			content: `
				benchmark "iterative" "A" {
					n      = 3
					expect = 3
				}
				benchmark "naive" "A" {
					n      = 3
					expect = 3
				}`,
			errContains: "duplicate benchmark name 'A'",
		},
		{
			name: "unknown local",
			content: `benchmark "iterative" "A" {
				n      = local.missing
				expect = 3
			}`,
			errContains: "attribute 'n'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root := testutil.WriteFiles(t, map[string]string{"main.hcl": tc.content})

			_, err := NewLoader().Load(testutil.Context(t), root)

			require.Error(t, err)
			if tc.errContains != "" {
				require.Contains(t, err.Error(), tc.errContains)
			}
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestLoad_DuplicateLocalsAcrossFiles(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"a.hcl": `locals { n = 1 }`,
		"b.hcl": `locals { n = 2 }`,
	})

	_, err := NewLoader().Load(testutil.Context(t), root)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate local value 'n'")
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(testutil.Context(t), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "error accessing path")
}

func TestLoad_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(testutil.Context(t), t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no .hcl suite files found")
}

func TestLoad_BundledSuite(t *testing.T) {
	t.Parallel()

	suite, err := NewLoader().Load(testutil.Context(t), filepath.Join("..", "..", "suites"))
	require.NoError(t, err)
	require.Len(t, suite.Benchmarks, 4)
	for _, b := range suite.Benchmarks {
		require.Positive(t, b.Expect, b.Name)
	}
}
