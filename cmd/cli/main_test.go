package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/fibbench/internal/app"
	"github.com/stretchr/testify/require"
)

func TestRun_AdHocMatchExitsZero(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-algorithm", "iterative", "-n", "39", "-expect", "102334155", "-color", "never", "-clock", "wall"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 0, exitCode(err))
	require.Contains(t, out.String(), "Finished iterative(39) in ")
	require.Contains(t, out.String(), "PASS fib(39) = 102334155")
}

func TestRun_AdHocMismatchExitsOne(t *testing.T) {
	t.Parallel()

	args := []string{"-algorithm", "accumulator", "-n", "29", "-expect", "832041", "-color", "never", "-clock", "wall"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, errOut, args)

	require.ErrorIs(t, err, app.ErrBenchmarkFailed)
	require.Equal(t, 1, exitCode(err))
	require.Contains(t, out.String(), "FAIL fib(29) = 832040, expected 832041")
}

func TestRun_SuiteFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "python3.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(`
		benchmark "naive" "fib" {
			n      = 29
			expect = 832040
		}
	`), 0600))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, errOut, []string{"-color", "never", filePath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Finished fib in ")
	require.Contains(t, out.String(), "ms PASS fib(29) = 832040")
}

func TestRun_InvalidSuiteExitsOne(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		benchmark "naive" "A" {
			n = 1
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600), "failed to set up test file")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, []string{filePath})

	// --- Assert ---
	require.Error(t, err)
	require.Equal(t, 1, exitCode(err))
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Equal(t, 0, exitCode(err))
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseErrorExitsTwo(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Equal(t, 2, exitCode(err))
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_UnknownAlgorithmExitsTwo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(context.Background(), &out, &bytes.Buffer{}, []string{"-algorithm", "quantum", "-n", "10"})

	require.Error(t, err)
	require.Equal(t, 2, exitCode(err))
	require.Contains(t, err.Error(), "unknown algorithm 'quantum'")
	require.Empty(t, out.String())
}

func TestRun_CancelledContextFails(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &bytes.Buffer{}

	err := run(ctx, out, &bytes.Buffer{}, []string{"-algorithm", "iterative", "-color", "never"})

	require.ErrorIs(t, err, app.ErrBenchmarkFailed)
	require.Equal(t, 1, exitCode(err))
	require.Contains(t, out.String(), "ERROR iterative(39)")
}
