package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/fibbench/internal/hcl"
	"github.com/specialistvlad/fibbench/internal/registry"
	"github.com/specialistvlad/fibbench/internal/testutil"
	"github.com/specialistvlad/fibbench/modules/accumulator"
	"github.com/specialistvlad/fibbench/modules/iterative"
)

// fastNaive stands in for the naive module so tests don't pay for exponential
// recursion at n = 39.
type fastNaive struct{}

func (fastNaive) Register(r *registry.Registry) {
	r.RegisterAlgorithm("naive", &registry.RegisteredAlgorithm{Fn: iterative.Fib})
}

// setupAppTest creates a new app instance for testing, returning the status
// output and log buffers.
func setupAppTest(t *testing.T, cfg Config) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.Color == "" {
		cfg.Color = "never"
	}
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	testApp := NewApp(out, logs, appConfig, hcl.NewLoader(), fastNaive{}, &accumulator.Module{}, &iterative.Module{})

	t.Cleanup(func() {
		if os.Getenv("FIBBENCH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
