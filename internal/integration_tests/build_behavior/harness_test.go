package build_behavior

import (
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/specialistvlad/kiln/internal/app"
	"github.com/specialistvlad/kiln/internal/testutil"
	"github.com/specialistvlad/kiln/internal/toolchain"
	"github.com/stretchr/testify/require"
)

// recordingRunner runs real processes and remembers what it ran.
type recordingRunner struct {
	inner toolchain.Runner
	mu    sync.Mutex
	calls []testutil.Invocation
}

func (r *recordingRunner) record(name string, args []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, testutil.Invocation{Name: name, Args: args})
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) error {
	r.record(name, args)
	return r.inner.Run(ctx, name, args...)
}

func (r *recordingRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.record(name, args)
	return r.inner.Output(ctx, name, args...)
}

func (r *recordingRunner) compiles() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if testutil.IsCompile(c) {
			n++
		}
	}
	return n
}

func (r *recordingRunner) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// setupRealToolchain moves the test into an empty directory and returns an
// App driving the host C compiler. Tests are skipped when none is installed.
func setupRealToolchain(t *testing.T) (*app.App, *recordingRunner, *testutil.SafeBuffer) {
	t.Helper()
	cc := os.Getenv("KILN_CC")
	if cc == "" {
		cc = "cc"
	}
	if _, err := exec.LookPath(cc); err != nil {
		t.Skipf("C compiler %q not available: %v", cc, err)
	}
	t.Chdir(t.TempDir())

	cfg := app.DefaultConfig()
	cfg.CC = cc
	cfg.LogLevel = "debug"
	config, err := app.NewConfig(cfg)
	require.NoError(t, err)

	runner := &recordingRunner{inner: toolchain.NewExecRunner(os.Stdout, os.Stderr)}
	logs := &testutil.SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("KILN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return app.NewApp(logs, config, app.WithRunner(runner)), runner, logs
}
