package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/specialistvlad/kiln/internal/ctxlog"
)

// Runner starts an external process and blocks until it exits.
type Runner interface {
	// Run executes name with args, streaming its output, and fails when the
	// process cannot start or exits non-zero.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes name with args and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Dir is the working directory of started processes. Empty means the
	// current directory.
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner that forwards child output to the given
// writers; nil writers default to the process's own stdout and stderr.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecRunner{Stdout: stdout, Stderr: stderr}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	ctxlog.FromContext(ctx).Debug("Running command.", "cmd", name, "args", args)

	// #nosec G204 - a build tool runs the toolchain it was configured with
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s failed: %w", name, err)
	}
	return nil
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctxlog.FromContext(ctx).Debug("Running command.", "cmd", name, "args", args)

	// #nosec G204 - a build tool runs the toolchain it was configured with
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stderr = r.Stderr
	out, err := cmd.Output()
	if err != nil {
		return out, fmt.Errorf("command %s failed: %w", name, err)
	}
	return out, nil
}
