// Package bootstrap keeps the build tool in step with its own build
// description.
//
// When the description source is newer than the installed executable, or the
// executable does not exist yet, the guard moves the executable aside to a
// staging slot, rebuilds it in place and hands control to the fresh binary.
// A failed rebuild moves the staged executable back, so there is always a
// working executable on disk.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/fsutil"
	"github.com/specialistvlad/kiln/internal/toolchain"
)

var (
	// ErrStage is returned when the current executable cannot be moved aside.
	ErrStage = errors.New("failed to stage previous executable")
	// ErrRebuild is returned when the executable could not be rebuilt. The
	// previous executable has been restored when one existed.
	ErrRebuild = errors.New("failed to rebuild executable")
	// ErrRelaunch is returned when the rebuilt executable could not be started.
	ErrRelaunch = errors.New("failed to relaunch executable")
)

// State is the outcome of comparing the executable with its source.
type State uint8

const (
	Current State = iota
	Stale
)

func (s State) String() string {
	if s == Stale {
		return "stale"
	}
	return "current"
}

// Platform hides the host differences of replacing a binary that may be
// running.
type Platform interface {
	// Stage renames from to to, replacing any file already at to.
	Stage(from, to string) error
	// Discard deletes path, possibly after the current process has exited.
	Discard(path string) error
	// Relaunch runs exe with args in place of the current process. It
	// returns the exit code to terminate with on hosts that cannot replace
	// the process image.
	Relaunch(ctx context.Context, exe string, args []string) (int, error)
}

// Rebuilder produces an executable from a build description source.
type Rebuilder interface {
	Rebuild(ctx context.Context, source, output string) error
}

// GoRebuilder compiles the description with the Go toolchain.
type GoRebuilder struct {
	Go     string
	Runner toolchain.Runner
}

// Rebuild runs "<go> build -o <output> <source>".
func (g GoRebuilder) Rebuild(ctx context.Context, source, output string) error {
	gobin := g.Go
	if gobin == "" {
		gobin = "go"
	}
	return g.Runner.Run(ctx, gobin, "build", "-o", output, source)
}

// Guard implements the rebuild-and-relaunch cycle for one executable.
type Guard struct {
	Source     string
	Executable string
	Staging    string

	Platform  Platform
	Rebuilder Rebuilder
}

// StagingPath is the staging slot used for exe: the same path with ".old"
// appended after any extension is stripped.
func StagingPath(exe string) string {
	return exe[:len(exe)-len(filepath.Ext(exe))] + ".old"
}

// Check compares the executable with its source. A missing source cannot
// be rebuilt from, so it is reported as current with a warning.
func (g *Guard) Check(ctx context.Context) State {
	logger := ctxlog.FromContext(ctx)
	if !fsutil.FileExists(g.Source) {
		logger.Warn("Build description not found, skipping self-rebuild.", "source", g.Source)
		return Current
	}
	if !fsutil.FileExists(g.Executable) {
		logger.Debug("Executable is missing.", "executable", g.Executable)
		return Stale
	}
	if fsutil.IsOlder(g.Executable, g.Source) {
		logger.Debug("Build description changed.", "source", g.Source, "executable", g.Executable)
		return Stale
	}
	return Current
}

// Run rebuilds and relaunches the executable when it is stale. handedOff is
// false when the executable was current and the caller should carry on;
// otherwise the caller should exit with exitCode.
func (g *Guard) Run(ctx context.Context, args []string) (handedOff bool, exitCode int, err error) {
	if g.Check(ctx) == Current {
		return false, 0, nil
	}
	if err := g.Rebuild(ctx); err != nil {
		return true, 1, err
	}

	ctxlog.FromContext(ctx).Info("Relaunching rebuilt executable.", "executable", g.Executable)
	code, err := g.Platform.Relaunch(ctx, g.Executable, args)
	if err != nil {
		return true, 1, fmt.Errorf("%w: %w", ErrRelaunch, err)
	}
	return true, code, nil
}

// Rebuild replaces the executable with a fresh build of the source. On
// failure the previous executable, if any, is put back.
func (g *Guard) Rebuild(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Rebuilding build tool.", "source", g.Source, "executable", g.Executable)

	staged := false
	if fsutil.FileExists(g.Executable) {
		if err := g.Platform.Stage(g.Executable, g.Staging); err != nil {
			return fmt.Errorf("%w: %w", ErrStage, err)
		}
		staged = true
	} else if err := fsutil.EnsureDir(filepath.Dir(g.Executable)); err != nil {
		return fmt.Errorf("%w: %w", ErrRebuild, err)
	}

	if err := g.Rebuilder.Rebuild(ctx, g.Source, g.Executable); err != nil {
		if staged {
			if rerr := g.Platform.Stage(g.Staging, g.Executable); rerr != nil {
				logger.Error("Failed to restore previous executable.", "staging", g.Staging, "error", rerr)
				return fmt.Errorf("%w: %w (restore: %w)", ErrRebuild, err, rerr)
			}
			logger.Info("Restored previous executable.", "executable", g.Executable)
		}
		return fmt.Errorf("%w: %w", ErrRebuild, err)
	}

	if staged {
		if err := g.Platform.Discard(g.Staging); err != nil {
			logger.Warn("Failed to remove previous executable.", "staging", g.Staging, "error", err)
		}
	}
	return nil
}
