package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/kiln/internal/bootstrap"
	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/fsutil"
)

// ErrNoDescription is returned by Launch when the working directory holds no
// build description of any kind.
var ErrNoDescription = errors.New("no build description found, run 'kiln init' to create one")

// Launch is the launcher's build path. With a Go build description it
// keeps the cached executable current and hands off to it. With a
// declarative description it builds in process. It returns the exit code
// the process should end with.
func (a *App) Launch(ctx context.Context) (int, error) {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)

	if fsutil.FileExists(a.config.BuildFile) {
		exe := a.CachedExecutable()
		handedOff, code, err := a.guard(exe).Run(ctx, a.config.Args)
		if err != nil || handedOff {
			return code, err
		}

		logger.Debug("Handing off to build description.", "executable", exe)
		code, err = a.platform.Relaunch(ctx, exe, a.config.Args)
		if err != nil {
			return 1, fmt.Errorf("%w: %w", bootstrap.ErrRelaunch, err)
		}
		return code, nil
	}

	if path, ok := FindDescription("."); ok {
		logger.Info("Using declarative description.", "path", path)
		res, err := a.BuildDescription(ctx, path)
		if err != nil {
			return 1, err
		}
		if !res.Success {
			return 1, nil
		}
		return 0, nil
	}

	logger.Error("No build description found.", "build_file", a.config.BuildFile)
	return 1, ErrNoDescription
}
