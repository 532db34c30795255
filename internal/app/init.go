package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/kiln/internal/fsutil"
)

const buildTemplate = `//go:build ignore

package main

import (
	"os"

	"github.com/specialistvlad/kiln"
)

func main() {
	os.Exit(kiln.Main(func(s *kiln.Session) error {
		s.DeclareProject("app", kiln.Application).
			AddWildcard("src/*.c").
			AddIncludeDir("include").
			AddFlag("-Wall").
			DeclareConfig("debug", "bin/debug", "obj/debug").
			AddFlag("-g").
			AddDefine("DEBUG")
		return nil
	}))
}
`

// Init writes a template build description. An existing description is
// left untouched; that is logged as an error but is not a failure.
func (a *App) Init(ctx context.Context) error {
	path := a.config.BuildFile
	if fsutil.FileExists(path) {
		a.logger.Error("Build description already exists, not overwriting.", "path", path)
		return nil
	}

	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(buildTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.logger.Info("Created build description.", "path", path)
	return nil
}
