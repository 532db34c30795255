package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/kiln/internal/builder"
	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/staleness"
	"github.com/specialistvlad/kiln/internal/toolchain"
)

// Describe declares the projects of a build on reg.
type Describe func(ctx context.Context, reg *registry.Registry) error

// Build runs describe against a fresh registry and builds the result. The
// error is only set when the description itself failed; build failures are
// reported through Result.Success.
func (a *App) Build(ctx context.Context, describe Describe) (builder.Result, error) {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)

	reg := registry.New(logger)
	if err := describe(ctx, reg); err != nil {
		return builder.Result{}, fmt.Errorf("failed to describe build: %w", err)
	}
	logger.Debug("Build described.", "projects", len(reg.Projects()))

	tc := toolchain.New(a.config.CC, a.config.AR, a.runner)
	tc.Conventions = toolchain.ConventionsFor(a.goos)
	oracle := staleness.New(tc, tc, a.executable)

	return builder.New(reg, tc, oracle).Build(ctx), nil
}

// BuildDescription loads a declarative description file and builds it.
func (a *App) BuildDescription(ctx context.Context, path string) (builder.Result, error) {
	return a.Build(ctx, func(ctx context.Context, reg *registry.Registry) error {
		return LoadDescription(ctx, reg, path)
	})
}

// SelfGuard rebuilds the running build tool from its description when the
// description is newer, then hands off to the fresh binary. handedOff is
// false when the caller should carry on building.
func (a *App) SelfGuard(ctx context.Context) (handedOff bool, exitCode int, err error) {
	if a.executable == "" {
		return false, 0, nil
	}
	return a.guard(a.executable).Run(a.Context(ctx), a.config.Args)
}
