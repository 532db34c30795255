package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/specialistvlad/kiln/internal/bootstrap"
	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/toolchain"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	runner     toolchain.Runner
	platform   bootstrap.Platform
	rebuilder  bootstrap.Rebuilder
	executable string
	goos       string
}

// Option customizes an App, mostly to replace external collaborators in
// tests.
type Option func(*App)

// WithRunner replaces the process runner used for every external tool.
func WithRunner(r toolchain.Runner) Option {
	return func(a *App) { a.runner = r }
}

// WithPlatform replaces the host platform used by the bootstrap guard.
func WithPlatform(p bootstrap.Platform) Option {
	return func(a *App) { a.platform = p }
}

// WithRebuilder replaces how the build description is compiled.
func WithRebuilder(r bootstrap.Rebuilder) Option {
	return func(a *App) { a.rebuilder = r }
}

// WithExecutable sets the path of the running build tool, used for the
// staleness check of objects and for self-rebuilds.
func WithExecutable(path string) Option {
	return func(a *App) { a.executable = path }
}

// NewApp is the constructor for the main application. Logs are written to
// outW; external tools inherit the process's stdout and stderr.
func NewApp(outW io.Writer, cfg *Config, opts ...Option) *App {
	a := &App{
		outW:     outW,
		logger:   newLogger(cfg.LogLevel, cfg.LogFormat, outW),
		config:   cfg,
		platform: bootstrap.Host(),
		goos:     runtime.GOOS,
	}
	if exe, err := os.Executable(); err == nil {
		a.executable = exe
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.runner == nil {
		a.runner = toolchain.NewExecRunner(os.Stdout, os.Stderr)
	}
	if a.rebuilder == nil {
		a.rebuilder = bootstrap.GoRebuilder{Go: cfg.Go, Runner: a.runner}
	}
	a.logger.Debug("Logger configured successfully.")
	return a
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Context attaches the application's logger to ctx.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// CachedExecutable is where the launcher keeps the compiled build
// description.
func (a *App) CachedExecutable() string {
	return filepath.Join(a.config.CacheDir, "kiln"+toolchain.ConventionsFor(a.goos).ExeSuffix)
}

func (a *App) guard(exe string) *bootstrap.Guard {
	return &bootstrap.Guard{
		Source:     a.config.BuildFile,
		Executable: exe,
		Staging:    bootstrap.StagingPath(exe),
		Platform:   a.platform,
		Rebuilder:  a.rebuilder,
	}
}
