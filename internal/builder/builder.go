package builder

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/fsutil"
	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/toolchain"
	"github.com/specialistvlad/kiln/internal/wildcard"
)

// Oracle decides whether a source already has an up-to-date object.
type Oracle interface {
	AlreadyCompiled(ctx context.Context, p *registry.Project, cfg *registry.Config, source string) bool
}

// Builder runs builds for the projects of one registry.
type Builder struct {
	reg    *registry.Registry
	tc     *toolchain.Toolchain
	oracle Oracle
	// Root is the directory whose tree is matched against wildcards.
	Root string
}

// New creates a Builder rooted at the working directory.
func New(reg *registry.Registry, tc *toolchain.Toolchain, oracle Oracle) *Builder {
	return &Builder{reg: reg, tc: tc, oracle: oracle, Root: "."}
}

// Build seals the registry and builds every project in declaration order.
// The overall result succeeds only if every project does; a failing project
// never stops the ones declared after it.
func (b *Builder) Build(ctx context.Context) Result {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	b.reg.Seal()
	projects := b.reg.Projects()
	logger.Info("Starting build.", "projects", len(projects))

	res := Result{Success: true}
	for _, p := range projects {
		pr := b.BuildProject(ctx, p)
		res.Projects = append(res.Projects, pr)
		res.Success = res.Success && pr.Success
	}
	res.Duration = time.Since(start)

	if res.Success {
		logger.Info("Build finished.", "compiled", res.Compiled(), "duration", res.Duration)
	} else {
		logger.Error("Build failed.", "compiled", res.Compiled(), "duration", res.Duration)
	}
	return res
}

// BuildProject builds every config of p. A project with no configs or no
// matching sources is skipped with a warning and counts as a success.
func (b *Builder) BuildProject(ctx context.Context, p *registry.Project) ProjectResult {
	ctx = ctxlog.With(ctx, "project", p.Name)
	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	res := ProjectResult{Name: p.Name, Success: true}

	configs := p.Configs()
	if len(configs) == 0 {
		logger.Warn("Project has no configs, nothing to build.")
		res.Skipped = true
		res.Duration = time.Since(start)
		return res
	}

	sources := ResolveProjectSources(ctx, b.Root, p)
	if len(sources) == 0 {
		logger.Warn("Project has no source files, nothing to build.", "wildcards", p.Wildcards())
		res.Skipped = true
		res.Duration = time.Since(start)
		return res
	}

	if !p.Type.Valid() {
		logger.Error("Project has an invalid type, skipping.", "type", p.Type.String())
		res.Success = false
		res.Duration = time.Since(start)
		return res
	}

	logger.Info("Building project.", "type", p.Type.String(), "sources", len(sources), "configs", len(configs))
	for _, cfg := range configs {
		cr := b.buildConfig(ctx, p, cfg, sources)
		res.Configs = append(res.Configs, cr)
		res.Success = res.Success && cr.Success
	}
	res.Duration = time.Since(start)

	if res.Success {
		logger.Info("Project built.", "duration", res.Duration)
	} else {
		logger.Error("Project failed.", "duration", res.Duration)
	}
	return res
}

func (b *Builder) buildConfig(ctx context.Context, p *registry.Project, cfg *registry.Config, sources []string) ConfigResult {
	ctx = ctxlog.With(ctx, "config", cfg.Name)
	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	res := ConfigResult{Name: cfg.Name}

	compiled, err := b.compile(ctx, p, cfg, sources)
	res.Compiled = compiled
	if err == nil {
		err = b.postCompile(ctx, p, cfg)
	}
	res.Duration = time.Since(start)

	if err != nil {
		logger.Error("Config failed.", "error", err, "duration", res.Duration)
		return res
	}
	res.Success = true
	logger.Info("Config built.", "compiled", compiled, "duration", res.Duration)
	return res
}

// compile compiles every stale source and stops at the first failure.
func (b *Builder) compile(ctx context.Context, p *registry.Project, cfg *registry.Config, sources []string) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if err := fsutil.EnsureDir(cfg.ObjDir); err != nil {
		return 0, fmt.Errorf("failed to create object directory %s: %w", cfg.ObjDir, err)
	}

	compiled := 0
	for _, src := range sources {
		if b.oracle.AlreadyCompiled(ctx, p, cfg, src) {
			logger.Debug("Source is up to date.", "source", src)
			continue
		}
		logger.Info("Compiling.", "source", src)
		compiled++
		if err := b.tc.Compile(ctx, p, cfg, src); err != nil {
			return compiled, fmt.Errorf("failed to compile %s: %w", src, err)
		}
	}
	return compiled, nil
}

// postCompile links, archives or combines every object currently present in
// the object directory.
func (b *Builder) postCompile(ctx context.Context, p *registry.Project, cfg *registry.Config) error {
	logger := ctxlog.FromContext(ctx)
	objects := b.objects(cfg)
	if len(objects) == 0 {
		logger.Warn("No object files found.", "obj_dir", cfg.ObjDir)
	}

	if err := fsutil.EnsureDir(cfg.TargetDir); err != nil {
		return fmt.Errorf("failed to create target directory %s: %w", cfg.TargetDir, err)
	}

	switch p.Type {
	case registry.Application:
		logger.Info("Linking.", "output", b.tc.ExecutablePath(p, cfg), "objects", len(objects))
		if err := b.tc.Link(ctx, p, cfg, objects); err != nil {
			return fmt.Errorf("failed to link: %w", err)
		}
	case registry.StaticLibrary:
		logger.Info("Archiving.", "output", b.tc.StaticLibPath(p, cfg), "objects", len(objects))
		if err := b.tc.Archive(ctx, p, cfg, objects); err != nil {
			return fmt.Errorf("failed to archive: %w", err)
		}
	case registry.DynamicLibrary:
		logger.Info("Creating shared library.", "output", b.tc.DynamicLibPath(p, cfg), "objects", len(objects))
		if err := b.tc.Shared(ctx, p, cfg, objects); err != nil {
			return fmt.Errorf("failed to create shared library: %w", err)
		}
	default:
		return fmt.Errorf("unsupported project type %s", p.Type)
	}
	return nil
}

// objects is a fresh, sorted scan of the config's object directory.
func (b *Builder) objects(cfg *registry.Config) []string {
	pattern := b.tc.ObjectPattern()
	var out []string
	for _, f := range fsutil.ListFiles(cfg.ObjDir) {
		if wildcard.Match(filepath.Base(f), pattern) {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return out
}
