package toolchain

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/specialistvlad/kiln/internal/registry"
)

const (
	DefaultCompiler = "gcc"
	DefaultArchiver = "ar"
)

// Conventions describes host-specific artifact naming.
type Conventions struct {
	ObjectExt     string
	StaticLibExt  string
	DynamicLibExt string
	LibPrefix     string
	ExeSuffix     string
}

// ConventionsFor returns the artifact naming used on goos.
func ConventionsFor(goos string) Conventions {
	switch goos {
	case "windows":
		return Conventions{ObjectExt: "o", StaticLibExt: "lib", DynamicLibExt: "dll", ExeSuffix: ".exe"}
	case "darwin":
		return Conventions{ObjectExt: "o", StaticLibExt: "a", DynamicLibExt: "dylib", LibPrefix: "lib"}
	default:
		return Conventions{ObjectExt: "o", StaticLibExt: "a", DynamicLibExt: "so", LibPrefix: "lib"}
	}
}

// Toolchain drives the external compiler and archiver.
type Toolchain struct {
	Compiler string
	Archiver string
	Conventions
	Runner Runner
}

// New returns a toolchain for the host platform. Empty compiler or archiver
// names fall back to DefaultCompiler and DefaultArchiver.
func New(compiler, archiver string, runner Runner) *Toolchain {
	if compiler == "" {
		compiler = DefaultCompiler
	}
	if archiver == "" {
		archiver = DefaultArchiver
	}
	return &Toolchain{
		Compiler:    compiler,
		Archiver:    archiver,
		Conventions: ConventionsFor(runtime.GOOS),
		Runner:      runner,
	}
}

// ObjectPath is the deterministic object artifact for source under cfg:
// <obj_dir>/<source base name with the object extension>.
func (t *Toolchain) ObjectPath(cfg *registry.Config, source string) string {
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(cfg.ObjDir, base+"."+t.ObjectExt)
}

// ObjectPattern is the wildcard selecting object files by base name. It is
// matched against names only, so an object directory whose own name holds
// glob characters is still scanned in full.
func (t *Toolchain) ObjectPattern() string {
	return "*." + t.ObjectExt
}

// ExecutablePath is where an application's linked executable lands.
func (t *Toolchain) ExecutablePath(p *registry.Project, cfg *registry.Config) string {
	return filepath.Join(cfg.TargetDir, p.Name+t.ExeSuffix)
}

// StaticLibPath is where a static library's archive lands.
func (t *Toolchain) StaticLibPath(p *registry.Project, cfg *registry.Config) string {
	return filepath.Join(cfg.TargetDir, t.LibPrefix+p.Name+"."+t.StaticLibExt)
}

// DynamicLibPath is where a shared library lands.
func (t *Toolchain) DynamicLibPath(p *registry.Project, cfg *registry.Config) string {
	return filepath.Join(cfg.TargetDir, p.Name+"."+t.DynamicLibExt)
}

// Compile compiles source into its object artifact without linking.
func (t *Toolchain) Compile(ctx context.Context, p *registry.Project, cfg *registry.Config, source string) error {
	return t.Runner.Run(ctx, t.Compiler, t.CompileArgs(p, cfg, source)...)
}

// Link drives the compiler as a linker to produce the application
// executable from objects and the project's link references.
func (t *Toolchain) Link(ctx context.Context, p *registry.Project, cfg *registry.Config, objects []string) error {
	return t.Runner.Run(ctx, t.Compiler, t.LinkArgs(p, cfg, objects)...)
}

// Archive packs objects into a static library.
func (t *Toolchain) Archive(ctx context.Context, p *registry.Project, cfg *registry.Config, objects []string) error {
	return t.Runner.Run(ctx, t.Archiver, t.ArchiveArgs(p, cfg, objects)...)
}

// Shared produces a shared library from objects.
func (t *Toolchain) Shared(ctx context.Context, p *registry.Project, cfg *registry.Config, objects []string) error {
	return t.Runner.Run(ctx, t.Compiler, t.SharedArgs(p, cfg, objects)...)
}
