package toolchain

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/kiln/internal/registry"
)

// CompileArgs: include dirs, project flags, config flags, project defines,
// config defines, -c, -o <object>, <source>.
func (t *Toolchain) CompileArgs(p *registry.Project, cfg *registry.Config, source string) []string {
	args := includeArgs(p.IncludeDirs())
	args = append(args, p.Flags()...)
	args = append(args, cfg.Flags()...)
	args = append(args, defineArgs(p.Defines())...)
	args = append(args, defineArgs(cfg.Defines())...)
	return append(args, "-c", "-o", t.ObjectPath(cfg, source), source)
}

// LinkArgs: include dirs, project flags, config flags, -o <executable>,
// objects, link references.
func (t *Toolchain) LinkArgs(p *registry.Project, cfg *registry.Config, objects []string) []string {
	args := includeArgs(p.IncludeDirs())
	args = append(args, p.Flags()...)
	args = append(args, cfg.Flags()...)
	args = append(args, "-o", t.ExecutablePath(p, cfg))
	args = append(args, objects...)
	return append(args, linkArgs(p.Links())...)
}

// ArchiveArgs: rcs <library> objects.
func (t *Toolchain) ArchiveArgs(p *registry.Project, cfg *registry.Config, objects []string) []string {
	args := []string{"rcs", t.StaticLibPath(p, cfg)}
	return append(args, objects...)
}

// SharedArgs: -shared, project flags, config flags, -o <library>, objects.
func (t *Toolchain) SharedArgs(p *registry.Project, cfg *registry.Config, objects []string) []string {
	args := []string{"-shared"}
	args = append(args, p.Flags()...)
	args = append(args, cfg.Flags()...)
	args = append(args, "-o", t.DynamicLibPath(p, cfg))
	return append(args, objects...)
}

// DependencyArgs: include dirs, -MM, <source>.
func (t *Toolchain) DependencyArgs(p *registry.Project, source string) []string {
	args := includeArgs(p.IncludeDirs())
	return append(args, "-MM", source)
}

func includeArgs(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, "-I"+d)
	}
	return out
}

func defineArgs(defines []string) []string {
	out := make([]string, 0, len(defines))
	for _, d := range defines {
		out = append(out, "-D"+d)
	}
	return out
}

// linkArgs splits each reference into its directory and library name:
// "vendor/z" becomes -Lvendor -lz and a bare "m" becomes -L. -lm.
func linkArgs(links []string) []string {
	out := make([]string, 0, 2*len(links))
	for _, l := range links {
		dir, name := ".", l
		if i := strings.LastIndexByte(l, filepath.Separator); i >= 0 {
			dir, name = l[:i], l[i+1:]
		}
		out = append(out, "-L"+dir, "-l"+name)
	}
	return out
}
