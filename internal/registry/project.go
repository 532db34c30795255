package registry

import (
	"path/filepath"
	"slices"

	"github.com/specialistvlad/kiln/internal/fsutil"
)

// Project is a named, independently buildable unit. Projects normally come
// from Registry.DeclareProject; a zero Project built by hand is usable but
// belongs to no registry.
type Project struct {
	Name string
	Type ProjectType

	wildcards   []string
	includeDirs []string
	defines     []string
	flags       []string
	links       []string
	configs     []*Config

	reg *Registry
}

// AddWildcard appends a source-selection pattern. Patterns are cleaned the
// way walked paths are, so "./src/*.c" selects "src/main.c".
func (p *Project) AddWildcard(pattern string) *Project {
	if p.reg.mutable("wildcard", "project", p.Name) {
		p.wildcards = append(p.wildcards, filepath.Clean(fsutil.Normalize(pattern)))
	}
	return p
}

// AddIncludeDir appends an include directory.
func (p *Project) AddIncludeDir(dir string) *Project {
	if p.reg.mutable("include dir", "project", p.Name) {
		p.includeDirs = append(p.includeDirs, fsutil.Normalize(dir))
	}
	return p
}

// AddDefine appends a preprocessor define such as "NDEBUG" or "VERSION=2".
func (p *Project) AddDefine(define string) *Project {
	if p.reg.mutable("define", "project", p.Name) {
		p.defines = append(p.defines, define)
	}
	return p
}

// AddFlag appends a compiler flag, leading dashes included.
func (p *Project) AddFlag(flag string) *Project {
	if p.reg.mutable("flag", "project", p.Name) {
		p.flags = append(p.flags, flag)
	}
	return p
}

// AddLink appends a link reference. "m" links libm from the working
// directory; "vendor/lib/z" links libz from vendor/lib.
func (p *Project) AddLink(link string) *Project {
	if p.reg.mutable("link", "project", p.Name) {
		p.links = append(p.links, fsutil.Normalize(link))
	}
	return p
}

// DeclareConfig returns the config called name, creating it if needed. As
// with projects, a repeated declaration logs a warning and returns the
// original unchanged.
func (p *Project) DeclareConfig(name, targetDir, objDir string) *Config {
	for _, c := range p.configs {
		if c.Name == name {
			p.reg.log().Warn("Config already exists.", "project", p.Name, "config", name)
			return c
		}
	}

	c := &Config{
		Name:      name,
		TargetDir: fsutil.Normalize(targetDir),
		ObjDir:    fsutil.Normalize(objDir),
		project:   p,
	}
	if p.reg.mutable("declare config", "project", p.Name, "config", name) {
		p.configs = append(p.configs, c)
	}
	return c
}

func (p *Project) Wildcards() []string   { return slices.Clone(p.wildcards) }
func (p *Project) IncludeDirs() []string { return slices.Clone(p.includeDirs) }
func (p *Project) Defines() []string     { return slices.Clone(p.defines) }
func (p *Project) Flags() []string       { return slices.Clone(p.flags) }
func (p *Project) Links() []string       { return slices.Clone(p.links) }

// Configs returns the project's configs in declaration order.
func (p *Project) Configs() []*Config { return slices.Clone(p.configs) }

// Config is a named build variant of a project. Its flags and defines are
// layered after the project's own. A Config built by hand has no project
// and accepts writes.
type Config struct {
	Name      string
	TargetDir string
	ObjDir    string

	defines []string
	flags   []string

	project *Project
}

// AddFlag appends a config-specific compiler flag.
func (c *Config) AddFlag(flag string) *Config {
	if c.registry().mutable("config flag", "project", c.projectName(), "config", c.Name) {
		c.flags = append(c.flags, flag)
	}
	return c
}

// AddDefine appends a config-specific preprocessor define.
func (c *Config) AddDefine(define string) *Config {
	if c.registry().mutable("config define", "project", c.projectName(), "config", c.Name) {
		c.defines = append(c.defines, define)
	}
	return c
}

func (c *Config) Flags() []string   { return slices.Clone(c.flags) }
func (c *Config) Defines() []string { return slices.Clone(c.defines) }

func (c *Config) registry() *Registry {
	if c.project == nil {
		return nil
	}
	return c.project.reg
}

func (c *Config) projectName() string {
	if c.project == nil {
		return ""
	}
	return c.project.Name
}

// Project returns the owning project.
func (c *Config) Project() *Project { return c.project }
