package config

import (
	"context"

	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/registry"
)

// Loader reads a description file of one format into a Model.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}

// Populate declares every project and config of m on reg, in order.
func Populate(ctx context.Context, reg *registry.Registry, m *Model) {
	logger := ctxlog.FromContext(ctx)
	for _, ps := range m.Projects {
		typ, ok := registry.ParseProjectType(ps.Type)
		if !ok {
			logger.Warn("Unknown project type.", "project", ps.Name, "type", ps.Type)
			typ = registry.InvalidProjectType
		}

		p := reg.DeclareProject(ps.Name, typ)
		for _, v := range ps.Files {
			p.AddWildcard(v)
		}
		for _, v := range ps.IncludeDirs {
			p.AddIncludeDir(v)
		}
		for _, v := range ps.Defines {
			p.AddDefine(v)
		}
		for _, v := range ps.Flags {
			p.AddFlag(v)
		}
		for _, v := range ps.Links {
			p.AddLink(v)
		}

		for _, cs := range ps.Configs {
			c := p.DeclareConfig(cs.Name, cs.TargetDir, cs.ObjDir)
			for _, v := range cs.Flags {
				c.AddFlag(v)
			}
			for _, v := range cs.Defines {
				c.AddDefine(v)
			}
		}
	}
	logger.Debug("Populated registry from description.", "projects", len(m.Projects))
}
