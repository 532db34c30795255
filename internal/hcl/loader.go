package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/kiln/internal/config"
	"github.com/specialistvlad/kiln/internal/ctxlog"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses and evaluates the HCL file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx, err := newEvalContext()
	if err != nil {
		return nil, fmt.Errorf("failed to build HCL evaluation context: %w", err)
	}

	var root file
	if diags := gohcl.DecodeBody(f.Body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := translate(&root)
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid description %s: %w", path, err)
	}
	logger.Debug("HCL loading complete.", "projects", len(model.Projects))
	return model, nil
}

func translate(root *file) *config.Model {
	m := &config.Model{}
	for _, p := range root.Projects {
		ps := config.ProjectSpec{
			Name:        p.Name,
			Type:        p.Type,
			Files:       p.Files,
			IncludeDirs: p.IncludeDirs,
			Defines:     p.Defines,
			Flags:       p.Flags,
			Links:       p.Links,
		}
		for _, c := range p.Configs {
			ps.Configs = append(ps.Configs, config.ConfigSpec{
				Name:      c.Name,
				TargetDir: c.TargetDir,
				ObjDir:    c.ObjDir,
				Defines:   c.Defines,
				Flags:     c.Flags,
			})
		}
		m.Projects = append(m.Projects, ps)
	}
	return m
}
