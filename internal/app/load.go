package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/kiln/internal/config"
	"github.com/specialistvlad/kiln/internal/fsutil"
	"github.com/specialistvlad/kiln/internal/hcl"
	"github.com/specialistvlad/kiln/internal/jsonc"
	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/yaml"
)

// DescriptionFiles are the declarative description names the launcher looks
// for, in order of preference.
var DescriptionFiles = []string{"kiln.hcl", "kiln.yaml", "kiln.yml", "kiln.jsonc", "kiln.json"}

// LoaderFor picks the description loader matching the extension of path.
func LoaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yaml.NewLoader(), nil
	case ".json", ".jsonc":
		return jsonc.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported description format %q", filepath.Ext(path))
	}
}

// FindDescription returns the first declarative description present in dir.
func FindDescription(dir string) (string, bool) {
	for _, name := range DescriptionFiles {
		path := filepath.Join(dir, name)
		if fsutil.FileExists(path) {
			return path, true
		}
	}
	return "", false
}

// LoadDescription loads the description at path and declares it on reg.
func LoadDescription(ctx context.Context, reg *registry.Registry, path string) error {
	loader, err := LoaderFor(path)
	if err != nil {
		return err
	}
	model, err := loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load description: %w", err)
	}
	config.Populate(ctx, reg, model)
	return nil
}
