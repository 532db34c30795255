package config

import (
	"errors"
	"fmt"
)

// Model is a complete build description. The struct tags define the YAML
// and JSON document layout.
type Model struct {
	Projects []ProjectSpec `yaml:"projects" json:"projects"`
}

// ProjectSpec describes one project. Type is the textual project type, see
// registry.ParseProjectType.
type ProjectSpec struct {
	Name        string       `yaml:"name" json:"name"`
	Type        string       `yaml:"type" json:"type"`
	Files       []string     `yaml:"files" json:"files"`
	IncludeDirs []string     `yaml:"include_dirs" json:"include_dirs"`
	Defines     []string     `yaml:"defines" json:"defines"`
	Flags       []string     `yaml:"flags" json:"flags"`
	Links       []string     `yaml:"links" json:"links"`
	Configs     []ConfigSpec `yaml:"configs" json:"configs"`
}

// ConfigSpec describes one config of a project.
type ConfigSpec struct {
	Name      string   `yaml:"name" json:"name"`
	TargetDir string   `yaml:"target_dir" json:"target_dir"`
	ObjDir    string   `yaml:"obj_dir" json:"obj_dir"`
	Defines   []string `yaml:"defines" json:"defines"`
	Flags     []string `yaml:"flags" json:"flags"`
}

// Validate reports every structurally missing field. Unknown project types
// are not an error here; the builder rejects them per project.
func (m *Model) Validate() error {
	var errs []error
	for i, p := range m.Projects {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("project #%d: name is required", i+1))
			continue
		}
		for j, c := range p.Configs {
			switch {
			case c.Name == "":
				errs = append(errs, fmt.Errorf("project %q: config #%d: name is required", p.Name, j+1))
			case c.TargetDir == "":
				errs = append(errs, fmt.Errorf("project %q: config %q: target_dir is required", p.Name, c.Name))
			case c.ObjDir == "":
				errs = append(errs, fmt.Errorf("project %q: config %q: obj_dir is required", p.Name, c.Name))
			}
		}
	}
	return errors.Join(errs...)
}
