package hcl

// file is the root of a description file.
type file struct {
	Projects []*projectBlock `hcl:"project,block"`
}

type projectBlock struct {
	Name        string         `hcl:"name,label"`
	Type        string         `hcl:"type"`
	Files       []string       `hcl:"files,optional"`
	IncludeDirs []string       `hcl:"include_dirs,optional"`
	Defines     []string       `hcl:"defines,optional"`
	Flags       []string       `hcl:"flags,optional"`
	Links       []string       `hcl:"links,optional"`
	Configs     []*configBlock `hcl:"config,block"`
}

type configBlock struct {
	Name      string   `hcl:"name,label"`
	TargetDir string   `hcl:"target_dir"`
	ObjDir    string   `hcl:"obj_dir"`
	Defines   []string `hcl:"defines,optional"`
	Flags     []string `hcl:"flags,optional"`
}
