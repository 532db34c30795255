package builder

import "time"

// Result is the outcome of a whole build.
type Result struct {
	Success  bool
	Duration time.Duration
	Projects []ProjectResult
}

// ProjectResult is the outcome of one project.
type ProjectResult struct {
	Name    string
	Success bool
	// Skipped is set when the project had no configs or no sources.
	Skipped  bool
	Duration time.Duration
	Configs  []ConfigResult
}

// ConfigResult is the outcome of one config of a project.
type ConfigResult struct {
	Name    string
	Success bool
	// Compiled counts the sources handed to the compiler in this run.
	Compiled int
	Duration time.Duration
}

// Project returns the result for the named project.
func (r Result) Project(name string) (ProjectResult, bool) {
	for _, p := range r.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return ProjectResult{}, false
}

// Compiled is the number of sources compiled across all projects.
func (r Result) Compiled() int {
	n := 0
	for _, p := range r.Projects {
		for _, c := range p.Configs {
			n += c.Compiled
		}
	}
	return n
}
