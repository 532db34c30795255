package registry

import (
	"log/slog"
)

// Registry stores the declared projects of a single build session.
type Registry struct {
	logger   *slog.Logger
	projects []*Project
	byName   map[string]*Project
	sealed   bool
}

// New creates an empty registry. Duplicate declarations and writes after
// sealing are reported through logger.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger: logger,
		byName: make(map[string]*Project),
	}
}

// DeclareProject returns the project called name, creating it with typ if it
// does not exist yet. A repeated declaration logs a warning and returns the
// original project unchanged.
func (r *Registry) DeclareProject(name string, typ ProjectType) *Project {
	if p, ok := r.byName[name]; ok {
		r.logger.Warn("Project already exists.", "project", name)
		return p
	}

	p := &Project{Name: name, Type: typ, reg: r}
	if !r.mutable("declare project", "project", name) {
		// Detached: calls on it are harmless and never reach the build.
		return p
	}
	r.projects = append(r.projects, p)
	r.byName[name] = p
	return p
}

// Project looks up a declared project by name.
func (r *Registry) Project(name string) (*Project, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Projects returns the declared projects in declaration order.
func (r *Registry) Projects() []*Project {
	out := make([]*Project, len(r.projects))
	copy(out, r.projects)
	return out
}

// Seal makes the registry read-only. Later declarations and appends are
// ignored and logged as errors.
func (r *Registry) Seal() {
	r.sealed = true
}

func (r *Registry) log() *slog.Logger {
	if r == nil || r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// mutable reports whether a write may proceed. A nil registry backs
// standalone projects and configs, which are never sealed.
func (r *Registry) mutable(op string, args ...any) bool {
	if r == nil || !r.sealed {
		return true
	}
	r.log().Error("Registry is sealed, ignoring "+op+".", args...)
	return false
}
