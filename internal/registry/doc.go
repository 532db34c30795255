// Package registry holds the in-memory model of everything a build
// description declares: projects, their configs, and the ordered flags,
// defines, include directories, wildcards and link references attached to
// them.
//
// The registry is populated before any build step runs and is sealed by the
// orchestrator afterwards. Declarations are idempotent lookups keyed by name:
// declaring an existing project (or a config within a project) logs a warning
// and returns the original without touching its attributes. Every "add"
// operation appends in call order, because that order becomes command-line
// argument order later on.
package registry
