package registry

import "strings"

// ProjectType selects what a project's object files are turned into.
type ProjectType uint8

const (
	Application ProjectType = iota
	StaticLibrary
	DynamicLibrary

	projectTypeCount
)

// InvalidProjectType marks a project whose declared type was not understood.
// Such projects stay in the registry so the orchestrator can report them.
const InvalidProjectType ProjectType = 0xff

// Valid reports whether t is one of the known project types.
func (t ProjectType) Valid() bool {
	return t < projectTypeCount
}

func (t ProjectType) String() string {
	switch t {
	case Application:
		return "application"
	case StaticLibrary:
		return "static_library"
	case DynamicLibrary:
		return "dynamic_library"
	default:
		return "invalid"
	}
}

// ParseProjectType maps a textual type, as written in declarative
// descriptions, onto a ProjectType. Unknown names yield InvalidProjectType
// and false.
func ParseProjectType(s string) (ProjectType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "application", "app", "executable":
		return Application, true
	case "static_library", "static", "staticlib":
		return StaticLibrary, true
	case "dynamic_library", "dynamic", "shared", "dynamiclib":
		return DynamicLibrary, true
	default:
		return InvalidProjectType, false
	}
}
