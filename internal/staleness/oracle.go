// Package staleness decides whether a source file must be recompiled.
//
// A source is already compiled for a config when its object artifact exists,
// is not older than the running build tool's executable, and is not older
// than any dependency the compiler reports for the source. Every question is
// answered from the file system on every build; nothing is cached between
// sources or between runs.
package staleness

import (
	"context"

	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/fsutil"
	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/toolchain"
)

// ObjectNamer maps a source to its deterministic object artifact.
type ObjectNamer interface {
	ObjectPath(cfg *registry.Config, source string) string
}

// Oracle answers staleness questions for one build session.
type Oracle struct {
	objects ObjectNamer
	deps    toolchain.DependencyResolver
	// executable is the running build tool. Objects older than it were
	// produced by a superseded version of the tool. Empty disables the check.
	executable string
}

// New creates an Oracle. executable may be empty when the running binary
// cannot be located.
func New(objects ObjectNamer, deps toolchain.DependencyResolver, executable string) *Oracle {
	return &Oracle{objects: objects, deps: deps, executable: executable}
}

// AlreadyCompiled reports whether source has an up-to-date object artifact
// under cfg. Any doubt resolves to false: a spurious rebuild is preferred
// over keeping a stale object.
func (o *Oracle) AlreadyCompiled(ctx context.Context, p *registry.Project, cfg *registry.Config, source string) bool {
	fresh, reason := o.check(ctx, p, cfg, source)
	if !fresh {
		ctxlog.FromContext(ctx).Debug("Source needs compiling.", "source", source, "reason", reason)
	}
	return fresh
}

func (o *Oracle) check(ctx context.Context, p *registry.Project, cfg *registry.Config, source string) (bool, string) {
	obj := o.objects.ObjectPath(cfg, source)
	if !fsutil.FileExists(obj) {
		return false, "object missing"
	}

	if o.executable != "" && fsutil.IsOlder(obj, o.executable) {
		return false, "object older than build tool"
	}

	deps, err := o.deps.Dependencies(ctx, p, source)
	if err != nil {
		return false, "dependency listing failed: " + err.Error()
	}
	for _, dep := range deps {
		if fsutil.IsOlder(obj, dep) {
			return false, "dependency changed: " + dep
		}
	}
	return true, ""
}
