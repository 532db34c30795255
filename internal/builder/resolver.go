package builder

import (
	"context"
	"path/filepath"

	"github.com/specialistvlad/kiln/internal/ctxlog"
	"github.com/specialistvlad/kiln/internal/fsutil"
	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/wildcard"
)

// ResolveProjectSources walks root recursively and returns the files that
// match at least one of the project's wildcards. Paths are relative to root
// when root is ".", so a pattern such as "src/*.c" matches "src/main.c".
// Each file is visited once and the result follows the walk order.
func ResolveProjectSources(ctx context.Context, root string, p *registry.Project) []string {
	patterns := p.Wildcards()
	if len(patterns) == 0 {
		return nil
	}

	var sources []string
	for _, path := range fsutil.ListFilesRecursive(root) {
		path = filepath.Clean(path)
		if wildcard.MatchAny(path, patterns) {
			sources = append(sources, path)
		}
	}

	ctxlog.FromContext(ctx).Debug("Resolved project sources.",
		"project", p.Name,
		"patterns", patterns,
		"count", len(sources),
	)
	return sources
}
