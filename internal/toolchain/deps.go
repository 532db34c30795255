package toolchain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/specialistvlad/kiln/internal/fsutil"
	"github.com/specialistvlad/kiln/internal/registry"
)

// ErrNoOutput is returned when a dependency listing produced nothing usable.
var ErrNoOutput = errors.New("dependency listing produced no output")

// DependencyResolver lists the files a source depends on.
type DependencyResolver interface {
	Dependencies(ctx context.Context, p *registry.Project, source string) ([]string, error)
}

// Dependencies implements DependencyResolver by running the compiler in
// dependency-listing mode with the project's include directories.
func (t *Toolchain) Dependencies(ctx context.Context, p *registry.Project, source string) ([]string, error) {
	out, err := t.Runner.Output(ctx, t.Compiler, t.DependencyArgs(p, source)...)
	if err != nil {
		return nil, err
	}
	return ParseDependencyListing(out)
}

// ParseDependencyListing reads the first line of a make-style listing such
// as "main.o: main.c util.h", drops the leading target token and returns the
// remaining tokens as host-separated paths.
func ParseDependencyListing(out []byte) ([]string, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	if !sc.Scan() {
		return nil, ErrNoOutput
	}

	fields := strings.Fields(sc.Text())
	if len(fields) == 0 {
		return nil, ErrNoOutput
	}

	deps := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		deps = append(deps, fsutil.Normalize(f))
	}
	return deps, nil
}
