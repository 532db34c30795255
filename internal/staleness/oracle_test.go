package staleness

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/testutil"
	"github.com/specialistvlad/kiln/internal/toolchain"
	"github.com/stretchr/testify/require"
)

type fakeDeps struct {
	deps  []string
	err   error
	calls int
}

func (f *fakeDeps) Dependencies(context.Context, *registry.Project, string) ([]string, error) {
	f.calls++
	return f.deps, f.err
}

type fixture struct {
	dir     string
	project *registry.Project
	config  *registry.Config
	source  string
	object  string
	header  string
	exe     string
	base    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger, _ := testutil.NewLogger(t)
	dir := t.TempDir()
	reg := registry.New(logger)
	p := reg.DeclareProject("app", registry.Application)
	cfg := p.DeclareConfig("debug", filepath.Join(dir, "bin"), filepath.Join(dir, "obj"))

	f := &fixture{
		dir:     dir,
		project: p,
		config:  cfg,
		source:  filepath.Join(dir, "src", "main.c"),
		object:  filepath.Join(dir, "obj", "main.o"),
		header:  filepath.Join(dir, "src", "util.h"),
		exe:     filepath.Join(dir, "tool"),
		base:    time.Now().Add(-time.Hour),
	}
	testutil.WriteFile(t, f.exe, "", f.base)
	testutil.WriteFile(t, f.source, "int main(void){return 0;}", f.base)
	testutil.WriteFile(t, f.header, "", f.base)
	testutil.WriteFile(t, f.object, "", f.base.Add(time.Minute))
	return f
}

func (f *fixture) oracle(deps toolchain.DependencyResolver) *Oracle {
	tc := toolchain.New("cc", "ar", nil)
	return New(tc, deps, f.exe)
}

func TestAlreadyCompiled_UpToDate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	deps := &fakeDeps{deps: []string{f.source, f.header}}

	require.True(t, f.oracle(deps).AlreadyCompiled(context.Background(), f.project, f.config, f.source))
	require.Equal(t, 1, deps.calls, "exactly one dependency listing per source")
}

func TestAlreadyCompiled_MissingObject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	deps := &fakeDeps{deps: []string{f.source}}

	other := filepath.Join(f.dir, "src", "other.c")
	testutil.WriteFile(t, other, "", f.base)

	require.False(t, f.oracle(deps).AlreadyCompiled(context.Background(), f.project, f.config, other))
	require.Zero(t, deps.calls, "no listing is needed when the object is missing")
}

func TestAlreadyCompiled_ToolNewerThanObject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	testutil.SetModTime(t, f.exe, f.base.Add(2*time.Minute))

	require.False(t, f.oracle(&fakeDeps{}).AlreadyCompiled(context.Background(), f.project, f.config, f.source))
}

func TestAlreadyCompiled_ToolCheckSkippedWithoutExecutable(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	testutil.SetModTime(t, f.exe, f.base.Add(2*time.Minute))

	o := New(toolchain.New("cc", "ar", nil), &fakeDeps{deps: []string{f.source}}, "")
	require.True(t, o.AlreadyCompiled(context.Background(), f.project, f.config, f.source))
}

func TestAlreadyCompiled_DependencyNewer(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	testutil.SetModTime(t, f.header, f.base.Add(2*time.Minute))

	deps := &fakeDeps{deps: []string{f.source, f.header}}
	require.False(t, f.oracle(deps).AlreadyCompiled(context.Background(), f.project, f.config, f.source))
}

func TestAlreadyCompiled_EqualTimestampIsFresh(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	testutil.SetModTime(t, f.header, f.base.Add(time.Minute))

	deps := &fakeDeps{deps: []string{f.header}}
	require.True(t, f.oracle(deps).AlreadyCompiled(context.Background(), f.project, f.config, f.source))
}

func TestAlreadyCompiled_UnstampableDependencyIgnored(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	deps := &fakeDeps{deps: []string{filepath.Join(f.dir, "gone.h"), f.dir}}
	require.True(t, f.oracle(deps).AlreadyCompiled(context.Background(), f.project, f.config, f.source))
}

func TestAlreadyCompiled_ListingFailureForcesRebuild(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	deps := &fakeDeps{err: errors.New("compiler not found")}
	require.False(t, f.oracle(deps).AlreadyCompiled(context.Background(), f.project, f.config, f.source))

	deps = &fakeDeps{err: toolchain.ErrNoOutput}
	require.False(t, f.oracle(deps).AlreadyCompiled(context.Background(), f.project, f.config, f.source))
}

func TestAlreadyCompiled_WithCompilerListing(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	runner := &testutil.FakeRunner{
		Stdout: func(testutil.Invocation) ([]byte, error) {
			return []byte("main.o: " + f.source + " " + f.header + "\n"), nil
		},
	}
	tc := toolchain.New("cc", "ar", runner)
	o := New(tc, tc, f.exe)

	require.True(t, o.AlreadyCompiled(context.Background(), f.project, f.config, f.source))
	testutil.SetModTime(t, f.header, f.base.Add(5*time.Minute))
	require.False(t, o.AlreadyCompiled(context.Background(), f.project, f.config, f.source))

	listings := runner.Matching(testutil.IsDependencyListing)
	require.Len(t, listings, 2)
}
