package toolchain

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/testutil"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T) (*registry.Project, *registry.Config) {
	t.Helper()
	logger, _ := testutil.NewLogger(t)
	reg := registry.New(logger)
	p := reg.DeclareProject("app", registry.Application).
		AddIncludeDir("include").
		AddIncludeDir("third_party/inc").
		AddFlag("-Wall").
		AddDefine("VERSION=2").
		AddLink("m").
		AddLink("vendor/lib/z")
	cfg := p.DeclareConfig("debug", "bin/debug", "obj/debug").
		AddFlag("-g").
		AddDefine("DEBUG")
	return p, cfg
}

func linuxToolchain(runner Runner) *Toolchain {
	return &Toolchain{
		Compiler:    "cc",
		Archiver:    "ar",
		Conventions: ConventionsFor("linux"),
		Runner:      runner,
	}
}

func TestObjectPath(t *testing.T) {
	t.Parallel()
	_, cfg := newProject(t)
	tc := linuxToolchain(nil)

	require.Equal(t, filepath.Join("obj", "debug", "main.o"), tc.ObjectPath(cfg, filepath.Join("src", "main.c")))
	require.Equal(t, filepath.Join("obj", "debug", "archive.tar.o"), tc.ObjectPath(cfg, "archive.tar.gz"))
	require.Equal(t, filepath.Join("obj", "debug", "Makefile.o"), tc.ObjectPath(cfg, "Makefile"))
	require.Equal(t, "*.o", tc.ObjectPattern())
}

func TestCompileArgs_Order(t *testing.T) {
	t.Parallel()
	p, cfg := newProject(t)
	tc := linuxToolchain(nil)

	src := filepath.Join("src", "main.c")
	want := []string{
		"-Iinclude", "-I" + filepath.Join("third_party", "inc"),
		"-Wall", "-g",
		"-DVERSION=2", "-DDEBUG",
		"-c", "-o", filepath.Join("obj", "debug", "main.o"), src,
	}
	if diff := cmp.Diff(want, tc.CompileArgs(p, cfg, src)); diff != "" {
		t.Errorf("CompileArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestLinkArgs(t *testing.T) {
	t.Parallel()
	p, cfg := newProject(t)
	tc := linuxToolchain(nil)

	objs := []string{filepath.Join("obj", "debug", "a.o"), filepath.Join("obj", "debug", "b.o")}
	want := []string{
		"-Iinclude", "-I" + filepath.Join("third_party", "inc"),
		"-Wall", "-g",
		"-o", filepath.Join("bin", "debug", "app"),
		objs[0], objs[1],
		"-L.", "-lm",
		"-L" + filepath.Join("vendor", "lib"), "-lz",
	}
	if diff := cmp.Diff(want, tc.LinkArgs(p, cfg, objs)); diff != "" {
		t.Errorf("LinkArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestArchiveAndSharedArgs(t *testing.T) {
	t.Parallel()
	p, cfg := newProject(t)
	tc := linuxToolchain(nil)
	objs := []string{"a.o"}

	require.Equal(t, []string{"rcs", filepath.Join("bin", "debug", "libapp.a"), "a.o"}, tc.ArchiveArgs(p, cfg, objs))
	require.Equal(t,
		[]string{"-shared", "-Wall", "-g", "-o", filepath.Join("bin", "debug", "app.so"), "a.o"},
		tc.SharedArgs(p, cfg, objs))

	win := &Toolchain{Compiler: "cc", Archiver: "ar", Conventions: ConventionsFor("windows")}
	require.Equal(t, filepath.Join("bin", "debug", "app.lib"), win.StaticLibPath(p, cfg))
	require.Equal(t, filepath.Join("bin", "debug", "app.dll"), win.DynamicLibPath(p, cfg))
	require.Equal(t, filepath.Join("bin", "debug", "app.exe"), win.ExecutablePath(p, cfg))
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	tc := New("", "", nil)
	require.Equal(t, DefaultCompiler, tc.Compiler)
	require.Equal(t, DefaultArchiver, tc.Archiver)
	require.Equal(t, "o", tc.ObjectExt)

	tc = New("clang", "llvm-ar", nil)
	require.Equal(t, "clang", tc.Compiler)
	require.Equal(t, "llvm-ar", tc.Archiver)
}

func TestParseDependencyListing(t *testing.T) {
	t.Parallel()

	deps, err := ParseDependencyListing([]byte("main.o: src/main.c include/util.h\n"))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join("src", "main.c"), filepath.Join("include", "util.h")}, deps)

	deps, err = ParseDependencyListing([]byte("main.o: main.c a.h \\\n  b.h\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"main.c", "a.h", "\\"}, deps, "only the first line is read")

	_, err = ParseDependencyListing(nil)
	require.ErrorIs(t, err, ErrNoOutput)

	_, err = ParseDependencyListing([]byte("   \n"))
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestDependencies_UsesCompilerListing(t *testing.T) {
	t.Parallel()
	p, _ := newProject(t)

	runner := &testutil.FakeRunner{
		Stdout: func(testutil.Invocation) ([]byte, error) {
			return []byte("main.o: main.c util.h"), nil
		},
	}
	tc := linuxToolchain(runner)

	deps, err := tc.Dependencies(context.Background(), p, "main.c")
	require.NoError(t, err)
	require.Equal(t, []string{"main.c", "util.h"}, deps)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "cc", calls[0].Name)
	require.Equal(t, []string{"-Iinclude", "-I" + filepath.Join("third_party", "inc"), "-MM", "main.c"}, calls[0].Args)

	runner.Fail = func(testutil.Invocation) error { return errors.New("boom") }
	_, err = tc.Dependencies(context.Background(), p, "main.c")
	require.Error(t, err)
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	t.Parallel()

	var stdout bytes.Buffer
	r := NewExecRunner(&stdout, &stdout)

	require.NoError(t, r.Run(context.Background(), "sh", "-c", "echo hello"))
	require.Contains(t, stdout.String(), "hello")

	err := r.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "command sh failed")

	out, err := r.Output(context.Background(), "sh", "-c", "printf 'x.o: x.c'")
	require.NoError(t, err)
	require.Equal(t, "x.o: x.c", string(out))

	require.Error(t, r.Run(context.Background(), "kiln-definitely-not-a-real-binary"))
}
