package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// Invocation is one recorded external process call.
type Invocation struct {
	Name string
	Args []string
}

// Has reports whether the invocation carries arg.
func (i Invocation) Has(arg string) bool {
	return slices.Contains(i.Args, arg)
}

// After returns the argument that follows flag, or "" when flag is absent.
func (i Invocation) After(flag string) string {
	idx := slices.Index(i.Args, flag)
	if idx < 0 || idx+1 >= len(i.Args) {
		return ""
	}
	return i.Args[idx+1]
}

func (i Invocation) String() string {
	return strings.TrimSpace(i.Name + " " + strings.Join(i.Args, " "))
}

// FakeRunner records every process it is asked to start instead of starting
// it. By default a call succeeds and, when it carries "-o <path>" or is an
// "ar rcs <path>" archive call, writes an empty file at that path stamped
// with Clock(). Fail and Stdout override that per invocation.
type FakeRunner struct {
	mu    sync.Mutex
	calls []Invocation

	// Fail returns a non-nil error to make an invocation fail.
	Fail func(Invocation) error
	// Stdout provides the captured output for Output calls.
	Stdout func(Invocation) ([]byte, error)
	// Clock stamps produced files. Defaults to time.Now.
	Clock func() time.Time
}

// Run records the invocation and simulates its side effects.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) error {
	inv := f.record(name, args)
	if f.Fail != nil {
		if err := f.Fail(inv); err != nil {
			return err
		}
	}
	return f.produce(inv)
}

// Output records the invocation and returns the configured stdout.
func (f *FakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	inv := f.record(name, args)
	if f.Fail != nil {
		if err := f.Fail(inv); err != nil {
			return nil, err
		}
	}
	if f.Stdout == nil {
		return nil, nil
	}
	return f.Stdout(inv)
}

// Calls returns a snapshot of all recorded invocations.
func (f *FakeRunner) Calls() []Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// Matching returns the recorded invocations for which keep is true.
func (f *FakeRunner) Matching(keep func(Invocation) bool) []Invocation {
	var out []Invocation
	for _, c := range f.Calls() {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets all recorded invocations.
func (f *FakeRunner) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *FakeRunner) record(name string, args []string) Invocation {
	inv := Invocation{Name: name, Args: slices.Clone(args)}
	f.mu.Lock()
	f.calls = append(f.calls, inv)
	f.mu.Unlock()
	return inv
}

func (f *FakeRunner) produce(inv Invocation) error {
	out := inv.After("-o")
	if out == "" && len(inv.Args) >= 2 && inv.Args[0] == "rcs" {
		out = inv.Args[1]
	}
	if out == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("fake runner: %w", err)
	}
	if err := os.WriteFile(out, nil, 0o644); err != nil {
		return fmt.Errorf("fake runner: %w", err)
	}
	now := time.Now()
	if f.Clock != nil {
		now = f.Clock()
	}
	return os.Chtimes(out, now, now)
}

// IsCompile reports whether inv is a compile-only invocation.
func IsCompile(inv Invocation) bool { return inv.Has("-c") }

// IsDependencyListing reports whether inv asks the compiler for
// dependencies.
func IsDependencyListing(inv Invocation) bool { return inv.Has("-MM") }
