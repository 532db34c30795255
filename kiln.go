package kiln

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/kiln/internal/app"
	"github.com/specialistvlad/kiln/internal/cli"
	"github.com/specialistvlad/kiln/internal/registry"
	"github.com/specialistvlad/kiln/internal/wildcard"
)

type (
	// Project is a named, independently buildable unit.
	Project = registry.Project
	// Config is a named build variant of a project.
	Config = registry.Config
	// ProjectType selects what a project's objects are turned into.
	ProjectType = registry.ProjectType
)

const (
	Application    = registry.Application
	StaticLibrary  = registry.StaticLibrary
	DynamicLibrary = registry.DynamicLibrary
)

// ParseProjectType maps names such as "application", "static" or "shared"
// onto a ProjectType.
func ParseProjectType(s string) (ProjectType, bool) {
	return registry.ParseProjectType(s)
}

// Match reports whether path matches a source wildcard. A single "*" stops
// at path separators; "**" crosses them.
func Match(path, pattern string) bool {
	return wildcard.Match(path, pattern)
}

// Session is the handle a describe callback declares its build through.
type Session struct {
	ctx context.Context
	reg *registry.Registry
}

// DeclareProject returns the project called name, creating it with typ on
// first use. Declaring the same name twice logs a warning and returns the
// original project.
func (s *Session) DeclareProject(name string, typ ProjectType) *Project {
	return s.reg.DeclareProject(name, typ)
}

// Project looks up a declared project.
func (s *Session) Project(name string) (*Project, bool) {
	return s.reg.Project(name)
}

// Projects returns the declared projects in declaration order.
func (s *Session) Projects() []*Project {
	return s.reg.Projects()
}

// Load declares the projects of a declarative description file. The format
// follows the extension: .hcl, .yaml/.yml or .json/.jsonc.
func (s *Session) Load(path string) error {
	return app.LoadDescription(s.ctx, s.reg, path)
}

// Context returns the session's context, which carries the build logger.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Main parses the command line, keeps the running program current with its
// build description and builds what describe declares. It returns the exit
// code for os.Exit.
func Main(describe func(*Session) error) int {
	return run(context.Background(), os.Stderr, os.Args[1:], os.Getenv, describe)
}

func run(ctx context.Context, outW io.Writer, args []string, getenv func(string) string, describe func(*Session) error, opts ...app.Option) int {
	cfg, shouldExit, err := cli.Parse(args, outW, getenv)
	if err != nil {
		fmt.Fprintln(outW, err)
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	if shouldExit {
		return 0
	}

	a := app.NewApp(outW, cfg, opts...)
	logger := a.Logger()
	if cfg.Command == app.CommandInit {
		if err := a.Init(ctx); err != nil {
			logger.Error("Init failed.", "error", err)
			return 1
		}
		return 0
	}

	handedOff, code, err := a.SelfGuard(ctx)
	if err != nil {
		logger.Error("Self-rebuild failed.", "error", err)
		return code
	}
	if handedOff {
		return code
	}

	res, err := a.Build(ctx, func(ctx context.Context, reg *registry.Registry) error {
		return describe(&Session{ctx: ctx, reg: reg})
	})
	if err != nil {
		logger.Error("Build description failed.", "error", err)
		return 1
	}
	if !res.Success {
		return 1
	}
	return 0
}
