package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/specialistvlad/kiln/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `kiln - an incremental build engine for C projects.

Usage:
  kiln [options]          build the projects of the current directory
  kiln [options] init     create kiln/build.go from a template

Environment:
  KILN_CC           C compiler (default gcc)
  KILN_AR           archiver (default ar)
  KILN_GO           Go toolchain used to rebuild the description (default go)
  KILN_BUILD_FILE   build description (default kiln/build.go)
  KILN_CACHE_DIR    tool cache directory (default .kiln)
  KILN_LOG_LEVEL    same as --log-level
  KILN_LOG_FORMAT   same as --log-format

Options:
`

// Parse processes command-line arguments on top of the environment. It
// returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, getenv func(string) string) (*app.Config, bool, error) {
	cfg := app.DefaultConfig()
	cfg.ApplyEnv(getenv)
	cfg.Args = args

	flagSet := pflag.NewFlagSet("kiln", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logging level: debug, info, warn or error")
	flagSet.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log output format: text, json or auto")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	switch rest := flagSet.Args(); len(rest) {
	case 0:
		cfg.Command = app.CommandBuild
	case 1:
		if rest[0] != app.CommandInit {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q, expected no arguments or 'init'", rest[0])}
		}
		cfg.Command = app.CommandInit
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", rest)}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
