package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/kiln/internal/app"
	"github.com/specialistvlad/kiln/internal/cli"
)

// main is the entrypoint for the kiln launcher.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	code, err := run(context.Background(), os.Stderr, os.Args[1:], os.Getenv)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

// run encapsulates the launcher logic for easier testing and error handling.
// It returns the process exit code.
func run(ctx context.Context, outW io.Writer, args []string, getenv func(string) string, opts ...app.Option) (int, error) {
	cfg, shouldExit, err := cli.Parse(args, outW, getenv)
	if err != nil {
		return 2, err
	}
	if shouldExit {
		return 0, nil
	}

	kiln := app.NewApp(outW, cfg, opts...)
	if cfg.Command == app.CommandInit {
		if err := kiln.Init(ctx); err != nil {
			return 1, err
		}
		return 0, nil
	}
	return kiln.Launch(ctx)
}
