//go:build !windows

package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

type unixPlatform struct{}

// Host returns the platform implementation for the running OS.
func Host() Platform { return unixPlatform{} }

func (unixPlatform) Stage(from, to string) error {
	return os.Rename(from, to)
}

// Discard unlinks path right away; a running binary keeps its inode.
func (unixPlatform) Discard(path string) error {
	err := unix.Unlink(path)
	if errors.Is(err, unix.ENOENT) {
		return nil
	}
	return err
}

// Relaunch replaces the process image and only returns on failure.
func (unixPlatform) Relaunch(_ context.Context, exe string, args []string) (int, error) {
	abs, err := filepath.Abs(exe)
	if err != nil {
		return 1, err
	}
	argv := append([]string{abs}, args...)
	if err := unix.Exec(abs, argv, os.Environ()); err != nil {
		return 1, err
	}
	return 0, nil
}
