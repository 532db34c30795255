//go:build windows

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/windows"
)

type windowsPlatform struct{}

// Host returns the platform implementation for the running OS.
func Host() Platform { return windowsPlatform{} }

func (windowsPlatform) Stage(from, to string) error {
	src, err := windows.UTF16PtrFromString(from)
	if err != nil {
		return err
	}
	dst, err := windows.UTF16PtrFromString(to)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(src, dst, windows.MOVEFILE_REPLACE_EXISTING)
}

const discardScript = `@echo off
:retry
del /f /q "%[1]s" >nul 2>&1
if exist "%[1]s" (
  timeout /t 1 /nobreak >nul
  goto retry
)
del "%%~f0"
`

// Discard deletes path if nothing holds it open. Otherwise a detached batch
// helper polls until the file can be removed and then deletes itself.
func (windowsPlatform) Discard(path string) error {
	if err := os.Remove(path); err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	script := abs + ".del.bat"
	if err := os.WriteFile(script, fmt.Appendf(nil, discardScript, abs), 0o644); err != nil {
		return fmt.Errorf("failed to write cleanup helper: %w", err)
	}

	cmd := exec.Command("cmd.exe", "/C", script)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start cleanup helper: %w", err)
	}
	return cmd.Process.Release()
}

// Relaunch runs exe to completion with the current stdio and reports its
// exit code.
func (windowsPlatform) Relaunch(ctx context.Context, exe string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, err
	}
	return 0, nil
}
