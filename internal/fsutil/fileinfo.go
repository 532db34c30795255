package fsutil

import (
	"os"
	"path/filepath"
	"time"
)

// Normalize converts forward slashes in path to the host separator.
func Normalize(path string) string {
	return filepath.FromSlash(path)
}

// ModTime returns the modification time of a regular file. The second result
// is false when the path is missing or names a directory.
func ModTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// IsOlder reports whether first was modified strictly before second. It
// returns false when either path cannot be time-stamped, so a missing input
// never counts as newer on its own. Equal timestamps are not older.
func IsOlder(first, second string) bool {
	a, ok := ModTime(first)
	if !ok {
		return false
	}
	b, ok := ModTime(second)
	if !ok {
		return false
	}
	return b.After(a)
}

// FileExists reports whether path names an existing non-directory entry.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if DirExists(dir) {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
