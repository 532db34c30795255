// Package fsutil provides the file system primitives the build engine relies
// on: directory listings, modification-time comparisons and on-demand
// directory creation.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// ListFiles returns the immediate file entries of dir, joined with dir.
// Subdirectories are skipped. An unreadable or missing directory yields an
// empty result rather than an error.
func ListFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files
}

// ListFilesRecursive walks dir depth-first and returns every non-directory
// descendant. The order follows file system enumeration and callers must not
// rely on it. Subtrees that cannot be read are skipped.
func ListFilesRecursive(dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry; keep walking its siblings.
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files
}
