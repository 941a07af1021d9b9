// Package fileutil holds small filesystem helpers shared by the walker and
// the planner. Everything goes through afero so tests can run in memory.
package fileutil

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// ReadDirNames returns the entry names of dir. A listing that fails part
// way returns the names read so far with a nil error; only a directory
// that cannot be opened or read at all is an error.
func ReadDirNames(fs afero.Fs, dir string) ([]string, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil && len(names) == 0 {
		return nil, err
	}
	return names, nil
}

// SortedChildren returns the full paths of dir's entries in byte order.
func SortedChildren(fs afero.Fs, dir string) ([]string, error) {
	names, err := ReadDirNames(fs, dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// Lstat stats path without following a final symlink when fs supports it.
func Lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

// IsDir reports whether path is a directory, following symlinks. Any stat
// failure reports false.
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
