// Package testsupport holds helpers shared by tests across packages.
package testsupport

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FailingFs wraps an afero.Fs and fails Open and Lstat for the paths
// in Fail with Err. Everything else passes through.
type FailingFs struct {
	afero.Fs
	Fail map[string]bool
	Err  error
}

// NewFailingFs wraps fs so that the given paths cannot be read.
func NewFailingFs(fs afero.Fs, err error, paths ...string) *FailingFs {
	fail := make(map[string]bool, len(paths))
	for _, p := range paths {
		fail[filepath.Clean(p)] = true
	}
	return &FailingFs{Fs: fs, Fail: fail, Err: err}
}

func (f *FailingFs) failing(name string) bool {
	return f.Fail[filepath.Clean(name)]
}

// Open fails for configured paths.
func (f *FailingFs) Open(name string) (afero.File, error) {
	if f.failing(name) {
		return nil, &os.PathError{Op: "open", Path: name, Err: f.Err}
	}
	return f.Fs.Open(name)
}

// LstatIfPossible fails for configured paths.
func (f *FailingFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if f.failing(name) {
		return nil, false, &os.PathError{Op: "lstat", Path: name, Err: f.Err}
	}
	if l, ok := f.Fs.(afero.Lstater); ok {
		return l.LstatIfPossible(name)
	}
	info, err := f.Fs.Stat(name)
	return info, false, err
}

// WriteFiles creates each file, and its parent directories, in fs.
func WriteFiles(fs afero.Fs, paths ...string) error {
	for _, p := range paths {
		if err := fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := afero.WriteFile(fs, p, []byte("x"), 0o644); err != nil {
			return err
		}
	}
	return nil
}
