// Package library walks a media library looking for season folders.
package library

import (
	"context"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/litescript/season-renamer/internal/fileutil"
	"github.com/litescript/season-renamer/internal/plex"
)

// VisitFunc is called once for every season directory found. A non-nil
// error stops the walk and is returned from Walk unchanged.
type VisitFunc func(ctx context.Context, seasonDir string) error

// Walker visits a tree depth first in byte order and stops descending at
// season directories.
type Walker struct {
	fs       afero.Fs
	patterns *plex.Patterns
	visit    VisitFunc
}

// NewWalker creates a Walker reading from fs.
func NewWalker(fs afero.Fs, patterns *plex.Patterns, visit VisitFunc) *Walker {
	return &Walker{fs: fs, patterns: patterns, visit: visit}
}

// Walk visits root and everything below it. Directories that cannot be
// listed are skipped silently along with their subtree.
func (w *Walker) Walk(ctx context.Context, root string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	isDir := fileutil.IsDir(w.fs, root)

	// Paths that are not valid text are never season directories, but
	// their subtrees are still walked.
	if utf8.ValidString(root) && w.patterns.IsSeasonPath(root) {
		if !isDir {
			return nil
		}
		return w.visit(ctx, root)
	}

	if !isDir {
		return nil
	}

	children, err := fileutil.SortedChildren(w.fs, root)
	if err != nil {
		return nil
	}
	for _, child := range children {
		if err := w.Walk(ctx, child); err != nil {
			return err
		}
	}
	return nil
}
