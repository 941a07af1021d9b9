package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/season-renamer/internal/plex"
	"github.com/litescript/season-renamer/internal/review"
	"github.com/litescript/season-renamer/internal/testsupport"
	"github.com/litescript/season-renamer/internal/tui"
)

func libraryFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := []string{
		"/lib/A Show/Season 1/1x01.mkv",
		"/lib/A Show/Season 1/1x02.mkv",
		"/lib/A Show/Season 1/S01E03.mkv",
		"/lib/B Show/Season 1/01 - 01.mkv",
		"/lib/B Show/Season 1/pilot.mkv",
		"/lib/C Show/Season 2/2x01.mkv",
		"/lib/D Show/Season 1/S01E01.mkv",
	}
	for _, f := range files {
		require.NoError(t, fs.MkdirAll(f[:strings.LastIndex(f, "/")], 0o755))
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0o644))
	}
	return fs
}

func run(t *testing.T, fs afero.Fs, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	console := tui.NewLineConsole(strings.NewReader(input), &out)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(fs, plex.NewPatterns(), console, tui.NewPlainView("/lib"), log)
	err := a.Run(context.Background())
	return out.String(), err
}

func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return ok
}

func TestRunApprovesAndRejects(t *testing.T) {
	fs := libraryFs(t)

	out, err := run(t, fs, "yes\ny\nn\ny\n")
	require.NoError(t, err)

	assert.True(t, exists(t, fs, "/lib/A Show/Season 1/S01E01.mkv"))
	assert.True(t, exists(t, fs, "/lib/A Show/Season 1/S01E02.mkv"))
	assert.True(t, exists(t, fs, "/lib/A Show/Season 1/S01E03.mkv"))

	assert.True(t, exists(t, fs, "/lib/B Show/Season 1/01 - 01.mkv"))
	assert.False(t, exists(t, fs, "/lib/B Show/Season 1/S01E01.mkv"))

	assert.True(t, exists(t, fs, "/lib/C Show/Season 2/S02E01.mkv"))

	assert.Equal(t, 3, strings.Count(out, tui.Question))
	assert.Contains(t, out, `"/lib/B Show/Season 1/pilot.mkv"`)
	assert.NotContains(t, out, `inside of "/lib/D Show/Season 1"`)
}

func TestRunQuitLeavesLaterDirectoriesAlone(t *testing.T) {
	fs := libraryFs(t)

	_, err := run(t, fs, "yes\ny\nq\n")
	require.ErrorIs(t, err, review.ErrQuit)

	assert.True(t, exists(t, fs, "/lib/A Show/Season 1/S01E01.mkv"))
	assert.True(t, exists(t, fs, "/lib/B Show/Season 1/01 - 01.mkv"))
	assert.True(t, exists(t, fs, "/lib/C Show/Season 2/2x01.mkv"))
}

func TestRunQuitAtStartup(t *testing.T) {
	fs := libraryFs(t)

	out, err := run(t, fs, "quit\n")
	require.ErrorIs(t, err, review.ErrQuit)
	assert.NotContains(t, out, "inside of")
	assert.True(t, exists(t, fs, "/lib/A Show/Season 1/1x01.mkv"))
}

func TestRunSecondPassIsIdempotent(t *testing.T) {
	fs := libraryFs(t)
	_, err := run(t, fs, "yes\ny\ny\ny\n")
	require.NoError(t, err)

	out, err := run(t, fs, "yes\n")
	require.NoError(t, err)
	assert.NotContains(t, out, tui.Question)
	assert.Contains(t, out, `"/lib/B Show/Season 1/pilot.mkv"`)
}

func TestRunRenameFailureIsFatal(t *testing.T) {
	fs := libraryFs(t)
	ro := afero.NewReadOnlyFs(fs)

	var out bytes.Buffer
	console := tui.NewLineConsole(strings.NewReader("yes\ny\n"), &out)
	a := New(ro, plex.NewPatterns(), console, tui.NewPlainView("/lib"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := a.Run(context.Background())
	ie, ok := plex.AsInvariant(err)
	require.True(t, ok)
	assert.Equal(t, plex.KindRename, ie.Kind)
	assert.Equal(t, "/lib/A Show/Season 1/1x01.mkv", ie.Path)
}

func TestRunInvalidTextDirectoryDoesNotStopWalk(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, testsupport.WriteFiles(fs,
		"/lib/Caf\xe9/Season 1/1x01.mkv",
		"/lib/Z Show/Season 1/1x01.mkv",
	))

	_, err := run(t, fs, "yes\ny\n")
	require.NoError(t, err)

	assert.True(t, exists(t, fs, "/lib/Caf\xe9/Season 1/1x01.mkv"))
	assert.True(t, exists(t, fs, "/lib/Z Show/Season 1/S01E01.mkv"))
}
