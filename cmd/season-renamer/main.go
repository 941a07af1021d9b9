// Season renamer walks the media library below the working directory and,
// with confirmation for every season folder, renames episode files to the
// S##E## convention.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/litescript/season-renamer/internal/app"
	"github.com/litescript/season-renamer/internal/config"
	"github.com/litescript/season-renamer/internal/plex"
	"github.com/litescript/season-renamer/internal/review"
	"github.com/litescript/season-renamer/internal/theme"
	"github.com/litescript/season-renamer/internal/tui"
	"github.com/litescript/season-renamer/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
	level, _ := cfg.SlogLevel()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Theme, reloaded while the session runs
	theme.Load(cfg.Display.DetectTheme)
	if cfg.Display.DetectTheme {
		if w, err := theme.NewWatcher(nil); err == nil {
			defer w.Stop()
		} else {
			log.Debug("theme watcher unavailable", "error", err)
		}
	}

	root, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot resolve working directory: %v\n", err)
		return 1
	}

	console := tui.NewConsole(os.Stdin, os.Stdout, tui.Options{ClearScreen: cfg.Display.ClearScreen})
	return session{
		fs:      afero.NewOsFs(),
		console: console,
		view:    tui.NewView(root),
		stderr:  os.Stderr,
		log:     log,
	}.run(context.Background())
}

// session is one run over an already resolved root.
type session struct {
	fs      afero.Fs
	console tui.Console
	view    *tui.View
	stderr  io.Writer
	log     *slog.Logger
}

// run returns the process exit code: 0 when the walk finishes or the
// operator quits, 1 with a diagnostic on any other failure.
func (s session) run(ctx context.Context) int {
	a := app.New(s.fs, plex.NewPatterns(), s.console, s.view, s.log)

	err := a.Run(ctx)
	switch {
	case err == nil, errors.Is(err, review.ErrQuit):
		return 0
	default:
		s.console.Refresh()
		fmt.Fprintln(s.stderr, s.view.Fatal(err, version.Version))
		return 1
	}
}
