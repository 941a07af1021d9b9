// Package app ties the walker, planner, review gates and executor into one
// interactive run over a library root.
package app

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/litescript/season-renamer/internal/library"
	"github.com/litescript/season-renamer/internal/plex"
	"github.com/litescript/season-renamer/internal/review"
	"github.com/litescript/season-renamer/internal/tui"
)

// App is one interactive renaming session.
type App struct {
	fs       afero.Fs
	patterns *plex.Patterns
	console  tui.Console
	view     *tui.View
	log      *slog.Logger

	gate     *review.Gate
	planner  *plex.Planner
	executor *plex.Executor
}

// New creates an App over fs. Rename paths are shown relative to the
// view's root, which is also where the walk starts.
func New(fs afero.Fs, patterns *plex.Patterns, console tui.Console, view *tui.View, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{
		fs:       fs,
		patterns: patterns,
		console:  console,
		view:     view,
		log:      log,
		gate:     review.NewGate(console, view),
		planner:  plex.NewPlanner(fs, patterns, log),
		executor: plex.NewExecutor(fs, log),
	}
}

// Run confirms the root with the operator and then reviews every season
// directory below it. It returns review.ErrQuit when the operator quits and
// a *plex.InvariantError on a fatal failure; renames already applied stay.
func (a *App) Run(ctx context.Context) error {
	root := a.view.Root()

	a.console.Refresh()
	if err := a.gate.Startup(ctx); err != nil {
		return err
	}
	a.console.Refresh()

	walker := library.NewWalker(a.fs, a.patterns, a.handleSeason)
	return walker.Walk(ctx, root)
}

func (a *App) handleSeason(ctx context.Context, dir string) error {
	plan, err := a.planner.Plan(dir)
	if err != nil {
		return err
	}

	decision, err := a.gate.Review(ctx, dir, plan)
	if err != nil {
		return err
	}
	a.log.Debug("season reviewed", "dir", dir, "entries", len(plan), "decision", decision)

	switch decision {
	case review.Approve:
		n, err := a.executor.Apply(plan)
		if err != nil {
			return err
		}
		a.log.Info("renamed episodes", "dir", dir, "count", n)
	case review.Quit:
		return review.ErrQuit
	}
	return nil
}
