package plex

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Executor applies approved plans.
type Executor struct {
	fs  afero.Fs
	log *slog.Logger
}

// NewExecutor creates an Executor renaming through fs.
func NewExecutor(fs afero.Fs, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{fs: fs, log: log}
}

// Apply renames every renameable candidate in plan order and returns how
// many renames were made. The first rejected rename stops the batch; renames
// already made stay in place.
func (e *Executor) Apply(plan Plan) (int, error) {
	applied := 0
	for _, c := range plan {
		if !c.Renameable() {
			continue
		}
		if err := e.fs.Rename(c.Original, c.Proposed); err != nil {
			return applied, &InvariantError{
				Kind:     KindRename,
				Location: "plex.Executor.Apply",
				Path:     c.Original,
				Err:      err,
			}
		}
		e.log.Debug("renamed", "from", c.Original, "to", c.Proposed)
		applied++
	}
	return applied, nil
}
