package plex

import (
	"log/slog"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/litescript/season-renamer/internal/fileutil"
)

// Candidate is one entry considered for renaming. Proposed is empty when no
// season and episode number could be read from the name.
type Candidate struct {
	Original string
	Proposed string
}

// Renameable reports whether a target path was derived for the entry.
func (c Candidate) Renameable() bool {
	return c.Proposed != ""
}

// Plan is the set of candidates for one season directory, ordered by
// original path.
type Plan []Candidate

// Sort orders the plan by original path, byte-wise.
func (p Plan) Sort() {
	sort.Slice(p, func(i, j int) bool { return p[i].Original < p[j].Original })
}

// Failed returns the candidates without a proposed path.
func (p Plan) Failed() []Candidate {
	var out []Candidate
	for _, c := range p {
		if !c.Renameable() {
			out = append(out, c)
		}
	}
	return out
}

// Renames returns the candidates with a proposed path.
func (p Plan) Renames() []Candidate {
	var out []Candidate
	for _, c := range p {
		if c.Renameable() {
			out = append(out, c)
		}
	}
	return out
}

// Empty reports whether the plan has nothing to show.
func (p Plan) Empty() bool {
	return len(p) == 0
}

// Planner builds rename plans for season directories.
type Planner struct {
	fs       afero.Fs
	patterns *Patterns
	log      *slog.Logger
}

// NewPlanner creates a Planner reading from fs.
func NewPlanner(fs afero.Fs, patterns *Patterns, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	return &Planner{fs: fs, patterns: patterns, log: log}
}

// Plan lists the direct entries of dir and classifies each one. Entries
// already carrying an S##E## marker are left out. A directory that cannot
// be listed yields an empty plan and a warning.
func (p *Planner) Plan(dir string) (Plan, error) {
	names, err := fileutil.ReadDirNames(p.fs, dir)
	if err != nil {
		p.log.Warn("cannot list season directory", "dir", dir, "error", err)
		return nil, nil
	}

	var plan Plan
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := fileutil.Lstat(p.fs, path); err != nil {
			p.log.Warn("skipping unreadable entry", "path", path, "error", err)
			continue
		}

		c, keep, err := p.classify(path)
		if err != nil {
			return nil, err
		}
		if keep {
			plan = append(plan, c)
		}
	}

	plan.Sort()
	return plan, nil
}

// classify derives the candidate for path. keep is false when the name is
// already canonical.
func (p *Planner) classify(path string) (c Candidate, keep bool, err error) {
	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		return Candidate{}, false, &InvariantError{
			Kind:     KindPathEncoding,
			Location: "plex.Planner.classify",
			Path:     path,
		}
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		return Candidate{}, false, &InvariantError{
			Kind:     KindMissingName,
			Location: "plex.Planner.classify",
			Path:     path,
		}
	}

	parent := filepath.Dir(path)
	if parent == path {
		return Candidate{}, false, &InvariantError{
			Kind:     KindMissingParent,
			Location: "plex.Planner.classify",
			Path:     path,
		}
	}

	if p.patterns.IsCanonicalEpisodeName(name) {
		return Candidate{}, false, nil
	}

	c = Candidate{Original: path}
	if n, ok := p.patterns.ExtractNumbers(name); ok {
		c.Proposed = ProposePath(parent, n)
	}
	return c, true, nil
}
