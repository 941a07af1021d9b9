package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/litescript/season-renamer/internal/plex"
	"github.com/litescript/season-renamer/internal/theme"
)

// Question is the per-directory confirmation prompt.
const Question = "should these changes be made? ([y]es/[n]o/[q]uit)"

// View renders the review screens. Rename paths are shown relative to
// root.
type View struct {
	root   string
	styles func() theme.Styles
}

// NewView renders with the active theme, which may change while running.
func NewView(root string) *View {
	return &View{root: root, styles: theme.Current}
}

// NewPlainView renders without colour.
func NewPlainView(root string) *View {
	return &View{root: root, styles: theme.PlainStyles}
}

// Root returns the directory rename paths are shown relative to.
func (v *View) Root() string {
	return v.root
}

// Startup is the working directory confirmation.
func (v *View) Startup() string {
	s := v.styles()
	return fmt.Sprintf("program running in %s confirm this is correct (type %s)",
		s.Path.Render(quote(v.root)), s.Prompt.Render(`"yes"`))
}

// StartupRetry echoes unexpected input at the startup prompt.
func (v *View) StartupRetry(input string) string {
	s := v.styles()
	return fmt.Sprintf("you entered %s\nenter %s to confirm or %s to end the program",
		s.Failed.Render(quote(input)), s.Prompt.Render(`"yes"`), s.Prompt.Render(`"quit"`))
}

// Plan renders the failures and renames of one season directory.
func (v *View) Plan(dir string, plan plex.Plan) string {
	s := v.styles()
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", s.Heading.Render("inside of"), s.Path.Render(quote(dir)))

	if failed := plan.Failed(); len(failed) > 0 {
		b.WriteString(s.Heading.Render("failed to rename the following"))
		b.WriteByte('\n')
		for _, c := range failed {
			b.WriteString(s.Failed.Render(quote(c.Original)))
			b.WriteByte('\n')
		}
		b.WriteString("\n\n")
	}

	if renames := plan.Renames(); len(renames) > 0 {
		b.WriteString(s.Heading.Render("making the following changes"))
		b.WriteByte('\n')
		for _, c := range renames {
			fmt.Fprintf(&b, "%s %s %s\n",
				s.Path.Render(quote(v.relative(c.Original))),
				s.Arrow.Render("->"),
				s.Target.Render(quote(v.relative(c.Proposed))))
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Question renders the per-directory prompt.
func (v *View) Question() string {
	return v.styles().Prompt.Render(Question)
}

// Fatal renders an unexpected failure.
func (v *View) Fatal(err error, version string) string {
	s := v.styles()
	msg := s.Error.Render("unexpected failure: " + err.Error())
	if ie, ok := plex.AsInvariant(err); ok {
		msg += fmt.Sprintf("\nthis is a case the renamer does not handle yet; report %s (season-renamer %s) so it can be fixed",
			s.Heading.Render(ie.Location), version)
	}
	return msg
}

func (v *View) relative(path string) string {
	rel, err := filepath.Rel(v.root, path)
	if err != nil {
		return path
	}
	return rel
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
