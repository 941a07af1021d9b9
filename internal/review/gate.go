// Package review asks the operator to confirm the working directory and
// each rename plan.
package review

import (
	"context"
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/litescript/season-renamer/internal/plex"
	"github.com/litescript/season-renamer/internal/tui"
)

// ErrQuit is returned when the operator asks to stop the whole run.
var ErrQuit = errors.New("quit requested")

// Decision is the outcome of reviewing one plan.
type Decision int

const (
	// Skip means no question was asked: nothing in the plan is renameable.
	Skip Decision = iota
	Approve
	Reject
	Quit
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case Approve:
		return "approve"
	case Reject:
		return "reject"
	case Quit:
		return "quit"
	default:
		return "skip"
	}
}

// Gate runs both confirmation prompts over a console.
type Gate struct {
	console tui.Console
	view    *tui.View
}

// NewGate creates a Gate.
func NewGate(console tui.Console, view *tui.View) *Gate {
	return &Gate{console: console, view: view}
}

// Startup shows the working directory and waits for "yes" or "quit" in
// any case. Anything else is echoed back and asked again. It returns
// ErrQuit on "quit" or end of input.
func (g *Gate) Startup(ctx context.Context) error {
	g.console.Println(g.view.Startup())
	for {
		line, err := g.console.ReadLine(ctx)
		if err != nil {
			return endOfInput(err)
		}
		answer := strings.TrimSpace(line)
		switch {
		case strings.EqualFold(answer, "yes"):
			return nil
		case strings.EqualFold(answer, "quit"):
			return ErrQuit
		}
		g.console.Println(g.view.StartupRetry(answer))
	}
}

// Review shows plan for dir and, when it holds at least one rename, asks
// whether to apply it. Only the first character of the answer counts.
// An empty plan shows nothing.
func (g *Gate) Review(ctx context.Context, dir string, plan plex.Plan) (Decision, error) {
	if plan.Empty() {
		return Skip, nil
	}

	g.console.Refresh()
	g.console.Println(g.view.Plan(dir, plan))

	if len(plan.Renames()) == 0 {
		return Skip, nil
	}

	for {
		g.console.Println(g.view.Question())
		line, err := g.console.ReadLine(ctx)
		if err != nil {
			if err = endOfInput(err); errors.Is(err, ErrQuit) {
				return Quit, nil
			}
			return Quit, err
		}
		switch firstRune(line) {
		case 'y':
			return Approve, nil
		case 'n':
			return Reject, nil
		case 'q':
			return Quit, nil
		}
	}
}

// endOfInput maps closed input to ErrQuit and passes other errors on.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrQuit
	}
	return err
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ' '
	}
	return unicode.ToLower(r)
}
