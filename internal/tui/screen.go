package tui

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// terminalRows reports the height of out when it is a terminal, else 0.
func terminalRows(out io.Writer) func() int {
	f, ok := out.(*os.File)
	if !ok {
		return func() int { return 0 }
	}
	fd := int(f.Fd())
	return func() int {
		if !term.IsTerminal(fd) {
			return 0
		}
		_, h, err := term.GetSize(fd)
		if err != nil {
			return 0
		}
		return h
	}
}

// refresh scrolls the screen by printing one blank line per row. Earlier
// output stays in the scrollback.
func refresh(out io.Writer, rows int) {
	if rows <= 0 {
		return
	}
	_, _ = io.WriteString(out, strings.Repeat("\n", rows))
}
