// Package tui is the console side of the renamer: reading the operator's
// answers, refreshing the screen and rendering rename plans.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console is what the review gates need from the terminal.
type Console interface {
	// Refresh pushes previous output off screen.
	Refresh()
	// Println writes s followed by a newline.
	Println(s string)
	// ReadLine blocks for one line of input without its line ending.
	// It returns io.EOF when input ends or the operator cancels.
	ReadLine(ctx context.Context) (string, error)
}

// Options tune a console.
type Options struct {
	// ClearScreen enables Refresh.
	ClearScreen bool
}

type console struct {
	out   io.Writer
	rows  func() int
	clear bool
	read  func(ctx context.Context) (string, error)
}

// NewConsole returns a console on in and out. When in is a terminal each
// read runs an inline text input; otherwise input is read line by line.
func NewConsole(in io.Reader, out io.Writer, opts Options) Console {
	c := &console{
		out:   out,
		rows:  terminalRows(out),
		clear: opts.ClearScreen,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.read = promptReader(in, out)
	} else {
		c.read = lineReader(in)
	}
	return c
}

// NewLineConsole returns a console that always reads plain lines from in
// and never refreshes. Used for scripted input.
func NewLineConsole(in io.Reader, out io.Writer) Console {
	return &console{
		out:  out,
		rows: func() int { return 0 },
		read: lineReader(in),
	}
}

func (c *console) Refresh() {
	if !c.clear {
		return
	}
	refresh(c.out, c.rows())
}

func (c *console) Println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.read(ctx)
}

func lineReader(in io.Reader) func(context.Context) (string, error) {
	r := bufio.NewReader(in)
	return func(context.Context) (string, error) {
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
