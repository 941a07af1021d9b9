package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineConsoleReadLine(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader("yes\r\n y\nlast"), &out)
	ctx := context.Background()

	line, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "yes", line)

	line, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, " y", line)

	line, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = c.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsoleReadLineCancelled(t *testing.T) {
	c := NewLineConsole(strings.NewReader("yes\n"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsolePrintln(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader(""), &out)
	c.Println("hello")
	c.Refresh()
	assert.Equal(t, "hello\n", out.String())
}

func TestNewConsoleNonTerminal(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("quit\n"), &out, Options{ClearScreen: true})

	c.Refresh()
	assert.Empty(t, out.String())

	line, err := c.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "quit", line)
}

func TestRefresh(t *testing.T) {
	var out bytes.Buffer
	refresh(&out, 3)
	assert.Equal(t, "\n\n\n", out.String())

	out.Reset()
	refresh(&out, 0)
	assert.Empty(t, out.String())
}
