// Package theme picks terminal colours for the review screens. Colours are
// read from the user's terminal configuration when possible and can be
// reloaded while the program runs.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colour scheme.
type Palette struct {
	FG     string // primary text
	Muted  string // secondary info, unchanged paths
	Accent string // proposed names, prompts
	Error  string // entries that cannot be renamed
}

// DefaultPalette returns the fallback amber-on-dark scheme.
func DefaultPalette() Palette {
	return Palette{
		FG:     "#d4a017",
		Muted:  "#6b6b4f",
		Accent: "#8bc34a",
		Error:  "#ff6b6b",
	}
}

// Styles holds the lipgloss styles used by the review screens.
type Styles struct {
	Heading lipgloss.Style
	Path    lipgloss.Style
	Target  lipgloss.Style
	Arrow   lipgloss.Style
	Failed  lipgloss.Style
	Prompt  lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles derives styles from a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color(p.FG)).Bold(true),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Target:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		Arrow:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.FG)),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Heading: plain,
		Path:    plain,
		Target:  plain,
		Arrow:   plain,
		Failed:  plain,
		Prompt:  plain,
		Error:   plain,
	}
}

var (
	mu             sync.RWMutex
	detect         bool
	currentPalette = DefaultPalette()
	current        = NewStyles(currentPalette)
)

// Load sets the active palette. With autodetect off the default palette
// is used and Refresh keeps it.
func Load(autodetect bool) {
	mu.Lock()
	detect = autodetect
	mu.Unlock()
	Refresh()
}

// Refresh re-reads the palette from terminal configs.
func Refresh() {
	mu.RLock()
	auto := detect
	mu.RUnlock()

	p := DefaultPalette()
	if auto {
		p = Detect()
	}

	mu.Lock()
	currentPalette = p
	current = NewStyles(p)
	mu.Unlock()
}

// Current returns the active styles.
func Current() Styles {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// CurrentPalette returns the active palette.
func CurrentPalette() Palette {
	mu.RLock()
	defer mu.RUnlock()
	return currentPalette
}
