package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/season-renamer/internal/theme"
)

// lineModel is a one-field Bubble Tea program that ends on enter.
type lineModel struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newLineModel() lineModel {
	styles := theme.Current()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return lineModel{input: ti}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() string {
	if m.submitted || m.cancelled {
		// Leave the answer on screen without the cursor.
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}

// promptReader reads each line through a short-lived inline program.
func promptReader(in io.Reader, out io.Writer) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		p := tea.NewProgram(newLineModel(),
			tea.WithContext(ctx),
			tea.WithInput(in),
			tea.WithOutput(out),
		)
		final, err := p.Run()
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		m, ok := final.(lineModel)
		if !ok || m.cancelled {
			return "", io.EOF
		}
		return m.input.Value(), nil
	}
}
