// Package tui implements the full-screen interactive REPL. Lines are
// evaluated through the repl package, so results match the plain
// line-oriented mode exactly.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/conv/internal/repl"
)

// entry is one evaluated REPL line in the scrollback.
type entry struct {
	input  string
	output string
	failed bool
}

// Model is the bubbletea model for the REPL screen.
type Model struct {
	Input   textinput.Model
	History []entry

	keys      KeyMap
	precision int
	width     int
	height    int
	quitting  bool
}

// NewModel builds a REPL model with a focused input line.
func NewModel(prompt string, precision int) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "<value> <from_unit> <to_unit>"
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		Input:     ti,
		keys:      DefaultKeyMap(),
		precision: precision,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.History = nil
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// submit evaluates the current input line and appends it to the scrollback.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.Input.Value())
	if line == "" {
		return m, nil
	}

	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		m.quitting = true
		return m, tea.Quit
	case "help", "h", "?":
		m.History = append(m.History, entry{input: line, output: repl.Hint})
		m.Input.Reset()
		return m, nil
	}

	out, err := repl.Eval(line, m.precision)
	e := entry{input: line}
	switch {
	case err == nil:
		e.output = out
	case errors.Is(err, repl.ErrUsage):
		e.output = repl.Hint
		e.failed = true
	default:
		e.output = "Error: " + err.Error()
		e.failed = true
	}
	m.History = append(m.History, e)
	m.Input.Reset()
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("conv") + " " + styleSubtitle.Render("unit converter") + "\n\n")

	for _, e := range m.visibleHistory() {
		icon := styleResult.Render(iconOK)
		body := styleResult.Render(e.output)
		if e.failed {
			icon = styleError.Render(iconFail)
			body = styleError.Render(e.output)
		}
		b.WriteString(styleInput.Render(e.input) + "\n")
		b.WriteString("  " + icon + " " + body + "\n")
	}
	if len(m.History) == 0 {
		b.WriteString(styleHint.Render("type a conversion, e.g. 1 km m") + "\n")
	}

	b.WriteString("\n" + m.Input.View() + "\n")
	b.WriteString(styleFooter.Render("enter convert · ctrl+l clear · esc quit"))
	return b.String()
}

// visibleHistory trims the scrollback to what fits above the input
// line, keeping the most recent entries.
func (m Model) visibleHistory() []entry {
	if m.height == 0 {
		return m.History
	}
	// Each entry takes two rows; reserve five for header, input, footer.
	max := (m.height - 5) / 2
	if max < 1 {
		max = 1
	}
	if len(m.History) <= max {
		return m.History
	}
	return m.History[len(m.History)-max:]
}
