package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for the REPL. The program
// uses the alternate screen buffer for a clean TUI experience.
func NewProgram(prompt string, precision int, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(NewModel(prompt, precision), allOpts...)
}

// Run creates and runs the REPL program, blocking until it exits.
func Run(prompt string, precision int) error {
	p := NewProgram(prompt, precision)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the
// given writer. Useful for testing.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
