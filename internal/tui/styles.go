package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorSuccess = lipgloss.Color("#00E676") // Green — results
	colorDanger  = lipgloss.Color("#FF5252") // Red — errors
	colorMuted   = lipgloss.Color("#636363") // Gray — de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
)

// Status icons for history rows.
const (
	iconOK   = "✓"
	iconFail = "✗"
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleInput = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleResult = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleHint = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
