// Package tui provides the Bubble Tea interactive surface for peerlink.
//
// The TUI is a thin shell over the session package: key presses call
// controller methods, network exchanges run in tea.Cmds, and their
// outcomes come back as messages fed to FinishSubmit/FinishFetch. No
// session state lives in the view layer.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	highlightColor = lipgloss.Color("#3B82F6") // Blue
)

// Styles for TUI components.
var (
	// TitleStyle for the app header.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// TabStyle for inactive tab labels.
	TabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	// ActiveTabStyle for the selected tab label.
	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor).
			Padding(0, 2).
			Underline(true)

	// BoxStyle for bordered containers.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	// IdentifierStyle renders the transfer identifier itself.
	IdentifierStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// SuccessStyle for success states.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for inline error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// MutedStyle for hints and secondary text.
	MutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// SpinnerStyle for the in-flight spinner.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// HelpStyle for the help line.
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
