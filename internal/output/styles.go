// Package output renders task listings and operation messages.
package output

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors
	warnColor      = lipgloss.Color("#AFAF5F") // Muted amber for warnings

	// TitleStyle for table titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// HeaderStyle for table column headers
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// RowStyle for table rows
	RowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// AltRowStyle for alternating table rows
	AltRowStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 1)

	// BorderStyle for table borders
	BorderStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// WarnStyle for cancelled/empty notices
	WarnStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
