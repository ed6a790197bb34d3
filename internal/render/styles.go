// SPDX-License-Identifier: MIT

package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor = lipgloss.Color("#A78BFA") // Purple
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray
	BorderColor  = lipgloss.Color("#6B7280") // Gray

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Label = lipgloss.NewStyle().
		Foreground(MutedColor).
		Width(16)

	Warning = lipgloss.NewStyle().Foreground(WarningColor)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		Align(lipgloss.Right).
		PaddingLeft(2)

	Cell = lipgloss.NewStyle().
		Align(lipgloss.Right).
		PaddingLeft(2)

	Rule = lipgloss.NewStyle().Foreground(BorderColor)
)
