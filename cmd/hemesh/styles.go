// SPDX-License-Identifier: MIT

package main

import "github.com/charmbracelet/lipgloss"

// Color palette, tuned for dark terminal backgrounds.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for the root command banner and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for descriptions and secondary headers.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// LabelStyle is for the key column of key/value listings.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(12)

	// PathStyle is for file paths.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// SuccessStyle is for passed checks.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for failed checks.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)
)

// yesNo renders a boolean as a green yes or a red no.
func yesNo(b bool) string {
	if b {
		return SuccessStyle.Render("yes")
	}
	return ErrorStyle.Render("no")
}
