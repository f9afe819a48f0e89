// Package styles provides shared lipgloss styles for terminal output.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette using ANSI colors for broad terminal compatibility.
var (
	Primary   = lipgloss.Color("4")   // Blue
	Secondary = lipgloss.Color("245") // Light gray (visible on dark backgrounds)
	Success   = lipgloss.Color("2")   // Green
	Warning   = lipgloss.Color("3")   // Yellow
	Error     = lipgloss.Color("1")   // Red
	Ink       = lipgloss.Color("15")  // Bright white
	Shade     = lipgloss.Color("0")   // Black
)

// Text styles.
var (
	// CategoryHeader marks the start of a category in the notes listing.
	CategoryHeader = lipgloss.NewStyle().
			Italic(true).
			Foreground(Ink).
			Background(Shade)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Notice = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	SuccessText = lipgloss.NewStyle().
			Foreground(Success)

	HelpText = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)
)

// DisableColor makes every style render plain text regardless of the terminal.
func DisableColor() {
	plain := lipgloss.NewRenderer(io.Discard)
	lipgloss.DefaultRenderer().SetColorProfile(plain.ColorProfile())
}
