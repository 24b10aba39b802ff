package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA): highlighted paths, help headings
// - Muted (gray): Secondary info, hints
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for highlighted values in command output
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

var accentColor = defaultAccent

// ConfigureAccent overrides the accent color from config. Accepts ANSI color
// codes ("0" to "255") or hex colors ("#RRGGBB"); empty keeps the default.
// It recolors the Accent style and the color reported by AccentColor, which
// the help renderer feeds into its heading style.
func ConfigureAccent(color string) {
	if color == "" {
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// AccentColor returns the active accent color.
func AccentColor() string {
	return accentColor
}
