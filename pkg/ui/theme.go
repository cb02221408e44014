package ui

import "github.com/charmbracelet/lipgloss"

// Theme carries the adaptive color roles used across the interface. Styles
// are built through the theme's renderer so color profiles resolve against
// the real output terminal.
type Theme struct {
	Renderer *lipgloss.Renderer

	Text    lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Active marks the navigation item matching the current page.
	Active lipgloss.AdaptiveColor

	// Scrim dims page content behind the compact menu overlay.
	Scrim lipgloss.AdaptiveColor
}

// DefaultTheme returns the stock theme bound to the given renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer: r,

		Text:    lipgloss.AdaptiveColor{Light: "#2E2E38", Dark: "#F8F8F2"},
		Subtext: lipgloss.AdaptiveColor{Light: "#5C5C66", Dark: "#BFBFBF"},
		Muted:   lipgloss.AdaptiveColor{Light: "#9A9AA8", Dark: "#6272A4"},
		Border:  lipgloss.AdaptiveColor{Light: "#D0D0DA", Dark: "#44475A"},

		Primary:   lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#4C5BD4", Dark: "#6272A4"},
		Accent:    lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#8BE9FD"},

		Active: lipgloss.AdaptiveColor{Light: "#047857", Dark: "#50FA7B"},
		Scrim:  lipgloss.AdaptiveColor{Light: "#B8B8C4", Dark: "#363949"},
	}
}
