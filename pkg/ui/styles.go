package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// ══════════════════════════════════════════════════════════════════════════════
// HEADER CHROME - Progress strip and dividers
// ══════════════════════════════════════════════════════════════════════════════

// RenderProgressStrip renders the reading-progress line under the header bar:
// a filled run proportional to progress (0-100) across the full width. Past
// the scroll threshold the strip brightens to the primary accent.
func RenderProgressStrip(progress, width int, past bool, t Theme) string {
	if width <= 0 {
		return ""
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	filled := progress * width / 100
	if filled > width {
		filled = width
	}

	barColor := t.Muted
	if past {
		barColor = t.Primary
	}

	bar := strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
	return t.Renderer.NewStyle().Foreground(barColor).Render(bar)
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderSubtleDivider renders a more subtle divider using dots
func RenderSubtleDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Muted).
		Render(strings.Repeat("·", width))
}

// panelBoxStyle is the shared frame for dropdown and overlay panels.
func panelBoxStyle(t Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
}
