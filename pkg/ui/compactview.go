package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rovelle/masthead/pkg/nav"
)

// RenderCompactPanel renders the off-canvas menu panel for the compact
// layout: the fuzzy filter input, a divider, then the flattened link list
// with the cursor row highlighted. The panel is height rows tall and
// c.CompactPanelWidth() columns wide, anchored at the left screen edge.
//
// Row geometry is load-bearing: the top border, the filter row and the
// divider occupy the first three rows, links follow one per row. Mouse
// hit-testing in the controller assumes exactly this arrangement.
func RenderCompactPanel(c *nav.Controller, t Theme, height int) string {
	cm := c.Compact()
	if cm == nil || cm.OverlayHidden() {
		return ""
	}

	width := c.CompactPanelWidth()
	inner := width - 2 // border cells
	rows := height - 2
	if inner < 1 || rows < 3 {
		return ""
	}

	linkStyle := t.Renderer.NewStyle().Foreground(t.Text)
	activeStyle := t.Renderer.NewStyle().Foreground(t.Active)
	cursorStyle := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true)
	mutedStyle := t.Renderer.NewStyle().Foreground(t.Muted)

	lines := make([]string, 0, rows)
	lines = append(lines, ansi.Truncate(cm.FilterView(), inner, "…"))
	lines = append(lines, RenderSubtleDivider(inner, t))

	links := cm.VisibleLinks()
	for i, l := range links {
		if len(lines) >= rows {
			break
		}
		label := l.Label
		if l.Indent {
			label = strings.Repeat(" ", SpaceSM) + label
		}
		label = ansi.Truncate(label, inner-2, "…")

		switch {
		case i == cm.Cursor():
			lines = append(lines, cursorStyle.Render("▸ "+label))
		case l.Page != "" && l.Page == c.State().CurrentPage:
			lines = append(lines, activeStyle.Render("  "+label))
		default:
			lines = append(lines, linkStyle.Render("  "+label))
		}
	}
	if len(links) == 0 {
		lines = append(lines, mutedStyle.Render("  no matches"))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	box := panelBoxStyle(t).Width(inner)
	return box.Render(strings.Join(lines, "\n"))
}

// ComposeCompact overlays the off-canvas panel onto the page body when open.
func ComposeCompact(body string, c *nav.Controller, t Theme, height int) string {
	panel := RenderCompactPanel(c, t, height)
	if panel == "" {
		return body
	}
	return overlayAt(body, panel, 0, 0, c.Layout().Width, height)
}
