package ui

import (
	"strings"

	"github.com/rovelle/masthead/pkg/nav"
)

// RenderDropdownPanel renders an open dropdown's panel. The output is exactly
// the entry's measured PanelWidth x PanelHeight so that hit-testing and
// compositing agree cell for cell: one bordered box, one row per submenu
// item, no extra padding rows.
func RenderDropdownPanel(e *nav.DropdownEntry, t Theme, activePage string) string {
	rowStyle := t.Renderer.NewStyle().Foreground(t.Text)
	activeStyle := t.Renderer.NewStyle().Foreground(t.Active)

	rows := make([]string, 0, len(e.Items))
	for _, sub := range e.Items {
		s := rowStyle
		if sub.Page != "" && sub.Page == activePage {
			s = activeStyle
		}
		rows = append(rows, s.Render(sub.Label))
	}

	box := panelBoxStyle(t).
		Padding(0, 1).
		Width(e.PanelWidth - 2)
	return box.Render(strings.Join(rows, "\n"))
}

// ComposeDropdown overlays the open panel onto the rendered page body. The
// body starts at row nav.HeaderRows of the screen, and panel coordinates are
// screen coordinates, so the panel lands at body row zero.
func ComposeDropdown(body string, c *nav.Controller, t Theme, height int) string {
	id := c.OpenDropdownID()
	if id == "" {
		return body
	}
	e := c.Entry(id)
	if e == nil {
		return body
	}
	panel := RenderDropdownPanel(e, t, c.State().CurrentPage)
	return overlayAt(body, panel, e.PanelX(), 0, c.Layout().Width, height)
}
