package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovelle/masthead/pkg/menu"
	"github.com/rovelle/masthead/pkg/nav"
)

// RenderHeader renders the header chrome: the bar itself plus the progress
// strip, nav.HeaderRows lines in total. The bar is built by walking the
// controller's layout spans, so rendered positions always agree with mouse
// hit-testing. Styling is color-only; nothing here may change cell widths.
func RenderHeader(c *nav.Controller, t Theme) string {
	l := c.Layout()
	m := c.Menu()
	sc := c.Scroll()

	logoStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary)
	if sc.PastThreshold() {
		// Scrolled treatment: the logo recedes so page content reads first.
		logoStyle = t.Renderer.NewStyle().Foreground(t.Subtext)
	}

	var b strings.Builder
	x := 0
	put := func(span nav.Span, s string) {
		if span.Start > x {
			b.WriteString(strings.Repeat(" ", span.Start-x))
		}
		b.WriteString(s)
		x = span.End
	}

	if l.Compact {
		toggleStyle := t.Renderer.NewStyle().Foreground(t.Accent)
		if c.State().CompactMenuOpen {
			toggleStyle = toggleStyle.Bold(true).Foreground(t.Primary)
		}
		put(l.Toggle, toggleStyle.Render(nav.CompactToggleLabel))
		if m != nil {
			put(l.Logo, logoStyle.Render(m.Logo))
		}
	} else if m != nil {
		put(l.Logo, logoStyle.Render(m.Logo))
		for _, id := range l.Order {
			it := itemByID(m, id)
			if it == nil {
				continue
			}
			label := it.Label
			if it.HasSubmenu() {
				label += nav.SubmenuMarker
			}
			put(l.Items[id], itemStyle(c, t, id).Render(label))
		}
	}

	bar := padRight(b.String(), l.Width)
	strip := RenderProgressStrip(sc.Progress(), l.Width, sc.PastThreshold(), t)
	return bar + "\n" + strip
}

// itemStyle picks the treatment for one header item: open dropdowns lead,
// then the active-route marker, then the resting state.
func itemStyle(c *nav.Controller, t Theme, id string) lipgloss.Style {
	base := t.Renderer.NewStyle().Foreground(t.Text)
	switch {
	case c.OpenDropdownID() == id:
		return base.Foreground(t.Primary).Bold(true)
	case c.ActiveItem(id):
		return base.Foreground(t.Active).Underline(true)
	default:
		return base
	}
}

// itemByID finds a menu item by id.
func itemByID(m *menu.Menu, id string) *menu.Item {
	for i := range m.Items {
		if m.Items[i].ID == id {
			return &m.Items[i]
		}
	}
	return nil
}
