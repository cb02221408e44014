package nav

import (
	"github.com/mattn/go-runewidth"

	"github.com/rovelle/masthead/pkg/menu"
)

// ══════════════════════════════════════════════════════════════════════════════
// HEADER GEOMETRY - Column spans for hit-testing and rendering
// ══════════════════════════════════════════════════════════════════════════════

// Header geometry constants (in terminal cells).
const (
	// HeaderRows is the height of the header chrome: the bar itself plus the
	// progress strip. Dropdown panels open directly beneath it.
	HeaderRows = 2

	headerLeftPad = 2
	logoGap       = 4
	itemGap       = 3

	// SubmenuMarker is appended to triggers that own a dropdown.
	SubmenuMarker = " ▾"

	// CompactToggleLabel is the affordance that opens the off-canvas menu.
	CompactToggleLabel = "☰ Menu"

	panelPadX = 1 // horizontal padding inside a dropdown panel border
)

// Span is a half-open column range [Start, End) on a header row.
type Span struct {
	Start int
	End   int
}

// Contains reports whether column x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// Width returns the span width in cells.
func (s Span) Width() int {
	return s.End - s.Start
}

// Layout holds the resolved header geometry for one terminal width. It is the
// single source of truth shared by mouse hit-testing and rendering.
type Layout struct {
	Width   int
	Compact bool

	Logo   Span
	Toggle Span // compact toggle affordance; zero in desktop layout

	Items map[string]Span // item id -> trigger span
	Order []string        // item ids in display order
}

// computeLayout resolves trigger spans for the given width. Below the
// breakpoint the layout is compact: a toggle affordance replaces the item row.
func computeLayout(m *menu.Menu, width, breakpoint int) Layout {
	l := Layout{
		Width: width,
		Items: make(map[string]Span),
	}
	if m == nil {
		return l
	}
	l.Compact = width < breakpoint

	x := headerLeftPad
	if l.Compact {
		l.Toggle = Span{Start: x, End: x + runewidth.StringWidth(CompactToggleLabel)}
		x = l.Toggle.End + logoGap
		l.Logo = Span{Start: x, End: x + runewidth.StringWidth(m.Logo)}
		return l
	}

	l.Logo = Span{Start: x, End: x + runewidth.StringWidth(m.Logo)}
	x = l.Logo.End + logoGap
	for _, it := range m.Items {
		w := runewidth.StringWidth(it.Label)
		if it.HasSubmenu() {
			w += runewidth.StringWidth(SubmenuMarker)
		}
		l.Items[it.ID] = Span{Start: x, End: x + w}
		l.Order = append(l.Order, it.ID)
		x += w + itemGap
	}
	return l
}

// panelGeometry measures a dropdown panel for the given submenu: the widest
// label plus padding and a one-cell border on each side.
func panelGeometry(items []menu.SubItem) (width, height int) {
	maxLabel := 0
	for _, sub := range items {
		if w := runewidth.StringWidth(sub.Label); w > maxLabel {
			maxLabel = w
		}
	}
	if maxLabel == 0 {
		return 0, 0
	}
	return maxLabel + 2*panelPadX + 2, len(items) + 2
}
