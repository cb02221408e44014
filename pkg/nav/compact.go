package nav

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/rovelle/masthead/pkg/menu"
)

// Compact panel geometry.
const (
	compactMaxWidth = 36
	compactMinWidth = 20

	// compactLinksTop is the row of the first link inside the panel:
	// below the header, the panel border, the filter input and its divider.
	compactLinksTop = HeaderRows + 3
)

// Link is one row of the compact menu: a top-level item or an indented
// submenu entry, flattened for listing and fuzzy filtering.
type Link struct {
	Label  string
	Page   string
	Path   string
	Indent bool
}

// CompactMenu is the off-canvas menu shown below the width breakpoint. It
// owns the page scroll lock: no other component may engage or release it.
type CompactMenu struct {
	open    bool
	links   []Link
	visible []int // indexes into links, after filtering
	cursor  int
	filter  textinput.Model
}

func newCompactMenu(m *menu.Menu) *CompactMenu {
	ti := textinput.New()
	ti.Placeholder = "jump to..."
	ti.Prompt = "/ "
	ti.CharLimit = 40

	cm := &CompactMenu{filter: ti}
	if m != nil {
		for _, it := range m.Items {
			cm.links = append(cm.links, Link{Label: it.Label, Page: it.Page, Path: it.Path})
			for _, sub := range it.Submenu {
				cm.links = append(cm.links, Link{Label: sub.Label, Page: sub.Page, Path: sub.Path, Indent: true})
			}
		}
	}
	cm.resetFilter()
	return cm
}

// Expanded reports the toggle affordance's expanded state.
func (cm *CompactMenu) Expanded() bool {
	return cm.open
}

// OverlayHidden reports the scrim's hidden state, the inverse of open.
func (cm *CompactMenu) OverlayHidden() bool {
	return !cm.open
}

// VisibleLinks returns the links that survive the current filter, in order.
func (cm *CompactMenu) VisibleLinks() []Link {
	out := make([]Link, 0, len(cm.visible))
	for _, i := range cm.visible {
		out = append(out, cm.links[i])
	}
	return out
}

// Cursor returns the selected row among the visible links.
func (cm *CompactMenu) Cursor() int {
	return cm.cursor
}

// Query returns the current filter text.
func (cm *CompactMenu) Query() string {
	return cm.filter.Value()
}

// FilterView renders the filter input line.
func (cm *CompactMenu) FilterView() string {
	return cm.filter.View()
}

// resetFilter clears the query and shows every link.
func (cm *CompactMenu) resetFilter() {
	cm.filter.SetValue("")
	cm.visible = cm.visible[:0]
	for i := range cm.links {
		cm.visible = append(cm.visible, i)
	}
	cm.cursor = 0
}

// applyFilter recomputes the visible set from the query. An empty query
// shows everything; otherwise links are fuzzy-matched on their labels.
func (cm *CompactMenu) applyFilter() {
	query := cm.filter.Value()
	if query == "" {
		cm.visible = cm.visible[:0]
		for i := range cm.links {
			cm.visible = append(cm.visible, i)
		}
	} else {
		labels := make([]string, len(cm.links))
		for i, l := range cm.links {
			labels[i] = l.Label
		}
		matches := fuzzy.Find(query, labels)
		cm.visible = cm.visible[:0]
		for _, m := range matches {
			cm.visible = append(cm.visible, m.Index)
		}
	}
	if cm.cursor >= len(cm.visible) {
		cm.cursor = len(cm.visible) - 1
	}
	if cm.cursor < 0 {
		cm.cursor = 0
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// COMPACT MENU STATE MACHINE - Closed → Open → Closed, with scroll-lock
// ownership
// ══════════════════════════════════════════════════════════════════════════════

// OpenCompact opens the off-canvas menu and engages the scroll lock.
func (c *Controller) OpenCompact() {
	if c.compact == nil || c.compact.open {
		return
	}
	c.compact.open = true
	c.compact.resetFilter()
	c.compact.filter.Focus()
	c.state.CompactMenuOpen = true
	c.setScrollLock(true)
}

// CloseCompact closes the menu and releases the scroll lock. Every close
// path funnels through here, so the lock can never stay engaged once the
// menu is closed.
func (c *Controller) CloseCompact() {
	if c.compact == nil {
		return
	}
	c.compact.open = false
	c.compact.filter.Blur()
	c.state.CompactMenuOpen = false
	c.setScrollLock(false)
}

// ToggleCompact flips the menu between Closed and Open.
func (c *Controller) ToggleCompact() {
	if c.compact != nil && c.compact.open {
		c.CloseCompact()
		return
	}
	c.OpenCompact()
}

// setScrollLock is the single writer of the page scroll lock. Applying or
// releasing twice is the same as once.
func (c *Controller) setScrollLock(locked bool) {
	c.state.ScrollLocked = locked
}

// CompactPanelWidth returns the panel width for the current terminal width.
func (c *Controller) CompactPanelWidth() int {
	w := c.layout.Width / 2
	if w > compactMaxWidth {
		w = compactMaxWidth
	}
	if w < compactMinWidth {
		w = compactMinWidth
	}
	if w > c.layout.Width {
		w = c.layout.Width
	}
	return w
}

// compactLinkAt maps a cell to an index into the visible links, or -1.
func (c *Controller) compactLinkAt(x, y int) int {
	if c.compact == nil || !c.compact.open {
		return -1
	}
	if x < 0 || x >= c.CompactPanelWidth() {
		return -1
	}
	idx := y - compactLinksTop
	if idx < 0 || idx >= len(c.compact.visible) {
		return -1
	}
	return idx
}

// handleCompactKey processes a key while the compact menu is open. Selecting
// a link navigates and closes; Escape closes. Everything else feeds the
// fuzzy filter.
func (c *Controller) handleCompactKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	cm := c.compact
	switch msg.String() {
	case "esc":
		c.CloseCompact()
		return true, nil
	case "up":
		if cm.cursor > 0 {
			cm.cursor--
		}
		return true, nil
	case "down":
		if cm.cursor < len(cm.visible)-1 {
			cm.cursor++
		}
		return true, nil
	case "enter":
		if cm.cursor >= 0 && cm.cursor < len(cm.visible) {
			link := cm.links[cm.visible[cm.cursor]]
			c.CloseCompact()
			return true, Navigate(link.Path)
		}
		return true, nil
	}

	var cmd tea.Cmd
	cm.filter, cmd = cm.filter.Update(msg)
	cm.applyFilter()
	return true, cmd
}

// Compact returns the compact menu for rendering. It is nil when the bind
// pass found nothing to attach it to.
func (c *Controller) Compact() *CompactMenu {
	return c.compact
}
