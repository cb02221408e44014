package nav

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovelle/masthead/pkg/menu"
)

// DropdownEntry is one discovered trigger/panel pair. Entries are created
// once at bind time and live for the controller's lifetime.
type DropdownEntry struct {
	ID    string
	Label string
	Items []menu.SubItem

	// Trigger is the entry's column span on the header row.
	Trigger Span

	// Panel geometry, measured at discovery from the submenu labels.
	PanelWidth  int
	PanelHeight int

	// Offset is the horizontal boundary correction applied while open.
	// It resets to zero on close so every opening re-measures from a
	// neutral baseline.
	Offset int

	open  bool
	timer closeTimer
}

// Expanded reports the trigger's expanded state, the terminal equivalent of
// aria-expanded on the trigger affordance.
func (e *DropdownEntry) Expanded() bool {
	return e.open
}

// PanelX returns the panel's left column including any boundary correction.
func (e *DropdownEntry) PanelX() int {
	return e.Trigger.Start + e.Offset
}

// CloseScheduled reports whether a hover-intent close is pending.
func (e *DropdownEntry) CloseScheduled() bool {
	return e.timer.pending()
}

// panelContains reports whether the cell (x, y) falls inside the open panel.
func (e *DropdownEntry) panelContains(x, y int) bool {
	if !e.open {
		return false
	}
	return y >= HeaderRows && y < HeaderRows+e.PanelHeight &&
		x >= e.PanelX() && x < e.PanelX()+e.PanelWidth
}

// itemAt maps a cell inside the panel to a submenu index, or -1 for border
// and padding cells.
func (e *DropdownEntry) itemAt(x, y int) int {
	if !e.panelContains(x, y) {
		return -1
	}
	idx := y - HeaderRows - 1 // top border
	if idx < 0 || idx >= len(e.Items) {
		return -1
	}
	return idx
}

// ══════════════════════════════════════════════════════════════════════════════
// DROPDOWN STATE MACHINE - Closed → Open → Closing(delayed) → Closed
// ══════════════════════════════════════════════════════════════════════════════

// openDropdown transitions an entry to Open. Any other open entry is fully
// closed first, so at most one entry is open at any time. The returned
// command defers the boundary correction to the next frame, after layout has
// settled.
func (c *Controller) openDropdown(id string) tea.Cmd {
	e := c.entryByID[id]
	if e == nil {
		return nil
	}
	if e.open {
		e.timer.cancel()
		return nil
	}
	for _, other := range c.entries {
		if other.open {
			c.closeDropdown(other.ID)
		}
	}
	e.open = true
	e.timer.cancel()
	c.state.ActiveDropdown = id
	c.pendingAdjust = id
	return Frame()
}

// closeDropdown closes an entry immediately, bypassing any hover delay, and
// resets its boundary correction.
func (c *Controller) closeDropdown(id string) {
	e := c.entryByID[id]
	if e == nil {
		return
	}
	e.timer.cancel()
	if !e.open {
		return
	}
	e.open = false
	e.Offset = 0
	if c.state.ActiveDropdown == id {
		c.state.ActiveDropdown = ""
	}
	if c.pendingAdjust == id {
		c.pendingAdjust = ""
	}
}

// closeAllDropdowns closes whichever entry is open, immediately.
func (c *Controller) closeAllDropdowns() {
	for _, e := range c.entries {
		c.closeDropdown(e.ID)
	}
}

// toggleDropdown flips an entry between Closed and Open with no delay.
func (c *Controller) toggleDropdown(id string) tea.Cmd {
	e := c.entryByID[id]
	if e == nil {
		return nil
	}
	if e.open {
		c.closeDropdown(id)
		return nil
	}
	return c.openDropdown(id)
}

// scheduleClose arms the hover-intent close for an open entry. An already
// pending close is left alone so repeated leave events do not extend the
// grace period.
func (c *Controller) scheduleClose(id string) tea.Cmd {
	e := c.entryByID[id]
	if e == nil || !e.open || e.timer.pending() {
		return nil
	}
	return e.timer.arm(id)
}

// handleCloseTimer finishes a delayed close if the message is still current.
func (c *Controller) handleCloseTimer(msg CloseTimerMsg) {
	e := c.entryByID[msg.ID]
	if e == nil || !e.timer.matches(msg, msg.ID) {
		return
	}
	c.closeDropdown(msg.ID)
}

// OpenDropdownID returns the id of the open entry, or "".
func (c *Controller) OpenDropdownID() string {
	return c.state.ActiveDropdown
}
