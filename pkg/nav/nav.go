// Package nav implements a responsive navigation controller: a header menu
// with hover-coordinated dropdown submenus, an off-canvas compact menu below
// a width breakpoint, active-route marking, and frame-coalesced scroll
// chrome. The controller is a state machine driven by the host program's
// bubbletea messages; rendering lives in pkg/ui.
package nav

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovelle/masthead/pkg/config"
	"github.com/rovelle/masthead/pkg/menu"
	"github.com/rovelle/masthead/pkg/route"
	"github.com/rovelle/masthead/pkg/scroll"
)

// State is the shared navigation state owned by the controller. Sub-machines
// (dropdowns, compact menu, scroll chrome) communicate only through it.
type State struct {
	CurrentPage     string
	CompactMenuOpen bool
	ActiveDropdown  string // "" when no dropdown is open
	ScrollLocked    bool
}

// Controller wires the route detector, scroll coordinator, dropdown entries
// and compact menu into one per-page-view instance.
type Controller struct {
	cfg  config.Config
	menu *menu.Menu

	state  State
	layout Layout

	entries   []*DropdownEntry
	entryByID map[string]*DropdownEntry
	active    map[string]bool // item id -> active-route marker

	compact *CompactMenu
	scroll  *scroll.Coordinator

	// pendingAdjust names the entry awaiting its post-open boundary
	// correction on the next frame.
	pendingAdjust string

	bound bool
	done  bool
}

// New creates an unbound controller with the given tunables.
func New(cfg config.Config) *Controller {
	return &Controller{
		entryByID: make(map[string]*DropdownEntry),
		active:    make(map[string]bool),
		cfg:       cfg,
		scroll:    scroll.NewCoordinator(cfg.ScrollThreshold),
	}
}

// Bind attaches the controller to a menu definition: one discovery pass
// resolves every trigger/panel pair up front, the route detector marks the
// initial active item, and the compact menu is built. Binding twice is a
// no-op; all later calls return without touching anything.
//
// A malformed piece of the definition is logged and skipped without failing
// the rest.
func (c *Controller) Bind(m *menu.Menu, path string, width int) {
	if c.bound {
		return
	}
	c.bound = true

	if m == nil || len(m.Items) == 0 {
		log.Printf("Warning: navigation menu is empty, skipping nav bindings")
		c.layout = computeLayout(nil, width, c.cfg.CompactBreakpoint)
		return
	}
	c.menu = m
	c.layout = computeLayout(m, width, c.cfg.CompactBreakpoint)

	for i := range m.Items {
		it := &m.Items[i]
		if !it.HasSubmenu() {
			continue
		}
		w, h := panelGeometry(it.Submenu)
		if w == 0 {
			log.Printf("Warning: dropdown %q has no usable panel, skipping", it.ID)
			continue
		}
		e := &DropdownEntry{
			ID:          it.ID,
			Label:       it.Label,
			Items:       it.Submenu,
			Trigger:     c.layout.Items[it.ID],
			PanelWidth:  w,
			PanelHeight: h,
			timer:       closeTimer{delay: c.cfg.HoverCloseDelay.Std()},
		}
		c.entries = append(c.entries, e)
		c.entryByID[e.ID] = e
	}

	c.compact = newCompactMenu(m)
	c.SetPath(path)
}

// Teardown clears every pending timer and detaches the controller; no timer
// message arriving afterwards mutates state.
func (c *Controller) Teardown() {
	for _, e := range c.entries {
		e.timer.cancel()
	}
	c.pendingAdjust = ""
	c.done = true
}

// SetPath runs route detection for a new location path and refreshes the
// active-item markers.
func (c *Controller) SetPath(path string) {
	c.state.CurrentPage = route.Detect(path)
	c.refreshActive()
}

// refreshActive clears every active marker and re-marks the single item
// matching the current page. Safe to run any number of times; an unmatched
// page simply marks nothing.
func (c *Controller) refreshActive() {
	for id := range c.active {
		delete(c.active, id)
	}
	if c.menu == nil {
		return
	}
	for _, it := range c.menu.Items {
		if it.Page != "" && it.Page == c.state.CurrentPage {
			c.active[it.ID] = true
			return
		}
	}
}

// ActiveItem reports whether the given item carries the active-route marker.
func (c *Controller) ActiveItem(id string) bool {
	return c.active[id]
}

// SetSize relayouts the header for a new terminal width. Crossing the
// breakpoint closes whichever menu form no longer applies, and an open panel
// is re-corrected on the next frame.
func (c *Controller) SetSize(width int) tea.Cmd {
	if !c.bound || c.done {
		return nil
	}
	wasCompact := c.layout.Compact
	c.layout = computeLayout(c.menu, width, c.cfg.CompactBreakpoint)
	for _, e := range c.entries {
		e.Trigger = c.layout.Items[e.ID]
	}

	if c.layout.Compact && !wasCompact {
		c.closeAllDropdowns()
	}
	if !c.layout.Compact && wasCompact {
		c.CloseCompact()
	}
	if id := c.state.ActiveDropdown; id != "" {
		c.pendingAdjust = id
		return Frame()
	}
	return nil
}

// SetConfig applies a new configuration in place, used by live reload.
func (c *Controller) SetConfig(cfg config.Config) tea.Cmd {
	c.cfg = cfg
	c.scroll.SetThreshold(cfg.ScrollThreshold)
	for _, e := range c.entries {
		e.timer.delay = cfg.HoverCloseDelay.Std()
	}
	return c.SetSize(c.layout.Width)
}

// HandleMouse processes motion and click events against the bound regions.
func (c *Controller) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if !c.bound || c.done {
		return nil
	}
	switch {
	case msg.Action == tea.MouseActionMotion:
		return c.handleMotion(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return c.handleClick(msg.X, msg.Y)
	}
	return nil
}

// handleMotion implements hover intent. Hover behavior only exists in the
// desktop layout; below the breakpoint motion is a no-op.
func (c *Controller) handleMotion(x, y int) tea.Cmd {
	if c.layout.Compact {
		return nil
	}

	// Pointer over a dropdown trigger opens it immediately.
	if y == 0 {
		for _, e := range c.entries {
			if e.Trigger.Contains(x) {
				if e.open {
					e.timer.cancel()
					return nil
				}
				return c.openDropdown(e.ID)
			}
		}
	}

	// Pointer inside the open panel keeps it open.
	if id := c.state.ActiveDropdown; id != "" {
		e := c.entryByID[id]
		if e != nil && e.panelContains(x, y) {
			e.timer.cancel()
			return nil
		}
		// Left both trigger and panel: close after the grace period.
		return c.scheduleClose(id)
	}
	return nil
}

// handleClick resolves a left click against the header, panels and overlay.
func (c *Controller) handleClick(x, y int) tea.Cmd {
	if c.layout.Compact {
		return c.handleCompactClick(x, y)
	}

	if y == 0 {
		if c.layout.Logo.Contains(x) {
			c.closeAllDropdowns()
			return Navigate("/")
		}
		for _, it := range c.menuItems() {
			span, ok := c.layout.Items[it.ID]
			if !ok || !span.Contains(x) {
				continue
			}
			if it.HasSubmenu() {
				return c.toggleDropdown(it.ID)
			}
			c.closeAllDropdowns()
			return Navigate(it.Path)
		}
	}

	if id := c.state.ActiveDropdown; id != "" {
		e := c.entryByID[id]
		if e != nil {
			if idx := e.itemAt(x, y); idx >= 0 {
				sub := e.Items[idx]
				c.closeDropdown(id)
				return Navigate(sub.Path)
			}
			if e.panelContains(x, y) {
				return nil // panel chrome, not an item
			}
		}
		// Click outside any dropdown closes immediately.
		c.closeAllDropdowns()
	}
	return nil
}

// handleCompactClick resolves a click in the compact layout: the toggle
// affordance, a link row, or the overlay scrim.
func (c *Controller) handleCompactClick(x, y int) tea.Cmd {
	if y == 0 && c.layout.Toggle.Contains(x) {
		c.ToggleCompact()
		return nil
	}
	if c.compact == nil || !c.compact.open {
		return nil
	}
	if idx := c.compactLinkAt(x, y); idx >= 0 {
		link := c.compact.links[c.compact.visible[idx]]
		c.CloseCompact()
		return Navigate(link.Path)
	}
	if x >= c.CompactPanelWidth() {
		// Overlay click.
		c.CloseCompact()
	}
	return nil
}

// HandleKey processes a key event; the bool reports whether the controller
// consumed it.
func (c *Controller) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !c.bound || c.done {
		return false, nil
	}
	if c.compact != nil && c.compact.open {
		return c.handleCompactKey(msg)
	}
	if msg.String() == "esc" && c.state.ActiveDropdown != "" {
		// Escape bypasses the hover delay.
		c.closeDropdown(c.state.ActiveDropdown)
		return true, nil
	}
	return false, nil
}

// HandleTimer applies an elapsed hover-close timer, ignoring stale ones.
func (c *Controller) HandleTimer(msg CloseTimerMsg) {
	if !c.bound || c.done {
		return
	}
	c.handleCloseTimer(msg)
}

// OnContentScroll records a content scroll and returns a frame command when
// one needs scheduling. At most one recompute happens per frame regardless
// of event frequency.
func (c *Controller) OnContentScroll(offset int) tea.Cmd {
	if !c.bound || c.done {
		return nil
	}
	if c.scroll.OnScroll(offset) {
		return Frame()
	}
	return nil
}

// HandleFrame runs the deferred per-frame work: the pending boundary
// correction and the scroll chrome recompute.
func (c *Controller) HandleFrame(contentLines, viewLines int) {
	if !c.bound || c.done {
		return
	}
	if c.pendingAdjust != "" {
		c.adjustBoundary(c.entryByID[c.pendingAdjust])
		c.pendingAdjust = ""
	}
	if c.scroll.FrameScheduled() {
		c.scroll.OnFrame(contentLines, viewLines)
	}
}

// menuItems returns the bound menu's items, or nil.
func (c *Controller) menuItems() []menu.Item {
	if c.menu == nil {
		return nil
	}
	return c.menu.Items
}

// Menu returns the bound menu definition.
func (c *Controller) Menu() *menu.Menu {
	return c.menu
}

// Layout returns the resolved header geometry.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Entries returns the discovered dropdown entries in display order.
func (c *Controller) Entries() []*DropdownEntry {
	return c.entries
}

// Entry returns a dropdown entry by id, or nil.
func (c *Controller) Entry(id string) *DropdownEntry {
	return c.entryByID[id]
}

// State returns a copy of the shared navigation state.
func (c *Controller) State() State {
	return c.state
}

// Scroll returns the scroll coordinator for chrome rendering.
func (c *Controller) Scroll() *scroll.Coordinator {
	return c.scroll
}

// Config returns the active configuration.
func (c *Controller) Config() config.Config {
	return c.cfg
}
