package nav

// adjustBoundary corrects an open panel's horizontal placement so it stays
// inside the visible terminal width. It runs on the frame after the open
// transition, once per opening: if the right edge would pass
// width - margin the panel shifts left by the overflow; otherwise if the
// left edge sits inside the margin it shifts right by the deficit. No
// vertical correction is done.
//
// A panel whose geometry could not be measured (zero width, or an unknown
// terminal width) is left where it is; it still opens, just uncorrected.
func (c *Controller) adjustBoundary(e *DropdownEntry) {
	if e == nil || !e.open {
		return
	}
	if e.PanelWidth <= 0 || c.layout.Width <= 0 {
		return
	}

	e.Offset = 0
	left := e.Trigger.Start
	right := left + e.PanelWidth
	limit := c.layout.Width - c.cfg.EdgeMargin

	if right > limit {
		e.Offset = limit - right
	} else if left < c.cfg.EdgeMargin {
		e.Offset = c.cfg.EdgeMargin - left
	}
}
