// Package scroll tracks content scroll position and publishes the derived
// chrome signals: a 0-100 progress value for the progress strip and a
// past-threshold flag for the scrolled header treatment.
//
// Recomputation is coalesced to at most once per frame: scroll events only
// mark a frame as needed, and the owner drives the actual recompute from its
// frame tick. This keeps chrome updates off the hot input path no matter how
// fast wheel events arrive.
package scroll

// DefaultThreshold is the offset, in content lines, past which the header
// switches to its scrolled treatment.
const DefaultThreshold = 50

// Coordinator owns the scroll-derived chrome state for one content viewport.
type Coordinator struct {
	threshold int

	lastOffset     int
	frameScheduled bool

	progress      int
	pastThreshold bool
}

// NewCoordinator creates a Coordinator with the given past-threshold offset.
// A zero or negative threshold falls back to DefaultThreshold.
func NewCoordinator(threshold int) *Coordinator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Coordinator{threshold: threshold}
}

// OnScroll records a new scroll offset and reports whether the caller should
// schedule a frame callback. Only the first event since the last frame
// schedules one; later events just update the offset the frame will read.
func (c *Coordinator) OnScroll(offset int) bool {
	c.lastOffset = offset
	if c.frameScheduled {
		return false
	}
	c.frameScheduled = true
	return true
}

// OnFrame recomputes progress and the past-threshold flag from the most
// recent offset. contentLines is the total line count of the content,
// viewLines the viewport height; when the content fits the viewport the
// progress is defined as 0.
func (c *Coordinator) OnFrame(contentLines, viewLines int) {
	c.frameScheduled = false

	span := contentLines - viewLines
	if span <= 0 {
		c.progress = 0
	} else {
		p := c.lastOffset * 100 / span
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		c.progress = p
	}
	c.pastThreshold = c.lastOffset > c.threshold
}

// SetThreshold replaces the past-threshold offset; zero or negative falls
// back to DefaultThreshold. The flag itself updates on the next frame.
func (c *Coordinator) SetThreshold(threshold int) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	c.threshold = threshold
}

// FrameScheduled reports whether a frame callback is pending.
func (c *Coordinator) FrameScheduled() bool {
	return c.frameScheduled
}

// Progress returns the last computed scroll progress, 0-100.
func (c *Coordinator) Progress() int {
	return c.progress
}

// PastThreshold reports whether the last computed offset was beyond the
// configured threshold.
func (c *Coordinator) PastThreshold() bool {
	return c.pastThreshold
}

// Offset returns the most recently observed scroll offset.
func (c *Coordinator) Offset() int {
	return c.lastOffset
}
