package scroll

import "testing"

func TestProgressBounds(t *testing.T) {
	c := NewCoordinator(50)

	// At the top.
	c.OnScroll(0)
	c.OnFrame(200, 40)
	if c.Progress() != 0 {
		t.Errorf("offset 0: expected progress 0, got %d", c.Progress())
	}

	// At maximum scroll: offset == contentLines - viewLines.
	c.OnScroll(160)
	c.OnFrame(200, 40)
	if c.Progress() != 100 {
		t.Errorf("max offset: expected progress 100, got %d", c.Progress())
	}

	// Rubber-banding past the end stays clamped.
	c.OnScroll(500)
	c.OnFrame(200, 40)
	if c.Progress() != 100 {
		t.Errorf("overscroll: expected progress 100, got %d", c.Progress())
	}

	// Negative offsets clamp to 0.
	c.OnScroll(-3)
	c.OnFrame(200, 40)
	if c.Progress() != 0 {
		t.Errorf("negative offset: expected progress 0, got %d", c.Progress())
	}
}

func TestProgressShortContent(t *testing.T) {
	c := NewCoordinator(50)

	// Content shorter than the viewport: progress is defined as 0,
	// never a division by zero or a negative value.
	c.OnScroll(10)
	c.OnFrame(20, 40)
	if c.Progress() != 0 {
		t.Errorf("short content: expected progress 0, got %d", c.Progress())
	}
	c.OnFrame(40, 40)
	if c.Progress() != 0 {
		t.Errorf("content == viewport: expected progress 0, got %d", c.Progress())
	}
}

func TestPastThreshold(t *testing.T) {
	c := NewCoordinator(50)

	c.OnScroll(60)
	c.OnFrame(200, 40)
	if !c.PastThreshold() {
		t.Error("offset 60 with threshold 50: expected pastThreshold true")
	}

	c.OnScroll(40)
	c.OnFrame(200, 40)
	if c.PastThreshold() {
		t.Error("offset 40 with threshold 50: expected pastThreshold false")
	}

	// Exactly at the threshold is not past it.
	c.OnScroll(50)
	c.OnFrame(200, 40)
	if c.PastThreshold() {
		t.Error("offset 50 with threshold 50: expected pastThreshold false")
	}
}

func TestOnScrollCoalescesToOneFrame(t *testing.T) {
	c := NewCoordinator(50)

	scheduled := 0
	for i := 0; i < 50; i++ {
		if c.OnScroll(i) {
			scheduled++
		}
	}
	if scheduled != 1 {
		t.Errorf("50 scroll events: expected 1 scheduled frame, got %d", scheduled)
	}
	if !c.FrameScheduled() {
		t.Error("expected a frame to be pending")
	}

	// The frame reads the latest offset, not the first.
	c.OnFrame(200, 40)
	if c.Offset() != 49 {
		t.Errorf("expected frame to observe offset 49, got %d", c.Offset())
	}
	if c.FrameScheduled() {
		t.Error("frame flag should clear after OnFrame")
	}

	// The next scroll event schedules again.
	if !c.OnScroll(60) {
		t.Error("expected a new frame to be scheduled after the previous ran")
	}
}

func TestDefaultThreshold(t *testing.T) {
	c := NewCoordinator(0)
	c.OnScroll(DefaultThreshold + 1)
	c.OnFrame(500, 40)
	if !c.PastThreshold() {
		t.Error("zero threshold should fall back to DefaultThreshold")
	}
}
