package nav

import (
	"testing"

	"github.com/rovelle/masthead/pkg/config"
	"github.com/rovelle/masthead/pkg/menu"
)

func TestAdjustShiftsOverflowingPanelLeft(t *testing.T) {
	c := New(config.Defaults())
	c.layout.Width = 50
	e := &DropdownEntry{open: true, Trigger: Span{Start: 40, End: 48}, PanelWidth: 20}

	c.adjustBoundary(e)

	// Right edge 60 exceeds 50-2; shift left by the overflow.
	if e.Offset != -12 {
		t.Errorf("expected offset -12, got %d", e.Offset)
	}
	if got := e.PanelX() + e.PanelWidth; got != 48 {
		t.Errorf("right edge should land on width-margin (48), got %d", got)
	}
}

func TestAdjustShiftsPanelRightOffLeftEdge(t *testing.T) {
	c := New(config.Defaults())
	c.layout.Width = 80
	e := &DropdownEntry{open: true, Trigger: Span{Start: 0, End: 6}, PanelWidth: 20}

	c.adjustBoundary(e)

	if e.Offset != 2 {
		t.Errorf("expected offset 2 (edge margin), got %d", e.Offset)
	}
}

func TestAdjustSkipsUnmeasuredPanel(t *testing.T) {
	c := New(config.Defaults())
	c.layout.Width = 50
	e := &DropdownEntry{open: true, Trigger: Span{Start: 40, End: 48}, PanelWidth: 0, Offset: 0}

	c.adjustBoundary(e)
	if e.Offset != 0 {
		t.Errorf("unmeasured panel should be left uncorrected, got offset %d", e.Offset)
	}
}

func TestAdjustRunsOnFrameAfterOpen(t *testing.T) {
	cfg := config.Defaults()
	cfg.CompactBreakpoint = 30 // keep width 40 in the desktop layout
	c := New(cfg)
	c.Bind(menu.Default(), "/", 40)

	x := c.Layout().Items["pricing"].Start
	cmd := c.HandleMouse(clickMsg(x, 0))
	if cmd == nil {
		t.Fatal("opening should schedule a frame for the boundary pass")
	}

	e := c.Entry("pricing")
	if e.Offset != 0 {
		t.Fatalf("correction must not run inside the open handler, got offset %d", e.Offset)
	}

	c.HandleFrame(0, 0)

	// Panel is 17 wide ("Custom Quotes" + padding + border) starting at the
	// trigger; it must end inside width-margin.
	if right := e.PanelX() + e.PanelWidth; right > 40-cfg.EdgeMargin {
		t.Errorf("panel right edge %d still past limit %d", right, 40-cfg.EdgeMargin)
	}
	if e.Offset >= 0 {
		t.Errorf("expected a leftward shift, got offset %d", e.Offset)
	}
}

func TestOffsetResetsOnClose(t *testing.T) {
	c := boundController(t)
	c.HandleMouse(clickMsg(triggerX(t, c, "services"), 0))
	e := c.Entry("services")
	e.Offset = -5

	c.closeDropdown("services")
	if e.Offset != 0 {
		t.Errorf("close should reset the boundary correction, got %d", e.Offset)
	}
}
