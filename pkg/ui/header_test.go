package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rovelle/masthead/pkg/config"
	"github.com/rovelle/masthead/pkg/menu"
	"github.com/rovelle/masthead/pkg/nav"
)

func testTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(io.Discard))
}

func headerController(t *testing.T, width int) *nav.Controller {
	t.Helper()
	c := nav.New(config.Defaults())
	c.Bind(menu.Default(), "/services.html", width)
	return c
}

func TestHeaderLabelsSitOnTheirSpans(t *testing.T) {
	c := headerController(t, 120)
	out := RenderHeader(c, testTheme())

	lines := strings.Split(out, "\n")
	if len(lines) != nav.HeaderRows {
		t.Fatalf("header should be %d rows, got %d", nav.HeaderRows, len(lines))
	}

	bar := ansi.Strip(lines[0])
	l := c.Layout()
	for id, span := range l.Items {
		cell := []rune(bar)
		if span.End > len(cell) {
			t.Fatalf("bar shorter than span for %q", id)
		}
		got := string(cell[span.Start:span.End])
		if !strings.HasPrefix(got, itemLabel(c, id)) {
			t.Errorf("item %q not at its span: got %q", id, got)
		}
	}
	logo := string([]rune(bar)[l.Logo.Start:l.Logo.End])
	if logo != c.Menu().Logo {
		t.Errorf("logo not at its span: %q", logo)
	}
}

func itemLabel(c *nav.Controller, id string) string {
	it := itemByID(c.Menu(), id)
	if it == nil {
		return ""
	}
	return it.Label
}

func TestHeaderBarWidth(t *testing.T) {
	c := headerController(t, 120)
	lines := strings.Split(RenderHeader(c, testTheme()), "\n")
	if w := ansi.StringWidth(lines[0]); w != 120 {
		t.Errorf("bar should be padded to the full width, got %d", w)
	}
	if w := ansi.StringWidth(lines[1]); w != 120 {
		t.Errorf("progress strip should span the full width, got %d", w)
	}
}

func TestHeaderCompactShowsToggle(t *testing.T) {
	c := headerController(t, 60)
	lines := strings.Split(RenderHeader(c, testTheme()), "\n")
	bar := ansi.Strip(lines[0])
	if !strings.Contains(bar, nav.CompactToggleLabel) {
		t.Errorf("compact bar should show the toggle, got %q", bar)
	}
	if strings.Contains(bar, "Services") {
		t.Error("compact bar should not list desktop items")
	}
}

func TestProgressStripFill(t *testing.T) {
	th := testTheme()

	empty := ansi.Strip(RenderProgressStrip(0, 10, false, th))
	if strings.Contains(empty, "━") {
		t.Errorf("0%% strip should have no filled cells: %q", empty)
	}
	full := ansi.Strip(RenderProgressStrip(100, 10, true, th))
	if full != strings.Repeat("━", 10) {
		t.Errorf("100%% strip should be fully filled: %q", full)
	}
	half := ansi.Strip(RenderProgressStrip(50, 10, false, th))
	if got := strings.Count(half, "━"); got != 5 {
		t.Errorf("50%% of 10 cells should fill 5, got %d", got)
	}
	// Out-of-range values clamp rather than panic.
	if got := ansi.Strip(RenderProgressStrip(250, 4, false, th)); got != "━━━━" {
		t.Errorf("overflow should clamp to full: %q", got)
	}
}

func TestDropdownPanelMatchesMeasuredGeometry(t *testing.T) {
	c := headerController(t, 120)
	e := c.Entry("services")
	out := RenderDropdownPanel(e, testTheme(), "seo")

	lines := strings.Split(out, "\n")
	if len(lines) != e.PanelHeight {
		t.Fatalf("panel should be %d rows, got %d", e.PanelHeight, len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != e.PanelWidth {
			t.Errorf("row %d should be %d cells, got %d", i, e.PanelWidth, w)
		}
	}
	// First item row carries the first submenu label.
	if !strings.Contains(ansi.Strip(lines[1]), e.Items[0].Label) {
		t.Errorf("row 1 should hold %q: %q", e.Items[0].Label, ansi.Strip(lines[1]))
	}
}

func TestCompactPanelGeometry(t *testing.T) {
	c := headerController(t, 60)
	c.OpenCompact()

	out := RenderCompactPanel(c, testTheme(), 24)
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("panel should fill the body height, got %d rows", len(lines))
	}
	width := c.CompactPanelWidth()
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != width {
			t.Errorf("row %d should be %d cells, got %d", i, width, w)
		}
	}
	// Links start on row 3: border, filter, divider above them.
	first := c.Compact().VisibleLinks()[0]
	if !strings.Contains(ansi.Strip(lines[3]), first.Label) {
		t.Errorf("row 3 should hold the first link %q: %q", first.Label, ansi.Strip(lines[3]))
	}
}

func TestCompactPanelHiddenWhenClosed(t *testing.T) {
	c := headerController(t, 60)
	if out := RenderCompactPanel(c, testTheme(), 24); out != "" {
		t.Error("closed menu should render no panel")
	}
}
