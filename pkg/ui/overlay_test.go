package ui

import (
	"strings"
	"testing"
)

func TestOverlayAtReplacesCells(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")

	out := overlayAt(base, "XX\nYY", 3, 1, 10, 3)
	lines := strings.Split(out, "\n")

	if lines[0] != "aaaaaaaaaa" {
		t.Errorf("row above overlay should be untouched, got %q", lines[0])
	}
	if lines[1] != "bbbXXbbbbb" {
		t.Errorf("overlay row 1 wrong: %q", lines[1])
	}
	if lines[2] != "cccYYccccc" {
		t.Errorf("overlay row 2 wrong: %q", lines[2])
	}
}

func TestOverlayAtClipsToHeight(t *testing.T) {
	base := "aaaa\nbbbb"
	out := overlayAt(base, "X\nX\nX", 0, 1, 4, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("overlay must not grow the base, got %d lines", len(lines))
	}
	if lines[1] != "Xbbb" {
		t.Errorf("expected clipped overlay, got %q", lines[1])
	}
}

func TestOverlayAtPadsShortBaseLine(t *testing.T) {
	out := overlayAt("ab", "XY", 5, 0, 10, 1)
	if !strings.HasPrefix(out, "ab   XY") {
		t.Errorf("short base line should be padded before compositing, got %q", out)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight: %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight must not truncate: %q", got)
	}
}
