package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinPagesCoverDefaultMenu(t *testing.T) {
	s := NewStore()
	for _, name := range []string{
		"home", "services", "seo", "web-design", "paid-media",
		"content-marketing", "pricing", "packages", "quotes", "about",
	} {
		if _, ok := s.Get(name); !ok {
			t.Errorf("missing built-in page %q", name)
		}
	}
}

func TestRenderUnknownPage(t *testing.T) {
	s := NewStore()
	out := s.Render("nope", 60)
	if !strings.Contains(out, "Not Found") {
		t.Error("unknown page should render the not-found body")
	}
}

func TestRenderCachesPerWidth(t *testing.T) {
	s := NewStore()
	a := s.Render("home", 60)
	b := s.Render("home", 60)
	if a != b {
		t.Error("same page and width should render identically")
	}
	// A width change must invalidate, not serve the stale layout.
	c := s.Render("home", 40)
	if c == "" {
		t.Error("render at new width should produce output")
	}
}

func TestLoadDirOverridesBuiltins(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "about.md"), []byte("# Custom About\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "careers.md"), []byte("# Careers\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	if err := s.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	p, ok := s.Get("about")
	if !ok || !strings.Contains(p.Markdown, "Custom About") {
		t.Error("about should be overridden from disk")
	}
	p, ok = s.Get("careers")
	if !ok || p.Path != "/careers.html" {
		t.Errorf("new page should be added with a derived path, got %+v ok=%v", p, ok)
	}
}

func TestLoadDirMissing(t *testing.T) {
	s := NewStore()
	if err := s.LoadDir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
