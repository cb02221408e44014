package menu

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	m := Default()
	if err := m.Validate(); err != nil {
		t.Fatalf("default menu should validate: %v", err)
	}
	if !m.Items[1].HasSubmenu() {
		t.Error("services should have a submenu")
	}
	if m.Items[0].HasSubmenu() {
		t.Error("home should not have a submenu")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	content := `
logo: Acme
items:
  - label: Home
    page: home
    path: /index.html
  - label: Work
    page: work
    path: /work.html
    submenu:
      - label: Case Studies
        page: case-studies
        path: /case-studies.html
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Logo != "Acme" {
		t.Errorf("expected logo Acme, got %q", m.Logo)
	}
	if len(m.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(m.Items))
	}
	// ID defaults to the page identifier.
	if m.Items[0].ID != "home" {
		t.Errorf("expected derived id home, got %q", m.Items[0].ID)
	}
	if got := m.Items[1].Submenu[0].Path; got != "/case-studies.html" {
		t.Errorf("expected submenu path, got %q", got)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		m    Menu
	}{
		{"no-items", Menu{Logo: "X"}},
		{"missing-label", Menu{Items: []Item{{ID: "a", Page: "a"}}}},
		{"duplicate-id", Menu{Items: []Item{
			{ID: "a", Label: "A", Page: "a"},
			{ID: "a", Label: "B", Page: "a"},
		}}},
		{"submenu-no-path", Menu{Items: []Item{
			{ID: "a", Label: "A", Page: "a", Submenu: []SubItem{{Label: "Sub"}}},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.m.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
