// Package menu defines the declarative navigation structure the controller
// binds to. The host application supplies a Menu (in code or as YAML) and the
// controller resolves everything it needs from it once, at bind time.
package menu

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SubItem is a single link inside a dropdown panel.
type SubItem struct {
	Label string `yaml:"label"`
	Page  string `yaml:"page"`
	Path  string `yaml:"path"`
}

// Item is a top-level navigation item. Items with a non-empty Submenu get a
// dropdown panel; the others are plain links.
type Item struct {
	ID      string    `yaml:"id"`
	Label   string    `yaml:"label"`
	Page    string    `yaml:"page"`
	Path    string    `yaml:"path"`
	Submenu []SubItem `yaml:"submenu"`
}

// HasSubmenu reports whether the item carries a dropdown panel.
func (it Item) HasSubmenu() bool {
	return len(it.Submenu) > 0
}

// Menu is the full navigation definition: a logo and the top-level items.
type Menu struct {
	Logo  string `yaml:"logo"`
	Items []Item `yaml:"items"`
}

// Load reads a menu definition from a YAML file.
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	m.normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// normalize fills in derivable fields: an item's ID defaults to its page
// identifier, and labels are trimmed.
func (m *Menu) normalize() {
	for i := range m.Items {
		it := &m.Items[i]
		it.Label = strings.TrimSpace(it.Label)
		if it.ID == "" {
			it.ID = it.Page
		}
	}
}

// Validate checks the definition is usable: every item needs a label, IDs must
// be unique, and submenu entries need labels and paths.
func (m *Menu) Validate() error {
	if len(m.Items) == 0 {
		return fmt.Errorf("menu has no items")
	}
	seen := make(map[string]bool, len(m.Items))
	for _, it := range m.Items {
		if it.Label == "" {
			return fmt.Errorf("menu item %q has no label", it.ID)
		}
		if it.ID == "" {
			return fmt.Errorf("menu item %q has no id or page", it.Label)
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate menu item id %q", it.ID)
		}
		seen[it.ID] = true
		for _, sub := range it.Submenu {
			if sub.Label == "" {
				return fmt.Errorf("submenu entry under %q has no label", it.ID)
			}
			if sub.Path == "" {
				return fmt.Errorf("submenu entry %q under %q has no path", sub.Label, it.ID)
			}
		}
	}
	return nil
}

// Default returns the built-in demo menu, shaped like a small agency site.
func Default() *Menu {
	return &Menu{
		Logo: "Rovelle",
		Items: []Item{
			{ID: "home", Label: "Home", Page: "home", Path: "/index.html"},
			{ID: "services", Label: "Services", Page: "services", Path: "/services.html", Submenu: []SubItem{
				{Label: "SEO", Page: "seo", Path: "/seo.html"},
				{Label: "Web Design", Page: "web-design", Path: "/web-design.html"},
				{Label: "Paid Media", Page: "paid-media", Path: "/paid-media.html"},
				{Label: "Content Marketing", Page: "content-marketing", Path: "/content-marketing.html"},
			}},
			{ID: "pricing", Label: "Pricing", Page: "pricing", Path: "/pricing.html", Submenu: []SubItem{
				{Label: "Packages", Page: "packages", Path: "/packages.html"},
				{Label: "Custom Quotes", Page: "quotes", Path: "/quotes.html"},
			}},
			{ID: "about", Label: "About", Page: "about", Path: "/about.html"},
			{ID: "contact", Label: "Contact", Page: "contact", Path: "/contact.html"},
		},
	}
}
