// Package page stores the site's page content and renders it to styled
// terminal text. Pages are markdown, either the built-in demo set or
// overridden from a directory of .md files.
package page

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Page is one addressable page of content.
type Page struct {
	Name     string // route page identifier, e.g. "seo"
	Path     string // location path, e.g. "/seo.html"
	Markdown string
}

// Store holds the page set and a render cache keyed by width. Rendering the
// same page at the same width is free after the first time.
type Store struct {
	pages map[string]Page

	cacheWidth int
	cache      map[string]string
}

// NewStore returns a store seeded with the built-in demo pages.
func NewStore() *Store {
	s := &Store{
		pages: make(map[string]Page),
		cache: make(map[string]string),
	}
	for _, p := range builtinPages() {
		s.pages[p.Name] = p
	}
	return s
}

// LoadDir merges every .md file in dir over the built-in set. The page name
// is the file name without extension; its path becomes /<name>.html. A
// directory that cannot be read is an error, an individual unreadable file
// is skipped.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read pages dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		s.pages[name] = Page{
			Name:     name,
			Path:     "/" + name + ".html",
			Markdown: string(data),
		}
	}
	s.invalidate()
	return nil
}

// Get returns a page by its route name.
func (s *Store) Get(name string) (Page, bool) {
	p, ok := s.pages[name]
	return p, ok
}

// Names returns the stored page names, sorted.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.pages))
	for name := range s.pages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Render returns the page rendered to styled terminal text at the given
// width. An unknown page renders a short not-found body instead of failing,
// mirroring a site's 404 page.
func (s *Store) Render(name string, width int) string {
	if width < 20 {
		width = 20
	}
	if s.cacheWidth != width {
		s.invalidate()
		s.cacheWidth = width
	}
	if out, ok := s.cache[name]; ok {
		return out
	}

	p, ok := s.pages[name]
	md := p.Markdown
	if !ok {
		md = fmt.Sprintf("# Not Found\n\nNo page named %q here.\n", name)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	s.cache[name] = out
	return out
}

func (s *Store) invalidate() {
	s.cache = make(map[string]string)
}
