package route

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/", "home"},
		{"", "home"},
		{"/index.html", "home"},
		{"/index.md", "home"},
		{"index.html", "home"},
		{"/services.html", "services"},
		{"/seo.html", "seo"},
		{"/Web-Design.html", "web-design"},
		{"/pricing.md", "pricing"},
		{"/nested/dir/about.html", "about"},
		{"/contact.html?ref=footer", "contact"},
		{"/pricing.html#packages", "pricing"},
		{"/plain", "plain"},
	}

	for _, tt := range tests {
		if got := Detect(tt.path); got != tt.expected {
			t.Errorf("Detect(%q): expected %q, got %q", tt.path, tt.expected, got)
		}
	}
}

func TestDetectTrailingSlash(t *testing.T) {
	// A path ending in "/" has an empty final segment, which is home.
	if got := Detect("/blog/"); got != "home" {
		t.Errorf("Detect(/blog/): expected home, got %q", got)
	}
}
