// Package route derives a normalized page identifier from a location path.
package route

import (
	"strings"
)

// HomePage is the identifier returned for the site root.
const HomePage = "home"

// Detect normalizes a location path into a page identifier.
// The final path segment decides: an empty segment, "/", or any "index.*"
// file maps to HomePage; anything else is the file name without its
// extension, lowercased.
func Detect(path string) string {
	segment := path
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	// Drop query strings and fragments before looking at the name.
	if i := strings.IndexAny(segment, "?#"); i >= 0 {
		segment = segment[:i]
	}
	if segment == "" {
		return HomePage
	}
	if i := strings.LastIndex(segment, "."); i >= 0 {
		segment = segment[:i]
	}
	segment = strings.ToLower(segment)
	if segment == "" || segment == "index" {
		return HomePage
	}
	return segment
}
