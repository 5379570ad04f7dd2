// Package slugs turns itinerary and attraction names into file names and
// markdown anchors.
//
// There are two strategies:
//   - Anchor slugs: fragment IDs for markdown headings, matching what common
//     renderers generate, so links inside an exported itinerary resolve.
//   - File slugs: file names for exports, built on gosimple/slug.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// Anchor converts heading text to the fragment ID a renderer would give it.
func Anchor(text string) string {
	var result strings.Builder
	prevDash := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '-' || r == '_' || r == ':':
			if !prevDash && result.Len() > 0 {
				result.WriteRune('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(result.String(), "-")
}

// File converts a name to a file name with the given extension, e.g.
// File("Day One", ".md") is "day-one.md". Names that slug to nothing fall
// back to "untitled".
func File(name, ext string) string {
	s := goslug.Make(name)
	if s == "" {
		s = "untitled"
	}
	return s + ext
}
