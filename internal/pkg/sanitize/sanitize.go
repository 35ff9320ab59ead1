// Package sanitize strips or neutralizes untrusted markup before persistence.
// HTML fields keep their formatting tags minus anything executable; plain-text
// fields lose markup entirely.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicy = bluemonday.UGCPolicy()
	textPolicy = bluemonday.StrictPolicy()

	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)
)

// HTML sanitizes rich content: script/iframe/object/embed elements, event
// handler attributes and javascript: URLs are removed, formatting markup stays.
func HTML(dirty string) string {
	if dirty == "" {
		return ""
	}
	return htmlPolicy.Sanitize(dirty)
}

// Text strips all markup from a plain-text field, unescapes entities the
// stripper introduced and trims surrounding whitespace.
func Text(dirty string) string {
	if dirty == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(dirty)))
}

// Slug normalizes a slug: sanitize as text, lowercase, and collapse anything
// outside [a-z0-9-] into single hyphens.
func Slug(dirty string) string {
	s := strings.ToLower(Text(dirty))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Tags sanitizes each tag as text and drops entries that end up empty.
func Tags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if clean := Text(tag); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
