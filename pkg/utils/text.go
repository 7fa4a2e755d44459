package utils

import (
	"regexp"
	"strings"
)

var (
	reNonSlug     = regexp.MustCompile(`[^a-z0-9\s-]`)
	reWhitespace  = regexp.MustCompile(`\s+`)
	reMultiHyphen = regexp.MustCompile(`-+`)
	reHTMLTag     = regexp.MustCompile(`<[^>]*>`)
)

// Slugify derives a URL-safe slug from a title: lowercase, trim, strip
// characters outside [a-z0-9\s-], whitespace runs to a single hyphen,
// collapsed hyphens, edge hyphens trimmed.
// Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = reNonSlug.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, "-")
	s = reMultiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// StripHTML removes tags and decodes non-breaking spaces, leaving plain text.
func StripHTML(html string) string {
	s := reHTMLTag.ReplaceAllString(html, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return s
}

// StrippedLen is the plain-text length of rich HTML content, the length the
// content constraints are defined against.
func StrippedLen(html string) int {
	return len(strings.TrimSpace(StripHTML(html)))
}

// Excerpt derives a plain-text preview from HTML content: tags stripped,
// trimmed, cut to maxLen runes, with "..." appended only when the stripped
// text was longer than maxLen.
func Excerpt(html string, maxLen int) string {
	plain := strings.TrimSpace(StripHTML(html))
	runes := []rune(plain)
	if len(runes) <= maxLen {
		return plain
	}
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}
