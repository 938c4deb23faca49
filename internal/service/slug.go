package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonAlphanumeric matches runs of anything outside [a-z0-9] after
// lowercasing, each run collapsing to a single hyphen.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lowercase, diacritics
// stripped, non-alphanumeric runs replaced by single hyphens, leading
// and trailing hyphens trimmed. Vietnamese đ/Đ is mapped to d by hand
// since it is a base letter, not a combining mark.
func Slugify(title string) string {
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case 'đ':
			return 'd'
		case 'Đ':
			return 'D'
		}
		return r
	}, title)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, mapped)
	if err != nil {
		stripped = mapped
	}

	slug := strings.ToLower(stripped)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
