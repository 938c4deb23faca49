package service

import (
	"regexp"
	"strings"
)

const defaultReadingSpeedWPM = 200

// markupTag matches HTML markup tags in stored content.
var markupTag = regexp.MustCompile(`<[^>]*>`)

// readingTime estimates reading minutes for the given content:
// markup stripped, whitespace-split word count divided by the reading
// speed, rounded up. Non-empty content never reads in under a minute.
func readingTime(content string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = defaultReadingSpeedWPM
	}
	text := markupTag.ReplaceAllString(content, "")
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
