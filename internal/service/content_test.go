package service

import (
	"strings"
	"testing"
)

func TestReadingTimeStripsMarkup(t *testing.T) {
	if got := readingTime("<p></p>", 200); got != 0 {
		t.Fatalf("expected 0 minutes for markup-only content, got %d", got)
	}
	if got := readingTime("<p>hello world</p>", 200); got != 1 {
		t.Fatalf("expected 1 minute, got %d", got)
	}
}

func TestReadingTimeRoundsUp(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{200, 1},
		{201, 2},
		{401, 3},
	}
	for _, tc := range cases {
		content := strings.TrimSpace(strings.Repeat("word ", tc.words))
		if got := readingTime(content, 200); got != tc.want {
			t.Fatalf("readingTime(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestReadingTimeDefaultsSpeed(t *testing.T) {
	content := strings.TrimSpace(strings.Repeat("word ", 250))
	if got := readingTime(content, 0); got != 2 {
		t.Fatalf("expected default speed to yield 2 minutes, got %d", got)
	}
}
