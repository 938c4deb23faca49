package repository

import "testing"

func TestLikeOperatorByDialect(t *testing.T) {
	cases := []struct {
		dialect string
		want    string
	}{
		{"postgres", "ILIKE"},
		{"postgresql", "ILIKE"},
		{"Postgres", "ILIKE"},
		{"sqlite", "LIKE"},
		{"", "LIKE"},
	}
	for _, tc := range cases {
		if got := likeOperatorByDialect(tc.dialect); got != tc.want {
			t.Fatalf("likeOperatorByDialect(%q) = %q, want %q", tc.dialect, got, tc.want)
		}
	}
}

func TestBuildSearchConditionByDialect(t *testing.T) {
	columns := []string{"blog_posts.title_vi", "blog_posts.title_en"}

	condition, argCount := buildSearchConditionByDialect("postgres", columns)
	if condition != "blog_posts.title_vi ILIKE ? OR blog_posts.title_en ILIKE ?" {
		t.Fatalf("unexpected postgres condition: %q", condition)
	}
	if argCount != 2 {
		t.Fatalf("expected 2 args, got %d", argCount)
	}

	condition, argCount = buildSearchConditionByDialect("sqlite", []string{"title", "", "  "})
	if condition != "title LIKE ?" {
		t.Fatalf("expected blank columns skipped, got %q", condition)
	}
	if argCount != 1 {
		t.Fatalf("expected 1 arg, got %d", argCount)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%go%", 3)
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	for _, arg := range args {
		if arg != "%go%" {
			t.Fatalf("unexpected arg %v", arg)
		}
	}
}
