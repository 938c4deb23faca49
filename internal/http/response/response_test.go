package response

import "testing"

func TestNewPaginationRoundsUp(t *testing.T) {
	cases := []struct {
		page, limit int
		total       int64
		want        int64
	}{
		{1, 10, 0, 0},
		{1, 10, 1, 1},
		{1, 10, 10, 1},
		{2, 10, 25, 3},
		{1, 3, 7, 3},
	}
	for _, tc := range cases {
		p := NewPagination(tc.page, tc.limit, tc.total)
		if p.TotalPages != tc.want {
			t.Fatalf("NewPagination(%d, %d, %d).TotalPages = %d, want %d",
				tc.page, tc.limit, tc.total, p.TotalPages, tc.want)
		}
		if p.Page != tc.page || p.Limit != tc.limit || p.Total != tc.total {
			t.Fatalf("pagination fields not carried through: %+v", p)
		}
	}
}

func TestNewPaginationZeroLimit(t *testing.T) {
	p := NewPagination(1, 0, 42)
	if p.TotalPages != 0 {
		t.Fatalf("zero limit must not divide, got %d", p.TotalPages)
	}
}
