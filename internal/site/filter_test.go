package site

import (
	"testing"
	"time"
)

func datedPost(slug, date string, tags ...string) Post {
	p := Post{Slug: slug, Date: date, Tags: tags}
	p.resolveDate(testNow)
	return p
}

func slugsOf(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	posts := []Post{
		datedPost("a", "2024-03-01", "go"),
		datedPost("b", "2024-04-02", "go", "web"),
		datedPost("c", "2023-03-03", "web"),
		datedPost("d", "not a date", "go"),
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "zero filter matches all", filter: Filter{}, want: []string{"a", "b", "c", "d"}},
		{name: "tag", filter: Filter{Tag: "web"}, want: []string{"b", "c"}},
		{name: "year", filter: Filter{Year: 2024}, want: []string{"a", "b"}},
		{name: "month across years", filter: Filter{Month: 3}, want: []string{"a", "c"}},
		{name: "tag and year and month", filter: Filter{Tag: "go", Year: 2024, Month: 4}, want: []string{"b"}},
		{name: "no match", filter: Filter{Tag: "rust"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := slugsOf(tt.filter.Apply(posts))
			if len(got) != len(tt.want) {
				t.Fatalf("Apply() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Apply() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSortByDateDesc(t *testing.T) {
	t.Parallel()

	posts := []Post{
		datedPost("old", "2020-01-01"),
		datedPost("undated", "garbage"),
		datedPost("new-b", "2024-05-05"),
		datedPost("new-a", "2024-05-05"),
		datedPost("mid", "2022-01-01T10:00:00Z"),
	}
	SortByDateDesc(posts)

	want := []string{"new-a", "new-b", "mid", "old", "undated"}
	got := slugsOf(posts)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortByDateDesc() = %v, want %v", got, want)
		}
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	posts := make([]Post, 13)
	for i := range posts {
		posts[i] = Post{Slug: string(rune('a' + i))}
	}

	tests := []struct {
		name      string
		list      []Post
		page      int
		perPage   int
		wantPage  int
		wantPages int
		wantLen   int
	}{
		{name: "first page", list: posts, page: 1, perPage: 6, wantPage: 1, wantPages: 3, wantLen: 6},
		{name: "last partial page", list: posts, page: 3, perPage: 6, wantPage: 3, wantPages: 3, wantLen: 1},
		{name: "page clamped high", list: posts, page: 99, perPage: 6, wantPage: 3, wantPages: 3, wantLen: 1},
		{name: "page clamped low", list: posts, page: -4, perPage: 6, wantPage: 1, wantPages: 3, wantLen: 6},
		{name: "default per page", list: posts, page: 2, perPage: 0, wantPage: 2, wantPages: 3, wantLen: DefaultPerPage},
		{name: "empty list has one page", list: nil, page: 5, perPage: 6, wantPage: 1, wantPages: 1, wantLen: 0},
		{name: "exact multiple", list: posts[:12], page: 2, perPage: 6, wantPage: 2, wantPages: 2, wantLen: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Paginate(tt.list, tt.page, tt.perPage)
			if got.Page != tt.wantPage || got.Pages != tt.wantPages || len(got.Posts) != tt.wantLen {
				t.Errorf("Paginate() = page %d of %d with %d posts, want page %d of %d with %d",
					got.Page, got.Pages, len(got.Posts), tt.wantPage, tt.wantPages, tt.wantLen)
			}
		})
	}
}

func TestMonthName(t *testing.T) {
	t.Parallel()

	if got := monthName(time.March); got != "Mar" {
		t.Errorf("monthName(March) = %q, want Mar", got)
	}
}
