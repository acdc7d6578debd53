package site

import (
	"sort"
	"time"
)

// DefaultPerPage is the number of posts on a list page.
const DefaultPerPage = 6

// Filter narrows a post list. Zero fields match everything.
type Filter struct {
	Tag   string
	Year  int
	Month int // 1-12
}

// Match reports whether p passes the filter. Year and month filters never
// match a post without a valid date.
func (f Filter) Match(p Post) bool {
	if f.Tag != "" && !p.HasTag(f.Tag) {
		return false
	}
	if f.Year == 0 && f.Month == 0 {
		return true
	}
	if p.Published.IsZero() {
		return false
	}
	if f.Year != 0 && p.Published.Year() != f.Year {
		return false
	}
	if f.Month != 0 && int(p.Published.Month()) != f.Month {
		return false
	}
	return true
}

// Apply returns the posts that match, in order.
func (f Filter) Apply(posts []Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortByDateDesc orders posts newest first. Posts without a valid date go
// last; ties keep slug order.
func SortByDateDesc(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].Published, posts[j].Published
		if !a.Equal(b) {
			return a.After(b)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

// Page is one slice of a paginated list.
type Page struct {
	Posts []Post
	Page  int // 1-based, clamped to [1, Pages]
	Pages int // at least 1
}

// Paginate returns page number page of posts. Out-of-range pages are
// clamped and a non-positive perPage means DefaultPerPage.
func Paginate(posts []Post, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	pages := max(1, (len(posts)+perPage-1)/perPage)
	page = min(max(page, 1), pages)

	start := (page - 1) * perPage
	end := min(start+perPage, len(posts))
	return Page{Posts: posts[start:end], Page: page, Pages: pages}
}

// monthName is the short English month label used by the archive.
func monthName(m time.Month) string {
	return m.String()[:3]
}
