package site

import (
	"sort"
	"strings"
	"time"
)

// Sidebar summarizes tags and dates across all posts.
type Sidebar struct {
	Tags    []TagCount
	Archive []YearArchive
}

// TagCount is a tag and the number of posts carrying it.
type TagCount struct {
	Name  string
	Count int
}

// YearArchive counts posts in one year, newest month first.
type YearArchive struct {
	Year   int
	Count  int
	Months []MonthArchive
}

// MonthArchive counts posts in one month.
type MonthArchive struct {
	Month int
	Name  string // "Jan" ... "Dec"
	Count int
}

// BuildSidebar collects tags sorted by name and the archive with years
// and months in descending order. Tags that share a page (same tagSlug)
// are counted together under the first spelling seen. Posts without a
// valid date are not in the archive.
func BuildSidebar(posts []Post) Sidebar {
	tagCounts := make(map[string]int)
	tagNames := make(map[string]string)
	type ym struct{ year, month int }
	monthCounts := make(map[ym]int)
	yearCounts := make(map[int]int)

	for _, p := range posts {
		seen := make(map[string]bool, len(p.Tags))
		for _, t := range p.Tags {
			slug := tagSlug(t)
			if seen[slug] {
				continue
			}
			seen[slug] = true
			if _, ok := tagNames[slug]; !ok {
				tagNames[slug] = t
			}
			tagCounts[slug]++
		}
		if p.Published.IsZero() {
			continue
		}
		y, m := p.Published.Year(), int(p.Published.Month())
		yearCounts[y]++
		monthCounts[ym{y, m}]++
	}

	var sb Sidebar
	for slug, n := range tagCounts {
		sb.Tags = append(sb.Tags, TagCount{Name: tagNames[slug], Count: n})
	}
	sort.Slice(sb.Tags, func(i, j int) bool {
		a, b := strings.ToLower(sb.Tags[i].Name), strings.ToLower(sb.Tags[j].Name)
		if a != b {
			return a < b
		}
		return sb.Tags[i].Name < sb.Tags[j].Name
	})

	for y, n := range yearCounts {
		sb.Archive = append(sb.Archive, YearArchive{Year: y, Count: n})
	}
	sort.Slice(sb.Archive, func(i, j int) bool { return sb.Archive[i].Year > sb.Archive[j].Year })

	for i := range sb.Archive {
		ya := &sb.Archive[i]
		for k, n := range monthCounts {
			if k.year == ya.Year {
				ya.Months = append(ya.Months, MonthArchive{Month: k.month, Count: n})
			}
		}
		sort.Slice(ya.Months, func(a, b int) bool { return ya.Months[a].Month > ya.Months[b].Month })
		for j := range ya.Months {
			ya.Months[j].Name = monthName(time.Month(ya.Months[j].Month))
		}
	}
	return sb
}
