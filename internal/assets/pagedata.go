package assets

import "html/template"

// PageData is the value every template receives.
type PageData struct {
	Lang        string
	SiteTitle   string
	Title       string
	Description string
	Root        string       // path back to the site root, e.g. "../"
	CSS         template.CSS // inline stylesheet, used by standalone pages
	Stylesheets []string     // site-relative stylesheet links
	Content     template.HTML

	Post       *PostView
	Heading    string
	Posts      []PostView
	Pagination *Pagination
	Sidebar    *Sidebar
}

// PostView is a post as shown on its own page or in a listing.
type PostView struct {
	Slug        string
	Title       string
	URL         string
	Date        string
	Description string
	Excerpt     string
	Image       string
	Tags        []Link
}

// Link is a named site-relative target.
type Link struct {
	Name  string
	URL   string
	Count int
}

// Pagination describes the position of a list page.
type Pagination struct {
	Page    int
	Pages   int
	PrevURL string
	NextURL string
	Links   []Link // one per page; the current page has no URL
}

// Sidebar lists tags and the archive tree.
type Sidebar struct {
	Tags    []Link
	Archive []ArchiveYear
}

// ArchiveYear groups archive month links under a year.
type ArchiveYear struct {
	Year   int
	URL    string
	Count  int
	Months []Link
}
