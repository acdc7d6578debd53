package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/jtgis/go-md2html/internal/dateutil"
	"github.com/jtgis/go-md2html/internal/fileutil"
	"github.com/jtgis/go-md2html/internal/frontmatter"
)

// Post is one entry of the post index.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Draft       bool     `json:"draft,omitempty"`

	// Published is Date parsed; zero when Date is not a valid date.
	Published time.Time `json:"-"`
}

// HasTag reports whether the post carries tag exactly.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// resolveDate parses Date into Published. An empty date means today.
func (p *Post) resolveDate(now time.Time) {
	t, err := dateutil.ParsePostDate(p.Date, now)
	if err != nil {
		p.Published = time.Time{}
		return
	}
	p.Published = t
	if p.Date == "" {
		p.Date = t.Format("2006-01-02")
	}
}

// LoadManifest reads a JSON array of posts. Entries without a slug are
// dropped; entries without a title get one from the slug.
func LoadManifest(path string, now time.Time) ([]Post, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided manifest path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var raw []Post
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
	}

	posts := make([]Post, 0, len(raw))
	for _, p := range raw {
		if p.Slug == "" {
			continue
		}
		if p.Title == "" {
			p.Title = frontmatter.TitleFromSlug(p.Slug)
		}
		p.resolveDate(now)
		posts = append(posts, p)
	}
	return posts, nil
}

// WriteManifest writes posts as an indented JSON array.
func WriteManifest(path string, posts []Post) error {
	if posts == nil {
		posts = []Post{}
	}
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return fileutil.WriteFile(path, append(data, '\n'))
}
