package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// MarkdownExt is the extension of post files.
const MarkdownExt = ".md"

// slugPattern accepts file-name-safe slugs.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Source fetches the raw Markdown of a post by slug.
type Source interface {
	// Fetch returns ErrPostNotFound for unknown slugs.
	Fetch(ctx context.Context, slug string) (string, error)
}

// Catalog is a Source that can also list its posts.
type Catalog interface {
	Source
	Slugs(ctx context.Context) ([]string, error)
}

// DirSource reads <dir>/<slug>.md files.
type DirSource struct {
	dir string
}

// NewDirSource returns a DirSource for dir, which must exist.
func NewDirSource(dir string) (*DirSource, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPostsDirectory, dir)
	}
	return &DirSource{dir: dir}, nil
}

// Dir returns the posts directory.
func (d *DirSource) Dir() string {
	return d.dir
}

// Fetch reads the post file for slug.
func (d *DirSource) Fetch(ctx context.Context, slug string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !validSlug(slug) {
		return "", fmt.Errorf("%w: %q", ErrPostNotFound, slug)
	}

	data, err := os.ReadFile(filepath.Join(d.dir, slug+MarkdownExt)) // #nosec G304 -- slug validated above
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrPostNotFound, slug)
		}
		return "", fmt.Errorf("reading post %q: %w", slug, err)
	}
	return string(data), nil
}

// Slugs lists the .md files directly inside the directory, sorted.
func (d *DirSource) Slugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostsDirectory, err)
	}

	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), MarkdownExt) {
			continue
		}
		slug := strings.TrimSuffix(name, filepath.Ext(name))
		if validSlug(slug) {
			slugs = append(slugs, slug)
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

// MapSource serves posts from memory, keyed by slug.
type MapSource map[string]string

// Fetch returns the stored post.
func (m MapSource) Fetch(ctx context.Context, slug string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	src, ok := m[slug]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPostNotFound, slug)
	}
	return src, nil
}

// Slugs lists the stored slugs, sorted.
func (m MapSource) Slugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(m))
	for slug := range m {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// validSlug rejects empty slugs, path components and traversal.
func validSlug(slug string) bool {
	return slugPattern.MatchString(slug) && !strings.Contains(slug, "..")
}

// Compile-time interface checks.
var (
	_ Catalog = (*DirSource)(nil)
	_ Catalog = MapSource(nil)
)
