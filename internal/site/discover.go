package site

import (
	"context"
	"fmt"
	"time"

	"github.com/jtgis/go-md2html/internal/frontmatter"
)

// Discover builds post records from the front matter of every post in
// src. Missing titles come from the slug and missing dates mean today.
// Posts that cannot be read or parsed are reported to onError, when
// non-nil, and left out.
func Discover(ctx context.Context, src Catalog, now time.Time, onError func(slug string, err error)) ([]Post, error) {
	slugs, err := src.Slugs(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(slugs))
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := src.Fetch(ctx, slug)
		if err != nil {
			report(onError, slug, err)
			continue
		}
		meta, _, err := frontmatter.Split(content)
		if err != nil {
			report(onError, slug, fmt.Errorf("front matter: %w", err))
			continue
		}

		p := postFromMeta(slug, meta)
		p.resolveDate(now)
		posts = append(posts, p)
	}
	return posts, nil
}

// postFromMeta converts front matter to a record, filling the title.
func postFromMeta(slug string, meta frontmatter.Meta) Post {
	p := Post{
		Slug:        slug,
		Title:       meta.Title,
		Date:        string(meta.Date),
		Tags:        []string(meta.Tags),
		Description: meta.Description,
		Image:       meta.Image,
		Draft:       meta.Draft,
	}
	if p.Title == "" {
		p.Title = frontmatter.TitleFromSlug(slug)
	}
	return p
}

func report(onError func(string, error), slug string, err error) {
	if onError != nil {
		onError(slug, err)
	}
}
