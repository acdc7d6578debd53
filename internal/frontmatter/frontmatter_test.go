package frontmatter_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/jtgis/go-md2html/internal/frontmatter"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantMeta frontmatter.Meta
		wantBody string
		wantErr  error
	}{
		{
			name:     "no front matter",
			content:  "# Hello\n\nBody",
			wantBody: "# Hello\n\nBody",
		},
		{
			name:    "full front matter",
			content: "---\ntitle: Hello\ndate: 2024-01-31\ntags: [go, web]\ndescription: About things\nimage: cover.png\ndraft: true\n---\n\n# Hello\n",
			wantMeta: frontmatter.Meta{
				Title:       "Hello",
				Date:        "2024-01-31",
				Tags:        frontmatter.Tags{"go", "web"},
				Description: "About things",
				Image:       "cover.png",
				Draft:       true,
			},
			wantBody: "# Hello\n",
		},
		{
			name:     "quoted date",
			content:  "---\ndate: \"2024-01-31\"\n---\nx",
			wantMeta: frontmatter.Meta{Date: "2024-01-31"},
			wantBody: "x",
		},
		{
			name:     "comma separated tags",
			content:  "---\ntags: go, web ,  \n---\nx",
			wantMeta: frontmatter.Meta{Tags: frontmatter.Tags{"go", "web"}},
			wantBody: "x",
		},
		{
			name:     "block list tags",
			content:  "---\ntags:\n  - go\n  - web\n---\nx",
			wantMeta: frontmatter.Meta{Tags: frontmatter.Tags{"go", "web"}},
			wantBody: "x",
		},
		{
			name:     "unknown keys ignored",
			content:  "---\ntitle: T\nlayout: post\n---\nx",
			wantMeta: frontmatter.Meta{Title: "T"},
			wantBody: "x",
		},
		{
			name:     "empty block",
			content:  "---\n---\nbody",
			wantBody: "body",
		},
		{
			name:     "CRLF line endings",
			content:  "---\r\ntitle: Win\r\n---\r\nbody",
			wantMeta: frontmatter.Meta{Title: "Win"},
			wantBody: "body",
		},
		{
			name:     "byte order mark",
			content:  "\uFEFF---\ntitle: B\n---\nbody",
			wantMeta: frontmatter.Meta{Title: "B"},
			wantBody: "body",
		},
		{
			name:    "unterminated",
			content: "---\ntitle: Oops\n\n# Body",
			wantErr: frontmatter.ErrUnterminated,
		},
		{
			name:    "only opening line",
			content: "---",
			wantErr: frontmatter.ErrUnterminated,
		},
		{
			name:    "invalid YAML",
			content: "---\ntitle: [unclosed\n---\nx",
			wantErr: frontmatter.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, err := frontmatter.Split(tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Split() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Split() unexpected error: %v", err)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if meta.Title != tt.wantMeta.Title ||
				meta.Date != tt.wantMeta.Date ||
				meta.Description != tt.wantMeta.Description ||
				meta.Image != tt.wantMeta.Image ||
				meta.Draft != tt.wantMeta.Draft ||
				!slices.Equal(meta.Tags, tt.wantMeta.Tags) {
				t.Errorf("meta = %+v, want %+v", meta, tt.wantMeta)
			}
		})
	}
}

func TestTitleFromSlug(t *testing.T) {
	t.Parallel()

	if got, want := frontmatter.TitleFromSlug("my-first-post"), "my first post"; got != want {
		t.Errorf("TitleFromSlug() = %q, want %q", got, want)
	}
}
