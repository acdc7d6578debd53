package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("reads entries", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "posts.json")
		writeFile(t, path, `[
  {"slug": "hello-world", "title": "Hello", "date": "2024-03-04", "tags": ["go"], "description": "first"},
  {"slug": "no-title", "date": ""},
  {"title": "no slug"},
  {"slug": "bad-date", "date": "someday"}
]`)

		posts, err := LoadManifest(path, testNow)
		if err != nil {
			t.Fatalf("LoadManifest() error = %v", err)
		}
		if len(posts) != 3 {
			t.Fatalf("len(posts) = %d, want 3 (entry without slug dropped)", len(posts))
		}

		if posts[0].Title != "Hello" || !posts[0].Published.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("posts[0] = %+v", posts[0])
		}
		if posts[1].Title != "no title" {
			t.Errorf("posts[1].Title = %q, want slug fallback", posts[1].Title)
		}
		if posts[1].Date != "2025-06-15" {
			t.Errorf("posts[1].Date = %q, want today", posts[1].Date)
		}
		if !posts[2].Published.IsZero() {
			t.Errorf("posts[2].Published = %v, want zero for invalid date", posts[2].Published)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.json"), testNow)
		if !errors.Is(err, ErrManifestNotFound) {
			t.Errorf("LoadManifest() error = %v, want ErrManifestNotFound", err)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "posts.json")
		writeFile(t, path, `{"slug": "x"}`)
		_, err := LoadManifest(path, testNow)
		if !errors.Is(err, ErrManifestParse) {
			t.Errorf("LoadManifest() error = %v, want ErrManifestParse", err)
		}
	})
}

func TestWriteManifest_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "posts.json")
	in := []Post{{Slug: "a", Title: "A", Date: "2024-01-02", Tags: []string{"x"}}}
	if err := WriteManifest(path, in); err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}

	got, err := LoadManifest(path, testNow)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if len(got) != 1 || got[0].Slug != "a" || got[0].Tags[0] != "x" {
		t.Errorf("round trip = %+v", got)
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := WriteManifest(empty, nil); err != nil {
		t.Fatalf("WriteManifest(nil) error = %v", err)
	}
	data, _ := os.ReadFile(empty)
	if string(data) != "[]\n" {
		t.Errorf("WriteManifest(nil) wrote %q, want []", data)
	}
}

func TestPost_HasTag(t *testing.T) {
	t.Parallel()

	p := Post{Tags: []string{"go", "Web"}}
	if !p.HasTag("go") || p.HasTag("web") || p.HasTag("") {
		t.Errorf("HasTag results wrong for %v", p.Tags)
	}
}
