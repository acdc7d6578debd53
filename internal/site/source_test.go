package site

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDirSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b-post.md"), "# B")
	writeFile(t, filepath.Join(dir, "a-post.md"), "# A")
	writeFile(t, filepath.Join(dir, "image.png"), "png")
	writeFile(t, filepath.Join(dir, "nested", "c.md"), "# C")
	writeFile(t, filepath.Join(dir, ".hidden.md"), "# H")

	src, err := NewDirSource(dir)
	if err != nil {
		t.Fatalf("NewDirSource() error = %v", err)
	}

	t.Run("slugs", func(t *testing.T) {
		t.Parallel()

		got, err := src.Slugs(context.Background())
		if err != nil {
			t.Fatalf("Slugs() error = %v", err)
		}
		if want := []string{"a-post", "b-post"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Slugs() = %v, want %v", got, want)
		}
	})

	t.Run("fetch", func(t *testing.T) {
		t.Parallel()

		got, err := src.Fetch(context.Background(), "a-post")
		if err != nil || got != "# A" {
			t.Errorf("Fetch(a-post) = %q, %v", got, err)
		}
	})

	t.Run("unknown and unsafe slugs", func(t *testing.T) {
		t.Parallel()

		for _, slug := range []string{"missing", "", "../etc/passwd", "nested/c", "..", ".hidden"} {
			if _, err := src.Fetch(context.Background(), slug); !errors.Is(err, ErrPostNotFound) {
				t.Errorf("Fetch(%q) error = %v, want ErrPostNotFound", slug, err)
			}
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := src.Fetch(ctx, "a-post"); !errors.Is(err, context.Canceled) {
			t.Errorf("Fetch() error = %v, want context.Canceled", err)
		}
	})
}

func TestNewDirSource_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewDirSource(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrPostsDirectory) {
		t.Errorf("NewDirSource() error = %v, want ErrPostsDirectory", err)
	}
}

func TestMapSource(t *testing.T) {
	t.Parallel()

	src := MapSource{"b": "B", "a": "A"}
	slugs, err := src.Slugs(context.Background())
	if err != nil || !reflect.DeepEqual(slugs, []string{"a", "b"}) {
		t.Errorf("Slugs() = %v, %v", slugs, err)
	}
	if _, err := src.Fetch(context.Background(), "c"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Fetch(c) error = %v, want ErrPostNotFound", err)
	}
}
