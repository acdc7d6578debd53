package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// customAssets returns a base path holding a "serif" style, a "default"
// style override, a complete "blog" template set and a partial "half" set.
func customAssets(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/serif.css", "body { font-family: serif; }")
	writeAsset(t, dir, "styles/default.css", "/* custom default */")
	writeAsset(t, dir, "templates/blog/"+LayoutFile, `<main>{{block "content" .}}{{.Content}}{{end}}</main>`)
	writeAsset(t, dir, "templates/blog/"+PostFile, `{{define "content"}}custom post{{end}}`)
	writeAsset(t, dir, "templates/blog/"+ListFile, `{{define "content"}}custom list{{end}}`)
	writeAsset(t, dir, "templates/half/"+LayoutFile, "layout only")
	return dir
}

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	embedded, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver(\"\") error = %v", err)
	}
	if embedded.HasCustomLoader() {
		t.Error("empty path should use embedded assets only")
	}

	custom, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver(dir) error = %v", err)
	}
	if !custom.HasCustomLoader() {
		t.Error("directory should enable the custom loader")
	}

	if _, err := NewAssetResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("missing directory error = %v, want ErrInvalidBasePath", err)
	}
}

func TestAssetResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	custom, err := NewAssetResolver(customAssets(t))
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	embedded, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name     string
		resolver *AssetResolver
		style    string
		want     string // substring
		wantErr  error
	}{
		{name: "embedded default", resolver: embedded, style: "default", want: "font-family"},
		{name: "custom only", resolver: custom, style: "serif", want: "serif"},
		{name: "custom overrides embedded", resolver: custom, style: "default", want: "custom default"},
		{name: "missing everywhere", resolver: custom, style: "mono", wantErr: ErrStyleNotFound},
		{name: "invalid name not fallen back", resolver: custom, style: "../x", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.resolver.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.style, err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("LoadStyle(%q) = %q, want it to contain %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestAssetResolver_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(customAssets(t))
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name    string
		set     string
		want    string // substring of Post
		wantErr error
	}{
		{name: "custom set", set: "blog", want: "custom post"},
		{name: "falls back to embedded", set: DefaultTemplateSetName, want: "post-title"},
		{name: "incomplete custom set is an error", set: "half", wantErr: ErrIncompleteTemplateSet},
		{name: "missing everywhere", set: "nope", wantErr: ErrTemplateSetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts, err := resolver.LoadTemplateSet(tt.set)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplateSet(%q) error = %v, want %v", tt.set, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplateSet(%q) error = %v", tt.set, err)
			}
			if !strings.Contains(ts.Post, tt.want) {
				t.Errorf("Post template = %q, want it to contain %q", ts.Post, tt.want)
			}
		})
	}
}

func TestAssetResolver_Templates(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(customAssets(t))
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tmpl, err := resolver.Templates("blog")
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	var buf strings.Builder
	if err := tmpl.ExecuteList(&buf, &PageData{}); err != nil {
		t.Fatalf("ExecuteList() error = %v", err)
	}
	if got := buf.String(); got != "<main>custom list</main>" {
		t.Errorf("ExecuteList() = %q", got)
	}

	if _, err := resolver.Templates("half"); !errors.Is(err, ErrIncompleteTemplateSet) {
		t.Errorf("Templates(half) error = %v, want ErrIncompleteTemplateSet", err)
	}
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{err: ErrStyleNotFound, want: true},
		{err: fmt.Errorf("%w: %q", ErrTemplateSetNotFound, "x"), want: true},
		{err: ErrIncompleteTemplateSet},
		{err: ErrInvalidAssetName},
		{err: ErrAssetRead},
	}

	for _, tt := range tests {
		if got := isNotFoundError(tt.err); got != tt.want {
			t.Errorf("isNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
