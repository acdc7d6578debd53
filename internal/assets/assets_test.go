package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultTemplateSet(t *testing.T) {
	t.Parallel()

	ts, err := NewEmbeddedLoader().LoadTemplateSet(DefaultTemplateSetName)
	if err != nil {
		t.Fatalf("LoadTemplateSet(default) error = %v", err)
	}
	if ts.Name != DefaultTemplateSetName {
		t.Errorf("Name = %q, want %q", ts.Name, DefaultTemplateSetName)
	}
	if !strings.Contains(ts.Layout, `{{block "content" .}}`) {
		t.Error("layout does not declare the content block")
	}
	for file, src := range map[string]string{PostFile: ts.Post, ListFile: ts.List} {
		if !strings.Contains(src, `{{define "content"}}`) {
			t.Errorf("%s does not define the content block", file)
		}
	}
	if _, err := ts.Parse(); err != nil {
		t.Errorf("Parse() error = %v", err)
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS("github")
	if err != nil {
		t.Fatalf("HighlightCSS(github) error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS(github) missing .chroma rules:\n%s", css)
	}

	if _, err := HighlightCSS("no-such-style"); !errors.Is(err, ErrHighlightStyleNotFound) {
		t.Errorf("HighlightCSS(unknown) error = %v, want ErrHighlightStyleNotFound", err)
	}
}

func TestRel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		root   string
		target string
		want   string
	}{
		{root: "../", target: "index.html", want: "../index.html"},
		{root: "../../", target: "posts/a.html", want: "../../posts/a.html"},
		{root: "", target: "tags/go/index.html", want: "tags/go/index.html"},
		{root: "../", target: "/abs/img.png", want: "/abs/img.png"},
		{root: "../", target: "https://example.com/x.png", want: "https://example.com/x.png"},
		{root: "../", target: "#top", want: "#top"},
		{root: "../", target: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			if got := Rel(tt.root, tt.target); got != tt.want {
				t.Errorf("Rel(%q, %q) = %q, want %q", tt.root, tt.target, got, tt.want)
			}
		})
	}
}
