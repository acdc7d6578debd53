package pipeline

import (
	"strings"
	"testing"
)

func TestGoldmarkRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         GoldmarkOptions
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "heading gets an id",
			input:        "# Hello World",
			wantContains: []string{`<h1 id="hello-world">Hello World</h1>`},
		},
		{
			name:         "image rebased like the lite engine",
			opts:         GoldmarkOptions{ImageBase: "posts/"},
			input:        "![cat](cat.png)",
			wantContains: []string{`src="posts/cat.png"`, `alt="cat"`},
		},
		{
			name:         "links open in new tab",
			input:        "[Go](https://go.dev)",
			wantContains: []string{`target="_blank"`},
		},
		{
			name:         "GFM table",
			input:        "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "soft breaks kept without hard wraps",
			input:        "a\nb",
			wantExcludes: []string{"<br"},
		},
		{
			name:         "hard wraps",
			opts:         GoldmarkOptions{LineBreaks: LineBreaksBreak},
			input:        "a\nb",
			wantContains: []string{"<br"},
		},
		{
			name:         "highlighting uses classes",
			opts:         GoldmarkOptions{HighlightStyle: "monokai"},
			input:        "```go\nx := 1\n```",
			wantContains: []string{`class="chroma"`},
		},
		{
			name:         "raw HTML omitted",
			input:        "<script>alert(1)</script>",
			wantExcludes: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewGoldmarkRenderer(tt.opts).Render(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("output should not contain %q\ngot: %s", exclude, got)
				}
			}
		})
	}
}

func TestIsHighlightStyle(t *testing.T) {
	t.Parallel()

	if !IsHighlightStyle("monokai") {
		t.Error("IsHighlightStyle(monokai) = false, want true")
	}
	if IsHighlightStyle("no-such-style") {
		t.Error("IsHighlightStyle(no-such-style) = true, want false")
	}
}
