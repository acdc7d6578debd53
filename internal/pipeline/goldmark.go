package pipeline

import (
	"bytes"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// GoldmarkOptions configures a GoldmarkRenderer.
type GoldmarkOptions struct {
	ImageBase      string     // prefix for relative image sources
	LineBreaks     LineBreaks // LineBreaksBreak enables hard wraps
	HighlightStyle string     // chroma style name; empty disables highlighting
}

// GoldmarkRenderer converts full GitHub Flavored Markdown using goldmark.
// Its output goes through the same image and link conventions as the lite
// engine. Raw HTML in the source is omitted.
type GoldmarkRenderer struct {
	md        goldmark.Markdown
	imageBase string
}

// IsHighlightStyle reports whether name is a registered chroma style.
func IsHighlightStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM and footnotes.
func NewGoldmarkRenderer(opts GoldmarkOptions) *GoldmarkRenderer {
	exts := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if opts.HighlightStyle != "" {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.HighlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // pairs with the generated site stylesheet
			),
		))
	}

	rendererOpts := []renderer.Option{}
	if opts.LineBreaks == LineBreaksBreak {
		rendererOpts = append(rendererOpts, gmhtml.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkRenderer{md: md, imageBase: opts.ImageBase}
}

// Render converts src to an HTML fragment. A goldmark failure degrades to
// the escaped source in a single paragraph.
func (r *GoldmarkRenderer) Render(src string) string {
	src = Normalize(src)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}

	out, err := RewriteImagePaths(buf.String(), r.imageBase)
	if err != nil {
		out = buf.String()
	}
	return strings.TrimSpace(out)
}
