package md2html

import (
	"context"
	"fmt"

	"github.com/jtgis/go-md2html/internal/frontmatter"
	"github.com/jtgis/go-md2html/internal/pipeline"
)

// Converter turns Markdown into HTML fragments with a fixed set of options.
// Create with NewConverter. A Converter is immutable and safe for
// concurrent use.
type Converter struct {
	cfg      converterConfig
	renderer pipeline.Renderer
}

// defaultConverter backs the package-level Convert.
var defaultConverter = mustConverter()

func mustConverter() *Converter {
	c, err := NewConverter()
	if err != nil {
		panic("md2html: default converter: " + err.Error())
	}
	return c
}

// NewConverter creates a Converter. Without options it uses the lite
// engine, the "posts/" image base, inline code and space line breaks.
// Returns ErrInvalidEngine or ErrInvalidHighlightStyle for unknown names.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{cfg: defaultConfig()}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if c.cfg.highlight != "" && !pipeline.IsHighlightStyle(c.cfg.highlight) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, c.cfg.highlight)
	}

	switch c.cfg.engine {
	case EngineGoldmark:
		c.renderer = pipeline.NewGoldmarkRenderer(pipeline.GoldmarkOptions{
			ImageBase:      c.cfg.imageBase,
			LineBreaks:     c.cfg.lineBreaks,
			HighlightStyle: c.cfg.highlight,
		})
	default:
		c.renderer = pipeline.NewLiteRenderer(pipeline.LiteOptions{
			ImageBase:  c.cfg.imageBase,
			InlineCode: c.cfg.inlineCode,
			LineBreaks: c.cfg.lineBreaks,
		})
	}

	return c, nil
}

// Engine returns the renderer the converter uses.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// ImageBase returns the prefix applied to relative image sources.
func (c *Converter) ImageBase() string {
	return c.cfg.imageBase
}

// Convert renders markdown to an HTML fragment. It never fails.
func (c *Converter) Convert(markdown string) string {
	return c.renderer.Render(markdown)
}

// Convert renders markdown with the given options. Options that fail
// validation are ignored and the defaults are used instead.
func Convert(markdown string, opts ...Option) string {
	if len(opts) == 0 {
		return defaultConverter.Convert(markdown)
	}
	c, err := NewConverter(opts...)
	if err != nil {
		c = defaultConverter
	}
	return c.Convert(markdown)
}

// Render splits front matter from doc, converts the body and derives the
// preview fields. It fails only on malformed front matter or when ctx is
// done.
func (c *Converter) Render(ctx context.Context, doc Document) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fm, body, err := frontmatter.Split(doc.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	out := c.Convert(body)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta := toMeta(fm)
	info := previewHTML(out, DefaultExcerptLength)

	res := &Result{
		Slug:    doc.Slug,
		HTML:    out,
		Meta:    meta,
		Title:   firstNonEmpty(meta.Title, info.Title, frontmatter.TitleFromSlug(doc.Slug)),
		Image:   info.Image,
		Excerpt: info.Excerpt,
	}
	if meta.Image != "" {
		res.Image = pipeline.ResolveImageSrc(meta.Image, c.cfg.imageBase)
	}
	return res, nil
}

// toMeta converts parsed front matter to the public type.
func toMeta(m frontmatter.Meta) Meta {
	return Meta{
		Title:       m.Title,
		Date:        string(m.Date),
		Tags:        []string(m.Tags),
		Description: m.Description,
		Image:       m.Image,
		Draft:       m.Draft,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
