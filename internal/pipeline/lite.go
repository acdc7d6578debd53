package pipeline

import "strings"

// LineBreaks selects how single newlines inside a paragraph are rendered.
type LineBreaks int

const (
	// LineBreaksSpace collapses a newline into a space.
	LineBreaksSpace LineBreaks = iota
	// LineBreaksBreak renders a newline as <br>.
	LineBreaksBreak
)

// separator returns the string that joins lines of a paragraph or quote.
func (lb LineBreaks) separator() string {
	if lb == LineBreaksBreak {
		return "<br>"
	}
	return " "
}

// String returns the config spelling of the policy.
func (lb LineBreaks) String() string {
	if lb == LineBreaksBreak {
		return "break"
	}
	return "space"
}

// Renderer converts Markdown source into an HTML fragment.
type Renderer interface {
	Render(src string) string
}

// Compile-time interface implementation checks.
var (
	_ Renderer = (*LiteRenderer)(nil)
	_ Renderer = (*GoldmarkRenderer)(nil)
)

// LiteOptions configures a LiteRenderer.
type LiteOptions struct {
	ImageBase  string     // prefix for relative image sources
	InlineCode bool       // protect `code` spans
	LineBreaks LineBreaks // newline policy inside paragraphs and quotes
}

// DefaultLiteOptions returns the options used when none are given.
func DefaultLiteOptions() LiteOptions {
	return LiteOptions{
		ImageBase:  DefaultImageBase,
		InlineCode: true,
		LineBreaks: LineBreaksSpace,
	}
}

// stage is one named rewrite pass.
type stage struct {
	name  string
	apply func(string) string
}

// LiteRenderer converts a restricted Markdown dialect with ordered regex
// passes. It keeps no state between calls and is safe for concurrent use.
type LiteRenderer struct {
	opts   LiteOptions
	stages []stage
}

// NewLiteRenderer builds a LiteRenderer for the given options.
func NewLiteRenderer(opts LiteOptions) *LiteRenderer {
	sep := opts.LineBreaks.separator()
	base := opts.ImageBase

	return &LiteRenderer{
		opts: opts,
		stages: []stage{
			{"tables", convertTables},
			{"images", func(s string) string { return convertImages(s, base) }},
			{"links", convertLinks},
			{"strikethrough", convertStrikethrough},
			{"emphasis", convertEmphasis},
			{"autolinks", convertAutolinks},
			{"headings", convertHeadings},
			{"thematic-breaks", convertThematicBreaks},
			{"blockquotes", func(s string) string { return convertBlockquotes(s, sep) }},
			{"task-lists", convertTaskLists},
			{"bullet-lists", convertBulletLists},
			{"ordered-lists", convertOrderedLists},
			{"paragraphs", func(s string) string { return wrapParagraphs(s, sep) }},
		},
	}
}

// Options returns the options the renderer was built with.
func (r *LiteRenderer) Options() LiteOptions {
	return r.opts
}

// Render converts src to an HTML fragment. It never fails: text that does
// not match any construct comes out as paragraph text.
func (r *LiteRenderer) Render(src string) string {
	codes := &codeTable{}

	s := Normalize(src)
	s = codes.extractFences(s)
	if r.opts.InlineCode {
		s = codes.extractInline(s)
	}
	for _, st := range r.stages {
		s = st.apply(s)
	}
	return strings.TrimSpace(codes.restore(s))
}

// stageNames lists the pass order.
func (r *LiteRenderer) stageNames() []string {
	names := make([]string, len(r.stages))
	for i, st := range r.stages {
		names[i] = st.name
	}
	return names
}
