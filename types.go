package md2html

import (
	"fmt"
	"strings"

	"github.com/jtgis/go-md2html/internal/pipeline"
)

// Engine selects the Markdown renderer.
type Engine string

// Available engines.
const (
	EngineLite     Engine = "lite"
	EngineGoldmark Engine = "goldmark"
)

// Engines lists the engine names accepted by ParseEngine.
func Engines() []string {
	return []string{string(EngineLite), string(EngineGoldmark)}
}

// ParseEngine maps a config or flag value to an Engine. Empty means lite.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(EngineLite):
		return EngineLite, nil
	case string(EngineGoldmark):
		return EngineGoldmark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEngine, name)
}

// LineBreaks selects how single newlines inside a paragraph are rendered.
type LineBreaks = pipeline.LineBreaks

// Line break policies.
const (
	LineBreaksSpace = pipeline.LineBreaksSpace // newline becomes a space
	LineBreaksBreak = pipeline.LineBreaksBreak // newline becomes <br>
)

// ParseLineBreaks maps "space" or "break" to a policy. Empty means space.
func ParseLineBreaks(name string) (LineBreaks, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "space":
		return LineBreaksSpace, nil
	case "break":
		return LineBreaksBreak, nil
	}
	return LineBreaksSpace, fmt.Errorf("%w: %q (must be space or break)", ErrInvalidLineBreaks, name)
}

// DefaultImageBase is prefixed to relative image sources.
const DefaultImageBase = pipeline.DefaultImageBase

// Document is a Markdown post, optionally starting with YAML front matter.
type Document struct {
	Slug   string // file name without extension, used for the fallback title
	Source string
}

// Meta is the front matter a document declared.
type Meta struct {
	Title       string
	Date        string
	Tags        []string
	Description string
	Image       string
	Draft       bool
}

// Result is a rendered document.
type Result struct {
	Slug    string
	HTML    string // fragment, no <html> or <body>
	Meta    Meta
	Title   string // front matter title, else first heading, else slug
	Image   string // front matter image, else first image; resolved against the image base
	Excerpt string // plain text from the first paragraphs
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the options a Converter was built with.
type converterConfig struct {
	engine     Engine
	imageBase  string
	inlineCode bool
	lineBreaks LineBreaks
	highlight  string
}

// defaultConfig returns the lite engine with the default image base.
func defaultConfig() converterConfig {
	return converterConfig{
		engine:     EngineLite,
		imageBase:  DefaultImageBase,
		inlineCode: true,
		lineBreaks: LineBreaksSpace,
	}
}

// WithEngine selects the renderer.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithImageBase sets the prefix for relative image sources. An empty base
// leaves sources unchanged.
func WithImageBase(base string) Option {
	return func(c *Converter) {
		c.cfg.imageBase = base
	}
}

// WithInlineCode enables or disables `code` span handling in the lite engine.
func WithInlineCode(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.inlineCode = enabled
	}
}

// WithLineBreaks sets the newline policy inside paragraphs.
func WithLineBreaks(lb LineBreaks) Option {
	return func(c *Converter) {
		c.cfg.lineBreaks = lb
	}
}

// WithHighlightStyle enables chroma highlighting in the goldmark engine.
// The lite engine ignores it.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlight = name
	}
}
