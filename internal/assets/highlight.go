package assets

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightStylesheet is the site-relative path of the generated
// highlighting stylesheet.
const HighlightStylesheet = "assets/highlight.css"

// HighlightCSS returns the CSS for the class-based markup the goldmark
// engine emits when highlighting with the named chroma style.
func HighlightCSS(name string) (string, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrHighlightStyleNotFound, name)
	}

	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", name, err)
	}
	return buf.String(), nil
}
