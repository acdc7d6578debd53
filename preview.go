package md2html

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jtgis/go-md2html/internal/pipeline"
)

// DefaultExcerptLength is the excerpt size, in user-perceived characters,
// used by Render and Preview.
const DefaultExcerptLength = 200

// excerptEllipsis marks a truncated excerpt.
const excerptEllipsis = "..."

// PreviewInfo is what a listing shows for a post.
type PreviewInfo struct {
	Title   string // text of the first level-1 heading
	Image   string // src of the first image
	Excerpt string
}

// Preview renders markdown with the lite engine and returns its first
// heading, first image and excerpt. Relative image sources are resolved
// against imageBase the same way the converter resolves them.
func Preview(markdown, imageBase string) PreviewInfo {
	r := pipeline.NewLiteRenderer(pipeline.LiteOptions{
		ImageBase:  imageBase,
		InlineCode: true,
	})
	return previewHTML(r.Render(markdown), DefaultExcerptLength)
}

// Excerpt returns the paragraph text of an HTML fragment, whitespace
// collapsed and cut to max grapheme clusters with a trailing "...".
// Code blocks are skipped. A max of zero or less disables truncation.
func Excerpt(fragment string, max int) string {
	return previewHTML(fragment, max).Excerpt
}

// previewHTML walks the fragment once, collecting preview fields.
func previewHTML(fragment string, max int) PreviewInfo {
	var info PreviewInfo

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return info
	}

	var paragraphs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Pre, atom.Script, atom.Style:
				return
			case atom.Img:
				if info.Image == "" {
					info.Image = attrValue(n, "src")
				}
			case atom.H1:
				if info.Title == "" {
					info.Title = collapseSpace(textContent(n))
				}
			case atom.P:
				if t := collapseSpace(textContent(n)); t != "" {
					paragraphs = append(paragraphs, t)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	info.Excerpt = truncateGraphemes(strings.Join(paragraphs, " "), max)
	return info
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateGraphemes keeps the first max grapheme clusters of s so that
// combining marks and emoji sequences are never split.
func truncateGraphemes(s string, max int) string {
	if max <= 0 || uniseg.GraphemeClusterCount(s) <= max {
		return s
	}

	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n := 0; n < max && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + excerptEllipsis
}
