package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/jtgis/go-md2html/internal/fileutil"
)

// DefaultImageBase is prepended to relative image sources.
const DefaultImageBase = "posts/"

// Attributes shared by every rendered link and image.
const (
	linkAttrs  = ` target="_blank" rel="noopener noreferrer"`
	imageStyle = ` style="max-width:100%;"`
)

const (
	// targetExpr captures a link or image target: words joined by spaces or
	// tabs, none after the first starting with a quote.
	targetExpr = `([^)\s]*(?:[ \t]+[^)\s"][^)\s]*)*)`

	urlExpr = `https?://[^\s<>"'\x00]*[^\s<>"'\x00.,;:!?)\]*_~]`
)

// Precompiled regex patterns for inline syntax.
var (
	// imagePattern matches ![alt](src "title"). The source may contain
	// spaces; a word starting with a quote begins the title.
	imagePattern = regexp.MustCompile(`!\[([^\]\n]*)\]\(\s*` + targetExpr + `(?:\s+"([^"\n]*)")?\s*\)`)

	// linkPattern matches [text](href "title"). The target may be empty.
	linkPattern = regexp.MustCompile(`\[([^\]\n]+)\]\(\s*` + targetExpr + `(?:\s+"([^"\n]*)")?\s*\)`)

	// strikePattern matches ~~text~~ on a single line.
	strikePattern = regexp.MustCompile(`~~([^~\n]+)~~`)

	// Emphasis delimiters must touch non-space text on the inside, which
	// keeps "* item" bullets and "2 * 3" arithmetic untouched.
	boldStarPattern  = regexp.MustCompile(`\*\*([^\s*](?:[^\n]*?[^\s*])?)\*\*`)
	boldUnderPattern = regexp.MustCompile(`__([^\s_](?:[^\n]*?[^\s_])?)__`)
	italicPattern    = regexp.MustCompile(`\*([^\s*](?:[^*\n]*[^\s*])?)\*`)

	// autolinkPattern matches a bare URL. Trailing punctuation and emphasis
	// delimiters are left outside it.
	autolinkPattern = regexp.MustCompile(`(?i:` + urlExpr + `)`)

	// tagOrURLPattern matches one HTML tag or a bare URL. Emphasis and
	// strikethrough skip both, so delimiters inside a URL stay literal.
	tagOrURLPattern = regexp.MustCompile(`</?[A-Za-z][^<>]*>|(?i:` + urlExpr + `)`)

	// anchorOrTagPattern matches a whole <a>...</a> element or a single tag.
	anchorOrTagPattern = regexp.MustCompile(`(?is)<a\b[^>]*>.*?</a>|</?[A-Za-z][^<>]*>`)

	// maskPattern matches a token produced by outside.
	maskPattern = regexp.MustCompile(`\x00T(\d+)\x00`)
)

// ResolveImageSrc rebases a relative image source onto base. Absolute URLs,
// protocol-relative URLs, data URIs, root paths and empty sources are
// returned unchanged.
func ResolveImageSrc(src, base string) string {
	if src == "" || strings.HasPrefix(src, "/") || fileutil.IsAbsoluteURL(src) {
		return src
	}
	return base + src
}

var urlAttrEscaper = strings.NewReplacer(`"`, "%22", " ", "%20", "\t", "%09")

// urlAttr keeps a URL from terminating its attribute and percent-encodes
// whitespace. Everything else is passed through as written.
func urlAttr(u string) string {
	return urlAttrEscaper.Replace(u)
}

func titleAttr(title string) string {
	if title == "" {
		return ""
	}
	return ` title="` + html.EscapeString(title) + `"`
}

// convertImages must run before convertLinks so ![alt](src) is not read as
// a link preceded by "!".
func convertImages(s, base string) string {
	return replaceSubmatches(imagePattern, s, func(m []string) string {
		src := urlAttr(ResolveImageSrc(m[2], base))
		return `<img src="` + src + `" alt="` + html.EscapeString(m[1]) + `"` +
			titleAttr(m[3]) + imageStyle + ">"
	})
}

func convertLinks(s string) string {
	return replaceSubmatches(linkPattern, s, func(m []string) string {
		return `<a href="` + urlAttr(m[2]) + `"` + titleAttr(m[3]) + linkAttrs + ">" + m[1] + "</a>"
	})
}

func convertStrikethrough(s string) string {
	return outside(tagOrURLPattern, s, func(text string) string {
		return strikePattern.ReplaceAllString(text, "<del>$1</del>")
	})
}

// convertEmphasis handles bold before italic so ** is never split into two
// single-star delimiters.
func convertEmphasis(s string) string {
	return outside(tagOrURLPattern, s, func(text string) string {
		text = boldStarPattern.ReplaceAllString(text, "<strong>$1</strong>")
		text = boldUnderPattern.ReplaceAllString(text, "<strong>$1</strong>")
		return italicPattern.ReplaceAllString(text, "<em>$1</em>")
	})
}

// convertAutolinks links bare URLs that are not part of markup and not
// directly after a quote or an equals sign.
func convertAutolinks(s string) string {
	return outside(anchorOrTagPattern, s, func(text string) string {
		locs := autolinkPattern.FindAllStringIndex(text, -1)
		if locs == nil {
			return text
		}
		var b strings.Builder
		last := 0
		for _, loc := range locs {
			if loc[0] > 0 && strings.ContainsRune(`"'=`, rune(text[loc[0]-1])) {
				continue
			}
			u := html.EscapeString(text[loc[0]:loc[1]])
			b.WriteString(text[last:loc[0]])
			b.WriteString(`<a href="` + u + `"` + linkAttrs + ">" + u + "</a>")
			last = loc[1]
		}
		b.WriteString(text[last:])
		return b.String()
	})
}

// outside applies fn to s with every match of markup masked out, so fn only
// ever rewrites the text in between.
func outside(markup *regexp.Regexp, s string, fn func(string) string) string {
	var saved []string
	masked := markup.ReplaceAllStringFunc(s, func(tag string) string {
		saved = append(saved, tag)
		return sentinel + "T" + strconv.Itoa(len(saved)-1) + sentinel
	})
	if saved == nil {
		return fn(s)
	}
	return replaceSubmatches(maskPattern, fn(masked), func(m []string) string {
		i, err := strconv.Atoi(m[1])
		if err != nil || i >= len(saved) {
			return ""
		}
		return saved[i]
	})
}
