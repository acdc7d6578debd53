package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Token kinds for protected code regions.
const (
	kindBlock  = "B"
	kindInline = "I"
)

// blockTokenPrefix starts every fenced-code token.
const blockTokenPrefix = sentinel + kindBlock

var (
	// fencePattern matches a fenced code block. Group 1 is the language tag,
	// group 2 the body (absent for an empty block). The body group is lazy
	// so an empty block closes on the very next fence line. A fence without
	// a closing line never matches and stays literal text.
	fencePattern = regexp.MustCompile("(?ms)^ {0,3}```[ \\t]*([\\w+#.-]*)[^\\n]*\\n(?:(.*?)\\n)?? {0,3}```[ \\t]*$")

	// inlineCodePattern matches single-backtick code on one line.
	inlineCodePattern = regexp.MustCompile("`([^`\\n]+)`")

	// tokenPattern matches a placeholder token produced by codeTable.
	tokenPattern = regexp.MustCompile("\\x00([BI])(\\d+)\\x00")
)

type codeEntry struct {
	Lang   string
	Code   string
	Inline bool
}

// codeTable holds the code regions lifted out of one conversion.
// A table belongs to a single Render call and is never shared.
type codeTable struct {
	entries []codeEntry
}

func (t *codeTable) add(e codeEntry) string {
	kind := kindBlock
	if e.Inline {
		kind = kindInline
	}
	t.entries = append(t.entries, e)
	return sentinel + kind + strconv.Itoa(len(t.entries)-1) + sentinel
}

// extractFences replaces every fenced block with an isolated block token.
func (t *codeTable) extractFences(s string) string {
	return replaceSubmatches(fencePattern, s, func(m []string) string {
		return isolate(t.add(codeEntry{Lang: m[1], Code: m[2]}))
	})
}

// extractInline replaces inline code spans with inline tokens.
func (t *codeTable) extractInline(s string) string {
	return replaceSubmatches(inlineCodePattern, s, func(m []string) string {
		return t.add(codeEntry{Code: m[1], Inline: true})
	})
}

// restore swaps tokens back for escaped code markup. Unknown indexes
// render as nothing.
func (t *codeTable) restore(s string) string {
	if !strings.Contains(s, sentinel) {
		return s
	}
	return replaceSubmatches(tokenPattern, s, func(m []string) string {
		i, err := strconv.Atoi(m[2])
		if err != nil || i >= len(t.entries) {
			return ""
		}
		e := t.entries[i]
		if m[1] == kindInline {
			return "<code>" + html.EscapeString(e.Code) + "</code>"
		}
		if e.Lang == "" {
			return "<pre><code>" + html.EscapeString(e.Code) + "</code></pre>"
		}
		return `<pre><code class="language-` + html.EscapeString(e.Lang) + `">` +
			html.EscapeString(e.Code) + "</code></pre>"
	})
}
