package pipeline

import (
	"regexp"
	"strings"
)

// sentinel delimits placeholder tokens. It never survives Normalize, so a
// token found in the working text was always produced by a stage.
const sentinel = "\x00"

// Precompiled regex patterns for normalization.
var (
	// crlfPattern matches Windows (\r\n) and old Mac (\r) line endings.
	crlfPattern = regexp.MustCompile(`\r\n?`)

	// blankRunPattern matches a paragraph break: two or more newlines,
	// tolerating whitespace-only lines in between.
	blankRunPattern = regexp.MustCompile(`\n(?:[ \t]*\n)+`)
)

// Normalize converts line endings to \n and replaces NUL characters with
// U+FFFD so the sentinel byte cannot appear in author content.
func Normalize(src string) string {
	s := crlfPattern.ReplaceAllString(src, "\n")
	return strings.ReplaceAll(s, sentinel, "\uFFFD")
}

// replaceSubmatches is ReplaceAllStringFunc with access to capture groups.
// Groups that did not participate in the match are passed as "".
func replaceSubmatches(re *regexp.Regexp, s string, fn func(m []string) string) string {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if locs == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		b.WriteString(s[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// isolate surrounds a rendered block with blank lines so the paragraph
// wrapper sees it as a chunk of its own.
func isolate(block string) string {
	return "\n\n" + block + "\n\n"
}
