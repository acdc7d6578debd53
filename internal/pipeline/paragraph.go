package pipeline

import (
	"regexp"
	"strings"
)

// blockStartPattern matches chunks that already carry block-level markup.
var blockStartPattern = regexp.MustCompile(`^<(?:h[1-6]|ul|ol|pre|blockquote|table|img|p|hr|div)\b`)

// wrapParagraphs wraps every chunk that is not already a block in <p>,
// joining its lines with sep. Chunks are separated by a single newline in
// the output, so running it twice changes nothing.
func wrapParagraphs(s, sep string) string {
	chunks := blankRunPattern.Split(s, -1)
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if blockStartPattern.MatchString(chunk) || strings.HasPrefix(chunk, blockTokenPrefix) {
			out = append(out, chunk)
			continue
		}
		lines := strings.Split(chunk, "\n")
		for i := range lines {
			lines[i] = strings.TrimSpace(lines[i])
		}
		out = append(out, "<p>"+strings.Join(lines, sep)+"</p>")
	}
	return strings.Join(out, "\n")
}
