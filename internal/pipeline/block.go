package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// headingPatterns[n-1] matches an ATX heading of level n.
var headingPatterns = func() [6]*regexp.Regexp {
	var ps [6]*regexp.Regexp
	for n := 1; n <= 6; n++ {
		ps[n-1] = regexp.MustCompile(`(?m)^#{` + strconv.Itoa(n) + `}[ \t]+(\S.*?)[ \t]*$`)
	}
	return ps
}()

var (
	// thematicBreakPattern matches ---, *** or ___ (spaces allowed between).
	thematicBreakPattern = regexp.MustCompile(`(?m)^ {0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)

	// quoteMarkerPattern matches one leading blockquote marker.
	quoteMarkerPattern = regexp.MustCompile(`^ {0,3}> ?`)
)

// convertHeadings rewrites headings from level 6 down to 1.
func convertHeadings(s string) string {
	for n := 6; n >= 1; n-- {
		tag := "h" + strconv.Itoa(n)
		s = replaceSubmatches(headingPatterns[n-1], s, func(m []string) string {
			return isolate("<" + tag + ">" + m[1] + "</" + tag + ">")
		})
	}
	return s
}

func convertThematicBreaks(s string) string {
	return thematicBreakPattern.ReplaceAllString(s, "\n\n<hr>\n\n")
}

// convertBlockquotes folds each run of ">" lines into one blockquote.
// Nested markers are stripped; the quote is rendered flat. Blank quoted
// lines are dropped and the rest joined with sep.
func convertBlockquotes(s, sep string) string {
	if !strings.Contains(s, ">") {
		return s
	}
	return replaceLineRuns(s, quoteMarkerPattern.MatchString, func(run []string) string {
		inner := make([]string, 0, len(run))
		for _, line := range run {
			for quoteMarkerPattern.MatchString(line) {
				line = quoteMarkerPattern.ReplaceAllString(line, "")
			}
			if line = strings.TrimSpace(line); line != "" {
				inner = append(inner, line)
			}
		}
		return "<blockquote>" + strings.Join(inner, sep) + "</blockquote>"
	})
}

// replaceLineRuns replaces every maximal run of consecutive lines accepted
// by match with render(run), isolated as a block of its own.
func replaceLineRuns(s string, match func(string) bool, render func(run []string) string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); {
		if !match(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}
		j := i
		for j < len(lines) && match(lines[j]) {
			j++
		}
		out = append(out, "", render(lines[i:j]), "")
		i = j
	}
	return strings.Join(out, "\n")
}
