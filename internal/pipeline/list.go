package pipeline

import (
	"regexp"
	"strings"
)

// List item patterns. Items are one line each; indentation is ignored.
var (
	taskItemPattern    = regexp.MustCompile(`^[ \t]*[-*+][ \t]+\[([ xX])\][ \t]+(\S.*)$`)
	bulletItemPattern  = regexp.MustCompile(`^[ \t]*[-*+][ \t]+(\S.*)$`)
	orderedItemPattern = regexp.MustCompile(`^[ \t]*\d+\.[ \t]+(\S.*)$`)
)

// convertTaskLists must run before convertBulletLists, whose pattern also
// accepts "- [x] text".
func convertTaskLists(s string) string {
	return replaceLineRuns(s, taskItemPattern.MatchString, func(run []string) string {
		var b strings.Builder
		b.WriteString(`<ul class="task-list">`)
		for _, line := range run {
			m := taskItemPattern.FindStringSubmatch(line)
			b.WriteString(`<li class="task-list-item"><input type="checkbox" disabled`)
			if m[1] != " " {
				b.WriteString(" checked")
			}
			b.WriteString("> " + m[2] + "</li>")
		}
		b.WriteString("</ul>")
		return b.String()
	})
}

func convertBulletLists(s string) string {
	return replaceLineRuns(s, bulletItemPattern.MatchString, func(run []string) string {
		return renderList("ul", bulletItemPattern, run)
	})
}

// convertOrderedLists discards the author's numbering.
func convertOrderedLists(s string) string {
	return replaceLineRuns(s, orderedItemPattern.MatchString, func(run []string) string {
		return renderList("ol", orderedItemPattern, run)
	})
}

func renderList(tag string, item *regexp.Regexp, run []string) string {
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, line := range run {
		b.WriteString("<li>" + item.FindStringSubmatch(line)[1] + "</li>")
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}
