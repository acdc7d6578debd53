package pipeline

import (
	"regexp"
	"strings"
)

// Alignment is the horizontal alignment of a table column.
type Alignment int

// Column alignments, read from the divider row.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// style returns the inline style attribute for a cell, or "" for AlignNone.
func (a Alignment) style() string {
	switch a {
	case AlignLeft:
		return ` style="text-align:left"`
	case AlignRight:
		return ` style="text-align:right"`
	case AlignCenter:
		return ` style="text-align:center"`
	default:
		return ""
	}
}

// dividerCellPattern accepts both dash and equals dividers.
var dividerCellPattern = regexp.MustCompile(`^:?(?:-{3,}|={3,}):?$`)

// convertTables turns each header + divider + body run into a <table>.
// The divider decides the column count; header and body cells are paired
// with columns by index, extra cells are dropped and missing ones left empty.
func convertTables(s string) string {
	if !strings.Contains(s, "|") {
		return s
	}
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if i+1 >= len(lines) || !strings.Contains(lines[i], "|") {
			out = append(out, lines[i])
			continue
		}
		aligns, ok := parseDivider(lines[i+1])
		if !ok {
			out = append(out, lines[i])
			continue
		}

		header := splitTableRow(lines[i])
		j := i + 2
		var body [][]string
		for j < len(lines) && strings.TrimSpace(lines[j]) != "" && strings.Contains(lines[j], "|") {
			body = append(body, splitTableRow(lines[j]))
			j++
		}
		out = append(out, "", renderTable(header, aligns, body), "")
		i = j - 1
	}
	return strings.Join(out, "\n")
}

// parseDivider reports the column alignments of a divider row. The row
// must contain a pipe and every cell must be a dash or equals run.
func parseDivider(line string) ([]Alignment, bool) {
	if !strings.Contains(line, "|") {
		return nil, false
	}
	cells := splitTableRow(line)
	aligns := make([]Alignment, len(cells))
	for i, cell := range cells {
		if !dividerCellPattern.MatchString(cell) {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case right:
			aligns[i] = AlignRight
		case left:
			aligns[i] = AlignLeft
		default:
			aligns[i] = AlignNone
		}
	}
	return aligns, true
}

// splitTableRow splits a row on unescaped pipes and trims each cell.
// One leading and one trailing pipe are optional; \| is a literal pipe.
func splitTableRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	if strings.HasSuffix(line, "|") && !strings.HasSuffix(line, `\|`) {
		line = strings.TrimSuffix(line, "|")
	}

	var cells []string
	var cell strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '|':
			cell.WriteByte('|')
			i++
		case line[i] == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteByte(line[i])
		}
	}
	return append(cells, strings.TrimSpace(cell.String()))
}

func renderTable(header []string, aligns []Alignment, body [][]string) string {
	var b strings.Builder
	b.WriteString("<table><thead>")
	writeRow(&b, "th", header, aligns)
	b.WriteString("</thead><tbody>")
	for _, row := range body {
		writeRow(&b, "td", row, aligns)
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func writeRow(b *strings.Builder, tag string, cells []string, aligns []Alignment) {
	b.WriteString("<tr>")
	for i, align := range aligns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString("<" + tag + align.style() + ">" + cell + "</" + tag + ">")
	}
	b.WriteString("</tr>")
}
