package table

import "strings"

// FormatSeparatorLine renders a horizontal rule for widths. Each segment is
// two dashes wider than its column to cover the cell padding.
func FormatSeparatorLine(widths []int, indent string) string {
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat("-", w+2)
	}

	return indent + "|" + strings.Join(segments, "+") + "|"
}

// FormatEmptyRow renders a row of blank cells for widths.
func FormatEmptyRow(widths []int, indent string) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		cells[i] = strings.Repeat(" ", w)
	}

	return indent + "| " + strings.Join(cells, " | ") + " |"
}

// FormatRow renders cells padded to widths. Missing cells render blank and
// cells beyond len(widths) are dropped.
func FormatRow(cells []string, widths []int) string {
	padded := make([]string, len(widths))

	for c, w := range widths {
		cell := ""
		if c < len(cells) {
			cell = cells[c]
		}

		padded[c] = cell + strings.Repeat(" ", max(w-DisplayWidth(cell), 0))
	}

	return "| " + strings.Join(padded, " | ") + " |"
}

// FormatRows renders every row with its own indent. indents is parallel to
// rows; a missing entry means no indent.
func FormatRows(rows []Row, widths []int, indents []string) []string {
	lines := make([]string, len(rows))

	for i, row := range rows {
		indent := ""
		if i < len(indents) {
			indent = indents[i]
		}

		switch row.Kind {
		case KindSeparator:
			lines[i] = FormatSeparatorLine(widths, indent)
		case KindData:
			lines[i] = indent + FormatRow(row.Cells, widths)
		}
	}

	return lines
}

// Indents returns the indent of every line.
func Indents(lines []string) []string {
	indents := make([]string, len(lines))
	for i, line := range lines {
		indents[i] = Indent(line)
	}

	return indents
}

// Reformat parses lines as one table and renders it aligned, keeping each
// line's indent. fallback is used as the width vector when the table has no
// columns at all. The widths used are returned with the lines.
func Reformat(lines []string, fallback []int) ([]string, []int) {
	rows := SplitTableRows(lines)

	widths := ColWidths(rows)
	if len(widths) == 0 {
		widths = append([]int(nil), fallback...)
	}

	return FormatRows(rows, widths, Indents(lines)), widths
}
