package table

// DefaultWidths is the width vector for a table without any cell data. It
// renders as "|     |     |", a two-column starting shape.
var DefaultWidths = []int{3, 3}

// ColWidths returns the widest display width of every column across the data
// rows. Separators do not contribute. The result is empty when there are no
// data rows; callers that must render such a table substitute DefaultWidths.
func ColWidths(rows []Row) []int {
	widths := make([]int, MaxCols(rows))

	for _, row := range rows {
		if row.IsSeparator() {
			continue
		}

		for c := range widths {
			widths[c] = max(widths[c], DisplayWidth(row.Cell(c)))
		}
	}

	return widths
}

// ColWidthsFromLines parses lines and returns their column widths, falling
// back to a copy of DefaultWidths when no column has been found.
func ColWidthsFromLines(lines []string) []int {
	widths := ColWidths(SplitTableRows(lines))
	if len(widths) == 0 {
		return append([]int(nil), DefaultWidths...)
	}

	return widths
}
