package table

// MaxCols returns the largest cell count among data rows, 0 if there are none.
func MaxCols(rows []Row) int {
	n := 0

	for _, row := range rows {
		n = max(n, row.Len())
	}

	return n
}

// AddColumn appends an empty cell to every data row.
func AddColumn(rows []Row) []Row {
	return mapRows(rows, func(cells []string) []string {
		return append(cells, "")
	})
}

// RemoveColumn deletes the cell at index from every data row long enough to
// have one. Shorter rows are left as they are.
func RemoveColumn(rows []Row, index int) []Row {
	return mapRows(rows, func(cells []string) []string {
		if index < 0 || index >= len(cells) {
			return cells
		}

		return append(cells[:index], cells[index+1:]...)
	})
}

// PadToMaxCols appends empty cells to every data row until all of them are
// as long as the longest one. Column-index operations that must apply to
// every row expect a padded grid.
func PadToMaxCols(rows []Row) []Row {
	n := MaxCols(rows)

	return mapRows(rows, func(cells []string) []string {
		for len(cells) < n {
			cells = append(cells, "")
		}

		return cells
	})
}

// SwapColumns exchanges the cells at i and j in every data row where both
// indexes exist.
func SwapColumns(rows []Row, i, j int) []Row {
	return mapRows(rows, func(cells []string) []string {
		if i == j || i < 0 || j < 0 || i >= len(cells) || j >= len(cells) {
			return cells
		}

		cells[i], cells[j] = cells[j], cells[i]

		return cells
	})
}

// mapRows copies rows, applying fn to a private copy of each data row's cells.
// Separators pass through.
func mapRows(rows []Row, fn func(cells []string) []string) []Row {
	out := make([]Row, len(rows))

	for i, row := range rows {
		row = row.clone()
		if !row.IsSeparator() {
			row.Cells = fn(row.Cells)
		}

		out[i] = row
	}

	return out
}
