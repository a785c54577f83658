package command

import (
	"strings"

	"orglite/internal/table"
)

// trace logs the region a command works on.
func (h *Handler) trace(name string, doc Document, r table.Range) {
	h.log.With("command", name).Debug("table command",
		"line", doc.Cursor.Line,
		"offset", doc.Cursor.Offset,
		"start", r.Start,
		"end", r.End,
	)
}

// relocate maps the cell holding probe in oldText to an offset inside the
// same cell of newText, the reformatted version of that line. A probe past
// the last pipe maps to the end of newText, any other probe outside the
// cells to 0.
func relocate(oldText, newText string, probe int) int {
	if cell, ok := table.CellIndexAt(oldText, probe); ok {
		return table.CellOffset(newText, cell)
	}

	if last := strings.LastIndexByte(oldText, '|'); last != -1 && probe >= last {
		return len(newText)
	}

	return 0
}

// Format aligns the table under the cursor and appends an empty row, placing
// the cursor in its first cell.
func (h *Handler) Format(doc Document) (Edit, error) {
	r, err := h.locate(doc)
	if err != nil {
		return Edit{}, err
	}

	h.trace(NameFormat, doc, r)

	formatted, widths := table.Reformat(r.Lines(doc.Lines), h.opts.DefaultWidths)
	empty := table.FormatEmptyRow(widths, table.Indent(doc.Lines[r.End]))

	return Edit{
		Start:  r.Start,
		End:    r.End,
		Lines:  append(formatted, empty),
		Cursor: table.Position{Line: r.End + 1, Offset: table.CellOffset(empty, 0)},
	}, nil
}

// DeleteColumn removes the column under the cursor from every row. The
// cursor stays on its line, in the same column or the new last one. When no
// column is left the whole table is deleted.
func (h *Handler) DeleteColumn(doc Document) (Edit, error) {
	r, err := h.locate(doc)
	if err != nil {
		return Edit{}, err
	}

	h.trace(NameDeleteColumn, doc, r)

	cur := doc.Cursor
	lines := r.Lines(doc.Lines)
	cell, _ := table.CellIndexAt(doc.Lines[cur.Line], cur.Offset)

	rows := table.RemoveColumn(table.SplitTableRows(lines), cell)

	widths := table.ColWidths(rows)
	if len(widths) == 0 {
		remaining := len(doc.Lines) - r.Len()

		return Edit{
			Start:  r.Start,
			End:    r.End,
			Lines:  []string{},
			Cursor: table.Position{Line: min(r.Start, max(remaining-1, 0))},
		}, nil
	}

	formatted := table.FormatRows(rows, widths, table.Indents(lines))
	rowText := formatted[cur.Line-r.Start]
	target := min(cell, len(table.SplitCells(rowText))-1)

	return Edit{
		Start:  r.Start,
		End:    r.End,
		Lines:  formatted,
		Cursor: table.Position{Line: cur.Line, Offset: table.CellOffset(rowText, target)},
	}, nil
}

// MoveColumn swaps the column under the cursor with its neighbour, left for
// dir -1 and right for dir 1. Rows are padded to the same length first. The
// cursor follows the moved column. Moving past either edge is ErrNoChange.
func (h *Handler) MoveColumn(doc Document, dir int) (Edit, error) {
	if dir != -1 && dir != 1 {
		return Edit{}, ErrInvalidDirection
	}

	r, err := h.locate(doc)
	if err != nil {
		return Edit{}, err
	}

	name := NameMoveColumnRight
	if dir < 0 {
		name = NameMoveColumnLeft
	}

	h.trace(name, doc, r)

	cur := doc.Cursor
	lines := r.Lines(doc.Lines)
	rows := table.PadToMaxCols(table.SplitTableRows(lines))
	cell, _ := table.CellIndexAt(doc.Lines[cur.Line], cur.Offset)

	if (dir < 0 && cell <= 0) || (dir > 0 && cell >= table.MaxCols(rows)-1) {
		return Edit{}, ErrNoChange
	}

	rows = table.SwapColumns(rows, cell, cell+dir)
	formatted := table.FormatRows(rows, table.ColWidths(rows), table.Indents(lines))

	return Edit{
		Start:  r.Start,
		End:    r.End,
		Lines:  formatted,
		Cursor: table.Position{Line: cur.Line, Offset: table.CellOffset(formatted[cur.Line-r.Start], cell+dir)},
	}, nil
}

// Tab aligns the table and moves to the next cell. Past the last cell an
// empty row is appended and the cursor enters it. On a separator line the
// line is redrawn as a rule and an empty row is inserted below it.
func (h *Handler) Tab(doc Document) (Edit, error) {
	r, err := h.locate(doc)
	if err != nil {
		return Edit{}, err
	}

	h.trace(NameTab, doc, r)

	cur := doc.Cursor
	line := doc.Lines[cur.Line]

	if table.IsSeparatorLine(line) {
		widths := h.latestWidths(doc.Lines, cur.Line)
		indent := table.Indent(line)

		return Edit{
			Start: cur.Line,
			End:   cur.Line,
			Lines: []string{
				table.FormatSeparatorLine(widths, indent),
				table.FormatEmptyRow(widths, indent),
			},
			Cursor: table.Position{Line: cur.Line + 1, Offset: len(indent) + 2},
		}, nil
	}

	formatted, _ := table.Reformat(r.Lines(doc.Lines), h.opts.DefaultWidths)
	edited := Apply(doc, Edit{Start: r.Start, End: r.End, Lines: formatted})
	ch := relocate(line, edited.Lines[cur.Line], cur.Offset)

	if next, ok := table.NextCell(edited.Lines, cur.Line, ch, r.Start, r.End); ok {
		return Edit{Start: r.Start, End: r.End, Lines: formatted, Cursor: next}, nil
	}

	widths := h.latestWidths(edited.Lines, r.End)
	empty := table.FormatEmptyRow(widths, table.Indent(edited.Lines[r.End]))

	return Edit{
		Start:  r.Start,
		End:    r.End,
		Lines:  append(formatted, empty),
		Cursor: table.Position{Line: r.End + 1, Offset: table.CellOffset(empty, 0)},
	}, nil
}

// ShiftTab aligns the table and moves to the previous cell. In the first
// cell of the table the cursor stays where it is.
func (h *Handler) ShiftTab(doc Document) (Edit, error) {
	r, err := h.locate(doc)
	if err != nil {
		return Edit{}, err
	}

	h.trace(NameShiftTab, doc, r)

	cur := doc.Cursor
	formatted, _ := table.Reformat(r.Lines(doc.Lines), h.opts.DefaultWidths)
	edited := Apply(doc, Edit{Start: r.Start, End: r.End, Lines: formatted})
	newLine := edited.Lines[cur.Line]
	ch := relocate(doc.Lines[cur.Line], newLine, cur.Offset-1)

	cursor, ok := table.PrevCell(edited.Lines, cur.Line, ch, r.Start)
	if !ok {
		cursor = table.Position{Line: cur.Line, Offset: min(cur.Offset, len(newLine))}
	}

	return Edit{Start: r.Start, End: r.End, Lines: formatted, Cursor: cursor}, nil
}

// Enter on the first row of a table adds a column and puts the cursor in
// it. On any other row it aligns the table and moves down one row in the
// same column, appending an empty row below the last one.
func (h *Handler) Enter(doc Document) (Edit, error) {
	r, err := h.locate(doc)
	if err != nil {
		return Edit{}, err
	}

	h.trace(NameEnter, doc, r)

	cur := doc.Cursor
	lines := r.Lines(doc.Lines)
	cell, _ := table.CellIndexAt(doc.Lines[cur.Line], cur.Offset)

	if cur.Line == r.Start {
		rows := table.AddColumn(table.SplitTableRows(lines))
		formatted := table.FormatRows(rows, h.widthsOrDefault(table.ColWidths(rows)), table.Indents(lines))
		header := formatted[0]

		return Edit{
			Start:  r.Start,
			End:    r.End,
			Lines:  formatted,
			Cursor: table.Position{Line: cur.Line, Offset: max(len(header)-2, 0)},
		}, nil
	}

	formatted, widths := table.Reformat(lines, h.opts.DefaultWidths)

	if cur.Line == r.End {
		empty := table.FormatEmptyRow(widths, table.Indent(doc.Lines[cur.Line]))

		return Edit{
			Start:  r.Start,
			End:    r.End,
			Lines:  append(formatted, empty),
			Cursor: table.Position{Line: cur.Line + 1, Offset: table.CellOffset(empty, cell)},
		}, nil
	}

	cursor := table.Position{Line: cur.Line, Offset: min(cur.Offset, len(formatted[cur.Line-r.Start]))}

	next := formatted[cur.Line+1-r.Start]
	if cell < strings.Count(next, "|")-1 {
		cursor = table.Position{Line: cur.Line + 1, Offset: table.CellOffset(next, cell)}
	}

	return Edit{Start: r.Start, End: r.End, Lines: formatted, Cursor: cursor}, nil
}

// CellFocus reports whether the cursor sits between the first and the last
// pipe of a table line, where Tab means "next cell".
func CellFocus(doc Document) bool {
	if checkCursor(doc) != nil {
		return false
	}

	line := doc.Lines[doc.Cursor.Line]
	if !table.IsTableLine(line) {
		return false
	}

	first := strings.IndexByte(line, '|')
	last := strings.LastIndexByte(line, '|')

	return doc.Cursor.Offset > first && doc.Cursor.Offset < last
}

// LineFocus reports whether the cursor is on a table line that has no table
// line above or below it: a table that is just being started.
func LineFocus(doc Document) bool {
	if checkCursor(doc) != nil {
		return false
	}

	n := doc.Cursor.Line
	if !table.IsTableLine(doc.Lines[n]) {
		return false
	}

	if n > 0 && table.IsTableLine(doc.Lines[n-1]) {
		return false
	}

	if n+1 < len(doc.Lines) && table.IsTableLine(doc.Lines[n+1]) {
		return false
	}

	return true
}
