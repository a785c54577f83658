package table

import "strings"

// Position is a cursor location. Offset is a byte offset into the line.
type Position struct {
	Line   int `json:"line"`
	Offset int `json:"offset"`
}

// pipeIndexes returns the byte offset of every pipe in text.
func pipeIndexes(text string) []int {
	var idx []int

	for i := 0; i < len(text); i++ {
		if text[i] == '|' {
			idx = append(idx, i)
		}
	}

	return idx
}

// afterPipe returns the offset just past the pipe at p and one following space.
func afterPipe(text string, p int) int {
	off := p + 1
	if off < len(text) && text[off] == ' ' {
		off++
	}

	return off
}

// CellIndexAt returns the index of the cell whose bounding pipes enclose ch.
// The opening pipe belongs to the cell, the closing one does not. ok is false
// when ch lies outside every pipe pair; idx is then 0.
func CellIndexAt(text string, ch int) (idx int, ok bool) {
	pipes := pipeIndexes(text)

	for i := 0; i+1 < len(pipes); i++ {
		if ch >= pipes[i] && ch < pipes[i+1] {
			return i, true
		}
	}

	return 0, false
}

// CellOffset returns the offset where the content of cell starts in text:
// just past its opening pipe and one space of padding. For a cell index the
// row does not have it falls back to the first cell, then to just past the
// last pipe, and finally to 0 for a line without pipes.
func CellOffset(text string, cell int) int {
	pipes := pipeIndexes(text)

	if cell >= 0 && cell < len(pipes)-1 {
		return afterPipe(text, pipes[cell])
	}

	if i := strings.Index(text, "| "); i != -1 {
		return i + 2
	}

	if len(pipes) > 0 {
		return pipes[len(pipes)-1] + 1
	}

	return 0
}

// firstCellOffset returns the offset of the first padded cell in text.
func firstCellOffset(text string) (int, bool) {
	i := strings.Index(text, "| ")
	if i == -1 {
		return 0, false
	}

	return i + 2, true
}

// PrevCell returns the cell before the cursor at (line, ch), the Shift-Tab
// target. From the first cell of a row it moves to the last cell of the
// nearest data row above, skipping separators, but never above start.
// lines is indexed by document line. ok is false when there is no previous
// cell; the cursor should stay where it is.
func PrevCell(lines []string, line, ch, start int) (Position, bool) {
	text := lines[line]
	cell, _ := CellIndexAt(text, ch-1)

	if cell > 0 {
		pipes := pipeIndexes(text)
		return Position{Line: line, Offset: afterPipe(text, pipes[cell-1])}, true
	}

	if line <= start {
		return Position{}, false
	}

	prev := line - 1
	for prev >= start && IsSeparatorLine(lines[prev]) {
		prev--
	}

	if prev < start {
		return Position{}, false
	}

	pipes := pipeIndexes(lines[prev])
	if len(pipes) < 2 {
		return Position{}, false
	}

	return Position{Line: prev, Offset: afterPipe(lines[prev], pipes[len(pipes)-2])}, true
}

// NextCell returns the cell after the cursor at (line, ch), the Tab target.
// A cursor at the end of the line counts as being in the last cell. From the
// last cell it moves to the first cell of the next row, jumping over one
// separator, but never below end. ok is false when there is no next cell;
// callers usually append a new row then.
func NextCell(lines []string, line, ch, start, end int) (Position, bool) {
	text := lines[line]
	pipes := pipeIndexes(text)
	cell, _ := CellIndexAt(text, ch)

	if ch == len(text) && len(pipes) >= 2 {
		cell = len(pipes) - 2
	}

	if cell < len(pipes)-2 {
		return Position{Line: line, Offset: afterPipe(text, pipes[cell+1])}, true
	}

	if line < start || line >= end {
		return Position{}, false
	}

	target := line + 1
	if IsSeparatorLine(lines[target]) && target+1 <= end {
		target++
	}

	off, ok := firstCellOffset(lines[target])
	if !ok {
		return Position{}, false
	}

	return Position{Line: target, Offset: off}, true
}
