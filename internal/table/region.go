package table

// Range is an inclusive span of document lines.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of lines in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether line lies inside the range.
func (r Range) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// DetectRange expands from line up and down over neighbouring complete table
// rows (see IsTableRow) and returns the enclosing span. The line itself is
// always part of the result, whatever its shape.
func DetectRange(lines []string, line int) Range {
	r := Range{Start: line, End: line}

	for r.Start > 0 && IsTableRow(lines[r.Start-1]) {
		r.Start--
	}

	for r.End < len(lines)-1 && IsTableRow(lines[r.End+1]) {
		r.End++
	}

	return r
}

// Lines returns the lines of r as a fresh slice.
func (r Range) Lines(lines []string) []string {
	return append([]string(nil), lines[r.Start:r.End+1]...)
}
