package table

// RowKind distinguishes horizontal rules from rows carrying cells.
type RowKind int

const (
	// KindData is a row of cells.
	KindData RowKind = iota
	// KindSeparator is a horizontal rule. It never carries cells.
	KindSeparator
)

// String returns the name of the kind.
func (k RowKind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Row is one parsed table line.
type Row struct {
	Kind  RowKind
	Cells []string
}

// Separator returns a horizontal rule row.
func Separator() Row {
	return Row{Kind: KindSeparator}
}

// Data returns a data row holding a copy of cells.
func Data(cells ...string) Row {
	c := make([]string, len(cells))
	copy(c, cells)

	return Row{Kind: KindData, Cells: c}
}

// IsSeparator reports whether r is a horizontal rule.
func (r Row) IsSeparator() bool {
	return r.Kind == KindSeparator
}

// Len returns the number of cells. Separators have none.
func (r Row) Len() int {
	if r.IsSeparator() {
		return 0
	}

	return len(r.Cells)
}

// Cell returns the cell at index c, or "" when the row is shorter.
func (r Row) Cell(c int) string {
	if c < 0 || c >= r.Len() {
		return ""
	}

	return r.Cells[c]
}

// clone returns a deep copy of r so grid operations never share backing arrays
// with their input.
func (r Row) clone() Row {
	if r.IsSeparator() {
		return Separator()
	}

	return Data(r.Cells...)
}
