package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatSeparatorLine(t *testing.T) {
	if got, want := FormatSeparatorLine([]int{1, 2, 3}, "  "), "  |---+----+-----|"; got != want {
		t.Errorf("FormatSeparatorLine() = %q, want %q", got, want)
	}

	if got, want := FormatSeparatorLine([]int{0}, ""), "|--|"; got != want {
		t.Errorf("FormatSeparatorLine() = %q, want %q", got, want)
	}
}

func TestFormatEmptyRow(t *testing.T) {
	if got, want := FormatEmptyRow([]int{1, 2, 3}, "  "), "  |   |    |     |"; got != want {
		t.Errorf("FormatEmptyRow() = %q, want %q", got, want)
	}

	if got, want := FormatEmptyRow(DefaultWidths, ""), "|     |     |"; got != want {
		t.Errorf("FormatEmptyRow(DefaultWidths) = %q, want %q", got, want)
	}
}

func TestFormatRow(t *testing.T) {
	tests := []struct {
		name   string
		cells  []string
		widths []int
		want   string
	}{
		{name: "padded", cells: []string{"a", "b"}, widths: []int{3, 1}, want: "| a   | b |"},
		{name: "wide cell", cells: []string{"あ"}, widths: []int{3}, want: "| あ  |"},
		{name: "missing cells", cells: nil, widths: []int{2, 1}, want: "|    |   |"},
		{name: "extra cells dropped", cells: []string{"a", "b", "c"}, widths: []int{1}, want: "| a |"},
		{name: "cell wider than column", cells: []string{"abc"}, widths: []int{1}, want: "| abc |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRow(tt.cells, tt.widths); got != tt.want {
				t.Errorf("FormatRow() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRows(t *testing.T) {
	rows := []Row{Data("a", "bb"), Separator(), Data("ccc")}

	got := FormatRows(rows, []int{3, 2}, []string{"", "  "})

	want := []string{
		"| a   | bb |",
		"  |-----+----|",
		"| ccc |    |",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FormatRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	tight := SplitTableRows([]string{"|a|b|c|"})
	padded := SplitTableRows([]string{"| a | b | c |"})

	assertRows(t, tight, padded)

	widths := ColWidths(tight)
	if diff := cmp.Diff(FormatRows(tight, widths, nil), FormatRows(padded, widths, nil)); diff != "" {
		t.Errorf("equivalent rows rendered differently (-tight +padded):\n%s", diff)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	lines := []string{
		"  | Name | 数量 |",
		"  |-+-|",
		"  |apple|3|",
		"  | りんご | 12 |",
	}

	format := func(in []string) []string {
		rows := SplitTableRows(in)
		indents := make([]string, len(in))

		for i, l := range in {
			indents[i] = Indent(l)
		}

		return FormatRows(rows, ColWidths(rows), indents)
	}

	once := format(lines)
	twice := format(once)

	want := []string{
		"  | Name   | 数量 |",
		"  |--------+------|",
		"  | apple  | 3    |",
		"  | りんご | 12   |",
	}

	if diff := cmp.Diff(want, once); diff != "" {
		t.Errorf("first format mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("formatting is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestReformat(t *testing.T) {
	lines := []string{"|a|bb|", "  |-|", "| c |"}

	got, widths := Reformat(lines, DefaultWidths)

	want := []string{
		"| a | bb |",
		"  |---+----|",
		"| c |    |",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reformat() lines mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{1, 2}, widths); diff != "" {
		t.Errorf("Reformat() widths mismatch (-want +got):\n%s", diff)
	}
}

func TestReformat_FallbackWidths(t *testing.T) {
	got, widths := Reformat([]string{"|---|"}, DefaultWidths)

	if diff := cmp.Diff([]string{"|-----+-----|"}, got); diff != "" {
		t.Errorf("Reformat() lines mismatch (-want +got):\n%s", diff)
	}

	widths[0] = 42
	if DefaultWidths[0] != 3 {
		t.Fatal("Reformat() returned DefaultWidths itself instead of a copy")
	}
}
