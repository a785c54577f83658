package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectRange(t *testing.T) {
	lines := []string{
		"* Inventory",
		"| a |",
		"|---|",
		"  | b |  ",
		"| open",
		"after",
	}

	tests := []struct {
		name string
		line int
		want Range
	}{
		{name: "inside table", line: 2, want: Range{Start: 1, End: 3}},
		{name: "first row", line: 1, want: Range{Start: 1, End: 3}},
		{name: "open row is included but not absorbed", line: 4, want: Range{Start: 1, End: 4}},
		{name: "plain line", line: 5, want: Range{Start: 5, End: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectRange(lines, tt.line); got != tt.want {
				t.Errorf("DetectRange(%d) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDetectRange_WholeDocument(t *testing.T) {
	lines := []string{"| a |", "| b |"}

	if got, want := DetectRange(lines, 0), (Range{Start: 0, End: 1}); got != want {
		t.Errorf("DetectRange() = %+v, want %+v", got, want)
	}
}

func TestRange_Helpers(t *testing.T) {
	r := Range{Start: 1, End: 3}

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}

	if !r.Contains(1) || !r.Contains(3) || r.Contains(0) || r.Contains(4) {
		t.Errorf("Contains() gives wrong answers for %+v", r)
	}

	lines := []string{"x", "| a |", "| b |", "| c |", "y"}
	got := r.Lines(lines)
	got[0] = "changed"

	if diff := cmp.Diff([]string{"changed", "| b |", "| c |"}, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	if lines[1] != "| a |" {
		t.Error("Lines() shares storage with the document")
	}
}
