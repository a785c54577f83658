package formatter

import (
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	before := "a\n|x|\nb"
	after := "a\n| x |\nb"

	got := Diff(before, after, false)
	want := "@@ line 2 @@\n-|x|\n+| x |\n"

	if got != want {
		t.Errorf("Diff() = %q, want %q", got, want)
	}
}

func TestDiff_NoChange(t *testing.T) {
	if got := Diff("same\n", "same\n", false); got != "" {
		t.Errorf("Diff() of identical text = %q, want empty", got)
	}
}

func TestDiff_Colored(t *testing.T) {
	got := Diff("|x|", "| x |", true)

	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Diff(colored) has no escape sequences: %q", got)
	}

	if !strings.Contains(got, "| x |") {
		t.Errorf("Diff(colored) lost the inserted line: %q", got)
	}
}

func TestSummary(t *testing.T) {
	got := Summary(Stats{Tables: 3, ChangedTables: 1, ChangedLines: 4})

	if want := "tables: 3, changed tables: 1, changed lines: 4"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
