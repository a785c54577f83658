package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the line changes between before and after. Each hunk starts
// with "@@ line N @@" (1-based, in before) followed by "-" and "+" lines.
// Unchanged lines are omitted. An empty string means no change.
func Diff(before, after string, colored bool) string {
	if before == after {
		return ""
	}

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	hdr := color.New(color.FgCyan)

	for _, c := range []*color.Color{del, ins, hdr} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var sb strings.Builder

	line := 1
	inHunk := false

	for _, d := range diffs {
		lines := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += len(lines)
			inHunk = false

			continue
		case diffmatchpatch.DiffDelete:
			if !inHunk {
				sb.WriteString(hdr.Sprintf("@@ line %d @@", line) + "\n")
				inHunk = true
			}

			for _, l := range lines {
				sb.WriteString(del.Sprint("-"+l) + "\n")
			}

			line += len(lines)
		case diffmatchpatch.DiffInsert:
			if !inHunk {
				sb.WriteString(hdr.Sprintf("@@ line %d @@", line) + "\n")
				inHunk = true
			}

			for _, l := range lines {
				sb.WriteString(ins.Sprint("+"+l) + "\n")
			}
		}
	}

	return sb.String()
}

// splitLines splits text produced by the line differ, whose lines all end
// with a newline except possibly the last.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}

	return strings.Split(text, "\n")
}

// Summary returns a one-line description of stats.
func Summary(stats Stats) string {
	return fmt.Sprintf("tables: %d, changed tables: %d, changed lines: %d",
		stats.Tables, stats.ChangedTables, stats.ChangedLines)
}
