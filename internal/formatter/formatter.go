// Package formatter aligns every table of an org document.
package formatter

import (
	"slices"
	"strings"

	"orglite/internal/table"
)

// Options tunes FormatDocument.
type Options struct {
	// DefaultWidths is the width vector for a table without columns.
	DefaultWidths []int
}

// Stats summarises a formatting pass.
type Stats struct {
	Tables        int
	ChangedTables int
	ChangedLines  int
}

// Changed reports whether any line was rewritten.
func (s Stats) Changed() bool {
	return s.ChangedLines > 0
}

// Regions returns every table region of lines in document order. A region
// is a maximal run of complete table rows.
func Regions(lines []string) []table.Range {
	var regions []table.Range

	for i := 0; i < len(lines); i++ {
		if !table.IsTableRow(lines[i]) {
			continue
		}

		r := table.DetectRange(lines, i)
		regions = append(regions, r)
		i = r.End
	}

	return regions
}

// FormatLines aligns every table in lines and returns the new lines. Lines
// outside tables are returned untouched.
func FormatLines(lines []string, opts Options) ([]string, Stats) {
	fallback := opts.DefaultWidths
	if len(fallback) == 0 {
		fallback = table.DefaultWidths
	}

	out := slices.Clone(lines)

	var stats Stats

	for _, r := range Regions(lines) {
		stats.Tables++

		formatted, _ := table.Reformat(r.Lines(lines), fallback)

		changed := 0
		for i, line := range formatted {
			if out[r.Start+i] != line {
				out[r.Start+i] = line
				changed++
			}
		}

		if changed > 0 {
			stats.ChangedTables++
			stats.ChangedLines += changed
		}
	}

	return out, stats
}

// FormatDocument aligns every table in content. CRLF line endings are
// preserved.
func FormatDocument(content string, opts Options) (string, Stats) {
	sep := "\n"
	if strings.Contains(content, "\r\n") {
		sep = "\r\n"
	}

	lines, stats := FormatLines(strings.Split(content, sep), opts)

	return strings.Join(lines, sep), stats
}
