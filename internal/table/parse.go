package table

import (
	"regexp"
	"strings"
)

// cellSplitRegex splits a row on pipes, swallowing the padding around them.
var cellSplitRegex = regexp.MustCompile(`\s*\|\s*`)

// SplitTableRows parses table lines into rows, one row per line.
func SplitTableRows(lines []string) []Row {
	rows := make([]Row, 0, len(lines))

	for _, line := range lines {
		if IsSeparatorLine(line) {
			rows = append(rows, Separator())
			continue
		}

		rows = append(rows, Row{Kind: KindData, Cells: SplitCells(line)})
	}

	return rows
}

// SplitCells splits a row line into trimmed cell values. The empty segments
// produced by the outer pipes are dropped (at most one on each side); empty
// cells between two pipes are kept as "".
func SplitCells(line string) []string {
	cells := cellSplitRegex.Split(strings.TrimSpace(line), -1)

	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}

	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}

	return cells
}
