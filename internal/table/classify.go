package table

import (
	"regexp"
	"strings"
)

var (
	// tableLineRegex matches a line that starts a table row, complete or not.
	tableLineRegex = regexp.MustCompile(`^[ \t]*\|`)
	// tableRowRegex matches a complete table row with a closing pipe.
	tableRowRegex = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	// separatorRegex matches a trimmed line made only of pipes, dashes, plus signs and spaces.
	separatorRegex = regexp.MustCompile(`^\|[-+| ]*$`)
	indentRegex    = regexp.MustCompile(`^[ \t]*`)
)

// IsTableLine reports whether text starts with a pipe after optional
// indentation. The closing pipe is not required, so a row still being typed
// counts.
func IsTableLine(text string) bool {
	return tableLineRegex.MatchString(text)
}

// IsTableRow reports whether text is a complete table row: indentation, a
// pipe, anything, and a closing pipe followed only by whitespace.
// Region detection uses this stricter form so that a paragraph which merely
// starts with a pipe is not absorbed into a neighbouring table.
func IsTableRow(text string) bool {
	return tableRowRegex.MatchString(text)
}

// IsSeparatorLine reports whether text is a horizontal rule such as
// "|---+---|". A line of pipes and spaces only is an empty row, not a rule.
func IsSeparatorLine(text string) bool {
	return separatorRegex.MatchString(strings.TrimSpace(text)) && strings.Contains(text, "-")
}

// Indent returns the leading spaces and tabs of text.
func Indent(text string) string {
	return indentRegex.FindString(text)
}
