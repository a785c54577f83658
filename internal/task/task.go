// Package task rotates the TODO state of outline headings.
package task

import (
	"regexp"
	"strings"
)

// Task state keywords.
const (
	StateTodo = "TODO"
	StateDone = "DONE"
)

// headingRegex captures the indent, the stars and the title of a heading.
var headingRegex = regexp.MustCompile(`^(\s*)(\*+)\s+(.*)$`)

// IsHeading reports whether line is an outline heading such as "** Title".
func IsHeading(line string) bool {
	return headingRegex.MatchString(line)
}

// State returns the keyword the heading title starts with, or "" when the
// heading has none or line is not a heading.
func State(line string) string {
	m := headingRegex.FindStringSubmatch(line)
	if m == nil {
		return ""
	}

	for _, kw := range []string{StateTodo, StateDone} {
		if hasKeyword(m[3], kw) {
			return kw
		}
	}

	return ""
}

// Rotate moves a heading to its next state: none, TODO, DONE, then none
// again. With reverse the cycle runs backwards. Lines that are not headings
// are returned unchanged.
func Rotate(line string, reverse bool) string {
	m := headingRegex.FindStringSubmatch(line)
	if m == nil {
		return line
	}

	indent, stars, title := m[1], m[2], m[3]

	next := map[string]string{"": StateTodo, StateTodo: StateDone, StateDone: ""}
	if reverse {
		next = map[string]string{"": StateDone, StateDone: StateTodo, StateTodo: ""}
	}

	current := ""
	for _, kw := range []string{StateTodo, StateDone} {
		if hasKeyword(title, kw) {
			current = kw
			title = strings.TrimPrefix(strings.TrimPrefix(title, kw), " ")

			break
		}
	}

	if state := next[current]; state != "" {
		title = state + " " + title
	}

	return indent + stars + " " + title
}

func hasKeyword(title, kw string) bool {
	return title == kw || strings.HasPrefix(title, kw+" ")
}
