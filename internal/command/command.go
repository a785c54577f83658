// Package command implements the table editing commands of the org editor
// integration: Tab and Shift-Tab navigation, Enter, table formatting, and
// column deletion and reordering.
//
// Commands never touch an editor. They read a Document snapshot and return
// an Edit that the caller applies as one text change.
package command

import (
	"errors"
	"fmt"
	"slices"

	"orglite/internal/logger"
	"orglite/internal/table"
)

// Command errors.
var (
	ErrNotInTable       = errors.New("cursor is not on a table line")
	ErrNotHeading       = errors.New("cursor is not on a heading line")
	ErrNoChange         = errors.New("nothing to change")
	ErrCursorOutOfRange = errors.New("cursor is outside the document")
	ErrInvalidDirection = errors.New("direction must be -1 or 1")
	ErrUnknownCommand   = errors.New("unknown command")
)

// Command names accepted by Run.
const (
	NameFormat            = "format"
	NameDeleteColumn      = "delete-column"
	NameMoveColumnLeft    = "move-column-left"
	NameMoveColumnRight   = "move-column-right"
	NameTab               = "tab"
	NameShiftTab          = "shift-tab"
	NameEnter             = "enter"
	NameRotateTodo        = "rotate-todo"
	NameRotateTodoReverse = "rotate-todo-reverse"
)

// Names lists every command Run accepts.
var Names = []string{
	NameFormat,
	NameDeleteColumn,
	NameMoveColumnLeft,
	NameMoveColumnRight,
	NameTab,
	NameShiftTab,
	NameEnter,
	NameRotateTodo,
	NameRotateTodoReverse,
}

// Document is a snapshot of the text and cursor a command works on.
type Document struct {
	Lines  []string
	Cursor table.Position
}

// Edit replaces the document lines Start through End (inclusive) with Lines
// and moves the cursor. The cursor is expressed in the edited document.
type Edit struct {
	Start  int            `json:"start"`
	End    int            `json:"end"`
	Lines  []string       `json:"lines"`
	Cursor table.Position `json:"cursor"`
}

// Apply returns a copy of doc with e applied.
func Apply(doc Document, e Edit) Document {
	lines := make([]string, 0, len(doc.Lines)-(e.End-e.Start+1)+len(e.Lines))
	lines = append(lines, doc.Lines[:e.Start]...)
	lines = append(lines, e.Lines...)
	lines = append(lines, doc.Lines[e.End+1:]...)

	return Document{Lines: lines, Cursor: e.Cursor}
}

// Options tunes a Handler.
type Options struct {
	// DefaultWidths is the width vector used for a table without columns.
	DefaultWidths []int
}

// Handler runs commands. It keeps no state between calls.
type Handler struct {
	log  *logger.Logger
	opts Options
}

// New creates a handler. A nil log discards records and empty
// DefaultWidths fall back to table.DefaultWidths. The handler keeps its own
// copy of the widths.
func New(log *logger.Logger, opts Options) *Handler {
	if log == nil {
		log = logger.Discard()
	}

	if len(opts.DefaultWidths) == 0 {
		opts.DefaultWidths = slices.Clone(table.DefaultWidths)
	} else {
		opts.DefaultWidths = slices.Clone(opts.DefaultWidths)
	}

	return &Handler{log: log, opts: opts}
}

// Run executes the command called name.
func (h *Handler) Run(name string, doc Document) (Edit, error) {
	switch name {
	case NameFormat:
		return h.Format(doc)
	case NameDeleteColumn:
		return h.DeleteColumn(doc)
	case NameMoveColumnLeft:
		return h.MoveColumn(doc, -1)
	case NameMoveColumnRight:
		return h.MoveColumn(doc, 1)
	case NameTab:
		return h.Tab(doc)
	case NameShiftTab:
		return h.ShiftTab(doc)
	case NameEnter:
		return h.Enter(doc)
	case NameRotateTodo:
		return h.RotateTodo(doc, false)
	case NameRotateTodoReverse:
		return h.RotateTodo(doc, true)
	default:
		return Edit{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

// checkCursor validates that the cursor line exists.
func checkCursor(doc Document) error {
	if doc.Cursor.Line < 0 || doc.Cursor.Line >= len(doc.Lines) {
		return fmt.Errorf("%w: line %d of %d", ErrCursorOutOfRange, doc.Cursor.Line, len(doc.Lines))
	}

	return nil
}

// locate returns the table region around the cursor.
func (h *Handler) locate(doc Document) (table.Range, error) {
	if err := checkCursor(doc); err != nil {
		return table.Range{}, err
	}

	if !table.IsTableLine(doc.Lines[doc.Cursor.Line]) {
		return table.Range{}, ErrNotInTable
	}

	return table.DetectRange(doc.Lines, doc.Cursor.Line), nil
}

// widthsOrDefault substitutes the configured default for an empty vector.
func (h *Handler) widthsOrDefault(widths []int) []int {
	if len(widths) == 0 {
		return append([]int(nil), h.opts.DefaultWidths...)
	}

	return widths
}

// typingRange expands from line over every line that starts with a pipe,
// closed or not. It is the region used while a row is still being typed.
func typingRange(lines []string, line int) table.Range {
	r := table.Range{Start: line, End: line}

	for r.Start > 0 && table.IsTableLine(lines[r.Start-1]) {
		r.Start--
	}

	for r.End < len(lines)-1 && table.IsTableLine(lines[r.End+1]) {
		r.End++
	}

	return r
}

// latestWidths measures the data rows of the typing range around line,
// falling back to the default widths.
func (h *Handler) latestWidths(lines []string, line int) []int {
	var data []string

	for _, l := range typingRange(lines, line).Lines(lines) {
		if !table.IsSeparatorLine(l) {
			data = append(data, l)
		}
	}

	return h.widthsOrDefault(table.ColWidths(table.SplitTableRows(data)))
}
