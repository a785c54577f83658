package command

import (
	"orglite/internal/table"
	"orglite/internal/task"
)

// RotateTodo cycles the TODO state of the heading under the cursor.
func (h *Handler) RotateTodo(doc Document, reverse bool) (Edit, error) {
	if err := checkCursor(doc); err != nil {
		return Edit{}, err
	}

	cur := doc.Cursor
	line := doc.Lines[cur.Line]

	if !task.IsHeading(line) {
		return Edit{}, ErrNotHeading
	}

	name := NameRotateTodo
	if reverse {
		name = NameRotateTodoReverse
	}

	rotated := task.Rotate(line, reverse)
	h.log.With("command", name).Debug("rotate todo", "line", cur.Line, "state", task.State(rotated))

	return Edit{
		Start:  cur.Line,
		End:    cur.Line,
		Lines:  []string{rotated},
		Cursor: table.Position{Line: cur.Line, Offset: min(cur.Offset, len(rotated))},
	}, nil
}
