package tasks

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/tasks/data"
	"tasktrack/internal/tasks/editor"
	"tasktrack/internal/tui/shared"
	"tasktrack/internal/tui/theme"
)

// LastUpdatedLayout is how timestamps are shown in the expanded view, in the
// local zone.
const LastUpdatedLayout = "2006-01-02 15:04:05"

const cardFrame = 4 // border (2) + padding (2)

// itemView renders one task card.
type itemView struct {
	ctrl    *editor.Controller
	editor  *ItemEditorModel // non-nil while this item is being edited
	focused bool
	query   string
	width   int
}

func (v itemView) render() string {
	t := v.ctrl.Task()
	inner := max(v.width-cardFrame, 20)

	content := v.header(t, inner)
	switch v.ctrl.State() {
	case editor.ExpandedView:
		content += "\n" + v.details(t, inner)
	case editor.ExpandedEdit:
		if v.editor != nil {
			content += "\n" + v.editor.View() + "\n" + theme.ActionSave.Render("Save")
		}
	}

	style := theme.Card
	if v.focused {
		style = theme.CardFocused
	}
	return style.Width(inner + 2).Render(content)
}

func (v itemView) header(t data.Task, inner int) string {
	prefix := "  "
	if v.focused {
		prefix = theme.Cursor.Render("> ")
	}
	left := prefix + shared.StatusMark(t) + " " + shared.StyledTitle(t, v.query)

	toggle := theme.ActionDone.Render("Done")
	if t.Completed {
		toggle = theme.ActionUndo.Render("Undo")
	}
	edit := theme.ActionEdit.Render("Edit")
	if v.ctrl.State() == editor.ExpandedEdit {
		edit = theme.ActionCancel.Render("Cancel")
	}
	right := toggle + " " + edit

	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (v itemView) details(t data.Task, inner int) string {
	desc := shared.Highlight(t.Description, v.query)
	descStyle := lipgloss.NewStyle().Width(inner)
	if t.Completed {
		descStyle = descStyle.Foreground(theme.TextMuted)
	}
	updated := "Last updated: " + t.LastUpdated.In(time.Local).Format(LastUpdatedLayout)
	return descStyle.Render(desc) + "\n" + theme.Muted.Render(updated)
}
