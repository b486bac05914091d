package tasks

import (
	tea "github.com/charmbracelet/bubbletea"

	"tasktrack/internal/tasks/editor"
)

// ItemEditorModel binds a TaskForm to the controller of the item being
// edited. Every keystroke is mirrored into the controller's buffers.
type ItemEditorModel struct {
	ctrl *editor.Controller
	form *TaskForm
}

// NewItemEditor seeds the form from the controller's buffers.
func NewItemEditor(ctrl *editor.Controller) *ItemEditorModel {
	return &ItemEditorModel{
		ctrl: ctrl,
		form: NewTaskForm(ctrl.TitleBuffer(), ctrl.DescriptionBuffer()),
	}
}

func (m *ItemEditorModel) TaskID() int { return m.ctrl.ID() }

func (m *ItemEditorModel) NextField() { m.form.NextField() }

func (m *ItemEditorModel) SetWidth(w int) { m.form.SetWidth(w) }

func (m *ItemEditorModel) Update(msg tea.Msg) tea.Cmd {
	cmd := m.form.Update(msg)
	m.ctrl.SetTitle(m.form.Title())
	m.ctrl.SetDescription(m.form.Description())
	return cmd
}

// Dispatch sends an event to the controller. It reports whether the item
// left edit mode, in which case the editor should be closed.
func (m *ItemEditorModel) Dispatch(ev editor.Event) (done bool, err error) {
	err = m.ctrl.Dispatch(ev)
	return m.ctrl.State() != editor.ExpandedEdit, err
}

func (m *ItemEditorModel) View() string {
	return m.form.View()
}
