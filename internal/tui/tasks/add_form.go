package tasks

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/tui/theme"
)

var (
	formLabelStyle      = lipgloss.NewStyle().Foreground(theme.Secondary)
	formLabelFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
)

// TaskForm is a title input plus a description textarea. It backs both the
// add form and the per-item editor.
type TaskForm struct {
	title       textinput.Model
	description textarea.Model
	focus       formField
	width       int
}

// NewTaskForm creates a form seeded with the given values, title focused.
func NewTaskForm(title, description string) *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256
	ti.SetValue(title)

	ta := textarea.New()
	ta.Placeholder = "Description"
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetValue(description)

	f := &TaskForm{title: ti, description: ta}
	f.focusField(fieldTitle)
	return f
}

func (f *TaskForm) Title() string       { return f.title.Value() }
func (f *TaskForm) Description() string { return f.description.Value() }

// Reset empties both fields and focuses the title.
func (f *TaskForm) Reset() {
	f.title.SetValue("")
	f.description.Reset()
	f.focusField(fieldTitle)
}

// NextField moves focus between the two fields.
func (f *TaskForm) NextField() {
	if f.focus == fieldTitle {
		f.focusField(fieldDescription)
	} else {
		f.focusField(fieldTitle)
	}
}

func (f *TaskForm) focusField(field formField) {
	f.focus = field
	if field == fieldTitle {
		f.description.Blur()
		f.title.Focus()
	} else {
		f.title.Blur()
		f.description.Focus()
	}
}

// Update forwards the message to the focused field. Enter in the title moves
// on to the description.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && f.focus == fieldTitle && k.Type == tea.KeyEnter {
		f.focusField(fieldDescription)
		return nil
	}

	var cmd tea.Cmd
	if f.focus == fieldTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return cmd
}

// SetWidth sizes both fields.
func (f *TaskForm) SetWidth(w int) {
	f.width = w
	if w <= 0 {
		return
	}
	f.title.Width = w - 2
	f.description.SetWidth(w)
}

// View renders the labelled fields.
func (f *TaskForm) View() string {
	label := func(name string, field formField) string {
		if f.focus == field {
			return formLabelFocusStyle.Render(name)
		}
		return formLabelStyle.Render(name)
	}

	var b strings.Builder
	b.WriteString(label("Title", fieldTitle) + "\n")
	b.WriteString(f.title.View() + "\n")
	b.WriteString(label("Description", fieldDescription) + "\n")
	b.WriteString(f.description.View())
	return b.String()
}

// AddFormModel is the collapsible "add task" panel.
type AddFormModel struct {
	form *TaskForm
	open bool
}

// NewAddForm returns a collapsed add form.
func NewAddForm() *AddFormModel {
	return &AddFormModel{form: NewTaskForm("", "")}
}

func (m *AddFormModel) IsOpen() bool { return m.open }

func (m *AddFormModel) Form() *TaskForm { return m.form }

// Toggle opens or closes the form. Either way the inputs are cleared.
func (m *AddFormModel) Toggle() {
	m.open = !m.open
	m.form.Reset()
}

// Close collapses the form and clears the inputs.
func (m *AddFormModel) Close() {
	m.open = false
	m.form.Reset()
}

func (m *AddFormModel) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	return m.form.Update(msg)
}

// View renders the form, or nothing while collapsed.
func (m *AddFormModel) View() string {
	if !m.open {
		return ""
	}
	content := theme.ModalTitle.Render("Add Task") + "\n" +
		m.form.View() + "\n" +
		theme.ActionSave.Render("Add Task")
	return theme.CardFocused.Render(content)
}
