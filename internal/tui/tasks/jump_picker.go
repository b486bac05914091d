package tasks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"tasktrack/internal/tasks/data"
	"tasktrack/internal/tui/theme"
)

const maxJumpRows = 8

// JumpPickerModel picks one of the visible tasks by fuzzy title match.
type JumpPickerModel struct {
	tasks    []data.Task
	filtered []int // indices into tasks
	selected int
	input    textinput.Model
}

// NewJumpPicker creates a picker over tasks, all of them listed initially.
func NewJumpPicker(tasks []data.Task) *JumpPickerModel {
	ti := textinput.New()
	ti.Placeholder = "Jump to task..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	m := &JumpPickerModel{tasks: tasks, input: ti}
	m.applyFilter()
	return m
}

func (m *JumpPickerModel) applyFilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = make([]int, len(m.tasks))
		for i := range m.tasks {
			m.filtered[i] = i
		}
	} else {
		titles := make([]string, len(m.tasks))
		for i, t := range m.tasks {
			titles[i] = t.Title
		}
		matches := fuzzy.Find(query, titles)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

// Update moves the selection on up/down and filters on typing.
func (m *JumpPickerModel) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
			return nil
		case "down", "ctrl+n":
			if m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.selected = 0
		m.applyFilter()
	}
	return cmd
}

// Selected returns the id of the highlighted task.
func (m *JumpPickerModel) Selected() (int, bool) {
	if len(m.filtered) == 0 {
		return 0, false
	}
	return m.tasks[m.filtered[m.selected]].ID, true
}

func (m *JumpPickerModel) View() string {
	var b strings.Builder
	b.WriteString(theme.ModalTitle.Render("Jump to task") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(theme.Muted.Render("No matches"))
		return theme.ModalBox.Render(b.String())
	}

	start := 0
	if m.selected >= maxJumpRows {
		start = m.selected - maxJumpRows + 1
	}
	end := min(start+maxJumpRows, len(m.filtered))
	for i := start; i < end; i++ {
		t := m.tasks[m.filtered[i]]
		line := fmt.Sprintf("#%d %s", t.ID, t.Title)
		if i == m.selected {
			b.WriteString(theme.Cursor.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if len(m.filtered) > end {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("  ... %d more", len(m.filtered)-end)))
	}

	return theme.ModalBox.Render(strings.TrimRight(b.String(), "\n"))
}
