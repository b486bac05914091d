package tasks

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/tasks/filter"
	"tasktrack/internal/tui/theme"
)

var (
	inputPromptStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	inputErrorStyle  = lipgloss.NewStyle().Foreground(theme.Danger)
	inputBoxStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Primary).Padding(0, 1)
)

// TextInputModel wraps bubbles/textinput with validation. The owner decides
// when to confirm or cancel; the model only edits and validates.
type TextInputModel struct {
	Input     textinput.Model
	Prompt    string
	Validator func(string) error
	Error     string
	Width     int
}

// NewTextInput creates a new focused text input component
func NewTextInput(prompt, placeholder string, validator func(string) error) *TextInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	return &TextInputModel{
		Input:     ti,
		Prompt:    prompt,
		Validator: validator,
	}
}

// NewDateInput creates a text input configured for date entry
func NewDateInput(prompt string, current filter.Date) *TextInputModel {
	m := NewTextInput(prompt, "yyyy-MM-dd", ValidateDateFormat)
	m.Input.CharLimit = len("2006-01-02")
	m.Input.SetValue(current.String())
	return m
}

// Update forwards editing keys to the input and clears a stale error
func (m *TextInputModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.Error = ""
	}
	return cmd
}

// Confirm validates the current value. On failure the error is shown below
// the input.
func (m *TextInputModel) Confirm() (string, error) {
	v := m.Input.Value()
	if m.Validator != nil {
		if err := m.Validator(v); err != nil {
			m.Error = err.Error()
			return "", err
		}
	}
	return v, nil
}

// View renders the boxed input
func (m *TextInputModel) View() string {
	content := inputPromptStyle.Render(m.Prompt+": ") + m.Input.View()

	if m.Error != "" {
		content += "\n" + inputErrorStyle.Render("Error: "+m.Error)
	}

	return inputBoxStyle.Width(m.Width).Render(content)
}

// Value returns the current input value
func (m *TextInputModel) Value() string {
	return m.Input.Value()
}

// SetWidth sets both the outer box and inner input widths
func (m *TextInputModel) SetWidth(w int) {
	// Account for border (2) and padding (2)
	m.Width = w - 4
	m.Input.Width = m.Width - lipgloss.Width(m.Prompt+": ") - 1
}

// ValidateDateFormat validates that the input is empty or in yyyy-MM-dd format
func ValidateDateFormat(s string) error {
	_, err := filter.ParseDate(s)
	return err
}
