package tasks

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestJumpPicker_FiltersAndSelects(t *testing.T) {
	p := NewJumpPicker(seed())

	id, ok := p.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, id, "first task selected before typing")

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	id, _ = p.Selected()
	assert.Equal(t, 2, id)

	for _, r := range "rep" {
		p.Update(keyRunes(string(r)))
	}
	id, ok = p.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, id)
	assert.Contains(t, p.View(), "Write report")
}

func TestJumpPicker_NoMatches(t *testing.T) {
	p := NewJumpPicker(seed())
	for _, r := range "zzz" {
		p.Update(keyRunes(string(r)))
	}

	_, ok := p.Selected()
	assert.False(t, ok)
	assert.Contains(t, p.View(), "No matches")
}

func TestValidateDateFormat(t *testing.T) {
	assert.NoError(t, ValidateDateFormat(""))
	assert.NoError(t, ValidateDateFormat("2024-02-29"))
	assert.Error(t, ValidateDateFormat("2023-02-29"))
	assert.Error(t, ValidateDateFormat("tomorrow"))
}
