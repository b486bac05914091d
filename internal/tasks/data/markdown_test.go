package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Kitchen sink is leaking again", "Kitchen sink is leaking again"},
		{"percent", "2%", "2%"},
		{"emphasis", "Milk and a bag of **coffee** beans", "Milk and a bag of coffee beans"},
		{"italic", "Continue *The Pragmatic Programmer*, chapter 4", "Continue The Pragmatic Programmer, chapter 4"},
		{"soft break", "line one\nline two", "line one line two"},
		{"heading and body", "# Plan\n\nDraft the outline", "Plan\nDraft the outline"},
		{"list", "- milk\n- eggs", "- milk\n- eggs"},
		{"link", "see [the docs](https://example.com)", "see the docs"},
		{"code span", "run `make test`", "run make test"},
		{"fenced code", "```\nx := 1\n```", "x := 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
