// Package widget holds the small input-state widgets the forms are built
// from: single-line text, option selectors and boolean toggles. They track
// state only; views live in the tui package.
package widget

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// TextInput is a single-line text field with a cursor. Text is kept as
// runes so editing never splits a multi-byte character.
type TextInput struct {
	value       []rune
	cursor      int
	placeholder string
}

// NewTextInput creates an empty text input.
func NewTextInput() *TextInput {
	return &TextInput{}
}

// WithPlaceholder sets the hint shown while the field is empty.
func (t *TextInput) WithPlaceholder(placeholder string) *TextInput {
	t.placeholder = placeholder
	return t
}

// WithValue pre-fills the field and puts the cursor at the end.
func (t *TextInput) WithValue(value string) *TextInput {
	t.value = []rune(value)
	t.cursor = len(t.value)
	return t
}

// Value returns the current text.
func (t *TextInput) Value() string { return string(t.value) }

// Placeholder returns the hint text.
func (t *TextInput) Placeholder() string { return t.placeholder }

// Cursor returns the cursor position in runes.
func (t *TextInput) Cursor() int { return t.cursor }

// IsEmpty reports whether no text has been entered.
func (t *TextInput) IsEmpty() bool { return len(t.value) == 0 }

// Clear empties the field.
func (t *TextInput) Clear() {
	t.value = nil
	t.cursor = 0
}

// HandleKey applies one key press and reports whether it changed the field.
func (t *TextInput) HandleKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "backspace":
		if t.cursor > 0 {
			t.value = append(t.value[:t.cursor-1], t.value[t.cursor:]...)
			t.cursor--
		}
		return true
	case "delete":
		if t.cursor < len(t.value) {
			t.value = append(t.value[:t.cursor], t.value[t.cursor+1:]...)
		}
		return true
	case "left":
		if t.cursor > 0 {
			t.cursor--
		}
		return true
	case "right":
		if t.cursor < len(t.value) {
			t.cursor++
		}
		return true
	case "home", "ctrl+a":
		t.cursor = 0
		return true
	case "end", "ctrl+e":
		t.cursor = len(t.value)
		return true
	case "ctrl+u":
		t.value = append([]rune(nil), t.value[t.cursor:]...)
		t.cursor = 0
		return true
	case "ctrl+k":
		t.value = t.value[:t.cursor]
		return true
	case "space":
		t.insert(" ")
		return true
	default:
		if text := msg.Key().Text; text != "" {
			t.insert(text)
			return true
		}
	}
	return false
}

func (t *TextInput) insert(s string) {
	rs := []rune(s)
	t.value = append(t.value[:t.cursor], append(rs, t.value[t.cursor:]...)...)
	t.cursor += len(rs)
}
