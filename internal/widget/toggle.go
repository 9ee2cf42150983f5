package widget

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Toggle is a labelled boolean.
type Toggle struct {
	label string
	value bool
}

// NewToggle creates a toggle in the off position.
func NewToggle(label string) *Toggle {
	return &Toggle{label: label}
}

// WithValue sets the initial state.
func (t *Toggle) WithValue(v bool) *Toggle {
	t.value = v
	return t
}

// Value returns the current state.
func (t *Toggle) Value() bool { return t.value }

// Label returns the display label.
func (t *Toggle) Label() string { return t.label }

// Flip inverts the state.
func (t *Toggle) Flip() { t.value = !t.value }

// HandleKey flips on space or enter.
func (t *Toggle) HandleKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "space", "enter":
		t.Flip()
		return true
	}
	return false
}
