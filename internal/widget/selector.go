package widget

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Selector picks one value out of a fixed option list.
type Selector struct {
	options  []string
	selected int
}

// NewSelector creates a selector with the first option active.
func NewSelector(options []string) *Selector {
	return &Selector{options: options}
}

// SelectValue moves the selection to the given value if present.
func (s *Selector) SelectValue(value string) {
	for i, opt := range s.options {
		if opt == value {
			s.selected = i
			return
		}
	}
}

// Next advances to the following option, wrapping around.
func (s *Selector) Next() {
	if len(s.options) > 0 {
		s.selected = (s.selected + 1) % len(s.options)
	}
}

// Previous moves back one option, wrapping around.
func (s *Selector) Previous() {
	if len(s.options) == 0 {
		return
	}
	if s.selected == 0 {
		s.selected = len(s.options) - 1
		return
	}
	s.selected--
}

// Value returns the active option, or "" when there are none.
func (s *Selector) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.selected]
}

// Options returns the option list.
func (s *Selector) Options() []string { return s.options }

// Index returns the active option's position.
func (s *Selector) Index() int { return s.selected }

// IsEmpty reports whether there is nothing to choose from.
func (s *Selector) IsEmpty() bool { return len(s.options) == 0 }

// HandleKey cycles the selection; left goes back, right/enter/space advance.
func (s *Selector) HandleKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "left", "h":
		s.Previous()
		return true
	case "right", "l", "enter", "space":
		s.Next()
		return true
	}
	return false
}
