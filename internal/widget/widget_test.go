package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestTextInputTyping(t *testing.T) {
	in := NewTextInput()
	for _, r := range "abc" {
		in.HandleKey(press(r))
	}
	if in.Value() != "abc" {
		t.Fatalf("Value() = %q, want \"abc\"", in.Value())
	}

	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyLeft})
	in.HandleKey(press('X'))
	if in.Value() != "abXc" {
		t.Fatalf("insert at cursor gave %q, want \"abXc\"", in.Value())
	}

	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if in.Value() != "abc" {
		t.Fatalf("backspace gave %q, want \"abc\"", in.Value())
	}
}

func TestTextInputSpace(t *testing.T) {
	in := NewTextInput()
	in.HandleKey(press('a'))
	in.HandleKey(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	in.HandleKey(press('b'))
	if in.Value() != "a b" {
		t.Fatalf("Value() = %q, want \"a b\"", in.Value())
	}
}

func TestTextInputKillLine(t *testing.T) {
	in := NewTextInput().WithValue("hello world")
	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyHome})
	in.HandleKey(tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl})
	if in.Value() != "" {
		t.Fatalf("ctrl+k from start gave %q, want empty", in.Value())
	}
}

func TestTextInputMultiByteRunes(t *testing.T) {
	in := NewTextInput()
	for _, r := range "héllo" {
		in.HandleKey(press(r))
	}
	if in.Value() != "héllo" {
		t.Fatalf("Value() = %q, want \"héllo\"", in.Value())
	}

	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyBackspace})
	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyBackspace})
	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyBackspace})
	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if in.Value() != "h" {
		t.Fatalf("backspace over é gave %q, want \"h\"", in.Value())
	}

	in = NewTextInput().WithValue("日本")
	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyLeft})
	in.HandleKey(press('x'))
	if in.Value() != "日x本" {
		t.Fatalf("insert between wide runes gave %q, want \"日x本\"", in.Value())
	}
	in.HandleKey(tea.KeyPressMsg{Code: tea.KeyDelete})
	if in.Value() != "日x" {
		t.Fatalf("delete of a wide rune gave %q, want \"日x\"", in.Value())
	}
}

func TestSelectorWrapsAndSelectsByValue(t *testing.T) {
	s := NewSelector([]string{"a", "b", "c"})

	s.Previous()
	if s.Value() != "c" {
		t.Fatalf("Previous from first = %q, want \"c\"", s.Value())
	}
	s.Next()
	if s.Value() != "a" {
		t.Fatalf("Next wrap = %q, want \"a\"", s.Value())
	}

	s.SelectValue("b")
	if s.Value() != "b" {
		t.Fatalf("SelectValue = %q, want \"b\"", s.Value())
	}
	s.SelectValue("missing")
	if s.Value() != "b" {
		t.Fatalf("unknown SelectValue moved selection to %q", s.Value())
	}
}

func TestEmptySelector(t *testing.T) {
	s := NewSelector(nil)
	s.Next()
	s.Previous()
	if s.Value() != "" || !s.IsEmpty() {
		t.Fatalf("empty selector should stay empty, got %q", s.Value())
	}
}

func TestToggle(t *testing.T) {
	tg := NewToggle("unrestricted")
	if tg.Value() {
		t.Fatal("toggle should start off")
	}
	tg.HandleKey(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !tg.Value() {
		t.Fatal("space should flip the toggle on")
	}
	tg.HandleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if tg.Value() {
		t.Fatal("enter should flip the toggle off")
	}
}
