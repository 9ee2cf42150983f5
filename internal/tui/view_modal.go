package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/relayhq/relay-tui/internal/app"
	"github.com/relayhq/relay-tui/internal/widget"
)

// renderInput draws a single-line input with a block cursor when focused.
func renderInput(t *widget.TextInput, focused bool) string {
	if t.IsEmpty() && !focused {
		return lipgloss.NewStyle().Faint(true).Render(t.Placeholder())
	}
	value := t.Value()
	if !focused {
		return value
	}
	runes := []rune(value)
	cur := t.Cursor()
	if cur >= len(runes) {
		return value + "█"
	}
	return string(runes[:cur]) + "█" + string(runes[cur:])
}

func renderSelector(sel *widget.Selector, focused bool) string {
	if sel.IsEmpty() {
		return lipgloss.NewStyle().Faint(true).Render("(none)")
	}
	value := sel.Value()
	if focused {
		return fmt.Sprintf("◀ %s ▶  (%d/%d)", value, sel.Index()+1, len(sel.Options()))
	}
	return value
}

func renderToggle(t *widget.Toggle, focused bool) string {
	box := "[ ]"
	if t.Value() {
		box = "[x]"
	}
	line := box + " " + t.Label()
	if focused {
		return lipgloss.NewStyle().Bold(true).Render(line)
	}
	return line
}

func (m *Model) field(label, rendered string, focused bool) string {
	s := m.theme.S()
	l := s.Label.Render(label)
	if focused {
		l = s.FieldFocus.Render(label + strings.Repeat(" ", max(0, 14-len(label))))
	}
	return l + rendered
}

func (m *Model) viewConfirm(d *app.ConfirmDialog) string {
	s := m.theme.S()
	yes, no := s.Button.Render("Yes"), s.ButtonFocus.Render("No")
	if d.Confirmed() {
		yes, no = s.ButtonFocus.Render("Yes"), s.Button.Render("No")
	}
	return strings.Join([]string{
		s.Title.Render(d.Title),
		"",
		d.Message,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no),
	}, "\n")
}

func (m *Model) viewModelForm(f *app.ModelForm) string {
	s := m.theme.S()
	title := "New Model"
	if f.Mode == app.FormEdit {
		title = "Edit Model"
	}
	return strings.Join([]string{
		s.Title.Render(title),
		"",
		m.field("Alias", renderInput(f.Alias, f.Focused == 0), f.Focused == 0),
		m.field("Provider", renderSelector(f.Provider, f.Focused == 1), f.Focused == 1),
		m.field("Model", renderSelector(f.ModelID, f.Focused == 2), f.Focused == 2),
		m.field("", renderToggle(f.SetDefault, f.Focused == 3), f.Focused == 3),
		"",
		s.Subtle.Render("tab next field  enter save  esc cancel"),
	}, "\n")
}

func (m *Model) viewStackForm(f *app.StackForm) string {
	s := m.theme.S()
	title := "New Stack"
	if f.Mode == app.FormEdit {
		title = "Edit Stack"
	}
	lines := []string{
		s.Title.Render(title),
		"",
		m.field("Name", renderInput(f.Name, f.Focused == 0), f.Focused == 0),
		m.field("Extends", renderInput(f.Extends, f.Focused == 1), f.Focused == 1),
		m.field("Model", renderInput(f.Model, f.Focused == 2), f.Focused == 2),
		m.field("Temperature", renderInput(f.Temperature, f.Focused == 3), f.Focused == 3),
		m.field("Timeout", renderInput(f.Timeout, f.Focused == 4), f.Focused == 4),
		m.field("Max tokens", renderInput(f.MaxTokens, f.Focused == 5), f.Focused == 5),
		m.field("Skill", renderInput(f.Skill, f.Focused == 6), f.Focused == 6),
		m.field("Context", "", f.Focused == 7),
		f.Context.View(),
		m.field("Context file", renderInput(f.ContextFile, f.Focused == 8), f.Focused == 8),
		m.field("", renderToggle(f.Unrestricted, f.Focused == 9), f.Focused == 9),
		"",
		s.Subtle.Render("tab next field  enter save  esc cancel"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewToolForm(f *app.ToolForm) string {
	s := m.theme.S()
	return strings.Join([]string{
		s.Title.Render("Add Custom Tool"),
		"",
		m.field("Path", renderInput(f.Path, true), true),
		"",
		s.Subtle.Render("enter save  esc cancel"),
	}, "\n")
}

func (m *Model) viewWizard(w *app.Wizard) string {
	s := m.theme.S()
	var lines []string

	switch w.Step {
	case app.StepWelcome:
		lines = []string{
			s.Title.Render("Welcome to relay"),
			"",
			"No configuration found. This setup creates your first",
			"provider and model alias.",
			"",
			s.Subtle.Render("enter start  esc quit"),
		}
	case app.StepSelectProvider:
		lines = []string{
			s.Title.Render("Choose a provider"),
			"",
		}
		for i, p := range app.ProviderOptions() {
			cursor := "  "
			name := p.Name
			if i == w.ProviderIndex {
				cursor = s.ListCursor.Render("> ")
				name = s.Bold.Render(name)
			}
			lines = append(lines, fmt.Sprintf("%s%s %s", cursor, name, s.Muted.Render(p.AuthType)))
		}
		lines = append(lines, "", s.Subtle.Render("j/k move  enter select  esc quit"))
	case app.StepAuthOAuth:
		lines = []string{
			s.Title.Render("Authenticate"),
			"",
			"Waiting for browser login to finish...",
			"",
			s.Subtle.Render("s skip  esc quit"),
		}
		if w.OAuthFailed {
			lines = append(lines, "", s.Error.Render(w.ErrorMessage))
		}
	case app.StepAuthAPIKey:
		lines = []string{
			s.Title.Render("API key"),
			"",
			m.field("Key", renderInput(w.APIKey, true), true),
			"",
			s.Subtle.Render("enter continue  esc quit"),
		}
	case app.StepCreateModel:
		lines = []string{
			s.Title.Render("First model"),
			"",
			m.field("Alias", renderInput(w.ModelAlias, w.ModelFocused == 0), w.ModelFocused == 0),
			m.field("Model", renderSelector(w.ModelID, w.ModelFocused == 1), w.ModelFocused == 1),
			"",
			s.Subtle.Render("tab switch field  enter continue  esc quit"),
		}
	case app.StepConfirm:
		p := w.SelectedProvider()
		lines = []string{
			s.Title.Render("Ready"),
			"",
			m.field("Provider", p.Name, false),
			m.field("Alias", w.ModelAlias.Value(), false),
			m.field("Model", w.ModelID.Value(), false),
			"",
			s.Subtle.Render("enter save  backspace back  esc quit"),
		}
	}

	if w.ErrorMessage != "" && w.Step != app.StepAuthOAuth {
		lines = append(lines, "", s.Error.Render(w.ErrorMessage))
	}
	boxed := m.theme.S().Dialog.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxed)
}
