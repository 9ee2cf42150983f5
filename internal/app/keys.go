package app

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap is the normal-mode key set, used by the footer help line.
type KeyMap struct {
	NextSection key.Binding
	PrevSection key.Binding
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Search      key.Binding
	New         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Toggle      key.Binding
	Refresh     key.Binding
	Save        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap matches what handleNormalKey understands.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space"),
			key.WithHelp("space", "toggle"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the footer row for the given section.
func (k KeyMap) ShortHelp(section Section) []key.Binding {
	switch section {
	case SectionSettings:
		return []key.Binding{k.NextSection, k.Refresh, k.Save, k.Quit}
	case SectionTools:
		return []key.Binding{k.Down, k.Up, k.Toggle, k.New, k.Delete, k.Save, k.Quit}
	case SectionSkills, SectionHooks:
		return []key.Binding{k.Down, k.Up, k.Open, k.Search, k.Refresh, k.Quit}
	default:
		return []key.Binding{k.Down, k.Up, k.Open, k.New, k.Edit, k.Delete, k.Search, k.Save, k.Quit}
	}
}
