package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/relayhq/relay-tui/internal/app"
	"github.com/relayhq/relay-tui/internal/config"
	"github.com/relayhq/relay-tui/internal/relay"
)

func (m *Model) viewTabs() string {
	s := m.theme.S()
	var tabs []string
	for i, section := range app.Sections() {
		label := fmt.Sprintf("%d %s", i+1, section)
		if section == m.app.Section {
			tabs = append(tabs, s.TabActive.Render(label))
		} else {
			tabs = append(tabs, s.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) viewBody() string {
	var body string
	if m.app.Section == app.SectionSettings {
		body = m.viewSettings()
	} else if m.app.View == app.ViewDetail {
		body = m.viewDetail()
	} else {
		body = m.viewList()
	}
	height := m.height - 3 // tabs + footer rows
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)
}

func (m *Model) viewList() string {
	s := m.theme.S()
	var b strings.Builder

	if m.app.Searching() || m.app.SearchInput().Value() != "" {
		b.WriteString(s.Subtle.Render("/") + renderInput(m.app.SearchInput(), m.app.Searching()))
		b.WriteString("\n\n")
	}

	rows := m.sectionRows()
	if len(rows) == 0 {
		b.WriteString(s.Muted.Render("  nothing here yet"))
		return b.String()
	}

	selected, _ := m.selectedPosition()
	for i, row := range rows {
		if i == selected {
			b.WriteString(s.ListCursor.Render("> ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) selectedPosition() (int, bool) {
	switch m.app.Section {
	case app.SectionModels:
		return m.app.Models.SelectedPosition()
	case app.SectionStacks:
		return m.app.Stacks.SelectedPosition()
	case app.SectionSkills:
		return m.app.Skills.SelectedPosition()
	case app.SectionTools:
		return m.app.Tools.SelectedPosition()
	case app.SectionHooks:
		return m.app.Hooks.SelectedPosition()
	}
	return 0, false
}

func (m *Model) sectionRows() []string {
	s := m.theme.S()
	var rows []string
	switch m.app.Section {
	case app.SectionModels:
		for item := range m.app.Models.Visible() {
			marker := "  "
			if item.Alias == m.app.Config.DefaultModel {
				marker = s.Success.Render("● ")
			}
			rows = append(rows, fmt.Sprintf("%s%s %s",
				marker,
				s.Bold.Render(item.Alias),
				s.Muted.Render(item.Entry.Provider+" / "+item.Entry.Model)))
		}
	case app.SectionStacks:
		for item := range m.app.Stacks.Visible() {
			source := "inline"
			if item.Source != config.SourceInline {
				source = item.Source
			}
			rows = append(rows, fmt.Sprintf("%s %s",
				s.Bold.Render(item.Name),
				s.Muted.Render(source)))
		}
	case app.SectionSkills:
		for item := range m.app.Skills.Visible() {
			rows = append(rows, fmt.Sprintf("%s %s",
				s.Bold.Render(item.Name),
				s.Muted.Render(item.Description)))
		}
	case app.SectionTools:
		for item := range m.app.Tools.Visible() {
			box := "[ ]"
			if item.Enabled {
				box = s.Success.Render("[x]")
			}
			kind := "custom"
			if item.Builtin {
				kind = "builtin"
			}
			rows = append(rows, fmt.Sprintf("%s %s %s",
				box,
				s.Bold.Render(item.Name),
				s.Subtle.Render(kind)))
		}
	case app.SectionHooks:
		for item := range m.app.Hooks.Visible() {
			rows = append(rows, fmt.Sprintf("%s %s",
				s.Bold.Render(item.Name),
				s.Muted.Render(item.Kind)))
		}
	}
	return rows
}

func (m *Model) viewDetail() string {
	s := m.theme.S()
	switch m.app.Section {
	case app.SectionModels:
		item, ok := m.app.Models.Selected()
		if !ok {
			return s.Muted.Render("nothing selected")
		}
		lines := []string{
			s.Title.Render(item.Alias),
			"",
			s.Label.Render("Provider") + item.Entry.Provider,
			s.Label.Render("Model") + item.Entry.Model,
		}
		if item.Alias == m.app.Config.DefaultModel {
			lines = append(lines, s.Label.Render("Default")+s.Success.Render("yes"))
		}
		return strings.Join(lines, "\n")

	case app.SectionStacks:
		item, ok := m.app.Stacks.Selected()
		if !ok {
			return s.Muted.Render("nothing selected")
		}
		return m.viewStackDetail(item)

	case app.SectionSkills:
		item, ok := m.app.Skills.Selected()
		if !ok {
			return s.Muted.Render("nothing selected")
		}
		return m.viewSkillDetail(item)

	case app.SectionTools:
		item, ok := m.app.Tools.Selected()
		if !ok {
			return s.Muted.Render("nothing selected")
		}
		status := "disabled"
		if item.Enabled {
			status = "enabled"
		}
		kind := "custom"
		if item.Builtin {
			kind = "builtin"
		}
		return strings.Join([]string{
			s.Title.Render(item.Name),
			"",
			s.Label.Render("Kind") + kind,
			s.Label.Render("Status") + status,
		}, "\n")

	case app.SectionHooks:
		item, ok := m.app.Hooks.Selected()
		if !ok {
			return s.Muted.Render("nothing selected")
		}
		return strings.Join([]string{
			s.Title.Render(item.Name),
			"",
			s.Label.Render("Kind") + item.Kind,
			s.Label.Render("Path") + item.Path,
		}, "\n")
	}
	return ""
}

func (m *Model) viewStackDetail(item config.DiscoveredStack) string {
	s := m.theme.S()
	lines := []string{
		s.Title.Render(item.Name),
		"",
		s.Label.Render("Source") + item.Source,
	}
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, s.Label.Render(label)+value)
		}
	}
	add("Extends", item.Entry.Extends)
	add("Model", item.Entry.Model)
	if item.Entry.Temperature != nil {
		add("Temperature", fmt.Sprintf("%g", *item.Entry.Temperature))
	}
	if item.Entry.Timeout != nil {
		add("Timeout", fmt.Sprintf("%d ms", *item.Entry.Timeout))
	}
	if item.Entry.MaxTokens != nil {
		add("Max tokens", fmt.Sprintf("%d", *item.Entry.MaxTokens))
	}
	add("Skill", item.Entry.Skill)
	add("Context file", item.Entry.ContextFile)
	if item.Entry.Unrestricted {
		lines = append(lines, s.Label.Render("Unrestricted")+s.Warning.Render("yes"))
	}
	if item.Entry.Context != "" {
		lines = append(lines, "", s.Subtitle.Render("Context"), item.Entry.Context)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewSkillDetail(item config.SkillInfo) string {
	s := m.theme.S()
	header := []string{
		s.Title.Render(item.Name),
		"",
		s.Label.Render("Path") + item.Path,
	}
	if item.License != "" {
		header = append(header, s.Label.Render("License")+item.License)
	}

	raw, err := os.ReadFile(filepath.Join(item.Path, "SKILL.md"))
	if err != nil {
		header = append(header, "", s.Error.Render("cannot read skill: "+err.Error()))
		return strings.Join(header, "\n")
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, rerr := renderer.Render(stripFrontmatter(string(raw))); rerr == nil {
			return strings.Join(header, "\n") + "\n" + rendered
		}
	}
	return strings.Join(header, "\n") + "\n\n" + string(raw)
}

// stripFrontmatter drops the leading yaml block; the header fields already
// show its contents.
func stripFrontmatter(doc string) string {
	if !strings.HasPrefix(doc, "---\n") {
		return doc
	}
	rest := doc[4:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return doc
	}
	body := rest[end+4:]
	return strings.TrimLeft(body, "\n")
}

func (m *Model) viewSettings() string {
	s := m.theme.S()
	lines := []string{
		s.Subtitle.Render("Configuration"),
		s.Label.Render("Editing") + m.app.ConfigPath,
	}
	if m.app.Dirty {
		lines = append(lines, s.Label.Render("State")+s.Warning.Render("unsaved changes"))
	} else {
		lines = append(lines, s.Label.Render("State")+"saved")
	}
	lines = append(lines, "", s.Subtitle.Render("relay CLI"))

	switch m.app.InfoStatus.State {
	case relay.StateLoading:
		lines = append(lines, m.spin.View()+" querying relay...")
	case relay.StateNotAvailable:
		lines = append(lines,
			s.Muted.Render("relay binary not found on PATH."),
			s.Muted.Render("Install relay to see auth and provider status here."))
	case relay.StateError:
		lines = append(lines, s.Error.Render("relay error: "+m.app.InfoStatus.Err))
	case relay.StateLoaded:
		lines = append(lines, m.viewInfo(m.app.InfoStatus.Info)...)
	}
	lines = append(lines, "", s.Subtle.Render("L login  r refresh"))
	return strings.Join(lines, "\n")
}

func (m *Model) viewInfo(info *relay.Info) []string {
	s := m.theme.S()
	lines := []string{
		s.Label.Render("Version") + info.Version,
		s.Label.Render("Default") + info.Models.Default,
	}
	providers := make([]string, 0, len(info.Auth))
	for name := range info.Auth {
		providers = append(providers, name)
	}
	sort.Strings(providers)
	for _, name := range providers {
		auth := info.Auth[name]
		state := s.Error.Render("not authenticated")
		if auth.Authenticated {
			state = s.Success.Render("authenticated (" + auth.Method + ")")
		}
		lines = append(lines, s.Label.Render(name)+state)
	}
	lines = append(lines, s.Label.Render("Counts")+fmt.Sprintf(
		"%d models, %d stacks, %d skills, %d hooks",
		info.Counts.Models, info.Counts.Stacks, info.Counts.Skills, info.Counts.Hooks))
	return lines
}

func (m *Model) viewFooter() string {
	s := m.theme.S()
	if m.app.StatusMessage != "" {
		return s.StatusBar.Width(m.width).Render(m.app.StatusMessage)
	}
	var parts []string
	for _, b := range m.keys.ShortHelp(m.app.Section) {
		parts = append(parts, s.Bold.Render(b.Help().Key)+" "+b.Help().Desc)
	}
	return s.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}
