package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/relayhq/relay-tui/internal/config"
)

// HandleKey routes one key press by precedence: the active modal first,
// then the search bar, then normal-mode bindings. The type switch is the
// whole dispatch table; adding a modal kind without a case here is a
// compile-visible hole, not a silent fallthrough.
func (a *App) HandleKey(msg tea.KeyPressMsg) {
	switch m := a.modal.(type) {
	case *Wizard:
		a.handleWizardKey(m, msg)
		return
	case *ConfirmDialog:
		a.handleConfirmKey(m, msg)
		return
	case *ModelForm:
		a.handleModelFormKey(m, msg)
		return
	case *StackForm:
		a.handleStackFormKey(m, msg)
		return
	case *ToolForm:
		a.handleToolFormKey(m, msg)
		return
	}
	if a.searching {
		a.handleSearchKey(msg)
		return
	}
	a.handleNormalKey(msg)
}

func (a *App) handleWizardKey(w *Wizard, msg tea.KeyPressMsg) {
	switch w.HandleKey(msg) {
	case WizardQuit:
		a.ShouldQuit = true
	case WizardLogin:
		a.LoginRequested = true
	case WizardDone:
		cfg := w.BuildConfig()
		if err := a.store.Persist(cfg, a.store.GlobalPath()); err != nil {
			a.StatusMessage = err.Error()
			return
		}
		// Setup ends the run; the next start loads the new config.
		a.Config = cfg
		a.ConfigPath = a.store.GlobalPath()
		a.Dirty = false
		a.StatusMessage = fmt.Sprintf("Setup complete. Saved to %s", a.ConfigPath)
		a.ShouldQuit = true
	}
}

func (a *App) handleConfirmKey(d *ConfirmDialog, msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", "n":
		a.modal = nil
	case "left", "h", "right", "l", "tab":
		d.ToggleSelection()
	case "y":
		a.modal = nil
		a.executeAction(d.Pending)
	case "enter":
		a.modal = nil
		if d.Confirmed() {
			a.executeAction(d.Pending)
		}
	}
}

func (a *App) handleModelFormKey(f *ModelForm, msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc":
		a.modal = nil
	case "tab", "down":
		f.NextField()
	case "shift+tab", "up":
		f.PrevField()
	case "enter", "ctrl+s":
		if errs := f.Commit(a.Config); len(errs) > 0 {
			a.StatusMessage = strings.Join(errs, "; ")
			return
		}
		a.modal = nil
		a.Dirty = true
		a.refreshModels()
		a.StatusMessage = fmt.Sprintf("Model %q staged. Ctrl+S to save.", f.CommittedAlias())
	default:
		f.HandleKey(msg)
	}
}

func (a *App) handleStackFormKey(f *StackForm, msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc":
		a.modal = nil
		return
	case "tab":
		f.NextField()
		return
	case "shift+tab":
		f.PrevField()
		return
	case "enter", "ctrl+s":
		// The context textarea needs Enter for newlines; everywhere else
		// Enter submits. Ctrl+S submits from any field.
		if f.Focused != stackFormContextField || msg.String() == "ctrl+s" {
			if errs := f.Commit(a.Config); len(errs) > 0 {
				a.StatusMessage = strings.Join(errs, "; ")
				return
			}
			a.modal = nil
			a.Dirty = true
			a.refreshStacks()
			a.StatusMessage = fmt.Sprintf("Stack %q staged. Ctrl+S to save.", f.CommittedName())
			return
		}
	}
	f.HandleKey(msg)
}

func (a *App) handleToolFormKey(f *ToolForm, msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc":
		a.modal = nil
	case "enter", "ctrl+s":
		if errs := f.Commit(a.Config); len(errs) > 0 {
			a.StatusMessage = strings.Join(errs, "; ")
			return
		}
		a.modal = nil
		a.Dirty = true
		a.refreshTools()
		a.StatusMessage = fmt.Sprintf("Tool %q staged. Ctrl+S to save.", f.CommittedPath())
	default:
		f.HandleKey(msg)
	}
}

func (a *App) handleSearchKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc":
		a.clearSearch()
	case "enter":
		// Keep the filter, return key ownership to the list.
		a.searching = false
	default:
		if a.SearchInput().HandleKey(msg) {
			a.applySearch()
		}
	}
}

func (a *App) handleNormalKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "ctrl+c":
		a.ShouldQuit = true
	case "q":
		if a.View == ViewDetail {
			a.View = ViewList
			return
		}
		a.requestQuit()
	case "esc":
		if a.View == ViewDetail {
			a.View = ViewList
			return
		}
		if a.SearchInput().Value() != "" {
			a.clearSearch()
		}
	case "ctrl+s":
		a.Save()
	case "tab":
		a.setSection(a.Section.Next())
	case "shift+tab":
		a.setSection(a.Section.Prev())
	case "1", "2", "3", "4", "5", "6":
		if s, ok := SectionFromDigit(int(msg.String()[0] - '0')); ok {
			a.setSection(s)
		}
	case "j", "down":
		a.selectNext()
	case "k", "up":
		a.selectPrevious()
	case "enter", "l", "right":
		if a.View == ViewList && a.Section != SectionSettings {
			a.View = ViewDetail
		}
	case "h", "left":
		a.View = ViewList
	case "/":
		if a.Section != SectionSettings {
			a.searching = true
		}
	case "r":
		a.refreshAll()
		if a.Section == SectionSettings {
			a.RefreshInfo()
		}
		a.StatusMessage = "Refreshed"
	case "L", "shift+l":
		if a.Section == SectionSettings {
			a.LoginRequested = true
		}
	case "space":
		a.toggleSelectedTool()
	case "n":
		a.openCreateForm()
	case "e":
		a.openEditForm()
	case "d":
		a.requestDelete()
	}
}

func (a *App) setSection(s Section) {
	a.Section = s
	a.View = ViewList
	a.searching = false
}

func (a *App) selectNext() {
	switch a.Section {
	case SectionModels:
		a.Models.Next()
	case SectionStacks:
		a.Stacks.Next()
	case SectionSkills:
		a.Skills.Next()
	case SectionTools:
		a.Tools.Next()
	case SectionHooks:
		a.Hooks.Next()
	}
}

func (a *App) selectPrevious() {
	switch a.Section {
	case SectionModels:
		a.Models.Previous()
	case SectionStacks:
		a.Stacks.Previous()
	case SectionSkills:
		a.Skills.Previous()
	case SectionTools:
		a.Tools.Previous()
	case SectionHooks:
		a.Hooks.Previous()
	}
}

// applySearch filters the current section by case-insensitive substring.
// The filter narrows what is visible; it never reorders.
func (a *App) applySearch() {
	query := strings.ToLower(a.SearchInput().Value())
	match := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), query) {
				return true
			}
		}
		return false
	}
	switch a.Section {
	case SectionModels:
		a.Models.ApplyFilter(func(m ModelItem) bool {
			return match(m.Alias, m.Entry.Provider, m.Entry.Model)
		})
	case SectionStacks:
		a.Stacks.ApplyFilter(func(s config.DiscoveredStack) bool {
			return match(s.Name, s.Entry.Model)
		})
	case SectionSkills:
		a.Skills.ApplyFilter(func(s config.SkillInfo) bool {
			return match(s.Name, s.Description)
		})
	case SectionTools:
		a.Tools.ApplyFilter(func(t ToolItem) bool {
			return match(t.Name)
		})
	case SectionHooks:
		a.Hooks.ApplyFilter(func(h config.HookInfo) bool {
			return match(h.Name, h.Kind)
		})
	}
}

func (a *App) clearSearch() {
	a.searching = false
	a.SearchInput().Clear()
	switch a.Section {
	case SectionModels:
		a.Models.ClearFilter()
	case SectionStacks:
		a.Stacks.ClearFilter()
	case SectionSkills:
		a.Skills.ClearFilter()
	case SectionTools:
		a.Tools.ClearFilter()
	case SectionHooks:
		a.Hooks.ClearFilter()
	}
}

func (a *App) toggleSelectedTool() {
	if a.Section != SectionTools {
		return
	}
	tool, ok := a.Tools.Selected()
	if !ok {
		return
	}
	if !tool.Builtin {
		a.StatusMessage = "Custom tools are removed with d, not toggled"
		return
	}
	a.toggleBuiltinTool(tool.Name)
}

func (a *App) openCreateForm() {
	switch a.Section {
	case SectionModels:
		a.modal = NewModelFormCreate(a.providerKeys())
	case SectionStacks:
		a.modal = NewStackFormCreate()
	case SectionTools:
		a.modal = NewToolForm()
	}
}

func (a *App) openEditForm() {
	switch a.Section {
	case SectionModels:
		m, ok := a.Models.Selected()
		if !ok {
			return
		}
		a.modal = NewModelFormEdit(m.Alias, m.Entry, a.Config.DefaultModel == m.Alias, a.providerKeys())
	case SectionStacks:
		s, ok := a.Stacks.Selected()
		if !ok {
			return
		}
		if s.Source != config.SourceInline {
			a.StatusMessage = fmt.Sprintf("Stack %q lives in %s; edit the file directly", s.Name, s.Source)
			return
		}
		a.modal = NewStackFormEdit(s.Name, s.Entry)
	}
}

func (a *App) requestDelete() {
	switch a.Section {
	case SectionModels:
		m, ok := a.Models.Selected()
		if !ok {
			return
		}
		a.modal = NewConfirmDialog(
			"Delete model",
			fmt.Sprintf("Delete model %q?", m.Alias),
			PendingAction{Kind: ActionDeleteModel, Name: m.Alias},
		)
	case SectionStacks:
		s, ok := a.Stacks.Selected()
		if !ok {
			return
		}
		if s.Source != config.SourceInline {
			a.StatusMessage = fmt.Sprintf("Stack %q lives in %s; delete the file directly", s.Name, s.Source)
			return
		}
		a.modal = NewConfirmDialog(
			"Delete stack",
			fmt.Sprintf("Delete stack %q?", s.Name),
			PendingAction{Kind: ActionDeleteStack, Name: s.Name},
		)
	case SectionTools:
		t, ok := a.Tools.Selected()
		if !ok || t.Builtin {
			return
		}
		a.modal = NewConfirmDialog(
			"Remove tool",
			fmt.Sprintf("Remove custom tool %q?", t.Name),
			PendingAction{Kind: ActionDeleteTool, Name: t.Name},
		)
	}
}

func (a *App) requestQuit() {
	if !a.Dirty {
		a.ShouldQuit = true
		return
	}
	a.modal = NewConfirmDialog(
		"Unsaved changes",
		"Quit without saving?",
		PendingAction{Kind: ActionQuit},
	)
}

func (a *App) executeAction(p PendingAction) {
	switch p.Kind {
	case ActionDeleteModel:
		delete(a.Config.Models, p.Name)
		if a.Config.DefaultModel == p.Name {
			a.Config.DefaultModel = ""
		}
		a.Dirty = true
		a.refreshModels()
		a.StatusMessage = fmt.Sprintf("Model %q deleted. Ctrl+S to save.", p.Name)
	case ActionDeleteStack:
		delete(a.Config.Stacks, p.Name)
		a.Dirty = true
		a.refreshStacks()
		a.StatusMessage = fmt.Sprintf("Stack %q deleted. Ctrl+S to save.", p.Name)
	case ActionDeleteTool:
		for i, path := range a.Config.Tools.Custom {
			if path == p.Name {
				a.Config.Tools.Custom = append(a.Config.Tools.Custom[:i], a.Config.Tools.Custom[i+1:]...)
				break
			}
		}
		a.Dirty = true
		a.refreshTools()
		a.StatusMessage = fmt.Sprintf("Tool %q removed. Ctrl+S to save.", p.Name)
	case ActionQuit:
		a.ShouldQuit = true
	}
}
