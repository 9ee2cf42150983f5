// Package app holds the editor's state machine: sections, collections,
// modal dispatch and the staged edits that eventually get persisted. It
// knows nothing about rendering; the tui package reads it, never the other
// way around.
package app

import (
	"fmt"
	"os"
	"sort"

	"github.com/relayhq/relay-tui/internal/collection"
	"github.com/relayhq/relay-tui/internal/config"
	"github.com/relayhq/relay-tui/internal/relay"
	"github.com/relayhq/relay-tui/internal/widget"
)

// ModelItem is one row in the Models section.
type ModelItem struct {
	Alias string
	Entry config.ModelEntry
}

// ToolItem is one row in the Tools section. Builtins toggle; customs are
// added and removed whole.
type ToolItem struct {
	Name    string
	Enabled bool
	Builtin bool
}

// App is the whole editor state. One instance lives for the lifetime of
// the program.
type App struct {
	Section Section
	View    View

	// modal, when non-nil, owns every key press. searching only matters
	// when modal is nil.
	modal     Modal
	searching bool

	Config     *config.Config
	ConfigPath string
	Dirty      bool

	ShouldQuit     bool
	LoginRequested bool
	StatusMessage  string

	Models *collection.Collection[ModelItem]
	Stacks *collection.Collection[config.DiscoveredStack]
	Skills *collection.Collection[config.SkillInfo]
	Tools  *collection.Collection[ToolItem]
	Hooks  *collection.Collection[config.HookInfo]

	searches map[Section]*widget.TextInput

	InfoStatus relay.Status
	infoCh     <-chan relay.Status

	store  *config.Store
	client *relay.Client
}

// New loads the merged configuration and populates every section. When no
// config file exists on disk (or initMode forces it), the setup wizard
// replaces the editor.
func New(store *config.Store, client *relay.Client, initMode bool) *App {
	cfg, path := store.LoadMerged()

	a := &App{
		Section:    SectionModels,
		Config:     cfg,
		ConfigPath: path,
		Models:     collection.New[ModelItem](nil),
		Stacks:     collection.New[config.DiscoveredStack](nil),
		Skills:     collection.New[config.SkillInfo](nil),
		Tools:      collection.New[ToolItem](nil),
		Hooks:      collection.New[config.HookInfo](nil),
		searches:   map[Section]*widget.TextInput{},
		store:      store,
		client:     client,
	}
	for _, s := range Sections() {
		a.searches[s] = widget.NewTextInput().WithPlaceholder("Search...")
	}
	a.refreshAll()

	if initMode || !a.configOnDisk() {
		a.modal = NewWizard()
	} else {
		a.infoCh = client.FetchAsync()
	}
	return a
}

func (a *App) configOnDisk() bool {
	for _, p := range []string{a.store.GlobalPath(), a.store.ProjectPath()} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

// Modal is the active modal context, nil in normal mode.
func (a *App) Modal() Modal { return a.modal }

// Searching reports whether the search bar owns key input.
func (a *App) Searching() bool { return a.searching }

// SearchInput is the current section's search field.
func (a *App) SearchInput() *widget.TextInput { return a.searches[a.Section] }

// PollInfo drains at most one status update from the background fetch.
// It never blocks; the UI calls it on its tick.
func (a *App) PollInfo() bool {
	if a.infoCh == nil {
		return false
	}
	select {
	case st := <-a.infoCh:
		a.InfoStatus = st
		a.infoCh = nil
		return true
	default:
		return false
	}
}

// InfoPending reports whether a background fetch is still outstanding.
func (a *App) InfoPending() bool { return a.infoCh != nil }

// RefreshInfo restarts the background fetch.
func (a *App) RefreshInfo() {
	a.InfoStatus = relay.Status{State: relay.StateLoading}
	a.infoCh = a.client.FetchAsync()
}

func (a *App) refreshAll() {
	a.refreshModels()
	a.refreshStacks()
	a.refreshSkills()
	a.refreshTools()
	a.refreshHooks()
}

func (a *App) refreshModels() {
	items := make([]ModelItem, 0, len(a.Config.Models))
	for alias, entry := range a.Config.Models {
		items = append(items, ModelItem{Alias: alias, Entry: entry})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Alias < items[j].Alias })
	a.Models.ReplaceAll(items)
}

func (a *App) refreshStacks() {
	a.Stacks.ReplaceAll(a.store.DiscoverStacks(a.Config))
}

func (a *App) refreshSkills() {
	a.Skills.ReplaceAll(a.store.DiscoverSkills())
}

func (a *App) refreshTools() {
	enabled := map[string]bool{}
	for _, name := range a.Config.Tools.Enabled {
		enabled[name] = true
	}
	items := make([]ToolItem, 0, len(config.BuiltinTools)+len(a.Config.Tools.Custom))
	for _, name := range config.BuiltinTools {
		items = append(items, ToolItem{Name: name, Enabled: enabled[name], Builtin: true})
	}
	for _, path := range a.Config.Tools.Custom {
		items = append(items, ToolItem{Name: path, Enabled: true})
	}
	a.Tools.ReplaceAll(items)
}

func (a *App) refreshHooks() {
	a.Hooks.ReplaceAll(a.store.DiscoverHooks())
}

// Save persists the current configuration to the layer it was loaded
// from. The dirty flag only clears on success.
func (a *App) Save() {
	if err := a.store.Persist(a.Config, a.ConfigPath); err != nil {
		a.StatusMessage = err.Error()
		return
	}
	a.Dirty = false
	a.StatusMessage = fmt.Sprintf("Saved to %s", a.ConfigPath)
}

// toggleBuiltinTool flips one builtin in the enabled list. Custom tools
// have no disabled state.
func (a *App) toggleBuiltinTool(name string) {
	for i, n := range a.Config.Tools.Enabled {
		if n == name {
			a.Config.Tools.Enabled = append(a.Config.Tools.Enabled[:i], a.Config.Tools.Enabled[i+1:]...)
			a.Dirty = true
			a.refreshTools()
			return
		}
	}
	a.Config.Tools.Enabled = append(a.Config.Tools.Enabled, name)
	a.Dirty = true
	a.refreshTools()
}

// providerKeys lists the configured providers in stable order for the
// model form's selector.
func (a *App) providerKeys() []string {
	keys := make([]string, 0, len(a.Config.Providers))
	for k := range a.Config.Providers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
