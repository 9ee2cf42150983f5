package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/relayhq/relay-tui/internal/config"
	"github.com/relayhq/relay-tui/internal/widget"
)

// FormMode distinguishes creating a new entity from editing an existing one.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// ModelForm stages a model alias create/edit. Field order: alias, provider,
// model id, set-as-default.
type ModelForm struct {
	Mode          FormMode
	OriginalAlias string // Edit only: key to drop on rename

	Focused    int
	Alias      *widget.TextInput
	Provider   *widget.Selector
	ModelID    *widget.Selector
	SetDefault *widget.Toggle
}

const modelFormFields = 4

// NewModelFormCreate builds an empty model form over the configured
// providers.
func NewModelFormCreate(providers []string) *ModelForm {
	first := ""
	if len(providers) > 0 {
		first = providers[0]
	}
	return &ModelForm{
		Mode:       FormCreate,
		Alias:      widget.NewTextInput().WithPlaceholder("e.g., fast, smart, claude"),
		Provider:   widget.NewSelector(providers),
		ModelID:    widget.NewSelector(ModelsForProvider(first)),
		SetDefault: widget.NewToggle("Set as default model"),
	}
}

// NewModelFormEdit builds a form pre-filled from an existing entry.
func NewModelFormEdit(alias string, entry config.ModelEntry, isDefault bool, providers []string) *ModelForm {
	provider := widget.NewSelector(providers)
	provider.SelectValue(entry.Provider)

	modelID := widget.NewSelector(ModelsForProvider(entry.Provider))
	modelID.SelectValue(entry.Model)

	return &ModelForm{
		Mode:          FormEdit,
		OriginalAlias: alias,
		Alias:         widget.NewTextInput().WithValue(alias),
		Provider:      provider,
		ModelID:       modelID,
		SetDefault:    widget.NewToggle("Set as default model").WithValue(isDefault),
	}
}

// NextField moves focus forward, wrapping.
func (f *ModelForm) NextField() { f.Focused = (f.Focused + 1) % modelFormFields }

// PrevField moves focus backward, wrapping.
func (f *ModelForm) PrevField() {
	f.Focused = (f.Focused + modelFormFields - 1) % modelFormFields
}

// RecomputeModelOptions rebuilds the model id choices after a provider
// change. The dependency is one-directional and recomputed eagerly, so the
// id list can never show another provider's models.
func (f *ModelForm) RecomputeModelOptions() {
	f.ModelID = widget.NewSelector(ModelsForProvider(f.Provider.Value()))
}

// HandleKey routes a key press to the focused field.
func (f *ModelForm) HandleKey(msg tea.KeyPressMsg) {
	switch f.Focused {
	case 0:
		f.Alias.HandleKey(msg)
	case 1:
		if f.Provider.HandleKey(msg) {
			f.RecomputeModelOptions()
		}
	case 2:
		f.ModelID.HandleKey(msg)
	case 3:
		f.SetDefault.HandleKey(msg)
	}
}

// Validate returns every violated rule at once.
func (f *ModelForm) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Alias.Value()) == "" {
		errs = append(errs, "Alias is required")
	}
	if f.Provider.IsEmpty() {
		errs = append(errs, "No providers configured")
	}
	if f.ModelID.Value() == "" {
		errs = append(errs, "Model is required")
	}
	return errs
}

// Commit validates and applies the staged model to cfg. On validation
// failure it returns the errors and cfg is untouched.
func (f *ModelForm) Commit(cfg *config.Config) []string {
	if errs := f.Validate(); len(errs) > 0 {
		return errs
	}

	alias := strings.TrimSpace(f.Alias.Value())
	if f.OriginalAlias != "" && f.OriginalAlias != alias {
		delete(cfg.Models, f.OriginalAlias)
	}
	cfg.Models[alias] = config.ModelEntry{
		Provider: f.Provider.Value(),
		Model:    f.ModelID.Value(),
	}
	if f.SetDefault.Value() {
		cfg.DefaultModel = alias
	}
	return nil
}

// CommittedAlias is the key the form writes under, for status messages.
func (f *ModelForm) CommittedAlias() string {
	return strings.TrimSpace(f.Alias.Value())
}

// StackForm stages a stack create/edit. Field order: name, extends, model,
// temperature, timeout, max tokens, skill, context, context file,
// unrestricted.
type StackForm struct {
	Mode         FormMode
	OriginalName string

	Focused      int
	Name         *widget.TextInput
	Extends      *widget.TextInput
	Model        *widget.TextInput
	Temperature  *widget.TextInput
	Timeout      *widget.TextInput
	MaxTokens    *widget.TextInput
	Skill        *widget.TextInput
	Context      textarea.Model
	ContextFile  *widget.TextInput
	Unrestricted *widget.Toggle
}

const (
	stackFormFields       = 10
	stackFormContextField = 7
)

func newStackContextArea() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Multi-line context (optional)"
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.Focus()
	return ta
}

// NewStackFormCreate builds an empty stack form.
func NewStackFormCreate() *StackForm {
	return &StackForm{
		Mode:         FormCreate,
		Name:         widget.NewTextInput().WithPlaceholder("e.g., codex-architect"),
		Extends:      widget.NewTextInput().WithPlaceholder("Base stack to extend (optional)"),
		Model:        widget.NewTextInput().WithPlaceholder("Model alias (optional)"),
		Temperature:  widget.NewTextInput().WithPlaceholder("0.0 - 2.0 (optional)"),
		Timeout:      widget.NewTextInput().WithPlaceholder("Timeout in ms (optional)"),
		MaxTokens:    widget.NewTextInput().WithPlaceholder("Max tokens (optional)"),
		Skill:        widget.NewTextInput().WithPlaceholder("Skill name (optional)"),
		Context:      newStackContextArea(),
		ContextFile:  widget.NewTextInput().WithPlaceholder("Path to context file (optional)"),
		Unrestricted: widget.NewToggle("Unrestricted mode"),
	}
}

// NewStackFormEdit builds a form pre-filled from an existing stack.
func NewStackFormEdit(name string, entry config.StackEntry) *StackForm {
	ctx := newStackContextArea()
	ctx.SetValue(entry.Context)

	return &StackForm{
		Mode:         FormEdit,
		OriginalName: name,
		Name:         widget.NewTextInput().WithValue(name),
		Extends:      widget.NewTextInput().WithValue(entry.Extends),
		Model:        widget.NewTextInput().WithValue(entry.Model),
		Temperature:  widget.NewTextInput().WithValue(formatFloat(entry.Temperature)),
		Timeout:      widget.NewTextInput().WithValue(formatUint64(entry.Timeout)),
		MaxTokens:    widget.NewTextInput().WithValue(formatUint32(entry.MaxTokens)),
		Skill:        widget.NewTextInput().WithValue(entry.Skill),
		Context:      ctx,
		ContextFile:  widget.NewTextInput().WithValue(entry.ContextFile),
		Unrestricted: widget.NewToggle("Unrestricted mode").WithValue(entry.Unrestricted),
	}
}

// NextField moves focus forward, wrapping.
func (f *StackForm) NextField() { f.Focused = (f.Focused + 1) % stackFormFields }

// PrevField moves focus backward, wrapping.
func (f *StackForm) PrevField() {
	f.Focused = (f.Focused + stackFormFields - 1) % stackFormFields
}

// HandleKey routes a key press to the focused field.
func (f *StackForm) HandleKey(msg tea.KeyPressMsg) {
	switch f.Focused {
	case 0:
		f.Name.HandleKey(msg)
	case 1:
		f.Extends.HandleKey(msg)
	case 2:
		f.Model.HandleKey(msg)
	case 3:
		f.Temperature.HandleKey(msg)
	case 4:
		f.Timeout.HandleKey(msg)
	case 5:
		f.MaxTokens.HandleKey(msg)
	case 6:
		f.Skill.HandleKey(msg)
	case stackFormContextField:
		f.Context, _ = f.Context.Update(msg)
	case 8:
		f.ContextFile.HandleKey(msg)
	case 9:
		f.Unrestricted.HandleKey(msg)
	}
}

// Validate returns every violated rule at once. A present-but-unparsable
// number is an error; an empty optional field is simply "no value".
func (f *StackForm) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Name.Value()) == "" {
		errs = append(errs, "Name is required")
	}
	if v := strings.TrimSpace(f.Temperature.Value()); v != "" {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			errs = append(errs, "Temperature must be a number")
		}
	}
	if v := strings.TrimSpace(f.Timeout.Value()); v != "" {
		if _, err := strconv.ParseUint(v, 10, 64); err != nil {
			errs = append(errs, "Timeout must be a positive number")
		}
	}
	if v := strings.TrimSpace(f.MaxTokens.Value()); v != "" {
		if _, err := strconv.ParseUint(v, 10, 32); err != nil {
			errs = append(errs, "Max tokens must be a positive number")
		}
	}
	return errs
}

// Commit validates and applies the staged stack to cfg.
func (f *StackForm) Commit(cfg *config.Config) []string {
	if errs := f.Validate(); len(errs) > 0 {
		return errs
	}

	name := strings.TrimSpace(f.Name.Value())
	entry := config.StackEntry{
		Name:         name,
		Extends:      strings.TrimSpace(f.Extends.Value()),
		Model:        strings.TrimSpace(f.Model.Value()),
		Skill:        strings.TrimSpace(f.Skill.Value()),
		ContextFile:  strings.TrimSpace(f.ContextFile.Value()),
		Unrestricted: f.Unrestricted.Value(),
	}
	if v := strings.TrimSpace(f.Temperature.Value()); v != "" {
		t, _ := strconv.ParseFloat(v, 64)
		entry.Temperature = &t
	}
	if v := strings.TrimSpace(f.Timeout.Value()); v != "" {
		t, _ := strconv.ParseUint(v, 10, 64)
		entry.Timeout = &t
	}
	if v := strings.TrimSpace(f.MaxTokens.Value()); v != "" {
		t, _ := strconv.ParseUint(v, 10, 32)
		mt := uint32(t)
		entry.MaxTokens = &mt
	}
	if ctx := strings.TrimSpace(f.Context.Value()); ctx != "" {
		entry.Context = f.Context.Value()
	}

	if f.OriginalName != "" && f.OriginalName != name {
		delete(cfg.Stacks, f.OriginalName)
	}
	cfg.Stacks[name] = entry
	return nil
}

// CommittedName is the key the form writes under.
func (f *StackForm) CommittedName() string {
	return strings.TrimSpace(f.Name.Value())
}

// ToolForm stages adding one custom tool executable.
type ToolForm struct {
	Path *widget.TextInput
}

// NewToolForm builds an empty tool form.
func NewToolForm() *ToolForm {
	return &ToolForm{
		Path: widget.NewTextInput().WithPlaceholder("Path to custom tool executable"),
	}
}

// HandleKey routes a key press to the single field.
func (f *ToolForm) HandleKey(msg tea.KeyPressMsg) {
	f.Path.HandleKey(msg)
}

// Validate returns the violated rules.
func (f *ToolForm) Validate() []string {
	if strings.TrimSpace(f.Path.Value()) == "" {
		return []string{"Path is required"}
	}
	return nil
}

// Commit validates and appends the tool path; duplicates are rejected
// without touching cfg.
func (f *ToolForm) Commit(cfg *config.Config) []string {
	if errs := f.Validate(); len(errs) > 0 {
		return errs
	}
	path := strings.TrimSpace(f.Path.Value())
	for _, existing := range cfg.Tools.Custom {
		if existing == path {
			return []string{"Tool already exists"}
		}
	}
	cfg.Tools.Custom = append(cfg.Tools.Custom, path)
	return nil
}

// CommittedPath is the path the form adds.
func (f *ToolForm) CommittedPath() string {
	return strings.TrimSpace(f.Path.Value())
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatUint64(v *uint64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(*v, 10)
}

func formatUint32(v *uint32) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v), 10)
}
