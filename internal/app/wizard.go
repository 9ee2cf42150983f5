package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/relayhq/relay-tui/internal/config"
	"github.com/relayhq/relay-tui/internal/widget"
)

// WizardStep is the current screen of the first-run setup flow.
type WizardStep int

const (
	StepWelcome WizardStep = iota
	StepSelectProvider
	StepAuthOAuth
	StepAuthAPIKey
	StepCreateModel
	StepConfirm
)

// WizardEvent tells the dispatcher what a key press resolved to. The wizard
// itself never touches the terminal or the store.
type WizardEvent int

const (
	WizardNone WizardEvent = iota
	WizardQuit
	WizardLogin
	WizardDone
)

// Wizard walks a fresh install through provider selection, authentication
// and the first model alias. It runs instead of the editor, not on top of
// it: there is no configuration to edit yet.
type Wizard struct {
	Step          WizardStep
	ProviderIndex int

	APIKey       *widget.TextInput
	ModelAlias   *widget.TextInput
	ModelID      *widget.Selector
	ModelFocused int // 0 alias, 1 model id

	OAuthFailed  bool
	ErrorMessage string
}

// NewWizard starts at the welcome screen.
func NewWizard() *Wizard {
	return &Wizard{
		APIKey:     widget.NewTextInput().WithPlaceholder("sk-..."),
		ModelAlias: widget.NewTextInput(),
		ModelID:    widget.NewSelector(nil),
	}
}

// SelectedProvider is the catalog entry under the cursor.
func (w *Wizard) SelectedProvider() ProviderOption {
	return providerCatalog[w.ProviderIndex]
}

// HandleKey advances the wizard one key press. Escape quits from any step:
// the flow only ever runs before a config exists, so there is nothing to
// lose by bailing out.
func (w *Wizard) HandleKey(msg tea.KeyPressMsg) WizardEvent {
	if msg.String() == "esc" || msg.String() == "ctrl+c" {
		return WizardQuit
	}

	switch w.Step {
	case StepWelcome:
		if msg.String() == "enter" {
			w.Step = StepSelectProvider
		}
	case StepSelectProvider:
		switch msg.String() {
		case "j", "down":
			w.ProviderIndex = (w.ProviderIndex + 1) % len(providerCatalog)
		case "k", "up":
			w.ProviderIndex = (w.ProviderIndex + len(providerCatalog) - 1) % len(providerCatalog)
		case "backspace":
			w.Step = StepWelcome
		case "enter":
			w.ErrorMessage = ""
			if w.SelectedProvider().AuthType == "oauth" {
				w.Step = StepAuthOAuth
				return WizardLogin
			}
			w.Step = StepAuthAPIKey
		}
	case StepAuthOAuth:
		switch {
		case msg.String() == "enter" && w.OAuthFailed:
			w.OAuthFailed = false
			w.ErrorMessage = ""
			return WizardLogin
		case msg.String() == "s":
			// Skip: the CLI can authenticate later; the editor only needs
			// the provider entry.
			w.OAuthFailed = false
			w.enterCreateModel()
		}
	case StepAuthAPIKey:
		if msg.String() == "enter" {
			if strings.TrimSpace(w.APIKey.Value()) == "" {
				w.ErrorMessage = "API key is required"
				return WizardNone
			}
			w.enterCreateModel()
			return WizardNone
		}
		w.APIKey.HandleKey(msg)
	case StepCreateModel:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			w.ModelFocused = 1 - w.ModelFocused
		case "enter":
			if strings.TrimSpace(w.ModelAlias.Value()) == "" {
				w.ErrorMessage = "Alias is required"
				return WizardNone
			}
			w.ErrorMessage = ""
			w.Step = StepConfirm
		default:
			if w.ModelFocused == 0 {
				w.ModelAlias.HandleKey(msg)
			} else {
				w.ModelID.HandleKey(msg)
			}
		}
	case StepConfirm:
		switch msg.String() {
		case "enter", "y", "Y":
			return WizardDone
		case "left", "backspace", "n", "N":
			w.Step = StepCreateModel
		}
	}
	return WizardNone
}

// OAuthComplete resumes the flow after the external login process exits.
func (w *Wizard) OAuthComplete(success bool) {
	if success {
		w.enterCreateModel()
		return
	}
	w.OAuthFailed = true
	w.ErrorMessage = "Login failed. Press Enter to retry, Esc to quit."
}

func (w *Wizard) enterCreateModel() {
	p := w.SelectedProvider()
	w.ModelID = widget.NewSelector(ModelsForProvider(p.Key))
	if w.ModelAlias.IsEmpty() && len(p.DefaultModels) > 0 {
		w.ModelAlias = widget.NewTextInput().WithValue(p.DefaultModels[0][0])
	}
	w.ModelFocused = 0
	w.ErrorMessage = ""
	w.Step = StepCreateModel
}

// BuildConfig turns the wizard's answers into a first configuration:
// defaults plus one provider and one model alias, which also becomes the
// default model.
func (w *Wizard) BuildConfig() *config.Config {
	cfg := config.Default()
	p := w.SelectedProvider()

	entry := config.ProviderEntry{
		Type:     p.ProviderType,
		BaseURL:  p.BaseURL,
		AuthType: p.AuthType,
	}
	if p.AuthType == "api_key" {
		entry.APIKey = strings.TrimSpace(w.APIKey.Value())
	}
	cfg.Providers[p.Key] = entry

	alias := strings.TrimSpace(w.ModelAlias.Value())
	cfg.Models[alias] = config.ModelEntry{
		Provider: p.Key,
		Model:    w.ModelID.Value(),
	}
	cfg.DefaultModel = alias
	return cfg
}
