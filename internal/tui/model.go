// Package tui renders the editor and feeds terminal input to the app
// state machine. All business rules live in app; this package only draws
// and translates bubbletea messages.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/relayhq/relay-tui/internal/app"
	"github.com/relayhq/relay-tui/internal/relay"
	"github.com/relayhq/relay-tui/internal/tui/styles"
)

const infoPollInterval = 150 * time.Millisecond

type infoPollMsg struct{}

type loginDoneMsg struct {
	err error
}

// Model wires the app state machine into bubbletea.
type Model struct {
	width  int
	height int

	app    *app.App
	client *relay.Client
	theme  *styles.Theme
	keys   app.KeyMap
	spin   spinner.Model
}

// New builds the root model.
func New(a *app.App, client *relay.Client) *Model {
	theme := styles.Default()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	return &Model{
		app:    a,
		client: client,
		theme:  theme,
		keys:   app.DefaultKeyMap(),
		spin:   sp,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, pollInfo())
}

func pollInfo() tea.Cmd {
	return tea.Tick(infoPollInterval, func(time.Time) tea.Msg {
		return infoPollMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case infoPollMsg:
		m.app.PollInfo()
		if m.app.InfoPending() {
			return m, pollInfo()
		}
		return m, nil

	case loginDoneMsg:
		if w, ok := m.app.Modal().(*app.Wizard); ok {
			w.OAuthComplete(msg.err == nil)
			return m, nil
		}
		if msg.err != nil {
			m.app.StatusMessage = "Login failed: " + msg.err.Error()
			return m, nil
		}
		m.app.StatusMessage = "Login complete"
		m.app.RefreshInfo()
		return m, pollInfo()

	case tea.KeyPressMsg:
		m.app.HandleKey(msg)
		if m.app.ShouldQuit {
			return m, tea.Quit
		}
		if m.app.LoginRequested {
			m.app.LoginRequested = false
			return m, tea.ExecProcess(m.client.LoginCommand(), func(err error) tea.Msg {
				return loginDoneMsg{err: err}
			})
		}
		// A key may have restarted the background fetch (refresh); keep
		// the poll chain alive whenever a result is outstanding.
		if m.app.InfoPending() {
			return m, pollInfo()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if w, ok := m.app.Modal().(*app.Wizard); ok {
		return m.viewWizard(w)
	}

	body := m.viewBody()
	footer := m.viewFooter()

	page := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		body,
		footer,
	)

	switch modal := m.app.Modal().(type) {
	case *app.ConfirmDialog:
		return m.centerDialog(m.viewConfirm(modal))
	case *app.ModelForm:
		return m.centerDialog(m.viewModelForm(modal))
	case *app.StackForm:
		return m.centerDialog(m.viewStackForm(modal))
	case *app.ToolForm:
		return m.centerDialog(m.viewToolForm(modal))
	}
	return page
}

// centerDialog takes over the screen while a modal is open.
func (m *Model) centerDialog(dialog string) string {
	boxed := m.theme.S().Dialog.Render(dialog)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxed)
}
