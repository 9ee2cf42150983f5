// Package relay talks to the relay CLI. The CLI is the source of truth for
// auth state and anything else the editor only displays; this package never
// writes through it.
package relay

import (
	"encoding/json"
	"fmt"
	"os/exec"
)

// Info is the document returned by `relay info --json`.
type Info struct {
	Version   string                    `json:"version"`
	Config    ConfigInfo                `json:"config"`
	Auth      map[string]AuthStatus     `json:"auth"`
	Models    ModelsInfo                `json:"models"`
	Providers map[string]ProviderStatus `json:"providers"`
	Counts    Counts                    `json:"counts"`
}

// ConfigInfo reports where relay looks for configuration.
type ConfigInfo struct {
	GlobalPath    string `json:"global_path"`
	ProjectPath   string `json:"project_path"`
	GlobalExists  bool   `json:"global_exists"`
	ProjectExists bool   `json:"project_exists"`
}

// AuthStatus is one provider's authentication state.
type AuthStatus struct {
	Authenticated bool   `json:"authenticated"`
	Method        string `json:"method"`
	ExpiresAt     string `json:"expires_at,omitempty"`
}

// ModelsInfo summarises configured model aliases.
type ModelsInfo struct {
	Default    string   `json:"default"`
	Configured []string `json:"configured"`
}

// ProviderStatus reports key presence per provider.
type ProviderStatus struct {
	Type   string `json:"type"`
	HasKey bool   `json:"has_key"`
}

// Counts are entity totals as relay sees them.
type Counts struct {
	Skills int `json:"skills"`
	Stacks int `json:"stacks"`
	Hooks  int `json:"hooks"`
	Models int `json:"models"`
}

// State tracks the background info fetch.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateNotAvailable
	StateError
)

// Status is what the UI renders for the Settings section.
type Status struct {
	State State
	Info  *Info
	Err   string
}

// Client invokes the relay binary.
type Client struct {
	bin string
}

// NewClient builds a client for the relay binary on PATH.
func NewClient() *Client {
	return &Client{bin: "relay"}
}

// NewClientWithBinary builds a client around a specific executable, used by
// tests.
func NewClientWithBinary(bin string) *Client {
	return &Client{bin: bin}
}

// Available reports whether the relay binary runs at all.
func (c *Client) Available() bool {
	out := exec.Command(c.bin, "--version")
	return out.Run() == nil
}

// FetchInfo runs `relay info --json` and parses the result.
func (c *Client) FetchInfo() (*Info, error) {
	out, err := exec.Command(c.bin, "info", "--json").Output()
	if err != nil {
		return nil, fmt.Errorf("relay info failed: %w", err)
	}
	var info Info
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("failed to parse relay info output: %w", err)
	}
	return &info, nil
}

// FetchAsync starts the info fetch on a background goroutine and returns the
// channel the single result arrives on. The channel is buffered, so the
// worker never blocks on a receiver that went away; the event loop polls it
// non-blockingly once per iteration.
func (c *Client) FetchAsync() <-chan Status {
	ch := make(chan Status, 1)
	go func() {
		if !c.Available() {
			ch <- Status{State: StateNotAvailable}
			return
		}
		info, err := c.FetchInfo()
		if err != nil {
			ch <- Status{State: StateError, Err: err.Error()}
			return
		}
		ch <- Status{State: StateLoaded, Info: info}
	}()
	return ch
}

// LoginCommand builds the interactive login invocation. The caller hands it
// to the terminal driver (tea.ExecProcess), which suspends the UI, runs it
// with inherited stdio and reports back success or failure.
func (c *Client) LoginCommand() *exec.Cmd {
	return exec.Command(c.bin, "--login")
}
