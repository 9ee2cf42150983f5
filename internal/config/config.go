// Package config owns the relay configuration: the merged two-layer JSON
// document, its persistence, and filesystem discovery of stacks, skills and
// hooks.
package config

import "encoding/json"

// Config is the effective relay configuration after layering the project
// file over the global one. Unknown top-level keys are kept in Extra so a
// round trip through the editor never drops fields written by newer relay
// versions.
type Config struct {
	DefaultModel string
	Models       map[string]ModelEntry
	Providers    map[string]ProviderEntry
	Tools        ToolsConfig
	Runner       RunnerConfig
	Stacks       map[string]StackEntry

	Extra map[string]json.RawMessage
}

// ModelEntry maps a model alias to a provider and a concrete model id.
type ModelEntry struct {
	Provider string
	Model    string

	Extra map[string]json.RawMessage
}

// ProviderEntry describes how to reach one provider.
type ProviderEntry struct {
	Type     string
	BaseURL  string
	APIKey   string
	AuthType string

	Extra map[string]json.RawMessage
}

// ToolsConfig lists the enabled built-in tools and custom tool executables.
type ToolsConfig struct {
	Enabled []string `json:"enabled"`
	Custom  []string `json:"custom,omitempty"`
}

// RunnerConfig is the retry/concurrency policy for task execution.
type RunnerConfig struct {
	MaxConcurrent int    `json:"maxConcurrent"`
	RetryAttempts int    `json:"retryAttempts"`
	RetryBackoff  string `json:"retryBackoff"`
}

// StackEntry is one prompt stack. Numeric fields are pointers so "not set"
// survives a round trip instead of collapsing to zero.
type StackEntry struct {
	Name         string   `json:"name,omitempty"`
	Extends      string   `json:"extends,omitempty"`
	Model        string   `json:"model,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	Timeout      *uint64  `json:"timeout,omitempty"`
	MaxTokens    *uint32  `json:"maxTokens,omitempty"`
	Skill        string   `json:"skill,omitempty"`
	Context      string   `json:"context,omitempty"`
	ContextFile  string   `json:"contextFile,omitempty"`
	Unrestricted bool     `json:"unrestricted,omitempty"`
}

// BuiltinTools are the tools relay ships with.
var BuiltinTools = []string{"bash", "read", "write", "edit"}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultModel: "fast",
		Models:       map[string]ModelEntry{},
		Providers:    map[string]ProviderEntry{},
		Tools: ToolsConfig{
			Enabled: append([]string(nil), BuiltinTools...),
		},
		Runner: RunnerConfig{
			MaxConcurrent: 3,
			RetryAttempts: 3,
			RetryBackoff:  "exponential",
		},
		Stacks: map[string]StackEntry{},
	}
}

// Clone returns a deep copy of the aggregate, used to snapshot state before
// a commit so failures provably leave nothing behind.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Models = make(map[string]ModelEntry, len(c.Models))
	for k, v := range c.Models {
		cp.Models[k] = v
	}
	cp.Providers = make(map[string]ProviderEntry, len(c.Providers))
	for k, v := range c.Providers {
		cp.Providers[k] = v
	}
	cp.Stacks = make(map[string]StackEntry, len(c.Stacks))
	for k, v := range c.Stacks {
		cp.Stacks[k] = v
	}
	cp.Tools.Enabled = append([]string(nil), c.Tools.Enabled...)
	cp.Tools.Custom = append([]string(nil), c.Tools.Custom...)
	if c.Extra != nil {
		cp.Extra = make(map[string]json.RawMessage, len(c.Extra))
		for k, v := range c.Extra {
			cp.Extra[k] = v
		}
	}
	return &cp
}

// The JSON shape uses lowerCamelCase keys and keeps unknown keys. That needs
// hand-written marshalling: known fields are pulled out of a raw map and
// whatever remains is carried in Extra; marshalling layers the known fields
// back over Extra.

func (c *Config) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// Absent keys keep their defaults, mirroring how relay itself reads the
	// file.
	*c = *Default()

	if err := take(raw, "defaultModel", &c.DefaultModel); err != nil {
		return err
	}
	if err := take(raw, "models", &c.Models); err != nil {
		return err
	}
	if err := take(raw, "providers", &c.Providers); err != nil {
		return err
	}
	if err := take(raw, "tools", &c.Tools); err != nil {
		return err
	}
	if err := take(raw, "runner", &c.Runner); err != nil {
		return err
	}
	if err := take(raw, "stacks", &c.Stacks); err != nil {
		return err
	}
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

func (c *Config) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	for k, v := range c.Extra {
		out[k] = v
	}
	out["defaultModel"] = c.DefaultModel
	out["models"] = c.Models
	out["providers"] = c.Providers
	out["tools"] = c.Tools
	out["runner"] = c.Runner
	out["stacks"] = c.Stacks
	return json.Marshal(out)
}

func (m *ModelEntry) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = ModelEntry{}
	if err := take(raw, "provider", &m.Provider); err != nil {
		return err
	}
	if err := take(raw, "model", &m.Model); err != nil {
		return err
	}
	if len(raw) > 0 {
		m.Extra = raw
	}
	return nil
}

func (m ModelEntry) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	for k, v := range m.Extra {
		out[k] = v
	}
	out["provider"] = m.Provider
	out["model"] = m.Model
	return json.Marshal(out)
}

func (p *ProviderEntry) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = ProviderEntry{}
	if err := take(raw, "type", &p.Type); err != nil {
		return err
	}
	if err := take(raw, "baseUrl", &p.BaseURL); err != nil {
		return err
	}
	if err := take(raw, "apiKey", &p.APIKey); err != nil {
		return err
	}
	if err := take(raw, "authType", &p.AuthType); err != nil {
		return err
	}
	if len(raw) > 0 {
		p.Extra = raw
	}
	return nil
}

func (p ProviderEntry) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	for k, v := range p.Extra {
		out[k] = v
	}
	out["type"] = p.Type
	if p.BaseURL != "" {
		out["baseUrl"] = p.BaseURL
	}
	if p.APIKey != "" {
		out["apiKey"] = p.APIKey
	}
	if p.AuthType != "" {
		out["authType"] = p.AuthType
	}
	return json.Marshal(out)
}

// take decodes raw[key] into dst and removes the key, leaving raw holding
// only unknown fields afterwards.
func take(raw map[string]json.RawMessage, key string, dst any) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	delete(raw, key)
	return json.Unmarshal(v, dst)
}
