package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Store locates, layers and persists the two configuration files. The zero
// value is not usable; construct one with NewStore or NewStoreAt.
type Store struct {
	globalDir string // e.g. ~/.config/relay
	workDir   string // project directory, usually "."
}

// NewStore builds a store rooted at the user's config directory and the
// current working directory.
func NewStore() *Store {
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory: global layer behaves as absent.
		home = "."
	}
	return NewStoreAt(filepath.Join(home, ".config", "relay"), ".")
}

// NewStoreAt builds a store with explicit roots. Tests use this to point at
// temp directories.
func NewStoreAt(globalDir, workDir string) *Store {
	return &Store{globalDir: globalDir, workDir: workDir}
}

// GlobalPath is the user-global configuration file.
func (s *Store) GlobalPath() string {
	return filepath.Join(s.globalDir, "relay.json")
}

// ProjectPath is the project-local configuration file.
func (s *Store) ProjectPath() string {
	return filepath.Join(s.workDir, ".relay.json")
}

// LoadMerged builds the effective configuration: built-in defaults, replaced
// wholesale by the global file when it parses, then the project file's
// models/providers/stacks merged in key by key with its defaultModel
// overriding when set. The returned path is the save target: the last layer
// that actually loaded, or the global path when nothing did.
//
// A file that exists but will not parse is skipped; a broken override must
// never keep the editor from opening.
func (s *Store) LoadMerged() (*Config, string) {
	cfg := Default()
	savePath := s.GlobalPath()

	if global, err := readConfigFile(s.GlobalPath()); err == nil {
		cfg = global
	}

	if project, err := readConfigFile(s.ProjectPath()); err == nil {
		for k, v := range project.Models {
			cfg.Models[k] = v
		}
		for k, v := range project.Providers {
			cfg.Providers[k] = v
		}
		for k, v := range project.Stacks {
			cfg.Stacks[k] = v
		}
		if project.DefaultModel != "" {
			cfg.DefaultModel = project.DefaultModel
		}
		savePath = s.ProjectPath()
	}

	return cfg, savePath
}

// Persist writes the full configuration to path as pretty-printed JSON,
// creating parent directories as needed. Failures are returned for the
// caller to surface; in-memory state is untouched either way.
func (s *Store) Persist(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// readConfigFile reads one layer. Comments and trailing commas are
// tolerated; these files get edited by hand.
func readConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}
