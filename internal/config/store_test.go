package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "relay"), t.TempDir())
}

func TestLoadMergedDefaults(t *testing.T) {
	s := newTestStore(t)

	cfg, path := s.LoadMerged()

	if cfg.DefaultModel != "fast" {
		t.Errorf("DefaultModel = %q, want \"fast\"", cfg.DefaultModel)
	}
	if len(cfg.Models) != 0 || len(cfg.Stacks) != 0 {
		t.Errorf("expected empty models/stacks, got %d/%d", len(cfg.Models), len(cfg.Stacks))
	}
	if diff := cmp.Diff([]string{"bash", "read", "write", "edit"}, cfg.Tools.Enabled); diff != "" {
		t.Errorf("enabled tools mismatch (-want +got):\n%s", diff)
	}
	if cfg.Runner.MaxConcurrent != 3 || cfg.Runner.RetryAttempts != 3 || cfg.Runner.RetryBackoff != "exponential" {
		t.Errorf("unexpected runner defaults: %+v", cfg.Runner)
	}
	if path != s.GlobalPath() {
		t.Errorf("save target = %q, want global path %q", path, s.GlobalPath())
	}
}

func TestLoadMergedGlobalOnly(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.GlobalPath(), `{
		"defaultModel": "smart",
		"models": {"a": {"provider": "anthropic", "model": "m-a"}}
	}`)

	cfg, path := s.LoadMerged()

	if cfg.DefaultModel != "smart" {
		t.Errorf("DefaultModel = %q, want \"smart\"", cfg.DefaultModel)
	}
	if got := cfg.Models["a"].Provider; got != "anthropic" {
		t.Errorf("models[a].Provider = %q", got)
	}
	if path != s.GlobalPath() {
		t.Errorf("save target = %q, want global path", path)
	}
}

func TestLoadMergedProjectOverridesGlobal(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.GlobalPath(), `{
		"defaultModel": "a",
		"models": {"a": {"provider": "anthropic", "model": "m-a"}}
	}`)
	writeFile(t, s.ProjectPath(), `{
		"models": {
			"a": {"provider": "openrouter", "model": "m-a2"},
			"b": {"provider": "anthropic", "model": "m-b"}
		}
	}`)

	cfg, path := s.LoadMerged()

	if len(cfg.Models) != 2 {
		t.Fatalf("expected both models after merge, got %d", len(cfg.Models))
	}
	if got := cfg.Models["a"].Provider; got != "openrouter" {
		t.Errorf("project entry should overwrite global, models[a].Provider = %q", got)
	}
	if got := cfg.Models["b"].Model; got != "m-b" {
		t.Errorf("models[b].Model = %q", got)
	}
	// Project file left defaultModel empty, so the global default stands.
	if cfg.DefaultModel != "a" {
		t.Errorf("DefaultModel = %q, want \"a\"", cfg.DefaultModel)
	}
	if path != s.ProjectPath() {
		t.Errorf("save target = %q, want project path", path)
	}
}

func TestLoadMergedProjectDefaultModelWins(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.GlobalPath(), `{"defaultModel": "a"}`)
	writeFile(t, s.ProjectPath(), `{"defaultModel": "b"}`)

	cfg, _ := s.LoadMerged()
	if cfg.DefaultModel != "b" {
		t.Errorf("DefaultModel = %q, want \"b\"", cfg.DefaultModel)
	}
}

func TestLoadMergedSkipsUnparsableLayer(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.GlobalPath(), `{"defaultModel": "smart"}`)
	writeFile(t, s.ProjectPath(), `{not json at all`)

	cfg, path := s.LoadMerged()

	if cfg.DefaultModel != "smart" {
		t.Errorf("broken project layer should be ignored, DefaultModel = %q", cfg.DefaultModel)
	}
	if path != s.GlobalPath() {
		t.Errorf("save target should fall back to global, got %q", path)
	}
}

func TestLoadMergedToleratesComments(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.GlobalPath(), `{
		// hand-edited
		"defaultModel": "smart",
	}`)

	cfg, _ := s.LoadMerged()
	if cfg.DefaultModel != "smart" {
		t.Errorf("jsonc input should parse, DefaultModel = %q", cfg.DefaultModel)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.GlobalPath(), `{
		"defaultModel": "smart",
		"models": {"a": {"provider": "anthropic", "model": "m-a", "maxTokens": 4096}},
		"providers": {"anthropic": {"type": "anthropic", "authType": "oauth", "region": "eu"}},
		"stacks": {"dev": {"model": "a", "temperature": 0.7, "unrestricted": true}},
		"futureSetting": {"nested": [1, 2, 3]}
	}`)

	cfg, path := s.LoadMerged()
	if err := s.Persist(cfg, path); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	reloaded, _ := s.LoadMerged()
	if diff := cmp.Diff(cfg, reloaded, rawJSONComparer()); diff != "" {
		t.Errorf("round trip changed the config (-first +second):\n%s", diff)
	}

	// The unknown fields survived verbatim.
	if _, ok := reloaded.Extra["futureSetting"]; !ok {
		t.Error("unknown top-level key was dropped on round trip")
	}
	if _, ok := reloaded.Models["a"].Extra["maxTokens"]; !ok {
		t.Error("unknown model key was dropped on round trip")
	}
	if _, ok := reloaded.Providers["anthropic"].Extra["region"]; !ok {
		t.Error("unknown provider key was dropped on round trip")
	}
}

func TestPersistCreatesParentDirectories(t *testing.T) {
	s := newTestStore(t)
	path := s.GlobalPath() // directory does not exist yet

	if err := s.Persist(Default(), path); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing after Persist: %v", err)
	}
}

func TestPersistSurfacesWriteErrors(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	// A directory at the target path makes the write fail.
	if err := s.Persist(Default(), dir); err == nil {
		t.Fatal("expected an error writing over a directory")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Default()
	cfg.Models["a"] = ModelEntry{Provider: "anthropic", Model: "m"}

	cp := cfg.Clone()
	cp.Models["b"] = ModelEntry{Provider: "openai", Model: "x"}
	cp.Tools.Enabled = append(cp.Tools.Enabled, "extra")

	if _, ok := cfg.Models["b"]; ok {
		t.Error("clone shares the models map")
	}
	if len(cfg.Tools.Enabled) != 4 {
		t.Errorf("clone shares the enabled slice, len=%d", len(cfg.Tools.Enabled))
	}
}

// rawJSONComparer compares json.RawMessage semantically so formatting
// differences between layers do not fail equality.
func rawJSONComparer() cmp.Option {
	return cmp.Comparer(func(a, b json.RawMessage) bool {
		var av, bv any
		if err := json.Unmarshal(a, &av); err != nil {
			return false
		}
		if err := json.Unmarshal(b, &bv); err != nil {
			return false
		}
		return cmp.Equal(av, bv)
	})
}
