package relay

import (
	"encoding/json"
	"testing"
)

func TestParseInfo(t *testing.T) {
	raw := `{
		"version": "0.4.2",
		"config": {
			"global_path": "/home/u/.config/relay/relay.json",
			"project_path": ".relay.json",
			"global_exists": true,
			"project_exists": false
		},
		"auth": {
			"anthropic": {"authenticated": true, "method": "oauth", "expires_at": "2026-01-01T00:00:00Z"}
		},
		"models": {"default": "fast", "configured": ["fast", "smart"]},
		"providers": {"anthropic": {"type": "anthropic", "has_key": false}},
		"counts": {"skills": 3, "stacks": 2, "hooks": 0, "models": 2}
	}`

	var info Info
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if info.Version != "0.4.2" {
		t.Errorf("Version = %q", info.Version)
	}
	if !info.Config.GlobalExists || info.Config.ProjectExists {
		t.Errorf("config existence flags wrong: %+v", info.Config)
	}
	if !info.Auth["anthropic"].Authenticated || info.Auth["anthropic"].Method != "oauth" {
		t.Errorf("auth status wrong: %+v", info.Auth["anthropic"])
	}
	if info.Models.Default != "fast" || len(info.Models.Configured) != 2 {
		t.Errorf("models info wrong: %+v", info.Models)
	}
	if info.Providers["anthropic"].HasKey {
		t.Errorf("has_key should be false")
	}
	if info.Counts.Skills != 3 || info.Counts.Models != 2 {
		t.Errorf("counts wrong: %+v", info.Counts)
	}
}

func TestFetchAsyncMissingBinary(t *testing.T) {
	c := NewClientWithBinary("definitely-not-a-real-binary-9151")

	status := <-c.FetchAsync()
	if status.State != StateNotAvailable {
		t.Fatalf("state = %v, want StateNotAvailable", status.State)
	}
	if status.Info != nil {
		t.Fatal("no info expected when the binary is missing")
	}
}

func TestLoginCommandShape(t *testing.T) {
	c := NewClientWithBinary("relay")
	cmd := c.LoginCommand()
	if len(cmd.Args) != 2 || cmd.Args[1] != "--login" {
		t.Fatalf("unexpected args: %v", cmd.Args)
	}
}
