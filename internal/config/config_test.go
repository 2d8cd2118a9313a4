package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Agent.MaxActions != 10 {
		t.Errorf("expected default max actions 10, got %d", cfg.Agent.MaxActions)
	}
	if cfg.Agent.Cooldown != 5*time.Second {
		t.Errorf("expected default cooldown 5s, got %v", cfg.Agent.Cooldown)
	}
	if cfg.Agent.ProposalRetries != 0 {
		t.Errorf("expected no proposal retries by default, got %d", cfg.Agent.ProposalRetries)
	}
	if cfg.Model.Name == "" {
		t.Error("expected a default model name")
	}
	if !cfg.RateLimit.EnableRateLimiting {
		t.Error("expected rate limiting on by default")
	}
	if cfg.Store.Path == "" {
		t.Error("expected a default store path")
	}
	if cfg.Schedule.Enabled {
		t.Error("expected scheduling off by default")
	}
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without an API key")
	}
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("expected API key from environment, got %q", cfg.APIKey)
	}
	if _, err := os.Stat(filepath.Join(".operant", "config.yaml")); err != nil {
		t.Errorf("expected a default config file: %v", err)
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	yaml := `
agent:
  max_actions: 3
  proposal_retries: 2
model:
  name: claude-test
schedule:
  enabled: true
  spec: "*/5 * * * *"
`
	if err := os.WriteFile("operant.yaml", []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Agent.MaxActions != 3 {
		t.Errorf("expected max actions 3, got %d", cfg.Agent.MaxActions)
	}
	if cfg.Agent.Cooldown != 5*time.Second {
		t.Errorf("expected default cooldown to survive, got %v", cfg.Agent.Cooldown)
	}
	if cfg.Agent.ProposalRetries != 2 {
		t.Errorf("expected 2 proposal retries, got %d", cfg.Agent.ProposalRetries)
	}
	if cfg.Model.Name != "claude-test" {
		t.Errorf("expected model override, got %q", cfg.Model.Name)
	}
	if !cfg.Schedule.Enabled || cfg.Schedule.Spec != "*/5 * * * *" {
		t.Errorf("expected schedule override, got %+v", cfg.Schedule)
	}
	if cfg.ConfigPath() != "operant.yaml" {
		t.Errorf("expected config path recorded, got %q", cfg.ConfigPath())
	}

	// Unset fields keep their defaults.
	if cfg.Model.MaxTokens != 4096 {
		t.Errorf("expected default max tokens, got %d", cfg.Model.MaxTokens)
	}
}
