package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Provider != "groq" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "groq")
	}
	if cfg.Groq.Model != "openai/gpt-oss-20b" {
		t.Errorf("Groq.Model = %q, want %q", cfg.Groq.Model, "openai/gpt-oss-20b")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not written: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Provider = "claude"
	cfg.Claude.APIKey = "sk-test"
	if err := saveTo(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := loadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Provider != "claude" {
		t.Errorf("Provider = %q, want %q", loaded.Provider, "claude")
	}
	if loaded.Claude.APIKey != "sk-test" {
		t.Errorf("Claude.APIKey = %q, want %q", loaded.Claude.APIKey, "sk-test")
	}
}

func TestApplyEnvFillsEmptyKeyOnly(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-from-env")

	cfg := Default()
	applyEnv(cfg)
	if cfg.Groq.APIKey != "gsk-from-env" {
		t.Errorf("APIKey = %q, want env value", cfg.Groq.APIKey)
	}

	// A key set in the file wins over the environment.
	cfg = Default()
	cfg.Groq.APIKey = "gsk-from-file"
	applyEnv(cfg)
	if cfg.Groq.APIKey != "gsk-from-file" {
		t.Errorf("APIKey = %q, file value should win", cfg.Groq.APIKey)
	}
}

func TestEnvVarName(t *testing.T) {
	tests := []struct{ provider, want string }{
		{"groq", "GROQ_API_KEY"},
		{"openai", "OPENAI_API_KEY"},
		{"claude", "ANTHROPIC_API_KEY"},
		{"bogus", ""},
	}
	for _, tt := range tests {
		if got := EnvVarName(tt.provider); got != tt.want {
			t.Errorf("EnvVarName(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}
