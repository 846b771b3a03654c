// Package config manages the tell configuration file at ~/.tell/config.yaml.
// Environment variables override empty file keys so a bare export is enough
// to get started.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string         `yaml:"provider" mapstructure:"provider"`
	Groq     ProviderConfig `yaml:"groq" mapstructure:"groq"`
	OpenAI   ProviderConfig `yaml:"openai" mapstructure:"openai"`
	Claude   ProviderConfig `yaml:"claude" mapstructure:"claude"`
}

type ProviderConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	Model  string `yaml:"model" mapstructure:"model"`
}

// Dir returns the config directory path (~/.tell).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tell")
}

// Path returns the config file path (~/.tell/config.yaml).
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in configuration: Groq with a fixed model and
// no key. Temperature is not configurable; generation is always pinned to 0.
func Default() *Config {
	return &Config{
		Provider: "groq",
		Groq: ProviderConfig{
			Model: "openai/gpt-oss-20b",
		},
		OpenAI: ProviderConfig{
			Model: "gpt-4o-mini",
		},
		Claude: ProviderConfig{
			Model: "claude-3-5-haiku-20241022",
		},
	}
}

// Load reads the config file, creating it with defaults on first use, and
// applies environment-variable overrides for credentials.
func Load() (*Config, error) {
	cfg, err := loadFrom(Path())
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := saveTo(cfg, path); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if key := os.Getenv("GROQ_API_KEY"); key != "" && cfg.Groq.APIKey == "" {
		cfg.Groq.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && cfg.Claude.APIKey == "" {
		cfg.Claude.APIKey = key
	}
}

func saveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// EnvVarName maps a provider name to the environment variable that can
// supply its credential, for error messages.
func EnvVarName(provider string) string {
	switch provider {
	case "groq":
		return "GROQ_API_KEY"
	case "openai":
		return "OPENAI_API_KEY"
	case "claude":
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}
