package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a review run.
// It is immutable after creation via LoadConfig().
type Config struct {
	// Set is the reviewer set to run: "standard" (6) or "plus" (12)
	Set string `yaml:"set"`

	// RegistryPath points to a YAML reviewer roster overriding the
	// built-in sets (empty = use Set)
	RegistryPath string `yaml:"registry"`

	// Concurrency is the maximum number of reviewers in flight at once
	Concurrency int `yaml:"concurrency"`

	// Timeout is the global deadline for the whole run
	Timeout string `yaml:"timeout"`

	// MinQuorum is the fewest successful reviews worth synthesizing
	MinQuorum int `yaml:"min_quorum"`

	// LedgerPath is the SQLite run-history file ("" disables the ledger)
	LedgerPath string `yaml:"ledger"`

	// OpenRouter contains API client settings
	OpenRouter OpenRouterConfig `yaml:"openrouter"`

	// NoTUI forces plain log output even on a terminal
	NoTUI bool `yaml:"no_tui"`

	// Verbose includes event payloads in log output
	Verbose bool `yaml:"verbose"`
}

// OpenRouterConfig controls the OpenRouter HTTP client.
type OpenRouterConfig struct {
	// BaseURL is the API root (override for testing or proxies)
	BaseURL string `yaml:"base_url"`

	// MaxRetries is how many times a transient error is retried per model
	MaxRetries int `yaml:"max_retries"`

	// MaxTokens caps the completion length per review
	MaxTokens int `yaml:"max_tokens"`
}

// TimeoutDuration parses the run timeout as a Duration.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.Timeout)
}

// LoadConfig loads configuration from the given directory.
// It applies defaults, then file values, then environment overrides,
// then validates.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	// Missing config file is not an error (use defaults)
	configPath := filepath.Join(dir, ".trialhex.yaml")
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
