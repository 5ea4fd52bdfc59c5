package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return DefaultConfig()
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))
}

func TestValidateConfig_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "unknown set",
			mutate:  func(c *Config) { c.Set = "deluxe" },
			wantMsg: "config.set",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Concurrency = 0 },
			wantMsg: "config.concurrency",
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.Timeout = "soonish" },
			wantMsg: "config.timeout",
		},
		{
			name:    "zero quorum",
			mutate:  func(c *Config) { c.MinQuorum = 0 },
			wantMsg: "config.min_quorum",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.OpenRouter.MaxRetries = -1 },
			wantMsg: "config.openrouter.max_retries",
		},
		{
			name:    "zero max tokens",
			mutate:  func(c *Config) { c.OpenRouter.MaxTokens = 0 },
			wantMsg: "config.openrouter.max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateConfig_CustomRegistrySkipsSetCheck(t *testing.T) {
	cfg := validConfig()
	cfg.Set = "whatever"
	cfg.RegistryPath = "reviewers.yaml"
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Set = "nope"
	cfg.Concurrency = 0
	cfg.Timeout = "bad"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.set")
	assert.Contains(t, err.Error(), "config.concurrency")
	assert.Contains(t, err.Error(), "config.timeout")
}
