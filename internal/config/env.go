package config

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "TRIALHEX_SET",
		apply: func(c *Config, v string) {
			c.Set = v
		},
	},
	{
		envVar: "TRIALHEX_TIMEOUT",
		apply: func(c *Config, v string) {
			c.Timeout = v
		},
	},
	{
		envVar: "TRIALHEX_LEDGER",
		apply: func(c *Config, v string) {
			c.LedgerPath = v
		},
	},
	{
		envVar: "TRIALHEX_BASE_URL",
		apply: func(c *Config, v string) {
			c.OpenRouter.BaseURL = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}

// ErrNoAPIKey means no credential was found in the environment or a
// .env file. The message tells the user where to put one.
var ErrNoAPIKey = errors.New("OPENROUTER_API_KEY not set: export it or add it to a .env file (get a key at https://openrouter.ai)")

// APIKey resolves the OpenRouter credential: the OPENROUTER_API_KEY
// environment variable wins, otherwise a .env file in dir is consulted.
func APIKey(dir string) (string, error) {
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		return key, nil
	}
	if key := dotenvLookup(filepath.Join(dir, ".env"), "OPENROUTER_API_KEY"); key != "" {
		return key, nil
	}
	return "", ErrNoAPIKey
}

// dotenvLookup reads KEY=VALUE lines from a .env file. Comments and
// malformed lines are skipped; surrounding quotes are stripped.
func dotenvLookup(path, key string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}

		v = strings.TrimSpace(v)
		v = strings.Trim(v, `"'`)
		return v
	}
	return ""
}
