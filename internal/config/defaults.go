package config

const (
	DefaultSet         = "standard"
	DefaultConcurrency = 4
	DefaultTimeout     = "10m"
	DefaultMinQuorum   = 2
	DefaultMaxRetries  = 3
	DefaultMaxTokens   = 2000
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		Set:         DefaultSet,
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultTimeout,
		MinQuorum:   DefaultMinQuorum,
		OpenRouter: OpenRouterConfig{
			MaxRetries: DefaultMaxRetries,
			MaxTokens:  DefaultMaxTokens,
		},
	}
}
