package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/eden-eldith/trialhex/internal/registry"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	// Set must name a built-in roster unless a registry file overrides it
	if cfg.RegistryPath == "" {
		switch cfg.Set {
		case registry.SetStandard, registry.SetPlus:
			// Valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "set",
				Value:   cfg.Set,
				Message: fmt.Sprintf("must be %q or %q", registry.SetStandard, registry.SetPlus),
			})
		}
	}

	if cfg.Concurrency < 1 {
		errs = append(errs, &ValidationError{
			Field:   "concurrency",
			Value:   cfg.Concurrency,
			Message: "must be at least 1",
		})
	}

	if _, err := time.ParseDuration(cfg.Timeout); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "timeout",
			Value:   cfg.Timeout,
			Message: fmt.Sprintf("invalid duration: %v", err),
		})
	}

	if cfg.MinQuorum < 1 {
		errs = append(errs, &ValidationError{
			Field:   "min_quorum",
			Value:   cfg.MinQuorum,
			Message: "must be at least 1",
		})
	}

	if cfg.OpenRouter.MaxRetries < 0 {
		errs = append(errs, &ValidationError{
			Field:   "openrouter.max_retries",
			Value:   cfg.OpenRouter.MaxRetries,
			Message: "must be non-negative",
		})
	}

	if cfg.OpenRouter.MaxTokens < 1 {
		errs = append(errs, &ValidationError{
			Field:   "openrouter.max_tokens",
			Value:   cfg.OpenRouter.MaxTokens,
			Message: "must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
