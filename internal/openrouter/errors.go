package openrouter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingAPIKey indicates the client was built without a credential
	ErrMissingAPIKey = errors.New("openrouter API key is not set")

	// ErrMaxRetries indicates a transient failure persisted through every retry
	ErrMaxRetries = errors.New("max retries exceeded")
)

// CallError wraps a failed model invocation with its classification.
// Retryable errors (timeouts, rate limits, upstream overload) are retried
// in place before being surfaced; fatal errors (auth, content policy,
// malformed request) are surfaced immediately so the caller can fall
// through to the next model in the chain.
type CallError struct {
	Model      string
	StatusCode int // 0 for transport-level failures
	Retryable  bool
	Body       string
	Err        error
}

func (e *CallError) Error() string {
	class := "fatal"
	if e.Retryable {
		class = "transient"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("model %s: %s API error %d: %s", e.Model, class, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("model %s: %s call error: %v", e.Model, class, e.Err)
	}
	return fmt.Sprintf("model %s: %s call error", e.Model, class)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a CallError marked transient
func IsRetryable(err error) bool {
	var ce *CallError
	return errors.As(err, &ce) && ce.Retryable
}

// retryableStatus reports whether an HTTP status indicates a transient
// condition worth retrying against the same model.
func retryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	// 5xx including OpenRouter's 529 overloaded
	return status >= 500
}
