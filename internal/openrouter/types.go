package openrouter

import (
	"context"
	"time"
)

// Caller is the interface the dispatcher and synthesis engine depend on.
// The concrete Client performs real HTTPS calls; tests substitute a
// MockCaller with canned outcomes.
type Caller interface {
	// Call asks a single model to respond to a system prompt plus user
	// content. Retries of the same model on transient errors happen
	// inside Call; a returned error means this model is done and the
	// caller should fall through to the next model in the chain.
	Call(ctx context.Context, model, systemPrompt, userContent string) (*Attempt, error)
}

// Outcome classifies how an attempt ended
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeRetryable Outcome = "retryable-error"
	OutcomeFatal     Outcome = "fatal-error"
)

// Attempt records a single model invocation: which model, how it ended,
// how long it took, and the response or error detail.
type Attempt struct {
	// Model is the model identifier that was asked
	Model string

	// Outcome is the final classification after in-place retries
	Outcome Outcome

	// Content is the completion text (empty unless Outcome is success)
	Content string

	// Latency covers the whole invocation including retries
	Latency time.Duration

	// Retries is how many extra requests were made beyond the first
	Retries int

	// Err holds the terminal error detail (nil on success)
	Err error
}

// chatRequest is the OpenRouter chat-completions request format
type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the OpenRouter chat-completions response format
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

// apiError is the error body shape OpenRouter returns on failures
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MockCaller is a test implementation of Caller
type MockCaller struct {
	// CallFunc is called when Call is invoked
	CallFunc func(ctx context.Context, model, systemPrompt, userContent string) (*Attempt, error)
}

// Call delegates to CallFunc
func (m *MockCaller) Call(ctx context.Context, model, systemPrompt, userContent string) (*Attempt, error) {
	if m.CallFunc != nil {
		return m.CallFunc(ctx, model, systemPrompt, userContent)
	}
	return &Attempt{Model: model, Outcome: OutcomeSuccess, Content: "ok"}, nil
}
