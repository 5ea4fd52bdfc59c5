// Package openrouter implements the model client: a single abstraction
// for "ask model M to respond to prompt P" over the OpenRouter
// chat-completions API, with per-call retry, backoff, and error
// classification.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Default client configuration values
const (
	DefaultBaseURL        = "https://openrouter.ai/api/v1"
	DefaultRequestTimeout = 3 * time.Minute
	DefaultMaxRetries     = 3
	DefaultMaxTokens      = 2000
	DefaultInitialBackoff = 2 * time.Second
	DefaultMaxBackoff     = 60 * time.Second

	// Attribution headers sent with every request
	refererHeader = "https://github.com/eden-eldith/trialhex"
	titleHeader   = "trialhex - Multi-Model Blind Peer Review"
)

// Client performs OpenRouter chat-completion calls. It holds no mutable
// state between calls; one Client is shared by all concurrent reviewer
// tasks.
type Client struct {
	apiKey         string
	baseURL        string
	httpClient     *http.Client
	maxRetries     int
	maxTokens      int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// Option configures the client
type Option func(*Client)

// WithBaseURL sets the API base URL
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMaxRetries sets how many extra attempts are made against the same
// model after a transient failure
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithMaxTokens sets the completion token limit per call
func WithMaxTokens(n int) Option {
	return func(c *Client) { c.maxTokens = n }
}

// WithBackoff sets the initial and maximum retry backoff
func WithBackoff(initial, max time.Duration) Option {
	return func(c *Client) {
		c.initialBackoff = initial
		c.maxBackoff = max
	}
}

// New creates a client for the given API key
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		apiKey:         apiKey,
		baseURL:        DefaultBaseURL,
		httpClient:     &http.Client{Timeout: DefaultRequestTimeout},
		maxRetries:     DefaultMaxRetries,
		maxTokens:      DefaultMaxTokens,
		initialBackoff: DefaultInitialBackoff,
		maxBackoff:     DefaultMaxBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Call implements Caller. It retries the same model on transient errors
// with exponential backoff (honoring retry-after when present) and
// surfaces fatal errors immediately. The returned Attempt is populated
// whether or not an error occurred.
func (c *Client) Call(ctx context.Context, model, systemPrompt, userContent string) (*Attempt, error) {
	start := time.Now()
	attempt := &Attempt{Model: model}
	backoff := c.initialBackoff

	for try := 0; ; try++ {
		content, callErr := c.doRequest(ctx, model, systemPrompt, userContent)
		if callErr == nil {
			attempt.Outcome = OutcomeSuccess
			attempt.Content = content
			attempt.Latency = time.Since(start)
			attempt.Retries = try
			return attempt, nil
		}

		if !callErr.Retryable {
			attempt.Outcome = OutcomeFatal
			attempt.Latency = time.Since(start)
			attempt.Retries = try
			attempt.Err = callErr.CallError
			return attempt, callErr.CallError
		}

		if try >= c.maxRetries {
			attempt.Outcome = OutcomeRetryable
			attempt.Latency = time.Since(start)
			attempt.Retries = try
			attempt.Err = fmt.Errorf("%w: %w", ErrMaxRetries, callErr.CallError)
			return attempt, attempt.Err
		}

		wait := backoff
		if callErr.retryAfter > 0 {
			wait = callErr.retryAfter
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			attempt.Outcome = OutcomeRetryable
			attempt.Latency = time.Since(start)
			attempt.Retries = try
			attempt.Err = ctx.Err()
			return attempt, ctx.Err()
		}

		backoff *= 2
		if backoff > c.maxBackoff {
			backoff = c.maxBackoff
		}
	}
}

// doRequest performs exactly one HTTP round trip and classifies failures
func (c *Client) doRequest(ctx context.Context, model, systemPrompt, userContent string) (string, *callFailure) {
	reqBody := chatRequest{
		Model:     model,
		MaxTokens: c.maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &callFailure{CallError: &CallError{Model: model, Err: fmt.Errorf("marshal request: %w", err)}}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &callFailure{CallError: &CallError{Model: model, Err: err}}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("HTTP-Referer", refererHeader)
	httpReq.Header.Set("X-Title", titleHeader)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Network-level failures (timeouts, connection resets) are transient
		return "", &callFailure{CallError: &CallError{Model: model, Retryable: true, Err: err}}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", &callFailure{CallError: &CallError{Model: model, Retryable: true, Err: fmt.Errorf("read response: %w", err)}}
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", &callFailure{
			CallError: &CallError{
				Model:      model,
				StatusCode: httpResp.StatusCode,
				Retryable:  retryableStatus(httpResp.StatusCode),
				Body:       truncate(string(respBody), 512),
			},
			retryAfter: retryAfterDelay(httpResp),
		}
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &callFailure{CallError: &CallError{Model: model, Err: fmt.Errorf("unmarshal response: %w", err)}}
	}

	// Some upstream failures arrive as 200 with an error body
	if resp.Error != nil {
		return "", &callFailure{
			CallError: &CallError{
				Model:      model,
				StatusCode: resp.Error.Code,
				Retryable:  retryableStatus(resp.Error.Code),
				Body:       resp.Error.Message,
			},
		}
	}

	if len(resp.Choices) == 0 {
		return "", &callFailure{CallError: &CallError{Model: model, Err: fmt.Errorf("response contains no choices")}}
	}

	return resp.Choices[0].Message.Content, nil
}

// callFailure pairs a classified error with the server's retry hint
type callFailure struct {
	*CallError
	retryAfter time.Duration
}

// retryAfterDelay reads the retry-after header if present
func retryAfterDelay(resp *http.Response) time.Duration {
	if ra := resp.Header.Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
