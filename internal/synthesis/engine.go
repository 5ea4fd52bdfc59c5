package synthesis

import (
	"context"
	"fmt"

	"github.com/eden-eldith/trialhex/internal/events"
	"github.com/eden-eldith/trialhex/internal/openrouter"
	"github.com/eden-eldith/trialhex/internal/registry"
	"github.com/eden-eldith/trialhex/internal/review"
)

// DefaultMinQuorum is the fewest successful reviews worth synthesizing.
// Below it the synthesis is skipped and the report is flagged instead,
// since "consensus" over one voice is noise.
const DefaultMinQuorum = 2

// Engine calls the synthesis model chain over the collected reviews
type Engine struct {
	client    openrouter.Caller
	bus       *events.Bus
	chain     []string
	minQuorum int
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithMinQuorum overrides the minimum successful-review count
func WithMinQuorum(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.minQuorum = n
		}
	}
}

// WithChain overrides the synthesis model fallback chain
func WithChain(models []string) EngineOption {
	return func(e *Engine) {
		if len(models) > 0 {
			e.chain = models
		}
	}
}

// WithBus attaches an event bus for synthesis lifecycle events
func WithBus(bus *events.Bus) EngineOption {
	return func(e *Engine) { e.bus = bus }
}

// NewEngine creates a synthesis engine backed by the given model client
func NewEngine(client openrouter.Caller, opts ...EngineOption) *Engine {
	e := &Engine{
		client:    client,
		chain:     registry.SynthesisChain(),
		minQuorum: DefaultMinQuorum,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Synthesize asks the synthesis chain to cluster the successful reviews
// into consensus buckets and extract a verdict. With fewer successful
// reviews than the quorum it returns a skipped result instead of
// calling any model. A returned error means the whole chain failed; the
// caller decides how to degrade.
func (e *Engine) Synthesize(ctx context.Context, set string, results []review.Result) (*Result, error) {
	succeeded := review.SuccessCount(results)
	if succeeded < e.minQuorum {
		reason := fmt.Sprintf("only %d of %d reviewers returned a review (minimum %d); synthesis skipped, treat this report as low confidence",
			succeeded, len(results), e.minQuorum)
		e.emit(events.NewEvent(events.SynthesisSkipped, "").WithPayload(reason))
		return &Result{Skipped: true, SkipReason: reason, Verdict: VerdictUnknown}, nil
	}

	systemPrompt, userContent := buildPrompt(set, results)

	var lastErr error
	for _, model := range e.chain {
		if err := ctx.Err(); err != nil {
			e.emit(events.NewEvent(events.SynthesisFailed, "").WithError(err))
			return nil, fmt.Errorf("synthesis: %w", err)
		}

		e.emit(events.NewEvent(events.SynthesisStarted, "").WithModel(model))

		attempt, err := e.client.Call(ctx, model, systemPrompt, userContent)
		if err != nil {
			lastErr = err
			continue
		}

		res := &Result{
			Raw:     attempt.Content,
			Verdict: parseVerdict(attempt.Content),
			Model:   model,
		}
		if set == registry.SetPlus {
			res.Ratings = parseRatings(attempt.Content)
		}
		if res.Verdict == VerdictUnknown {
			res.FormatWarning = true
		}

		e.emit(events.NewEvent(events.SynthesisCompleted, "").WithModel(model))
		return res, nil
	}

	e.emit(events.NewEvent(events.SynthesisFailed, "").WithError(lastErr))
	return nil, fmt.Errorf("synthesis: every model in the chain failed: %w", lastErr)
}

func (e *Engine) emit(ev events.Event) {
	if e.bus != nil {
		e.bus.Emit(ev)
	}
}
