package review

import (
	"context"
	"errors"
	"sync"

	"github.com/eden-eldith/trialhex/internal/events"
	"github.com/eden-eldith/trialhex/internal/openrouter"
	"github.com/eden-eldith/trialhex/internal/registry"
)

// DefaultMaxInFlight bounds concurrent reviewer tasks to respect
// upstream rate limits
const DefaultMaxInFlight = 4

// Dispatcher fans the blinded document out to reviewers. Each reviewer
// runs as its own task, internally sequential: primary model first, then
// fallbacks strictly in chain order. A reviewer never tries two models
// at once.
type Dispatcher struct {
	client      openrouter.Caller
	bus         *events.Bus
	maxInFlight int
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithMaxInFlight bounds the number of concurrently active reviewers
func WithMaxInFlight(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxInFlight = n
		}
	}
}

// WithBus attaches an event bus for reviewer lifecycle events
func WithBus(bus *events.Bus) DispatcherOption {
	return func(d *Dispatcher) { d.bus = bus }
}

// NewDispatcher creates a dispatcher backed by the given model client
func NewDispatcher(client openrouter.Caller, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		client:      client,
		maxInFlight: DefaultMaxInFlight,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ReviewAll dispatches every reviewer and returns one result per
// reviewer (pass through Collect to validate and order the output). The
// context carries the global deadline: reviewers still pending when it
// expires are recorded as FAILED with a timeout reason rather than left
// incomplete. Individual reviewer failure never aborts the run.
func (d *Dispatcher) ReviewAll(ctx context.Context, blindedDoc string, reviewers []registry.ReviewerSpec) []Result {
	// One pre-allocated slot per reviewer: each task writes its own slot
	// exactly once, so no read-modify-write races exist.
	slots := make([]Result, len(reviewers))

	sem := make(chan struct{}, d.maxInFlight)
	var wg sync.WaitGroup

	for i, spec := range reviewers {
		d.emit(events.NewEvent(events.ReviewerQueued, spec.ID))

		wg.Add(1)
		go func(i int, spec registry.ReviewerSpec) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				slots[i] = d.deadlineResult(spec, ctx.Err(), nil, 0)
				return
			}

			slots[i] = d.reviewOne(ctx, blindedDoc, spec)
		}(i, spec)
	}

	wg.Wait()

	results := make([]Result, len(slots))
	copy(results, slots)
	return results
}

// reviewOne walks a single reviewer's fallback chain:
// PENDING -> TRYING(model_i) -> SUCCESS | TRYING(model_{i+1}) -> ... -> FAILED
func (d *Dispatcher) reviewOne(ctx context.Context, blindedDoc string, spec registry.ReviewerSpec) Result {
	d.emit(events.NewEvent(events.ReviewerStarted, spec.ID).WithModel(spec.Models[0]))

	systemPrompt := spec.SystemPrompt()

	var tried []string
	var attempts int
	var lastErr error

	for chainPos, model := range spec.Models {
		if err := ctx.Err(); err != nil {
			return d.deadlineResult(spec, err, tried, attempts)
		}

		if chainPos > 0 {
			d.emit(events.NewEvent(events.ReviewerFallback, spec.ID).WithModel(model))
		}
		d.emit(events.NewEvent(events.ReviewerAttempt, spec.ID).WithModel(model))

		tried = append(tried, model)
		attempt, err := d.client.Call(ctx, model, systemPrompt, blindedDoc)
		if attempt != nil {
			attempts += 1 + attempt.Retries
		} else {
			attempts++
		}

		if err == nil {
			d.emit(events.NewEvent(events.ReviewerCompleted, spec.ID).WithModel(model))
			return Result{
				ReviewerID:   spec.ID,
				ReviewerName: spec.Name,
				Model:        model,
				Status:       StatusSuccess,
				Text:         attempt.Content,
				ModelsTried:  tried,
				Attempts:     attempts,
			}
		}

		lastErr = err

		// A dead context means the deadline hit mid-call, not that the
		// model is bad; stop walking the chain.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return d.deadlineResult(spec, err, tried, attempts)
		}
	}

	d.emit(events.NewEvent(events.ReviewerFailed, spec.ID).WithError(lastErr))
	return Result{
		ReviewerID:   spec.ID,
		ReviewerName: spec.Name,
		Status:       StatusFailed,
		FailReason:   ReasonExhausted,
		Text:         failurePlaceholder(ReasonExhausted, tried, lastErr),
		ModelsTried:  tried,
		Attempts:     attempts,
	}
}

// deadlineResult records a reviewer cut off by the global deadline or a
// run cancellation
func (d *Dispatcher) deadlineResult(spec registry.ReviewerSpec, cause error, tried []string, attempts int) Result {
	reason := ReasonTimeout
	if errors.Is(cause, context.Canceled) {
		reason = ReasonCancelled
	}

	d.emit(events.NewEvent(events.ReviewerFailed, spec.ID).WithError(cause))
	return Result{
		ReviewerID:   spec.ID,
		ReviewerName: spec.Name,
		Status:       StatusFailed,
		FailReason:   reason,
		Text:         failurePlaceholder(reason, tried, nil),
		ModelsTried:  tried,
		Attempts:     attempts,
	}
}

func (d *Dispatcher) emit(e events.Event) {
	if d.bus != nil {
		d.bus.Emit(e)
	}
}
