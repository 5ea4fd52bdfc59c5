package events

import (
	"fmt"
	"strings"
	"time"
)

// Event represents a single occurrence in the review run lifecycle
type Event struct {
	// Time is when the event occurred (set by bus on emit)
	Time time.Time `json:"time"`

	// Type identifies what happened
	Type EventType `json:"type"`

	// Reviewer is the reviewer ID this event relates to (empty for run-level events)
	Reviewer string `json:"reviewer,omitempty"`

	// Model is the model identifier involved (empty if not model-related)
	Model string `json:"model,omitempty"`

	// Payload contains event-specific data (type varies by event)
	Payload any `json:"payload,omitempty"`

	// Error contains error message if this is a failure event
	Error string `json:"error,omitempty"`
}

// EventType is a string constant identifying the event category
type EventType string

// Run lifecycle events
const (
	RunStarted   EventType = "run.started"
	RunCompleted EventType = "run.completed"
	RunFailed    EventType = "run.failed"
)

// Reviewer lifecycle events
const (
	ReviewerQueued    EventType = "reviewer.queued"
	ReviewerStarted   EventType = "reviewer.started"
	ReviewerAttempt   EventType = "reviewer.attempt"
	ReviewerFallback  EventType = "reviewer.fallback"
	ReviewerCompleted EventType = "reviewer.completed" // Terminal: a model in the chain answered
	ReviewerFailed    EventType = "reviewer.failed"    // Terminal: chain exhausted or deadline hit
)

// Synthesis events
const (
	SynthesisStarted   EventType = "synthesis.started"
	SynthesisCompleted EventType = "synthesis.completed"
	SynthesisSkipped   EventType = "synthesis.skipped" // Quorum not met
	SynthesisFailed    EventType = "synthesis.failed"
)

// Report events
const (
	ReportWritten EventType = "report.written"
)

// NewEvent creates an event with the given type and reviewer
func NewEvent(eventType EventType, reviewer string) Event {
	return Event{
		Type:     eventType,
		Reviewer: reviewer,
	}
}

// WithModel returns a copy of the event with the model identifier set
func (e Event) WithModel(model string) Event {
	e.Model = model
	return e
}

// WithPayload returns a copy of the event with the payload set
func (e Event) WithPayload(payload any) Event {
	e.Payload = payload
	return e
}

// WithError returns a copy of the event with the error message set
func (e Event) WithError(err error) Event {
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// IsFailure returns true if this is a failure event type
func (e Event) IsFailure() bool {
	return strings.HasSuffix(string(e.Type), ".failed")
}

// String returns a human-readable representation of the event
func (e Event) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s]", e.Type))

	if e.Reviewer != "" {
		parts = append(parts, e.Reviewer)
	}
	if e.Model != "" {
		parts = append(parts, fmt.Sprintf("model=%s", e.Model))
	}
	if e.Error != "" {
		parts = append(parts, fmt.Sprintf("error=%q", e.Error))
	}

	return strings.Join(parts, " ")
}
