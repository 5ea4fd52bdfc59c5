// Package review fans a blinded document out to every registered
// reviewer concurrently, walking each reviewer's model fallback chain,
// and collects one result per reviewer under partial-failure tolerance.
package review

import (
	"fmt"
	"strings"
)

// Status is the terminal state of a reviewer
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// FailReason explains why a reviewer ended FAILED
type FailReason string

const (
	ReasonNone      FailReason = ""
	ReasonExhausted FailReason = "exhausted" // every model in the chain failed
	ReasonTimeout   FailReason = "timeout"   // global deadline elapsed
	ReasonCancelled FailReason = "cancelled" // run was interrupted
)

// Result is the outcome for one reviewer. Exactly one Result exists per
// registered reviewer per run; a failed reviewer is recorded, never
// dropped.
type Result struct {
	// ReviewerID is the stable reviewer identifier
	ReviewerID string

	// ReviewerName is the display name used in the report
	ReviewerName string

	// Model is the model that ultimately answered ("" if none did)
	Model string

	// Status is SUCCESS or FAILED
	Status Status

	// Text is the review, or a diagnostic placeholder on failure
	Text string

	// FailReason is set when Status is FAILED
	FailReason FailReason

	// ModelsTried lists every model attempted, in chain order
	ModelsTried []string

	// Attempts counts model invocations made for this reviewer
	Attempts int
}

// Succeeded reports whether the reviewer produced a review
func (r Result) Succeeded() bool {
	return r.Status == StatusSuccess
}

// failurePlaceholder builds the diagnostic text recorded for a reviewer
// that produced no review
func failurePlaceholder(reason FailReason, tried []string, lastErr error) string {
	var b strings.Builder

	switch reason {
	case ReasonTimeout:
		b.WriteString("Review unavailable: the global deadline elapsed before this reviewer finished.")
	case ReasonCancelled:
		b.WriteString("Review unavailable: the run was cancelled before this reviewer finished.")
	default:
		b.WriteString("Review unavailable: every model in the fallback chain failed.")
	}

	if len(tried) > 0 {
		fmt.Fprintf(&b, " Models tried: %s.", strings.Join(tried, ", "))
	}
	if lastErr != nil {
		fmt.Fprintf(&b, " Last error: %v", lastErr)
	}

	return b.String()
}
