package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eden-eldith/trialhex/internal/review"
	"github.com/eden-eldith/trialhex/internal/synthesis"
)

func meta() Meta {
	return Meta{
		DocumentName:  "thesis.md",
		Date:          time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
		Set:           "standard",
		ReviewerCount: 2,
	}
}

func TestAssemble_EveryReviewerGetsAnEntry(t *testing.T) {
	results := []review.Result{
		{
			ReviewerID:   "methodology",
			ReviewerName: "Methodology Reviewer",
			Model:        "anthropic/claude-sonnet-4.5",
			Status:       review.StatusSuccess,
			Text:         "The methods section holds up.",
		},
		{
			ReviewerID:   "skeptic",
			ReviewerName: "Harsh Skeptic",
			Status:       review.StatusFailed,
			FailReason:   review.ReasonExhausted,
			ModelsTried:  []string{"openai/gpt-5.1", "x-ai/grok-4.1-fast:free"},
			Text:         "Review unavailable: every model in the fallback chain failed.",
		},
	}
	syn := &synthesis.Result{Raw: "## High Consensus\nSolid work.\n\nPASS", Verdict: synthesis.VerdictPass, Model: "anthropic/claude-opus-4.5"}

	out := Assemble(meta(), syn, results)

	assert.Contains(t, out, "# Trial by Hex Review")
	assert.Contains(t, out, "**Document:** thesis.md")
	assert.Contains(t, out, "**Date:** 2026-08-24T10:30:00Z")
	assert.Contains(t, out, "**Verdict:** PASS")
	assert.Contains(t, out, "**Reviewers:** 2 (standard set), 1 returned a review")

	assert.Contains(t, out, "### 1. Methodology Reviewer")
	assert.Contains(t, out, "**Model:** anthropic/claude-sonnet-4.5")
	assert.Contains(t, out, "The methods section holds up.")

	// The failed reviewer appears, not disappears
	assert.Contains(t, out, "### 2. Harsh Skeptic")
	assert.Contains(t, out, "**Status:** FAILED (exhausted)")
	assert.Contains(t, out, "**Models tried:** openai/gpt-5.1, x-ai/grok-4.1-fast:free")

	// Entries keep registry order
	assert.Less(t, strings.Index(out, "### 1."), strings.Index(out, "### 2."))
}

func TestAssemble_SkippedSynthesis(t *testing.T) {
	syn := &synthesis.Result{
		Skipped:    true,
		SkipReason: "only 1 of 2 reviewers returned a review (minimum 2); synthesis skipped, treat this report as low confidence",
		Verdict:    synthesis.VerdictUnknown,
	}
	results := []review.Result{
		{ReviewerID: "a", ReviewerName: "A", Status: review.StatusSuccess, Model: "m", Text: "fine"},
		{ReviewerID: "b", ReviewerName: "B", Status: review.StatusFailed, FailReason: review.ReasonTimeout, Text: "Review unavailable"},
	}

	out := Assemble(meta(), syn, results)

	assert.Contains(t, out, "**Verdict:** UNAVAILABLE (synthesis skipped, low confidence)")
	assert.Contains(t, out, "_Synthesis skipped: only 1 of 2")
	assert.Contains(t, out, "### 1. A")
	assert.Contains(t, out, "### 2. B")
}

func TestAssemble_NilSynthesisStillProducesReport(t *testing.T) {
	results := []review.Result{
		{ReviewerID: "a", ReviewerName: "A", Status: review.StatusSuccess, Model: "m", Text: "fine"},
	}

	out := Assemble(meta(), nil, results)

	assert.Contains(t, out, "**Verdict:** UNAVAILABLE (synthesis failed)")
	assert.Contains(t, out, "unsummarized")
	assert.Contains(t, out, "### 1. A")
}

func TestAssemble_FormatWarningNoted(t *testing.T) {
	syn := &synthesis.Result{Raw: "truncated text with no token", Verdict: synthesis.VerdictUnknown, FormatWarning: true}
	out := Assemble(meta(), syn, []review.Result{
		{ReviewerID: "a", ReviewerName: "A", Status: review.StatusSuccess, Model: "m", Text: "x"},
	})

	assert.Contains(t, out, "**Verdict:** UNKNOWN")
	assert.Contains(t, out, "verdict could not be extracted")
	assert.Contains(t, out, "truncated text with no token")
}

func TestAssemble_RatingsRendered(t *testing.T) {
	syn := &synthesis.Result{
		Raw:     "**Overall:** REVISE",
		Verdict: synthesis.VerdictRevise,
		Ratings: map[string]int{"Technical Quality": 4, "Novelty": 2},
	}
	out := Assemble(meta(), syn, []review.Result{
		{ReviewerID: "a", ReviewerName: "A", Status: review.StatusSuccess, Model: "m", Text: "x"},
	})

	assert.Contains(t, out, "- Technical Quality: 4/5")
	assert.Contains(t, out, "- Novelty: 2/5")
	// Dimensions render in the fixed declared order
	assert.Less(t, strings.Index(out, "Technical Quality: 4/5"), strings.Index(out, "Novelty: 2/5"))
}
